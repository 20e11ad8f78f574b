package timelog

import (
	"fmt"
	"time"
)

type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeStopped   Outcome = "stopped"
)

// Entry records one finished countdown session.
type Entry struct {
	ID        int64
	Duration  time.Duration
	Remaining time.Duration
	StartedAt time.Time
	EndedAt   time.Time
	Outcome   Outcome
}

// Counted is how much of the configured duration actually ran down.
func (e Entry) Counted() time.Duration {
	if e.Remaining >= e.Duration {
		return 0
	}
	return e.Duration - e.Remaining
}

func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeCompleted, OutcomeStopped:
		return Outcome(s), nil
	}
	return "", fmt.Errorf("unknown outcome %q", s)
}
