package countdown

import (
	"fmt"
	"time"
)

// State is the phase of the countdown session.
type State int

const (
	PickingTime State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case PickingTime:
		return "picking"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Snapshot is the full observable state of the machine. Everything the
// view shows is derived from it.
type Snapshot struct {
	State      State
	Configured int
	Remaining  int
}

// PrimaryLabel is the caption of the start/pause/resume control.
func (s Snapshot) PrimaryLabel() string {
	switch s.State {
	case Running:
		return "Pause"
	case Paused:
		return "Resume"
	}
	return "Start"
}

// ShowPicker reports whether the duration picker is visible instead of
// the remaining time.
func (s Snapshot) ShowPicker() bool {
	return s.State == PickingTime
}

// RemainingText is the formatted remaining time, empty while picking.
func (s Snapshot) RemainingText() string {
	if s.ShowPicker() {
		return ""
	}
	return FormatSeconds(s.Remaining)
}

// Elapsed returns the elapsed share of the session in [0, 1].
func (s Snapshot) Elapsed() float64 {
	if s.State == PickingTime || s.Configured <= 0 {
		return 0
	}
	return float64(s.Configured-s.Remaining) / float64(s.Configured)
}

// FormatSeconds renders a second count as H:MM:SS, or MM:SS under an hour.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatDuration is FormatSeconds for a time.Duration, truncated to whole seconds.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(int(d / time.Second))
}
