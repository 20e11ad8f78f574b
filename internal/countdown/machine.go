// Package countdown holds the countdown timer state machine.
//
// A Machine is not safe for concurrent use. It is driven from a single
// event loop: user intent and ticker callbacks must arrive on the same
// goroutine.
package countdown

import (
	"fmt"
	"time"
)

// Ticker is a repeating one-second callback source.
type Ticker interface {
	Start(onTick func())
	Stop()
	Running() bool
}

// DurationSource supplies the duration picked by the user, in seconds.
type DurationSource interface {
	ConfiguredDuration() int
}

// Clock provides the current time. Replaced in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventResumed
	EventStopped
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventStopped:
		return "stopped"
	case EventFinished:
		return "finished"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes a transition. Snapshot is taken before the session is
// reset, so stop and finish events still carry the session values.
type Event struct {
	Kind      EventKind
	Snapshot  Snapshot
	StartedAt time.Time
	At        time.Time
}

type Option func(*Machine)

// WithClock sets the clock used to stamp events.
func WithClock(c Clock) Option {
	return func(m *Machine) { m.clock = c }
}

// WithAutoStop controls whether reaching zero ends the session.
func WithAutoStop(on bool) Option {
	return func(m *Machine) { m.autoStop = on }
}

// WithListener registers a function called after every transition.
func WithListener(fn func(Event)) Option {
	return func(m *Machine) { m.listener = fn }
}

type Machine struct {
	ticker   Ticker
	source   DurationSource
	clock    Clock
	autoStop bool
	listener func(Event)

	state      State
	configured int
	remaining  int
	startedAt  time.Time
}

// New returns a machine in PickingTime. Auto-stop is on unless disabled.
func New(ticker Ticker, source DurationSource, opts ...Option) *Machine {
	if ticker == nil || source == nil {
		panic("countdown: nil ticker or duration source")
	}
	m := &Machine{
		ticker:   ticker,
		source:   source,
		clock:    SystemClock,
		autoStop: true,
		state:    PickingTime,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) State() State { return m.state }
func (m *Machine) Remaining() int { return m.remaining }
func (m *Machine) Configured() int { return m.configured }
func (m *Machine) AutoStop() bool { return m.autoStop }
func (m *Machine) StartedAt() time.Time { return m.startedAt }

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{State: m.state, Configured: m.configured, Remaining: m.remaining}
}

// PrimaryPressed handles the start/pause/resume control.
func (m *Machine) PrimaryPressed() {
	switch m.state {
	case PickingTime:
		d := m.source.ConfiguredDuration()
		if d < 0 {
			panic(fmt.Sprintf("countdown: negative configured duration %d", d))
		}
		m.configured = d
		m.remaining = d
		m.startedAt = m.clock.Now()
		m.state = Running
		m.ticker.Start(m.Tick)
		m.emit(EventStarted)

	case Running:
		m.state = Paused
		m.ticker.Stop()
		m.emit(EventPaused)

	case Paused:
		m.state = Running
		m.ticker.Start(m.Tick)
		m.emit(EventResumed)
	}
}

// StopPressed ends the session from any state. In PickingTime there is
// no session and nothing happens.
func (m *Machine) StopPressed() {
	if m.state == PickingTime {
		m.ticker.Stop()
		return
	}
	m.finish(EventStopped)
}

// Tick advances the countdown by one second. Ticks outside Running are
// ignored.
func (m *Machine) Tick() {
	if m.state != Running {
		return
	}
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining == 0 && m.autoStop {
		m.finish(EventFinished)
	}
}

func (m *Machine) finish(kind EventKind) {
	m.ticker.Stop()
	ev := m.event(kind)
	m.state = PickingTime
	m.configured = 0
	m.remaining = 0
	m.startedAt = time.Time{}
	if m.listener != nil {
		m.listener(ev)
	}
}

func (m *Machine) emit(kind EventKind) {
	if m.listener != nil {
		m.listener(m.event(kind))
	}
}

func (m *Machine) event(kind EventKind) Event {
	return Event{
		Kind:      kind,
		Snapshot:  m.Snapshot(),
		StartedAt: m.startedAt,
		At:        m.clock.Now(),
	}
}
