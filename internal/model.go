package internal

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"countdown_tui/internal/countdown"
	"countdown_tui/internal/timelog"
	"countdown_tui/internal/timer"
)

// Store persists finished sessions.
type Store interface {
	Create(e *timelog.Entry) error
	Recent(limit int) ([]timelog.Entry, error)
}

// msgCallback carries a ticker callback onto the update loop.
type msgCallback struct{ fn func() }

// Dispatcher routes ticker callbacks through send, normally
// (*tea.Program).Send, so they run inside Update.
func Dispatcher(send func(tea.Msg)) timer.Dispatcher {
	return func(fn func()) { send(msgCallback{fn: fn}) }
}

type Options struct {
	Ticker          countdown.Ticker
	Store           Store
	Logger          *slog.Logger
	Clock           countdown.Clock
	DefaultDuration time.Duration
	AutoStop        bool
	HistoryLimit    int
	// Bell is written to on finish when set, typically os.Stderr.
	Bell io.Writer
}

type Model struct {
	Machine *countdown.Machine
	Picker  *Picker

	ShowLogView   bool
	LogViewScroll int
	Logs          []timelog.Entry
	Status        string

	ticker       countdown.Ticker
	store        Store
	logger       *slog.Logger
	bell         io.Writer
	historyLimit int

	keys     keyMap
	help     help.Model
	progress progress.Model
	pending  []tea.Cmd
}

func NewModel(opts Options) (*Model, error) {
	if opts.Ticker == nil {
		return nil, fmt.Errorf("no ticker configured")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("no history store configured")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Clock == nil {
		opts.Clock = countdown.SystemClock
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 50
	}

	m := &Model{
		Picker:       NewPicker(opts.DefaultDuration),
		ticker:       opts.Ticker,
		store:        opts.Store,
		logger:       opts.Logger,
		bell:         opts.Bell,
		historyLimit: opts.HistoryLimit,
		keys:         defaultKeyMap(),
		help:         help.New(),
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(40)),
	}
	m.Machine = countdown.New(opts.Ticker, m.Picker,
		countdown.WithClock(opts.Clock),
		countdown.WithAutoStop(opts.AutoStop),
		countdown.WithListener(m.onEvent),
	)
	m.keys.sync(m.Machine.Snapshot())

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case msgCallback:
		msg.fn()
	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	m.keys.sync(m.Machine.Snapshot())

	cmds := append(m.pending, cmd)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.ShowLogView {
		return m.historyView()
	}
	return m.mainView()
}

// Close ends an active session so it is recorded, and releases the ticker.
func (m *Model) Close() {
	m.Machine.StopPressed()
	m.ticker.Stop()
}

func (m *Model) onEvent(ev countdown.Event) {
	m.logger.Info("countdown",
		"event", ev.Kind.String(),
		"configured", ev.Snapshot.Configured,
		"remaining", ev.Snapshot.Remaining,
	)

	switch ev.Kind {
	case countdown.EventStarted:
		m.Status = ""
	case countdown.EventStopped:
		m.record(ev, timelog.OutcomeStopped)
	case countdown.EventFinished:
		m.record(ev, timelog.OutcomeCompleted)
		if m.Status == "" {
			m.Status = "Time's up!"
		}
		if m.bell != nil {
			m.pending = append(m.pending, ringBell(m.bell))
		}
	}
}

func (m *Model) record(ev countdown.Event, outcome timelog.Outcome) {
	entry := &timelog.Entry{
		Duration:  time.Duration(ev.Snapshot.Configured) * time.Second,
		Remaining: time.Duration(ev.Snapshot.Remaining) * time.Second,
		StartedAt: ev.StartedAt,
		EndedAt:   ev.At,
		Outcome:   outcome,
	}
	if err := m.store.Create(entry); err != nil {
		m.logger.Error("failed to record session", "error", err)
		m.Status = fmt.Sprintf("history: %v", err)
		return
	}
	m.logger.Debug("session recorded", "id", entry.ID, "outcome", string(outcome))
}

func ringBell(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.ShowLogView {
		return m.handleLogViewInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Primary):
		m.Machine.PrimaryPressed()
	case key.Matches(msg, m.keys.Stop):
		m.Machine.StopPressed()
	case key.Matches(msg, m.keys.Up):
		m.Picker.Increment()
	case key.Matches(msg, m.keys.Down):
		m.Picker.Decrement()
	case key.Matches(msg, m.keys.Left):
		m.Picker.Prev()
	case key.Matches(msg, m.keys.Right):
		m.Picker.Next()
	case key.Matches(msg, m.keys.History):
		m.openLogView()
	}
	return nil
}

func (m *Model) openLogView() {
	logs, err := m.store.Recent(m.historyLimit)
	if err != nil {
		m.logger.Error("failed to load history", "error", err)
		m.Status = fmt.Sprintf("history: %v", err)
		logs = nil
	}
	m.Logs = logs
	m.ShowLogView = true
	m.LogViewScroll = 0
}

func (m *Model) handleLogViewInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "q", "esc", "l":
		m.ShowLogView = false
		m.Logs = nil
	case "up", "k":
		if m.LogViewScroll > 0 {
			m.LogViewScroll--
		}
	case "down", "j":
		maxScroll := len(m.Logs) - 1
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.LogViewScroll < maxScroll {
			m.LogViewScroll++
		}
	}
	return nil
}
