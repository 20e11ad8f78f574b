package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"countdown_tui/internal/countdown"
	"countdown_tui/internal/timelog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	timerDisplayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("69")).
				Bold(true)

	timerRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 2)

	stopButtonStyle = buttonStyle.
			Foreground(lipgloss.Color("160")).
			BorderForeground(lipgloss.Color("160"))

	disabledButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("240")).
				BorderForeground(lipgloss.Color("240"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	pickerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	pickerFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Background(lipgloss.Color("235")).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	logHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	logCompletedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82"))

	logTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

const (
	viewWidth  = 60
	logVisible = 10
)

func (m *Model) mainView() string {
	snap := m.Machine.Snapshot()

	var sb strings.Builder
	sb.WriteString(titleStyle.Width(viewWidth).Render("Countdown"))
	sb.WriteString("\n\n")

	var body string
	if snap.ShowPicker() {
		body = m.Picker.View()
	} else {
		body = m.timeView(snap)
	}
	sb.WriteString(lipgloss.PlaceHorizontal(viewWidth, lipgloss.Center, boxStyle.Render(body)))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(viewWidth, lipgloss.Center, buttonsView(snap)))
	sb.WriteString("\n")

	if m.Status != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(viewWidth, lipgloss.Center, statusStyle.Render(m.Status)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

func (m *Model) timeView(snap countdown.Snapshot) string {
	style := timerDisplayStyle
	if snap.State == countdown.Running {
		style = timerRunningStyle
	}

	state := "Paused"
	if snap.State == countdown.Running {
		state = "Running"
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(snap.RemainingText()),
		"",
		m.progress.ViewAs(snap.Elapsed()),
		"",
		inactiveStyle.Render(fmt.Sprintf("%s of %s", state, countdown.FormatSeconds(snap.Configured))),
	)
}

func buttonsView(snap countdown.Snapshot) string {
	stop := stopButtonStyle
	if snap.ShowPicker() {
		stop = disabledButtonStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		buttonStyle.Render(snap.PrimaryLabel()),
		"  ",
		stop.Render("Stop"),
	)
}

func (m *Model) historyView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Width(viewWidth).Render("History"))
	sb.WriteString("\n\n")

	if len(m.Logs) == 0 {
		sb.WriteString(inactiveStyle.Render("No sessions recorded yet."))
	} else {
		sb.WriteString(logHeaderStyle.Render(fmt.Sprintf("%-14s %-9s %-9s %s", "Ended", "Length", "Counted", "Outcome")))
		sb.WriteString("\n")
		end := min(m.LogViewScroll+logVisible, len(m.Logs))
		for _, l := range m.Logs[m.LogViewScroll:end] {
			sb.WriteString(formatLogEntry(l))
			sb.WriteString("\n")
		}
		sb.WriteString(logTimeStyle.Render(fmt.Sprintf("%d-%d of %d", m.LogViewScroll+1, end, len(m.Logs))))
	}

	if m.Status != "" {
		sb.WriteString("\n\n")
		sb.WriteString(statusStyle.Render(m.Status))
	}

	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("Scroll: Up/Down | Back: Esc/l | Quit: ctrl+c"))

	return boxStyle.Width(viewWidth).Render(sb.String())
}

func formatLogEntry(l timelog.Entry) string {
	ended := logTimeStyle.Render(fmt.Sprintf("%-14s", l.EndedAt.Local().Format("Jan 02 15:04")))
	outcome := inactiveStyle.Render(string(l.Outcome))
	if l.Outcome == timelog.OutcomeCompleted {
		outcome = logCompletedStyle.Render(string(l.Outcome))
	}
	return fmt.Sprintf("%s %-9s %-9s %s",
		ended,
		countdown.FormatDuration(l.Duration),
		countdown.FormatDuration(l.Counted()),
		outcome,
	)
}
