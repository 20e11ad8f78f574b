package internal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"countdown_tui/internal/countdown"
)

type keyMap struct {
	Primary key.Binding
	Stop    key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	History key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Primary: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s", "x"),
			key.WithHelp("s", "stop"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/↓", "adjust"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "-"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←/→", "field"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
		),
		History: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// sync enables the bindings that apply to snap and relabels the primary
// control.
func (k *keyMap) sync(snap countdown.Snapshot) {
	k.Primary.SetHelp("space", strings.ToLower(snap.PrimaryLabel()))
	picking := snap.ShowPicker()
	k.Stop.SetEnabled(!picking)
	k.Up.SetEnabled(picking)
	k.Down.SetEnabled(picking)
	k.Left.SetEnabled(picking)
	k.Right.SetEnabled(picking)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Stop, k.Up, k.Left, k.History, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
