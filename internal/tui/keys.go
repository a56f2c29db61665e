package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up   key.Binding
	Down key.Binding

	ToggleMode key.Binding
	NextAccent key.Binding
	PrevAccent key.Binding

	Filter      key.Binding
	ClearFilter key.Binding

	Confirm key.Binding
	Quit    key.Binding
	Help    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		ToggleMode: key.NewBinding(
			key.WithKeys("m", "tab"),
			key.WithHelp("m/tab", "toggle mode"),
		),
		NextAccent: key.NewBinding(
			key.WithKeys("a", "right"),
			key.WithHelp("a/→", "next accent"),
		),
		PrevAccent: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous accent"),
		),

		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleMode, k.NextAccent, k.Confirm, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Confirm},
		{k.ToggleMode, k.NextAccent, k.PrevAccent},
		{k.Filter, k.ClearFilter},
		{k.Quit, k.Help},
	}
}
