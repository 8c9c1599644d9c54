package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the discrete key edges the overlay consumes. Lowercase
// letters are left out on purpose: at the Items level they mean first-letter
// jumps, which the key router handles from the raw runes.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Detail     key.Binding
	ListAll    key.Binding
	Repeat     key.Binding
	ViewToggle key.Binding
	Faction    key.Binding
	SlotToggle key.Binding
	Search     key.Binding
	Transcript key.Binding

	Pause     key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding

	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open or activate")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "previous screen")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next screen")),

		Detail:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "read detail")),
		ListAll:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "read all")),
		Repeat:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "repeat position")),
		ViewToggle: key.NewBinding(key.WithKeys("V"), key.WithHelp("V", "toggle view")),
		Faction:    key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "cycle faction")),
		SlotToggle: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "screen cursor")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Transcript: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "transcript pane")),

		Pause:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		SpeedUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		SpeedDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "slower")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
