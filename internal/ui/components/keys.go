package components

import "charm.land/bubbles/v2/key"

// KeyMap lists the bindings shared by the quiz screens.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Choose  key.Binding
	Number  key.Binding
	Back    key.Binding
	Share   key.Binding
	Retake  key.Binding
	History key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→", "right"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "select"),
		),
		Number: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-4", "pick"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("S", "share"),
		),
		Retake: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "retake"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("H", "past results"),
		),
	}
}
