package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/askyou/internal/ui/theme"
)

// OptionList renders a question's options with a movable cursor. Once an
// option is chosen it stays highlighted and the list ignores input until
// Clear is called.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  int
	keys    KeyMap
}

// NewOptionList creates a list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options: options,
		Chosen:  -1,
		keys:    DefaultKeyMap(),
	}
}

// Pending reports whether an option has been chosen.
func (l OptionList) Pending() bool {
	return l.Chosen >= 0
}

// Clear forgets the chosen option.
func (l OptionList) Clear() OptionList {
	l.Chosen = -1
	return l
}

// Update moves the cursor or chooses an option. The second return value is
// the index chosen by this message, or -1.
func (l OptionList) Update(msg tea.Msg) (OptionList, int) {
	if l.Pending() {
		return l, -1
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, -1
	}

	switch {
	case key.Matches(kmsg, l.keys.Up):
		if l.Cursor > 0 {
			l.Cursor--
		}
	case key.Matches(kmsg, l.keys.Down):
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	case key.Matches(kmsg, l.keys.Choose):
		l.Chosen = l.Cursor
		return l, l.Chosen
	case key.Matches(kmsg, l.keys.Number):
		idx := int(kmsg.String()[0] - '1')
		if idx >= 0 && idx < len(l.Options) {
			l.Cursor = idx
			l.Chosen = idx
			return l, idx
		}
	}

	return l, -1
}

// View renders the options, one per line.
func (l OptionList) View(width int) string {
	var b strings.Builder
	lineWidth := min(width-8, 56)

	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Cursor && !l.Pending() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		style := theme.Unselected.Width(lineWidth).Padding(0, 1)
		switch {
		case i == l.Chosen:
			style = theme.Selected.Width(lineWidth).Padding(0, 1)
		case i == l.Cursor && !l.Pending():
			style = theme.Focused.Width(lineWidth).Padding(0, 1)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
