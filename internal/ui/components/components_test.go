package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestOptionList_NavigateAndChoose(t *testing.T) {
	l := NewOptionList([]string{"a", "b", "c", "d"})

	l, chosen := l.Update(keyPress("down"))
	assert.Equal(t, -1, chosen)
	assert.Equal(t, 1, l.Cursor)

	l, _ = l.Update(keyPress("up"))
	l, _ = l.Update(keyPress("up"))
	assert.Equal(t, 0, l.Cursor, "cursor stops at the top")

	l, chosen = l.Update(keyPress("enter"))
	assert.Equal(t, 0, chosen)
	assert.True(t, l.Pending())
}

func TestOptionList_NumberKeys(t *testing.T) {
	l := NewOptionList([]string{"a", "b", "c", "d"})

	l, chosen := l.Update(keyPress("5"))
	assert.Equal(t, -1, chosen, "no fifth option")
	assert.False(t, l.Pending())

	l, chosen = l.Update(keyPress("3"))
	assert.Equal(t, 2, chosen)
	assert.Equal(t, 2, l.Cursor)
}

func TestOptionList_IgnoresInputWhilePending(t *testing.T) {
	l := NewOptionList([]string{"a", "b"})
	l, _ = l.Update(keyPress("1"))

	l, chosen := l.Update(keyPress("2"))
	assert.Equal(t, -1, chosen)
	assert.Equal(t, 0, l.Chosen)

	l = l.Clear()
	assert.False(t, l.Pending())
}

func TestOptionList_View(t *testing.T) {
	l := NewOptionList([]string{"Go out", "Stay in"})
	view := l.View(80)
	assert.Contains(t, view, "1) Go out")
	assert.Contains(t, view, "2) Stay in")
}

func TestMenu_SkipsDisabled(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "Start", Action: func() tea.Cmd { pressed = "start"; return nil }},
		{Label: "Gone", Disabled: true},
		{Label: "Quit", Action: func() tea.Cmd { pressed = "quit"; return nil }},
	})

	m, _ = m.Update(keyPress("down"))
	assert.Equal(t, 2, m.Selected)

	m.Update(keyPress("enter"))
	assert.Equal(t, "quit", pressed)
}

func TestButton_Press(t *testing.T) {
	called := false
	b := NewButton("Share", false, func() tea.Cmd { called = true; return nil })
	b.Press()
	assert.False(t, called, "inactive button does nothing")

	b.Active = true
	b.Press()
	assert.True(t, called)
	assert.Contains(t, b.View(), "Share")
}

func TestProgressBar_Clamps(t *testing.T) {
	full := NewProgressBar("", 150, true, 20).View()
	assert.Contains(t, full, "150%")

	empty := NewProgressBar("Quiz", 0, false, 20).View()
	assert.True(t, strings.HasPrefix(stripANSI(empty), "Quiz"))
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
