package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/askyou/internal/quiz"
	"github.com/abhisek/askyou/internal/ui/components"
	"github.com/abhisek/askyou/internal/ui/theme"
)

const intro = "Take a quick, interactive quiz to discover your core personality style.\nNo sign-up. Just vibes."

func (s *QuizScreen) View(width, height int) string {
	var content string
	switch s.engine.Step() {
	case qz.StepQuestion:
		content = s.renderQuestion(width)
	case qz.StepLoading:
		content = s.renderLoading(width)
	case qz.StepResult:
		content = s.renderResult(width)
	default:
		content = s.renderStart(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderStart renders the intro card and menu.
func (s *QuizScreen) renderStart(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(cardWidth(width)).Render("Personality Quiz"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(cardWidth(width)).Render(intro))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cardWidth(width), lipgloss.Center, s.menu.View()))

	return theme.Card.Render(b.String())
}

// renderQuestion renders the progress bar, question text and options.
func (s *QuizScreen) renderQuestion(width int) string {
	snap := s.engine.Snapshot()
	q := s.engine.Question()
	w := cardWidth(width)

	var b strings.Builder

	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d", snap.CurrentIndex+1, snap.Total)))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", snap.Progress, true, w).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(w).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")
	b.WriteString(s.options.View(w))

	return theme.Card.Render(b.String())
}

// renderLoading renders the spinner shown while the result is prepared.
func (s *QuizScreen) renderLoading(width int) string {
	line := s.spinner.View() + "  " +
		lipgloss.NewStyle().Foreground(theme.Text).Render("Analyzing your answers…")
	return theme.Card.Render(lipgloss.PlaceHorizontal(cardWidth(width), lipgloss.Center, "\n"+line+"\n"))
}

// renderResult renders the result modal.
func (s *QuizScreen) renderResult(width int) string {
	snap := s.engine.Snapshot()
	p := snap.Persona
	w := cardWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Your Personality Type is:"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(p.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(w).Render(p.Description))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(renderScores(snap.Scores)))
	b.WriteString("\n\n")

	buttons := s.resultButtons()
	row := make([]string, 0, len(buttons)*2)
	for i, btn := range buttons {
		if i > 0 {
			row = append(row, "  ")
		}
		row = append(row, btn.View())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, row...))

	if s.copied {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("Copied to clipboard!"))
	}

	return theme.Modal.Render(b.String())
}

// renderScores formats the trait totals, e.g. "E 4 · I 2 · T 3 · F 1".
func renderScores(scores qz.Scores) string {
	parts := make([]string, 0, len(qz.Traits))
	for _, t := range qz.Traits {
		parts = append(parts, fmt.Sprintf("%s %d", t, scores.Get(t)))
	}
	return strings.Join(parts, " · ")
}

// cardWidth returns the inner width used by every card.
func cardWidth(width int) int {
	w := width - 12
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}
