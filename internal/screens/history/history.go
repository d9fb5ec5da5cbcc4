package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/askyou/internal/quiz"
	"github.com/abhisek/askyou/internal/router"
	"github.com/abhisek/askyou/internal/screen"
	"github.com/abhisek/askyou/internal/store"
	"github.com/abhisek/askyou/internal/ui/components"
	"github.com/abhisek/askyou/internal/ui/layout"
	"github.com/abhisek/askyou/internal/ui/theme"
)

// DefaultLimit is the number of results loaded.
const DefaultLimit = 50

type historyLoadedMsg struct {
	Results []store.ResultRecord
	Err     error
}

// HistoryScreen displays results from earlier sessions.
type HistoryScreen struct {
	repo     store.ResultRepo
	keys     components.KeyMap
	results  []store.ResultRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		keys:     components.DefaultKeyMap(),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		results, err := repo.Recent(context.Background(), DefaultLimit)
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Past Results"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, s.keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, s.keys.Down):
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case key.Matches(msg, s.keys.Choose):
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading results...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Take the quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.results {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s", prefix, rec.FinishedAt.Format("Jan 02, 2006 15:04"), rec.Title)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Focused
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detailLine(rec))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// detailLine summarizes a result's scores and chosen options.
func detailLine(rec store.ResultRecord) string {
	picks := make([]string, len(rec.Answers))
	questions := quiz.Questions()
	for i, a := range rec.Answers {
		picks[i] = "-"
		if i < len(questions) && a >= 0 && a < len(questions[i].Options) {
			picks[i] = fmt.Sprint(a + 1)
		}
	}
	return fmt.Sprintf("    E %d · I %d · T %d · F %d   answers %s",
		rec.ScoreE, rec.ScoreI, rec.ScoreT, rec.ScoreF, strings.Join(picks, " "))
}
