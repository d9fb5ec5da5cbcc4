package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/askyou/internal/quiz"
	"github.com/abhisek/askyou/internal/router"
	"github.com/abhisek/askyou/internal/screen"
	"github.com/abhisek/askyou/internal/screens/history"
	"github.com/abhisek/askyou/internal/screens/quiz"
	"github.com/abhisek/askyou/internal/screens/welcome"
	"github.com/abhisek/askyou/internal/store"
	"github.com/abhisek/askyou/internal/ui/layout"
)

// Options holds optional dependencies for the app.
type Options struct {
	// ResultRepo logs finished results. Nil disables history.
	ResultRepo store.ResultRepo

	// EventRepo logs session lifecycle events.
	EventRepo store.EventRepo

	// SkipWelcome starts directly on the quiz screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	newQuiz := func() screen.Screen {
		qopts := quiz.Options{
			Engine:     qz.New(),
			ResultRepo: opts.ResultRepo,
			EventRepo:  opts.EventRepo,
		}
		if opts.ResultRepo != nil {
			repo := opts.ResultRepo
			qopts.History = func() screen.Screen { return history.New(repo) }
		}
		return quiz.New(qopts)
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = newQuiz()
	} else {
		initial = welcome.New(newQuiz)
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// The root screen handles esc itself (quiz reset).
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	progress := -1
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.ProgressProvider); ok {
			progress = p.Progress()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}

	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "Any key", Description: "Continue"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	header := layout.RenderHeader(title, progress, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
