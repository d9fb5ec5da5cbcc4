package quiz

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/askyou/internal/quiz"
	"github.com/abhisek/askyou/internal/router"
	"github.com/abhisek/askyou/internal/screen"
	"github.com/abhisek/askyou/internal/store"
	"github.com/abhisek/askyou/internal/ui/components"
	"github.com/abhisek/askyou/internal/ui/layout"
	"github.com/abhisek/askyou/internal/ui/theme"
)

// copiedNoticeDuration is how long "Copied to clipboard!" stays visible.
const copiedNoticeDuration = 1500 * time.Millisecond

// Options configures a QuizScreen. Every field is optional.
type Options struct {
	// Engine drives the quiz; a fresh engine is created when nil.
	Engine *qz.Engine

	// ResultRepo receives finished results (nil disables history).
	ResultRepo store.ResultRepo

	// EventRepo receives session lifecycle events (nil disables them).
	EventRepo store.EventRepo

	// History builds the past-results screen (nil hides the menu entry).
	History func() screen.Screen
}

// QuizScreen implements screen.Screen for the whole quiz flow.
type QuizScreen struct {
	engine     *qz.Engine
	resultRepo store.ResultRepo
	eventRepo  store.EventRepo
	history    func() screen.Screen
	keys       components.KeyMap

	menu    components.Menu
	options components.OptionList
	spinner spinner.Model
	focus   int // focused result button

	copied  bool
	copySeq int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ProgressProvider = (*QuizScreen)(nil)

// New creates a QuizScreen in the Start step.
func New(opts Options) *QuizScreen {
	eng := opts.Engine
	if eng == nil {
		eng = qz.New()
	}
	s := &QuizScreen{
		engine:     eng,
		resultRepo: opts.ResultRepo,
		eventRepo:  opts.EventRepo,
		history:    opts.History,
		keys:       components.DefaultKeyMap(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Text)),
		),
	}
	s.menu = s.newMenu()
	if eng.Step() == qz.StepQuestion {
		s.options = newOptionList(eng.Question())
	}
	return s
}

func (s *QuizScreen) newMenu() components.Menu {
	return components.NewMenu([]components.MenuItem{
		{Label: "Start Quiz", Action: s.start},
		{Label: "Past Results", Action: s.openHistory, Disabled: s.history == nil},
		{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	})
}

func newOptionList(q qz.Question) components.OptionList {
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = opt.Label
	}
	return components.NewOptionList(labels)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Personality Quiz"
}

// Progress reports the engine's completion percentage.
func (s *QuizScreen) Progress() int {
	return s.engine.Progress()
}

// Snapshot returns the engine state for inspection.
func (s *QuizScreen) Snapshot() qz.Snapshot {
	return s.engine.Snapshot()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.engine.Step() {
	case qz.StepQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "1-4", Description: "Pick"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Restart"},
		}
	case qz.StepLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Restart"},
		}
	case qz.StepResult:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "S", Description: "Share"},
			{Key: "R", Description: "Retake"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case commitAnswerMsg:
		return s.handleCommit(msg)

	case loadingDoneMsg:
		return s.handleLoadingDone(msg)

	case copiedDoneMsg:
		if msg.Seq == s.copySeq {
			s.copied = false
		}
		return s, nil

	case resultSavedMsg:
		if msg.Err != nil {
			slog.Error("save result failed", "error", msg.Err)
		}
		return s, nil

	case spinner.TickMsg:
		if s.engine.Step() != qz.StepLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.engine.Step() {
	case qz.StepStart:
		if key.Matches(msg, s.keys.History) && s.history != nil {
			return s, s.openHistory()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case qz.StepQuestion:
		if key.Matches(msg, s.keys.Back) {
			return s, s.reset()
		}
		var chosen int
		s.options, chosen = s.options.Update(msg)
		if chosen < 0 {
			return s, nil
		}
		ticket := s.engine.Ticket()
		return s, tea.Tick(qz.HighlightDelay, func(time.Time) tea.Msg {
			return commitAnswerMsg{Ticket: ticket, Option: chosen}
		})

	case qz.StepLoading:
		if key.Matches(msg, s.keys.Back) {
			return s, s.reset()
		}

	case qz.StepResult:
		switch {
		case key.Matches(msg, s.keys.Left):
			if s.focus > 0 {
				s.focus--
			}
		case key.Matches(msg, s.keys.Right):
			if s.focus < len(s.resultButtons())-1 {
				s.focus++
			}
		case key.Matches(msg, s.keys.Choose):
			return s, s.resultButtons()[s.focus].Press()
		case key.Matches(msg, s.keys.Share):
			return s, s.share()
		case key.Matches(msg, s.keys.Retake), key.Matches(msg, s.keys.Back):
			return s, s.reset()
		}
	}
	return s, nil
}

func (s *QuizScreen) resultButtons() []components.Button {
	return []components.Button{
		components.NewButton("Share Results", s.focus == 0, s.share),
		components.NewButton("Retake Quiz", s.focus == 1, s.reset),
	}
}

// start begins a new session from any step.
func (s *QuizScreen) start() tea.Cmd {
	s.engine.Start()
	s.options = newOptionList(s.engine.Question())
	s.copied = false
	snap := s.engine.Snapshot()
	slog.Info("quiz started", "session", snap.Session)
	return s.logEvent(store.SessionEventData{SessionID: snap.Session, Action: store.ActionStart})
}

// reset abandons the session and returns to Start. Pending delayed
// messages from the old session become stale.
func (s *QuizScreen) reset() tea.Cmd {
	old := s.engine.Snapshot().Session
	s.engine.Reset()
	s.menu = s.newMenu()
	s.focus = 0
	s.copied = false
	slog.Info("quiz reset", "session", old)
	return s.logEvent(store.SessionEventData{SessionID: old, Action: store.ActionReset})
}

func (s *QuizScreen) openHistory() tea.Cmd {
	if s.history == nil {
		return nil
	}
	next := s.history()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) handleCommit(msg commitAnswerMsg) (screen.Screen, tea.Cmd) {
	applied, err := s.engine.CommitAnswer(msg.Ticket, msg.Option)
	if err != nil {
		slog.Warn("answer rejected", "question", msg.Ticket.Index, "option", msg.Option, "error", err)
		s.options = s.options.Clear()
		return s, nil
	}
	if !applied {
		slog.Debug("stale answer dropped", "session", msg.Ticket.Session, "question", msg.Ticket.Index)
		return s, nil
	}

	switch s.engine.Step() {
	case qz.StepQuestion:
		s.options = newOptionList(s.engine.Question())
		return s, nil
	case qz.StepLoading:
		ticket := s.engine.Ticket()
		return s, tea.Batch(
			tea.Tick(qz.LoadingDelay, func(time.Time) tea.Msg {
				return loadingDoneMsg{Ticket: ticket}
			}),
			s.spinner.Tick,
		)
	}
	return s, nil
}

func (s *QuizScreen) handleLoadingDone(msg loadingDoneMsg) (screen.Screen, tea.Cmd) {
	if !s.engine.CompleteLoadingFor(msg.Ticket) {
		slog.Debug("stale loading transition dropped", "session", msg.Ticket.Session)
		return s, nil
	}
	s.focus = 0
	snap := s.engine.Snapshot()
	slog.Info("quiz finished", "session", snap.Session, "code", snap.Persona.Code)
	return s, tea.Batch(
		s.saveResult(snap),
		s.logEvent(store.SessionEventData{
			SessionID: snap.Session,
			Action:    store.ActionResult,
			Code:      string(snap.Persona.Code),
		}),
	)
}

// share copies the result summary to the terminal clipboard.
func (s *QuizScreen) share() tea.Cmd {
	if s.engine.Step() != qz.StepResult {
		return nil
	}
	text := qz.ShareText(s.engine.Persona())
	s.copied = true
	s.copySeq++
	seq := s.copySeq
	return tea.Batch(
		tea.SetClipboard(text),
		tea.Tick(copiedNoticeDuration, func(time.Time) tea.Msg {
			return copiedDoneMsg{Seq: seq}
		}),
	)
}

func (s *QuizScreen) saveResult(snap qz.Snapshot) tea.Cmd {
	repo := s.resultRepo
	if repo == nil {
		return nil
	}
	rec := store.NewResultRecord(snap)
	return func() tea.Msg {
		return resultSavedMsg{Err: repo.Save(context.Background(), rec)}
	}
}

func (s *QuizScreen) logEvent(data store.SessionEventData) tea.Cmd {
	repo := s.eventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		if err := repo.Append(context.Background(), data); err != nil {
			slog.Warn("append session event failed", "action", data.Action, "error", err)
		}
		return nil
	}
}
