package quiz

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qz "github.com/abhisek/askyou/internal/quiz"
	"github.com/abhisek/askyou/internal/router"
	"github.com/abhisek/askyou/internal/screen"
	"github.com/abhisek/askyou/internal/store"
)

type fakeResultRepo struct {
	saved []store.ResultRecord
}

func (f *fakeResultRepo) Save(_ context.Context, rec store.ResultRecord) error {
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeResultRepo) Recent(context.Context, int) ([]store.ResultRecord, error) {
	return f.saved, nil
}

func (f *fakeResultRepo) Count(context.Context) (int, error) { return len(f.saved), nil }
func (f *fakeResultRepo) Clear(context.Context) error        { f.saved = nil; return nil }

type fakeEventRepo struct {
	events []store.SessionEventData
}

func (f *fakeEventRepo) Append(_ context.Context, data store.SessionEventData) error {
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) ForSession(context.Context, string) ([]store.SessionEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) Clear(context.Context) error { return nil }

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "history" }
func (s *stubScreen) Title() string                           { return "History" }

func press(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	return tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
}

func newTestScreen() *QuizScreen {
	n := 0
	eng := qz.New(qz.WithSessionIDs(func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}))
	return New(Options{Engine: eng})
}

// runCmd executes cmd and flattens batches into the resulting messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// choose picks option opt on the current question and delivers the commit
// as the highlight timer would.
func choose(t *testing.T, s *QuizScreen, opt int) tea.Cmd {
	t.Helper()
	ticket := s.engine.Ticket()
	_, cmd := s.Update(press(fmt.Sprint(opt + 1)))
	require.NotNil(t, cmd, "choosing an option schedules a commit")
	_, cmd = s.Update(commitAnswerMsg{Ticket: ticket, Option: opt})
	return cmd
}

func startQuiz(t *testing.T, s *QuizScreen) {
	t.Helper()
	s.Update(press("enter"))
	require.Equal(t, qz.StepQuestion, s.Snapshot().Step)
}

func TestQuizScreen_StartsAtIntro(t *testing.T) {
	s := newTestScreen()
	assert.Equal(t, "Personality Quiz", s.Title())
	assert.Equal(t, 0, s.Progress())
	assert.Contains(t, s.View(100, 30), "Start Quiz")
}

func TestQuizScreen_HighlightTickDeliversCommit(t *testing.T) {
	s := newTestScreen()
	startQuiz(t, s)
	ticket := s.engine.Ticket()

	_, cmd := s.Update(press("2"))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, commitAnswerMsg{Ticket: ticket, Option: 1}, msgs[0])

	// Answer not applied until the commit arrives.
	assert.Equal(t, 0, s.Snapshot().Answered())
	s.Update(msgs[0])
	assert.Equal(t, 1, s.Snapshot().Answered())
}

func TestQuizScreen_IgnoresSecondSelectionWhilePending(t *testing.T) {
	s := newTestScreen()
	startQuiz(t, s)

	_, cmd := s.Update(press("1"))
	require.NotNil(t, cmd)
	_, cmd = s.Update(press("3"))
	assert.Nil(t, cmd)
}

func TestQuizScreen_FullFlow(t *testing.T) {
	s := newTestScreen()
	startQuiz(t, s)
	assert.Contains(t, s.View(100, 30), "Question 1 of 5")

	for _, opt := range []int{2, 0, 1, 0} {
		choose(t, s, opt)
	}
	assert.Equal(t, qz.StepQuestion, s.Snapshot().Step)
	assert.Equal(t, 80, s.Progress())

	cmd := choose(t, s, 1)
	require.NotNil(t, cmd, "entering loading schedules the result")
	assert.Equal(t, qz.StepLoading, s.Snapshot().Step)
	assert.Contains(t, s.View(100, 30), "Analyzing your answers")

	s.Update(loadingDoneMsg{Ticket: s.engine.Ticket()})
	snap := s.Snapshot()
	assert.Equal(t, qz.StepResult, snap.Step)
	assert.Equal(t, qz.CodeIT, snap.Persona.Code)
	assert.Contains(t, s.View(100, 30), "The Architect (IT)")
}

func TestQuizScreen_ResetMidLoadingCancelsResult(t *testing.T) {
	s := newTestScreen()
	startQuiz(t, s)
	for i := 0; i < 5; i++ {
		choose(t, s, 0)
	}
	require.Equal(t, qz.StepLoading, s.Snapshot().Step)
	pending := loadingDoneMsg{Ticket: s.engine.Ticket()}

	s.Update(press("esc"))
	require.Equal(t, qz.StepStart, s.Snapshot().Step)

	s.Update(pending)
	assert.Equal(t, qz.StepStart, s.Snapshot().Step)
	assert.Equal(t, 0, s.Progress())
}

func TestQuizScreen_StaleCommitAfterReset(t *testing.T) {
	s := newTestScreen()
	startQuiz(t, s)
	ticket := s.engine.Ticket()
	s.Update(press("1"))

	s.Update(press("esc"))
	startQuiz(t, s)

	s.Update(commitAnswerMsg{Ticket: ticket, Option: 0})
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Answered())
	assert.Equal(t, qz.Scores{}, snap.Scores)
}

func TestQuizScreen_ShareAndCopiedNotice(t *testing.T) {
	s := newTestScreen()
	startQuiz(t, s)
	for i := 0; i < 5; i++ {
		choose(t, s, 0)
	}
	s.Update(loadingDoneMsg{Ticket: s.engine.Ticket()})

	_, cmd := s.Update(press("s"))
	require.NotNil(t, cmd)
	assert.True(t, s.copied)
	assert.Contains(t, s.View(100, 30), "Copied to clipboard!")

	// A second share restarts the notice; the first timer must not hide it.
	s.Update(press("s"))
	s.Update(copiedDoneMsg{Seq: 1})
	assert.True(t, s.copied)
	s.Update(copiedDoneMsg{Seq: 2})
	assert.False(t, s.copied)
}

func TestQuizScreen_RetakeButton(t *testing.T) {
	s := newTestScreen()
	startQuiz(t, s)
	for i := 0; i < 5; i++ {
		choose(t, s, 1)
	}
	s.Update(loadingDoneMsg{Ticket: s.engine.Ticket()})
	require.Equal(t, qz.StepResult, s.Snapshot().Step)

	s.Update(press("right"))
	s.Update(press("enter"))
	assert.Equal(t, qz.StepStart, s.Snapshot().Step)
}

func TestQuizScreen_PersistsResultAndEvents(t *testing.T) {
	results := &fakeResultRepo{}
	events := &fakeEventRepo{}
	s := New(Options{ResultRepo: results, EventRepo: events})

	_, cmd := s.Update(press("enter"))
	runCmd(cmd)
	for i := 0; i < 5; i++ {
		choose(t, s, 3)
	}
	_, cmd = s.Update(loadingDoneMsg{Ticket: s.engine.Ticket()})
	for _, msg := range runCmd(cmd) {
		s.Update(msg)
	}

	require.Len(t, results.saved, 1)
	rec := results.saved[0]
	snap := s.Snapshot()
	assert.Equal(t, snap.Session, rec.SessionID)
	assert.Equal(t, string(snap.Persona.Code), rec.Code)
	assert.Equal(t, []int{3, 3, 3, 3, 3}, rec.Answers)
	assert.Equal(t, snap.Scores.Get(qz.TraitF), rec.ScoreF)

	require.Len(t, events.events, 2)
	assert.Equal(t, store.ActionStart, events.events[0].Action)
	assert.Equal(t, store.ActionResult, events.events[1].Action)
}

func TestQuizScreen_HistoryShortcut(t *testing.T) {
	s := New(Options{History: func() screen.Screen { return &stubScreen{} }})

	_, cmd := s.Update(press("h"))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	_, ok := msgs[0].(router.PushScreenMsg)
	assert.True(t, ok)
}

func TestQuizScreen_HistoryDisabledWithoutFactory(t *testing.T) {
	s := newTestScreen()
	_, cmd := s.Update(press("h"))
	assert.Nil(t, cmd)
}

func TestQuizScreen_KeyHintsFollowStep(t *testing.T) {
	s := newTestScreen()
	assert.Len(t, s.KeyHints(), 3)
	startQuiz(t, s)
	assert.Len(t, s.KeyHints(), 4)
}
