package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSession(id string) EngineOption {
	return WithSessionIDs(func() string { return id })
}

func sequentialSessions() EngineOption {
	n := 0
	return WithSessionIDs(func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	})
}

func answerAll(t *testing.T, e *Engine, choices []int) {
	t.Helper()
	for q, opt := range choices {
		require.NoError(t, e.Answer(q, opt))
	}
}

func TestNew_StartsAtStart(t *testing.T) {
	e := New()
	snap := e.Snapshot()

	assert.Equal(t, StepStart, snap.Step)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Equal(t, 5, snap.Total)
	assert.Equal(t, 0, snap.Progress)
	assert.Equal(t, Scores{}, snap.Scores)
	assert.NotEmpty(t, snap.Session)
	for i, a := range snap.Answers {
		assert.Equal(t, Unanswered, a, "answer %d", i)
	}
}

func TestStart_ShowsFirstQuestion(t *testing.T) {
	e := New()
	e.Start()

	assert.Equal(t, StepQuestion, e.Step())
	assert.Equal(t, 0, e.Snapshot().CurrentIndex)
	assert.Equal(t, 1, e.Question().ID)
}

func TestAnswer_AccumulatesAndAdvances(t *testing.T) {
	e := New()
	e.Start()

	require.NoError(t, e.Answer(0, 1)) // I1 F1
	snap := e.Snapshot()
	assert.Equal(t, StepQuestion, snap.Step)
	assert.Equal(t, 1, snap.CurrentIndex)
	assert.Equal(t, Scores{TraitI: 1, TraitF: 1}, snap.Scores)
	assert.Equal(t, []int{1, Unanswered, Unanswered, Unanswered, Unanswered}, snap.Answers)
	assert.Equal(t, 20, snap.Progress)

	require.NoError(t, e.Answer(1, 1)) // F2
	assert.Equal(t, Scores{TraitI: 1, TraitF: 3}, e.Snapshot().Scores)
}

func TestAnswer_LastQuestionEntersLoading(t *testing.T) {
	e := New()
	e.Start()
	answerAll(t, e, []int{0, 0, 0, 0, 0})

	snap := e.Snapshot()
	assert.Equal(t, StepLoading, snap.Step)
	assert.Equal(t, 4, snap.CurrentIndex, "index freezes at the last question")
	assert.Equal(t, 100, snap.Progress)
}

func TestAnswer_ScoresAreSumOfChosenOptions(t *testing.T) {
	tests := [][]int{
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
		{2, 3, 1, 0, 2},
		{3, 2, 3, 2, 3},
	}
	for _, choices := range tests {
		t.Run(fmt.Sprint(choices), func(t *testing.T) {
			e := New()
			e.Start()
			answerAll(t, e, choices)

			var want Scores
			qs := Questions()
			for i := len(choices) - 1; i >= 0; i-- {
				want = want.Add(qs[i].Options[choices[i]].Scores)
			}
			assert.Equal(t, want, e.Snapshot().Scores)
		})
	}
}

func TestAnswer_OptionOutOfRange(t *testing.T) {
	e := New()
	e.Start()
	before := e.Snapshot()

	err := e.Answer(0, 4)
	require.ErrorIs(t, err, ErrInvalidAnswerIndex)
	assert.Equal(t, before, e.Snapshot())

	err = e.Answer(0, -1)
	require.ErrorIs(t, err, ErrInvalidAnswerIndex)
	assert.Equal(t, before, e.Snapshot())
}

func TestAnswer_WrongQuestion(t *testing.T) {
	e := New()
	e.Start()
	require.NoError(t, e.Answer(0, 0))
	before := e.Snapshot()

	require.ErrorIs(t, e.Answer(0, 0), ErrInvalidAnswerIndex)
	require.ErrorIs(t, e.Answer(2, 0), ErrInvalidAnswerIndex)
	assert.Equal(t, before, e.Snapshot())
}

func TestAnswer_OutsideQuestionStep(t *testing.T) {
	e := New()
	require.ErrorIs(t, e.Answer(0, 0), ErrInvalidAnswerIndex)
	assert.Equal(t, StepStart, e.Step())

	e.Start()
	answerAll(t, e, []int{0, 0, 0, 0, 0})
	require.ErrorIs(t, e.Answer(4, 0), ErrInvalidAnswerIndex)
	assert.Equal(t, StepLoading, e.Step())
}

func TestCompleteLoading(t *testing.T) {
	e := New()
	assert.False(t, e.CompleteLoading(), "no-op in Start")
	assert.Equal(t, StepStart, e.Step())

	e.Start()
	assert.False(t, e.CompleteLoading(), "no-op in Question")
	assert.Equal(t, StepQuestion, e.Step())

	answerAll(t, e, []int{0, 0, 0, 0, 0})
	assert.True(t, e.CompleteLoading())
	assert.Equal(t, StepResult, e.Step())

	assert.False(t, e.CompleteLoading(), "no-op in Result")
	assert.Equal(t, StepResult, e.Step())
}

func TestReset_ClearsEverything(t *testing.T) {
	e := New(sequentialSessions())
	e.Start()
	answerAll(t, e, []int{0, 1, 2, 3, 0})
	e.CompleteLoading()
	oldSession := e.Snapshot().Session

	e.Reset()
	snap := e.Snapshot()
	assert.Equal(t, StepStart, snap.Step)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Equal(t, 0, snap.Progress)
	assert.Equal(t, Scores{}, snap.Scores)
	assert.NotEqual(t, oldSession, snap.Session)
}

func TestProgress_MonotonicWithinSession(t *testing.T) {
	e := New()
	assert.Equal(t, 0, e.Progress())
	e.Start()
	last := e.Progress()
	for q := 0; q < TotalQuestions(); q++ {
		require.NoError(t, e.Answer(q, 2))
		p := e.Progress()
		assert.GreaterOrEqual(t, p, last)
		last = p
	}
	assert.Equal(t, 100, last)

	e.Start()
	assert.Equal(t, 0, e.Progress())
	e.Reset()
	assert.Equal(t, 0, e.Progress())
}

func TestStartResetStart_MatchesFreshStart(t *testing.T) {
	fresh := New(fixedSession("s"))
	fresh.Start()

	e := New(fixedSession("s"))
	e.Start()
	answerAll(t, e, []int{3, 3, 3})
	e.Reset()
	e.Start()

	assert.Equal(t, fresh.Snapshot(), e.Snapshot())
}

func TestStart_FromMidSessionClearsState(t *testing.T) {
	e := New()
	e.Start()
	answerAll(t, e, []int{0, 0})

	e.Start()
	snap := e.Snapshot()
	assert.Equal(t, StepQuestion, snap.Step)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Equal(t, Scores{}, snap.Scores)
	assert.Equal(t, 0, snap.Answered())
}

func TestSnapshot_IsACopy(t *testing.T) {
	e := New()
	e.Start()
	snap := e.Snapshot()
	snap.Answers[0] = 3

	assert.Equal(t, Unanswered, e.Snapshot().Answers[0])
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions()
	qs[0].Options[0].Label = "changed"

	assert.Equal(t, "Go out with a big group", Questions()[0].Options[0].Label)
	assert.Len(t, qs, 5)
	for _, q := range qs {
		assert.Len(t, q.Options, 4, "question %d", q.ID)
	}
}
