package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitAnswer_Current(t *testing.T) {
	e := New()
	e.Start()
	ticket := e.Ticket()

	applied, err := e.CommitAnswer(ticket, 2)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 1, e.Snapshot().CurrentIndex)
}

func TestCommitAnswer_StaleAfterReset(t *testing.T) {
	e := New(sequentialSessions())
	e.Start()
	ticket := e.Ticket()

	e.Reset()
	e.Start()

	applied, err := e.CommitAnswer(ticket, 2)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 0, e.Snapshot().Answered())
	assert.Equal(t, Scores{}, e.Snapshot().Scores)
}

func TestCommitAnswer_StaleAfterFasterAnswer(t *testing.T) {
	e := New()
	e.Start()
	first := e.Ticket()
	second := e.Ticket()

	applied, err := e.CommitAnswer(first, 0)
	require.NoError(t, err)
	require.True(t, applied)

	// A duplicate selection must not land on question 2.
	applied, err = e.CommitAnswer(second, 1)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, []int{0, Unanswered, Unanswered, Unanswered, Unanswered}, e.Snapshot().Answers)
}

func TestCommitAnswer_InvalidOption(t *testing.T) {
	e := New()
	e.Start()

	applied, err := e.CommitAnswer(e.Ticket(), 4)
	require.ErrorIs(t, err, ErrInvalidAnswerIndex)
	assert.False(t, applied)
}

func TestCompleteLoadingFor(t *testing.T) {
	e := New()
	e.Start()
	answerAll(t, e, []int{0, 0, 0, 0, 0})
	ticket := e.Ticket()

	assert.True(t, e.CompleteLoadingFor(ticket))
	assert.Equal(t, StepResult, e.Step())
	assert.False(t, e.CompleteLoadingFor(ticket), "ticket is stale once applied")
}

func TestCompleteLoadingFor_ResetMidLoading(t *testing.T) {
	e := New(sequentialSessions())
	e.Start()
	answerAll(t, e, []int{0, 0, 0, 0, 0})
	ticket := e.Ticket()

	e.Reset()
	assert.False(t, e.CompleteLoadingFor(ticket))
	assert.Equal(t, StepStart, e.Step())

	// Same after a new session reaches Loading again.
	e.Start()
	answerAll(t, e, []int{1, 1, 1, 1, 1})
	assert.False(t, e.CompleteLoadingFor(ticket))
	assert.Equal(t, StepLoading, e.Step())
}

func TestCompleteLoadingFor_QuestionTicket(t *testing.T) {
	e := New()
	e.Start()
	assert.False(t, e.CompleteLoadingFor(e.Ticket()))
	assert.Equal(t, StepQuestion, e.Step())
}
