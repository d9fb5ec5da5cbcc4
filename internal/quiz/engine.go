package quiz

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Step is the position of a session in the quiz flow.
type Step int

const (
	StepStart    Step = iota // Intro, nothing answered
	StepQuestion             // Showing Questions()[CurrentIndex]
	StepLoading              // All answered, result pending
	StepResult               // Persona on screen
)

func (s Step) String() string {
	switch s {
	case StepStart:
		return "start"
	case StepQuestion:
		return "question"
	case StepLoading:
		return "loading"
	case StepResult:
		return "result"
	default:
		return "unknown"
	}
}

// Unanswered marks an answer slot that has not been filled.
const Unanswered = -1

const (
	// HighlightDelay is how long a chosen option stays highlighted before
	// the answer is committed.
	HighlightDelay = 200 * time.Millisecond

	// LoadingDelay is how long the loading step lasts before the result.
	LoadingDelay = 1200 * time.Millisecond
)

// State is the mutable quiz state owned by an Engine.
type State struct {
	Step         Step
	CurrentIndex int
	Answers      []int
	Scores       Scores
	Session      string
}

// Snapshot is a read-only copy of the engine state plus derived values.
type Snapshot struct {
	Step         Step
	CurrentIndex int
	Total        int
	Answers      []int
	Scores       Scores
	Progress     int
	Persona      Persona
	Session      string
}

// Answered returns the number of filled answer slots.
func (s Snapshot) Answered() int {
	return countAnswered(s.Answers)
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithSessionIDs overrides the session identity generator.
func WithSessionIDs(fn func() string) EngineOption {
	return func(e *Engine) {
		e.newSession = fn
	}
}

// Engine drives one quiz session at a time over the fixed question bank.
// It is not safe for concurrent use; callers serialize events.
type Engine struct {
	questions  []Question
	state      State
	newSession func() string
}

// New creates an Engine in the Start step.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		questions:  bank,
		newSession: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = e.initialState()
	return e
}

func (e *Engine) initialState() State {
	answers := make([]int, len(e.questions))
	for i := range answers {
		answers[i] = Unanswered
	}
	return State{
		Step:    StepStart,
		Answers: answers,
		Session: e.newSession(),
	}
}

// Start clears all answers and scores and shows the first question.
// It may be called from any step.
func (e *Engine) Start() {
	e.state = e.initialState()
	e.state.Step = StepQuestion
}

// Answer records optionIndex for question qIndex and accumulates its
// weights. qIndex must be the question currently shown.
func (e *Engine) Answer(qIndex, optionIndex int) error {
	if e.state.Step != StepQuestion {
		return fmt.Errorf("%w: no question shown (step %s)", ErrInvalidAnswerIndex, e.state.Step)
	}
	if qIndex != e.state.CurrentIndex {
		return fmt.Errorf("%w: question %d is not current (%d)", ErrInvalidAnswerIndex, qIndex, e.state.CurrentIndex)
	}
	q := e.questions[qIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%w: option %d out of range [0, %d)", ErrInvalidAnswerIndex, optionIndex, len(q.Options))
	}

	e.state.Scores = e.state.Scores.Add(q.Options[optionIndex].Scores)
	e.state.Answers[qIndex] = optionIndex

	if qIndex+1 < len(e.questions) {
		e.state.CurrentIndex = qIndex + 1
		return nil
	}
	e.state.Step = StepLoading
	return nil
}

// CompleteLoading moves Loading to Result. It reports whether the
// transition happened; in any other step it does nothing.
func (e *Engine) CompleteLoading() bool {
	if e.state.Step != StepLoading {
		return false
	}
	e.state.Step = StepResult
	return true
}

// Reset returns the engine to a fresh Start state.
func (e *Engine) Reset() {
	e.state = e.initialState()
}

// Step returns the current step.
func (e *Engine) Step() Step {
	return e.state.Step
}

// Question returns the question at CurrentIndex.
func (e *Engine) Question() Question {
	return e.questions[e.state.CurrentIndex]
}

// Progress returns the percentage of questions answered, or 0 in Start.
func (e *Engine) Progress() int {
	if e.state.Step == StepStart {
		return 0
	}
	return progress(countAnswered(e.state.Answers), len(e.questions))
}

// Persona classifies the current scores.
func (e *Engine) Persona() Persona {
	return Resolve(e.state.Scores)
}

// Snapshot returns a copy of the state for rendering.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Step:         e.state.Step,
		CurrentIndex: e.state.CurrentIndex,
		Total:        len(e.questions),
		Answers:      append([]int(nil), e.state.Answers...),
		Scores:       e.state.Scores,
		Progress:     e.Progress(),
		Persona:      e.Persona(),
		Session:      e.state.Session,
	}
}

func countAnswered(answers []int) int {
	n := 0
	for _, a := range answers {
		if a != Unanswered {
			n++
		}
	}
	return n
}

func progress(answered, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(answered) / float64(total)))
}
