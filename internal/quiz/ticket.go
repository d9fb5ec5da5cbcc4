package quiz

// Ticket identifies the engine position a delayed effect was scheduled
// from. A ticket goes stale as soon as the session, step or question index
// moves on.
type Ticket struct {
	Session string
	Step    Step
	Index   int
}

// Ticket captures the current position.
func (e *Engine) Ticket() Ticket {
	return Ticket{
		Session: e.state.Session,
		Step:    e.state.Step,
		Index:   e.state.CurrentIndex,
	}
}

// Current reports whether t still matches the engine.
func (e *Engine) Current(t Ticket) bool {
	return t == e.Ticket()
}

// CommitAnswer applies a delayed answer selection. A stale ticket is
// dropped and reports false with a nil error; an invalid option is
// rejected with ErrInvalidAnswerIndex.
func (e *Engine) CommitAnswer(t Ticket, optionIndex int) (bool, error) {
	if t.Step != StepQuestion || !e.Current(t) {
		return false, nil
	}
	if err := e.Answer(t.Index, optionIndex); err != nil {
		return false, err
	}
	return true, nil
}

// CompleteLoadingFor applies a delayed Loading to Result transition only if
// t was issued in the Loading step of the current session.
func (e *Engine) CompleteLoadingFor(t Ticket) bool {
	if t.Step != StepLoading || !e.Current(t) {
		return false
	}
	return e.CompleteLoading()
}
