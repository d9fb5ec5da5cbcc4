package quiz

import (
	qz "github.com/abhisek/askyou/internal/quiz"
)

// commitAnswerMsg is sent when the selection highlight period ends.
type commitAnswerMsg struct {
	Ticket qz.Ticket
	Option int
}

// loadingDoneMsg is sent when the loading period ends.
type loadingDoneMsg struct {
	Ticket qz.Ticket
}

// copiedDoneMsg hides the "copied" notice; Seq identifies the share that
// scheduled it.
type copiedDoneMsg struct {
	Seq int
}

// resultSavedMsg confirms result persistence completed.
type resultSavedMsg struct {
	Err error
}
