package quiz

import "errors"

var (
	// ErrInvalidAnswerIndex is returned when an answer names a question other
	// than the one on screen, or an option outside that question's range.
	ErrInvalidAnswerIndex = errors.New("invalid answer index")

	// ErrUnmappedCode is returned by Lookup for a code with no persona entry.
	ErrUnmappedCode = errors.New("unmapped classification code")
)
