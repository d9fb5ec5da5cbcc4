// Package answers decodes answer sheets and scores them headlessly
// through the quiz engine.
package answers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/askyou/internal/quiz"
)

// ErrEmptyAnswers is returned when a comma list holds no picks.
var ErrEmptyAnswers = errors.New("no answers given")

// Sheet is one set of picks, one zero-based option index per question.
type Sheet struct {
	Answers []int `json:"answers" yaml:"answers"`
}

// Parse reads a comma separated list such as "0,1,2,3,0".
func Parse(list string) (Sheet, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return Sheet{}, ErrEmptyAnswers
	}

	parts := strings.Split(list, ",")
	picks := make([]int, 0, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Sheet{}, fmt.Errorf("answer %d: %w", i+1, err)
		}
		picks = append(picks, n)
	}
	return Sheet{Answers: picks}, nil
}

// Decode reads a JSON answer sheet from r and validates it.
func Decode(r io.Reader) (Sheet, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Sheet{}, fmt.Errorf("read answer sheet: %w", err)
	}
	return Unmarshal(raw)
}

// Score plays the sheet through a fresh engine and returns the final
// snapshot. The sheet must answer every question in order.
func (s Sheet) Score(opts ...quiz.EngineOption) (quiz.Snapshot, error) {
	total := quiz.TotalQuestions()
	if len(s.Answers) != total {
		return quiz.Snapshot{}, fmt.Errorf("%w: got %d answers, want %d",
			quiz.ErrInvalidAnswerIndex, len(s.Answers), total)
	}

	eng := quiz.New(opts...)
	eng.Start()
	for q, opt := range s.Answers {
		if err := eng.Answer(q, opt); err != nil {
			return quiz.Snapshot{}, err
		}
	}
	eng.CompleteLoading()
	return eng.Snapshot(), nil
}
