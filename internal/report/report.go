// Package report renders quiz results, the question bank and the result
// log for the command line.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/askyou/internal/quiz"
	"github.com/abhisek/askyou/internal/store"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w %q (want text, json or yaml)", ErrUnknownFormat, s)
}

// TraitScores is the per-trait tally in display order.
type TraitScores struct {
	E int `json:"E" yaml:"E"`
	I int `json:"I" yaml:"I"`
	T int `json:"T" yaml:"T"`
	F int `json:"F" yaml:"F"`
}

func traitScores(s quiz.Scores) TraitScores {
	return TraitScores{
		E: s.Get(quiz.TraitE),
		I: s.Get(quiz.TraitI),
		T: s.Get(quiz.TraitT),
		F: s.Get(quiz.TraitF),
	}
}

func (t TraitScores) String() string {
	return fmt.Sprintf("E %d · I %d · T %d · F %d", t.E, t.I, t.T, t.F)
}

// Pick is one answered question.
type Pick struct {
	Question int    `json:"question" yaml:"question"`
	Text     string `json:"text" yaml:"text"`
	Option   int    `json:"option" yaml:"option"`
	Label    string `json:"label" yaml:"label"`
}

// Result is the printable form of a finished quiz.
type Result struct {
	Code        string      `json:"code" yaml:"code"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Scores      TraitScores `json:"scores" yaml:"scores"`
	Answers     []Pick      `json:"answers" yaml:"answers"`
	Share       string      `json:"share" yaml:"share"`
}

// FromSnapshot builds a Result from a finished engine snapshot.
// Unanswered slots are skipped.
func FromSnapshot(snap quiz.Snapshot) Result {
	questions := quiz.Questions()
	picks := make([]Pick, 0, len(snap.Answers))
	for i, a := range snap.Answers {
		if i >= len(questions) || a < 0 || a >= len(questions[i].Options) {
			continue
		}
		picks = append(picks, Pick{
			Question: questions[i].ID,
			Text:     questions[i].Text,
			Option:   a,
			Label:    questions[i].Options[a].Label,
		})
	}

	return Result{
		Code:        string(snap.Persona.Code),
		Title:       snap.Persona.Title,
		Description: snap.Persona.Description,
		Scores:      traitScores(snap.Scores),
		Answers:     picks,
		Share:       quiz.ShareText(snap.Persona),
	}
}

// WriteResult renders r to w.
func WriteResult(w io.Writer, r Result, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your Personality Type is: %s\n", r.Title)
	fmt.Fprintf(&b, "%s\n\n", r.Description)
	fmt.Fprintf(&b, "Scores: %s\n\n", r.Scores)
	b.WriteString("Answers:\n")
	for _, p := range r.Answers {
		fmt.Fprintf(&b, "  %d. %s\n     %s\n", p.Question, p.Text, p.Label)
	}
	fmt.Fprintf(&b, "\nShare: %s\n", r.Share)

	_, err := io.WriteString(w, b.String())
	return err
}

// QuestionEntry is the printable form of one bank question.
type QuestionEntry struct {
	ID      int           `json:"id" yaml:"id"`
	Text    string        `json:"text" yaml:"text"`
	Options []OptionEntry `json:"options" yaml:"options"`
}

// OptionEntry is one option and its trait weights.
type OptionEntry struct {
	Index  int         `json:"index" yaml:"index"`
	Label  string      `json:"label" yaml:"label"`
	Scores TraitScores `json:"scores" yaml:"scores"`
}

func questionEntries(qs []quiz.Question) []QuestionEntry {
	out := make([]QuestionEntry, len(qs))
	for i, q := range qs {
		opts := make([]OptionEntry, len(q.Options))
		for j, o := range q.Options {
			opts[j] = OptionEntry{Index: j, Label: o.Label, Scores: traitScores(o.Scores)}
		}
		out[i] = QuestionEntry{ID: q.ID, Text: q.Text, Options: opts}
	}
	return out
}

// weights formats the non-zero weights of s, e.g. "I1 F1".
func weights(s TraitScores) string {
	var parts []string
	for _, kv := range []struct {
		name string
		v    int
	}{{"E", s.E}, {"I", s.I}, {"T", s.T}, {"F", s.F}} {
		if kv.v != 0 {
			parts = append(parts, fmt.Sprintf("%s%d", kv.name, kv.v))
		}
	}
	return strings.Join(parts, " ")
}

// WriteQuestions renders the question bank to w.
func WriteQuestions(w io.Writer, qs []quiz.Question, f Format) error {
	entries := questionEntries(qs)
	switch f {
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatYAML:
		return writeYAML(w, entries)
	}

	var b strings.Builder
	for i, q := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", q.ID, q.Text)
		for _, o := range q.Options {
			fmt.Fprintf(&b, "   [%d] %-36s %s\n", o.Index, o.Label, weights(o.Scores))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// HistoryEntry is the printable form of a logged result.
type HistoryEntry struct {
	ID         string      `json:"id" yaml:"id"`
	SessionID  string      `json:"session_id" yaml:"session_id"`
	Code       string      `json:"code" yaml:"code"`
	Title      string      `json:"title" yaml:"title"`
	Answers    []int       `json:"answers" yaml:"answers"`
	Scores     TraitScores `json:"scores" yaml:"scores"`
	FinishedAt time.Time   `json:"finished_at" yaml:"finished_at"`
}

// WriteHistory renders logged results to w, in the order given.
func WriteHistory(w io.Writer, recs []store.ResultRecord, f Format) error {
	entries := make([]HistoryEntry, len(recs))
	for i, r := range recs {
		entries[i] = HistoryEntry{
			ID:         r.ID,
			SessionID:  r.SessionID,
			Code:       r.Code,
			Title:      r.Title,
			Answers:    r.Answers,
			Scores:     TraitScores{E: r.ScoreE, I: r.ScoreI, T: r.ScoreT, F: r.ScoreF},
			FinishedAt: r.FinishedAt.UTC(),
		}
	}

	switch f {
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatYAML:
		return writeYAML(w, entries)
	}

	if len(entries) == 0 {
		_, err := io.WriteString(w, "No results logged yet.\n")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-16s  %-4s  %-20s  %s\n", "Finished", "Code", "Title", "Scores")
	b.WriteString(strings.Repeat("─", 72) + "\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%-16s  %-4s  %-20s  %s\n",
			e.FinishedAt.Format("2006-01-02 15:04"), e.Code, e.Title, e.Scores)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
