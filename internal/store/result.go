package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/askyou/internal/quiz"
)

const resultsTable = "quiz_results"

var resultColumns = []string{
	"id", "session_id", "code", "title", "answers",
	"score_e", "score_i", "score_t", "score_f", "finished_at",
}

// ResultRecord is one finished quiz session.
type ResultRecord struct {
	ID         string
	SessionID  string
	Code       string
	Title      string
	Answers    []int
	ScoreE     int
	ScoreI     int
	ScoreT     int
	ScoreF     int
	FinishedAt time.Time
}

// ResultRepo stores finished quiz results.
type ResultRepo interface {
	// Save appends a result.
	Save(ctx context.Context, rec ResultRecord) error

	// Recent returns up to limit results, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]ResultRecord, error)

	// Count returns the number of stored results.
	Count(ctx context.Context) (int, error)

	// Clear deletes every stored result.
	Clear(ctx context.Context) error
}

// NewResultRecord builds a record for a finished snapshot with a fresh ID.
func NewResultRecord(snap quiz.Snapshot) ResultRecord {
	return ResultRecord{
		ID:         uuid.NewString(),
		SessionID:  snap.Session,
		Code:       string(snap.Persona.Code),
		Title:      snap.Persona.Title,
		Answers:    append([]int(nil), snap.Answers...),
		ScoreE:     snap.Scores.Get(quiz.TraitE),
		ScoreI:     snap.Scores.Get(quiz.TraitI),
		ScoreT:     snap.Scores.Get(quiz.TraitT),
		ScoreF:     snap.Scores.Get(quiz.TraitF),
		FinishedAt: time.Now(),
	}
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, rec ResultRecord) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now()
	}

	query, args := builder().Insert(resultsTable).
		Columns(resultColumns...).
		Values(
			rec.ID, rec.SessionID, rec.Code, rec.Title, string(answers),
			rec.ScoreE, rec.ScoreI, rec.ScoreT, rec.ScoreF, rec.FinishedAt.UnixMilli(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]ResultRecord, error) {
	sel := builder().Select(resultColumns...).
		From(entsql.Table(resultsTable)).
		OrderBy(entsql.Desc("finished_at"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var (
			rec        ResultRecord
			answers    string
			finishedAt int64
		)
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.Code, &rec.Title, &answers,
			&rec.ScoreE, &rec.ScoreI, &rec.ScoreT, &rec.ScoreF, &finishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers for %s: %w", rec.ID, err)
		}
		rec.FinishedAt = time.UnixMilli(finishedAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

func (r *resultRepo) Count(ctx context.Context) (int, error) {
	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(resultsTable)).
		Query()

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}

func (r *resultRepo) Clear(ctx context.Context) error {
	query, args := builder().Delete(resultsTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	return nil
}
