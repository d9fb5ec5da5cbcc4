package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const eventsTable = "session_events"

// Session lifecycle actions.
const (
	ActionStart  = "start"
	ActionResult = "result"
	ActionReset  = "reset"
)

// SessionEventData captures one session lifecycle event.
type SessionEventData struct {
	SessionID string
	Action    string
	Code      string // set on result only
}

// SessionEventRecord is a stored session event.
type SessionEventRecord struct {
	Sequence  int64
	SessionID string
	Action    string
	Code      string
	Timestamp time.Time
}

// EventRepo is an append-only log of session lifecycle events.
type EventRepo interface {
	// Append stores a new event stamped with the next sequence number.
	Append(ctx context.Context, data SessionEventData) error

	// ForSession returns the events of one session in sequence order.
	ForSession(ctx context.Context, sessionID string) ([]SessionEventRecord, error)

	// Clear deletes every stored event.
	Clear(ctx context.Context) error
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) Append(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(eventsTable).
		Columns("sequence", "session_id", "action", "code", "timestamp").
		Values(seqNum, data.SessionID, data.Action, data.Code, time.Now().UnixMilli()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) ForSession(ctx context.Context, sessionID string) ([]SessionEventRecord, error) {
	query, args := builder().Select("sequence", "session_id", "action", "code", "timestamp").
		From(entsql.Table(eventsTable)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEventRecord
	for rows.Next() {
		var (
			rec SessionEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &rec.SessionID, &rec.Action, &rec.Code, &ts); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Clear(ctx context.Context) error {
	query, args := builder().Delete(eventsTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear session events: %w", err)
	}
	return nil
}
