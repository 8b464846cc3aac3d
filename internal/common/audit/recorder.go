// Package audit records one usage event per advisor API call. Only
// operational metadata is stored; profiles and messages never are.
package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrRecordFailed = errors.New("USAGE_EVENT_INSERT_FAILED")

// Event describes one served request.
type Event struct {
	Endpoint  string
	Source    string
	Warning   string
	Duration  time.Duration
	RequestID string
}

// Recorder persists usage events.
type Recorder interface {
	Record(ctx context.Context, event Event) error
}

// NopRecorder discards events. It is used when no database is configured.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, event Event) error { return nil }

const createTableSQL = `
CREATE TABLE IF NOT EXISTS usage_events (
	id          UUID PRIMARY KEY,
	endpoint    TEXT NOT NULL,
	source      TEXT NOT NULL,
	warning     TEXT,
	duration_ms BIGINT NOT NULL,
	request_id  TEXT,
	created_at  TIMESTAMPTZ NOT NULL
)`

const insertEventSQL = `
INSERT INTO usage_events (id, endpoint, source, warning, duration_ms, request_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// PostgresRecorder writes events to the usage_events table.
type PostgresRecorder struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostgresRecorder(db *sql.DB) *PostgresRecorder {
	return &PostgresRecorder{db: db, now: time.Now}
}

// EnsureSchema creates the usage_events table when it does not exist.
func (r *PostgresRecorder) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create usage_events: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) Record(ctx context.Context, event Event) error {
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		uuid.New().String(),
		event.Endpoint,
		event.Source,
		nullString(event.Warning),
		event.Duration.Milliseconds(),
		nullString(event.RequestID),
		r.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRecordFailed, err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
