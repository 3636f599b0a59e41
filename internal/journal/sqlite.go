package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS invocations (
	id          TEXT PRIMARY KEY,
	handler     TEXT NOT NULL,
	request     TEXT,
	response    TEXT,
	error       TEXT,
	started_at  INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL
)`

const sqliteIndex = `CREATE INDEX IF NOT EXISTS invocations_handler_started
	ON invocations (handler, started_at)`

// SQLite keeps the journal in a local database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the journal database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	for _, stmt := range []string{sqliteSchema, sqliteIndex} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("journal: init schema: %w", err)
		}
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (id, handler, request, response, error, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Handler, nullable(e.Request), nullable(e.Response), e.Error,
		e.StartedAt.UnixNano(), e.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("journal: insert: %w", err)
	}
	return nil
}

func (s *SQLite) Recent(ctx context.Context, handler string, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, handler, request, response, error, started_at, duration_ms
		 FROM invocations WHERE ? = '' OR handler = ?
		 ORDER BY started_at DESC, rowid DESC LIMIT ?`,
		handler, handler, ClampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("journal: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e              Entry
			req, resp, msg sql.NullString
			started, ms    int64
		)
		if err := rows.Scan(&e.ID, &e.Handler, &req, &resp, &msg, &started, &ms); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		e.Request = rawOrNil(nullStringPtr(req))
		e.Response = rawOrNil(nullStringPtr(resp))
		e.Error = msg.String
		e.StartedAt = time.Unix(0, started).UTC()
		e.Duration = msDuration(ms)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error { return s.db.Close() }

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
