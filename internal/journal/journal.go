// Package journal records the outcome of every tool invocation: the validated
// request, the response or the error, and timing. Entries are append-only.
//
// Backends are chosen by DSN: a file path (SQLite), postgres:// (pgx),
// redis:// (a Redis stream) or "off".
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit is used by Recent callers that pass no limit.
const DefaultLimit = 20

// MaxLimit caps a single Recent call.
const MaxLimit = 100

// Entry is one recorded invocation.
type Entry struct {
	ID        string
	Handler   string
	Request   json.RawMessage // nil when the arguments did not validate
	Response  json.RawMessage // nil on error
	Error     string
	StartedAt time.Time
	Duration  time.Duration
}

// NewEntry starts an entry for handler.
func NewEntry(handler string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Handler:   handler,
		StartedAt: time.Now().UTC(),
	}
}

// Failed reports whether the invocation returned an error.
func (e Entry) Failed() bool { return e.Error != "" }

// Store persists entries.
type Store interface {
	Record(ctx context.Context, e Entry) error
	// Recent returns up to limit entries, newest first. An empty handler
	// matches every handler.
	Recent(ctx context.Context, handler string, limit int) ([]Entry, error)
	Close() error
}

// Open selects a backend from dsn. An empty dsn opens the default SQLite file
// under $HOME/.go_youtube.
func Open(ctx context.Context, dsn string) (Store, error) {
	switch {
	case dsn == "off" || dsn == "none":
		return Nop{}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgres(ctx, dsn)
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return OpenRedis(ctx, dsn)
	case dsn == "":
		dir := filepath.Join(os.Getenv("HOME"), ".go_youtube")
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("journal: mkdir %s: %w", dir, err)
		}
		return OpenSQLite(ctx, filepath.Join(dir, "journal.db"))
	default:
		return OpenSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"))
	}
}

// ClampLimit maps a requested limit into [1, MaxLimit], with 0 meaning DefaultLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// Nop discards entries.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error                  { return nil }
func (Nop) Recent(context.Context, string, int) ([]Entry, error) { return nil, nil }
func (Nop) Close() error                                         { return nil }

func nullable(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func rawOrNil(s *string) json.RawMessage {
	if s == nil || *s == "" {
		return nil
	}
	return json.RawMessage(*s)
}

func msDuration(ms int64) time.Duration { return time.Duration(ms) * time.Millisecond }
