// Package toolutil provides shared helpers for go_youtube MCP tools.
package toolutil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go_youtube/internal/engine"
	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/engine/params"
	"github.com/anatolykoptev/go_youtube/internal/journal"
)

// maxErrorRunes caps error text stored in the journal.
const maxErrorRunes = 2000

// journalTimeout bounds a journal write once the handler is done.
const journalTimeout = 5 * time.Second

// summarizer is implemented by responses too large to journal in full.
type summarizer interface {
	Summary() models.Summary
}

// Run validates an invocation with build, performs it with fetch, and records
// the outcome in store. A validation failure never reaches fetch. Journal
// failures are logged and do not affect the result.
func Run[Out any](
	ctx context.Context,
	store journal.Store,
	handler string,
	build func() (*models.Request, error),
	fetch func(context.Context, *models.Request) (*Out, error),
) (*Out, error) {
	engine.IncrToolCalls()
	entry := journal.NewEntry(handler)

	var out *Out
	req, err := build()
	if err != nil {
		engine.IncrValidationErrors()
		slog.Debug("tool: invalid arguments", slog.String("tool", handler), slog.Any("error", err))
	} else {
		entry.Request = marshal(req.ForSchema())
		err = engine.TrackOperation(ctx, handler, func(ctx context.Context) error {
			var ferr error
			out, ferr = fetch(ctx, req)
			return ferr
		})
		if err != nil && !IsValidation(err) {
			slog.Warn("tool: call failed", slog.String("tool", handler), slog.Any("error", err))
		}
	}

	entry.Duration = time.Since(entry.StartedAt)
	if err != nil {
		entry.Error = engine.TruncateRunes(err.Error(), maxErrorRunes, "…")
		out = nil
	} else {
		entry.Response = marshal(journaled(out))
	}
	record(ctx, store, entry)
	return out, err
}

// IsValidation reports whether err is a client-side argument error.
func IsValidation(err error) bool { return errors.Is(err, params.ErrValidation) }

func record(ctx context.Context, store journal.Store, e journal.Entry) {
	if store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()
	if err := store.Record(ctx, e); err != nil {
		engine.IncrJournalErrors()
		slog.Warn("journal: record failed", slog.String("tool", e.Handler), slog.Any("error", err))
		return
	}
	engine.IncrJournalWrites()
}

// journaled returns the form of out stored in the journal.
func journaled(out any) any {
	if s, ok := out.(summarizer); ok {
		return s.Summary()
	}
	return out
}

func marshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Debug("journal: marshal failed", slog.Any("error", err))
		return nil
	}
	return data
}
