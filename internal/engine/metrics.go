package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ToolCalls        atomic.Int64
	ValidationErrors atomic.Int64
	RemoteRequests   atomic.Int64
	RemoteErrors     atomic.Int64
	PagesFetched     atomic.Int64
	ItemsFetched     atomic.Int64
	Drains           atomic.Int64
	JournalWrites    atomic.Int64
	JournalErrors    atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"tool_calls":        metrics.ToolCalls.Load(),
		"validation_errors": metrics.ValidationErrors.Load(),
		"remote_requests":   metrics.RemoteRequests.Load(),
		"remote_errors":     metrics.RemoteErrors.Load(),
		"pages_fetched":     metrics.PagesFetched.Load(),
		"items_fetched":     metrics.ItemsFetched.Load(),
		"drains":            metrics.Drains.Load(),
		"journal_writes":    metrics.JournalWrites.Load(),
		"journal_errors":    metrics.JournalErrors.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"tool_calls", "validation_errors",
		"remote_requests", "remote_errors",
		"pages_fetched", "items_fetched", "drains",
		"journal_writes", "journal_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the tool layer.
func IncrToolCalls()        { metrics.ToolCalls.Add(1) }
func IncrValidationErrors() { metrics.ValidationErrors.Add(1) }
func IncrJournalWrites()    { metrics.JournalWrites.Add(1) }
func IncrJournalErrors()    { metrics.JournalErrors.Add(1) }

// Incrementors for sources/ sub-package.
func IncrRemoteRequests() { metrics.RemoteRequests.Add(1) }
func IncrRemoteErrors()   { metrics.RemoteErrors.Add(1) }

func incrPage(items int) {
	metrics.PagesFetched.Add(1)
	metrics.ItemsFetched.Add(int64(items))
}

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
