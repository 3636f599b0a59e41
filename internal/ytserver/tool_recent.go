package ytserver

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_youtube/internal/journal"
)

// RecentInput is the input for recentInvocations.
type RecentInput struct {
	Tool  string `json:"tool,omitempty" jsonschema:"Only return invocations of this tool, e.g. listChannels"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of invocations, 1-100 (default 20)"`
}

// Invocation is one journal entry as returned by recentInvocations.
type Invocation struct {
	ID         string `json:"id"`
	Tool       string `json:"tool"`
	StartedAt  string `json:"startedAt"`
	DurationMs int64  `json:"durationMs"`
	Request    string `json:"request,omitempty"`
	Error      string `json:"error,omitempty"`
}

// RecentOutput is the output for recentInvocations.
type RecentOutput struct {
	Invocations []Invocation `json:"invocations"`
}

func registerRecentInvocations(server *mcp.Server, store journal.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recentInvocations",
		Description: "Show the most recent list tool invocations recorded in the journal, newest first: validated request, duration and error if any. Optionally filter by tool name.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input RecentInput) (*mcp.CallToolResult, *RecentOutput, error) {
		entries, err := store.Recent(ctx, input.Tool, journal.ClampLimit(input.Limit))
		if err != nil {
			return nil, nil, err
		}
		out := &RecentOutput{Invocations: make([]Invocation, 0, len(entries))}
		for _, e := range entries {
			out.Invocations = append(out.Invocations, Invocation{
				ID:         e.ID,
				Tool:       e.Handler,
				StartedAt:  e.StartedAt.Format(time.RFC3339Nano),
				DurationMs: e.Duration.Milliseconds(),
				Request:    string(e.Request),
				Error:      e.Error,
			})
		}
		return nil, out, nil
	})
}
