// Package ytserver exposes the YouTube Data API list endpoints as MCP tools.
package ytserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_youtube/internal/engine"
	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/journal"
	"github.com/anatolykoptev/go_youtube/internal/toolutil"
)

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 9

// RegisterTools registers the list tools for channels, playlists, playlist
// items and videos, plus recentInvocations, on the given MCP server.
func RegisterTools(server *mcp.Server, lister engine.Lister, store journal.Store) error {
	regs := []func(*mcp.Server, engine.Lister, journal.Store) error{
		registerChannels,
		registerPlaylists,
		registerPlaylistItems,
		registerVideos,
	}
	for _, reg := range regs {
		if err := reg(server, lister, store); err != nil {
			return err
		}
	}
	registerRecentInvocations(server, store)
	return nil
}

type requester interface {
	Request() (*models.Request, error)
}

// listTool describes one single-page or drain tool.
type listTool struct {
	name        string
	description string
	kind        models.Kind
}

func (lt listTool) tool(paged bool) (*mcp.Tool, error) {
	schema, err := models.InputSchema(lt.kind, paged)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", lt.name, err)
	}
	return &mcp.Tool{
		Name:        lt.name,
		Description: lt.description,
		InputSchema: schema,
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, nil
}

// addPageTool registers a tool returning one page with its pagination metadata.
func addPageTool[In requester, T any](server *mcp.Server, l engine.Lister, store journal.Store, lt listTool) error {
	tool, err := lt.tool(true)
	if err != nil {
		return err
	}
	mcp.AddTool(server, tool, pageHandler[In, T](l, store, lt.name))
	return nil
}

// addDrainTool registers a tool returning every item of a listing.
func addDrainTool[In requester, T any](server *mcp.Server, l engine.Lister, store journal.Store, lt listTool) error {
	tool, err := lt.tool(false)
	if err != nil {
		return err
	}
	mcp.AddTool(server, tool, drainHandler[In, T](l, store, lt.name))
	return nil
}

func pageHandler[In requester, T any](l engine.Lister, store journal.Store, name string) mcp.ToolHandlerFor[In, *models.ListResponse[T]] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input In) (*mcp.CallToolResult, *models.ListResponse[T], error) {
		out, err := toolutil.Run(ctx, store, name, input.Request,
			func(ctx context.Context, req *models.Request) (*models.ListResponse[T], error) {
				return engine.FetchPage[T](ctx, l, req)
			})
		if err != nil {
			return nil, nil, err
		}
		return nil, out, nil
	}
}

func drainHandler[In requester, T any](l engine.Lister, store journal.Store, name string) mcp.ToolHandlerFor[In, *models.ListAllResponse[T]] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input In) (*mcp.CallToolResult, *models.ListAllResponse[T], error) {
		out, err := toolutil.Run(ctx, store, name, input.Request,
			func(ctx context.Context, req *models.Request) (*models.ListAllResponse[T], error) {
				items, err := engine.DrainAll[T](ctx, l, req)
				if err != nil {
					return nil, err
				}
				return models.NewListAllResponse(req.Kind(), items), nil
			})
		if err != nil {
			return nil, nil, err
		}
		return nil, out, nil
	}
}
