package ytserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_youtube/internal/engine"
	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/journal"
)

func registerPlaylistItems(server *mcp.Server, l engine.Lister, store journal.Store) error {
	if err := addPageTool[models.ListPlaylistItemsInput, models.PlaylistItem](server, l, store, listTool{
		name:        "listPlaylistItems",
		description: "List items of a YouTube playlist (one page). Exactly one filter is required: playlistId or id. videoId narrows the result to items containing that video. maxResults is 0-50.",
		kind:        models.KindPlaylistItem,
	}); err != nil {
		return err
	}
	return addDrainTool[models.PlaylistItemsInput, models.PlaylistItem](server, l, store, listTool{
		name:        "listAllPlaylistItems",
		description: "List every item of a YouTube playlist (playlistId) or the given playlist item ids, following every page. Items keep playlist order.",
		kind:        models.KindPlaylistItem,
	})
}
