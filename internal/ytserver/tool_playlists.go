package ytserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_youtube/internal/engine"
	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/journal"
)

func registerPlaylists(server *mcp.Server, l engine.Lister, store journal.Store) error {
	if err := addPageTool[models.ListPlaylistsInput, models.Playlist](server, l, store, listTool{
		name:        "listPlaylists",
		description: "List YouTube playlists (one page). Exactly one filter is required: channelId, id or mine. Use pageToken from the previous response for the next page; maxResults is 0-50.",
		kind:        models.KindPlaylist,
	}); err != nil {
		return err
	}
	return addDrainTool[models.PlaylistsInput, models.Playlist](server, l, store, listTool{
		name:        "listAllPlaylists",
		description: "List all YouTube playlists of a channel, by id, or of the authenticated user (exactly one of channelId, id, mine), following every page.",
		kind:        models.KindPlaylist,
	})
}
