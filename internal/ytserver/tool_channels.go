package ytserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_youtube/internal/engine"
	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/journal"
)

func registerChannels(server *mcp.Server, l engine.Lister, store journal.Store) error {
	if err := addPageTool[models.ListChannelsInput, models.Channel](server, l, store, listTool{
		name:        "listChannels",
		description: "List YouTube channels (one page). Exactly one filter is required: forHandle, forUsername, id, managedByMe or mine. part selects the returned sub-documents (snippet, statistics, contentDetails, ...). Use pageToken from the previous response for the next page; maxResults is 0-50.",
		kind:        models.KindChannel,
	}); err != nil {
		return err
	}
	return addDrainTool[models.ChannelsInput, models.Channel](server, l, store, listTool{
		name:        "listAllChannels",
		description: "List all YouTube channels matching one filter (forHandle, forUsername, id, managedByMe or mine), following every page. Returns the full item list without pagination metadata.",
		kind:        models.KindChannel,
	})
}
