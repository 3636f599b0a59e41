package ytserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_youtube/internal/engine"
	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/journal"
)

func registerVideos(server *mcp.Server, l engine.Lister, store journal.Store) error {
	if err := addPageTool[models.ListVideosInput, models.Video](server, l, store, listTool{
		name:        "listVideos",
		description: "List YouTube videos (one page). Exactly one filter is required: chart (mostPopular), id or myRating (like, dislike). maxResults is 1-50 and cannot be combined with id. regionCode and videoCategoryId refine charts.",
		kind:        models.KindVideo,
	}); err != nil {
		return err
	}
	return addDrainTool[models.VideosInput, models.Video](server, l, store, listTool{
		name:        "listAllVideos",
		description: "List all YouTube videos of a chart, by id, or rated by the authenticated user (exactly one of chart, id, myRating), following every page.",
		kind:        models.KindVideo,
	})
}
