package models

import "github.com/anatolykoptev/go_youtube/internal/engine/params"

var PlaylistItemParts = params.NewTagSet("contentDetails", "id", "snippet", "status")

var playlistItemSpec = register(&kindSpec{
	kind:  KindPlaylistItem,
	parts: PlaylistItemParts,
	filters: []fieldSpec{
		{name: "id", typ: typeList, doc: "Playlist item IDs as a list or a comma-separated string"},
		{name: "playlistId", typ: typeString, doc: "Playlist whose items are listed"},
	},
	modifiers: []fieldSpec{
		{name: "videoId", typ: typeString, doc: "Return only items that contain this video"},
		{name: "onBehalfOfContentOwner", typ: typeString, doc: "Content owner on whose behalf the request is made"},
	},
	pageMin: 0,
	pageMax: 50,
})

type PlaylistItemsInput struct {
	Part                   params.StringOrList `json:"part"`
	ID                     params.StringOrList `json:"id,omitzero"`
	PlaylistID             *string             `json:"playlistId,omitempty"`
	VideoID                *string             `json:"videoId,omitempty"`
	OnBehalfOfContentOwner *string             `json:"onBehalfOfContentOwner,omitempty"`
}

func (in PlaylistItemsInput) collect(b *builder) {
	b.ids("id", in.ID)
	b.str("playlistId", in.PlaylistID)
	b.str("videoId", in.VideoID)
	b.str("onBehalfOfContentOwner", in.OnBehalfOfContentOwner)
}

func (in PlaylistItemsInput) Request() (*Request, error) {
	b := newBuilder(playlistItemSpec, in.Part)
	in.collect(b)
	return b.build()
}

type ListPlaylistItemsInput struct {
	PlaylistItemsInput
	PageRequest
}

func (in ListPlaylistItemsInput) Request() (*Request, error) {
	b := newBuilder(playlistItemSpec, in.Part)
	in.collect(b)
	b.page(in.PageRequest)
	return b.build()
}

// PlaylistItem is one entry of a playlist.
type PlaylistItem struct {
	Kind           string                      `json:"kind"`
	Etag           string                      `json:"etag,omitempty"`
	ID             string                      `json:"id,omitempty"`
	Snippet        *PlaylistItemSnippet        `json:"snippet,omitempty"`
	ContentDetails *PlaylistItemContentDetails `json:"contentDetails,omitempty"`
	Status         *PlaylistItemStatus         `json:"status,omitempty"`
}

type ResourceID struct {
	Kind    string `json:"kind,omitempty"`
	VideoID string `json:"videoId,omitempty"`
}

type PlaylistItemSnippet struct {
	PublishedAt            string      `json:"publishedAt,omitempty"`
	ChannelID              string      `json:"channelId,omitempty"`
	Title                  string      `json:"title,omitempty"`
	Description            string      `json:"description,omitempty"`
	Thumbnails             *Thumbnails `json:"thumbnails,omitempty"`
	ChannelTitle           string      `json:"channelTitle,omitempty"`
	PlaylistID             string      `json:"playlistId,omitempty"`
	Position               *int64      `json:"position,omitempty"`
	ResourceID             *ResourceID `json:"resourceId,omitempty"`
	VideoOwnerChannelTitle string      `json:"videoOwnerChannelTitle,omitempty"`
	VideoOwnerChannelID    string      `json:"videoOwnerChannelId,omitempty"`
}

type PlaylistItemContentDetails struct {
	VideoID          string `json:"videoId,omitempty"`
	StartAt          string `json:"startAt,omitempty"`
	EndAt            string `json:"endAt,omitempty"`
	Note             string `json:"note,omitempty"`
	VideoPublishedAt string `json:"videoPublishedAt,omitempty"`
}

type PlaylistItemStatus struct {
	PrivacyStatus PrivacyStatus `json:"privacyStatus,omitempty"`
}
