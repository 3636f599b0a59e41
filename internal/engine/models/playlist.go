package models

import "github.com/anatolykoptev/go_youtube/internal/engine/params"

var PlaylistParts = params.NewTagSet("contentDetails", "id", "localizations", "player", "snippet", "status")

var playlistSpec = register(&kindSpec{
	kind:  KindPlaylist,
	parts: PlaylistParts,
	filters: []fieldSpec{
		{name: "channelId", typ: typeString, doc: "YouTube channel ID"},
		{name: "id", typ: typeList, doc: "Playlist IDs as a list or a comma-separated string"},
		{name: "mine", typ: typeBool, doc: "Return only playlists owned by the authenticated user"},
	},
	modifiers: []fieldSpec{
		{name: "hl", typ: typeString, doc: "Language code for localized metadata"},
		{name: "onBehalfOfContentOwner", typ: typeString, doc: "Content owner on whose behalf the request is made"},
		{name: "onBehalfOfContentOwnerChannel", typ: typeString, doc: "Channel the content owner acts through"},
	},
	pageMin: 0,
	pageMax: 50,
})

type PlaylistsInput struct {
	Part                          params.StringOrList `json:"part"`
	ChannelID                     *string             `json:"channelId,omitempty"`
	ID                            params.StringOrList `json:"id,omitzero"`
	Mine                          *bool               `json:"mine,omitempty"`
	HL                            *string             `json:"hl,omitempty"`
	OnBehalfOfContentOwner        *string             `json:"onBehalfOfContentOwner,omitempty"`
	OnBehalfOfContentOwnerChannel *string             `json:"onBehalfOfContentOwnerChannel,omitempty"`
}

func (in PlaylistsInput) collect(b *builder) {
	b.str("channelId", in.ChannelID)
	b.ids("id", in.ID)
	b.boolean("mine", in.Mine)
	b.str("hl", in.HL)
	b.str("onBehalfOfContentOwner", in.OnBehalfOfContentOwner)
	b.str("onBehalfOfContentOwnerChannel", in.OnBehalfOfContentOwnerChannel)
}

func (in PlaylistsInput) Request() (*Request, error) {
	b := newBuilder(playlistSpec, in.Part)
	in.collect(b)
	return b.build()
}

type ListPlaylistsInput struct {
	PlaylistsInput
	PageRequest
}

func (in ListPlaylistsInput) Request() (*Request, error) {
	b := newBuilder(playlistSpec, in.Part)
	in.collect(b)
	b.page(in.PageRequest)
	return b.build()
}

// Playlist is a YouTube playlist resource.
type Playlist struct {
	Kind           string                  `json:"kind"`
	Etag           string                  `json:"etag,omitempty"`
	ID             string                  `json:"id,omitempty"`
	Snippet        *PlaylistSnippet        `json:"snippet,omitempty"`
	Status         *PlaylistStatus         `json:"status,omitempty"`
	ContentDetails *PlaylistContentDetails `json:"contentDetails,omitempty"`
	Player         *Player                 `json:"player,omitempty"`
	Localizations  map[string]Localized    `json:"localizations,omitempty"`
}

type PlaylistSnippet struct {
	PublishedAt     string      `json:"publishedAt,omitempty"`
	ChannelID       string      `json:"channelId,omitempty"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Thumbnails      *Thumbnails `json:"thumbnails,omitempty"`
	ChannelTitle    string      `json:"channelTitle,omitempty"`
	DefaultLanguage string      `json:"defaultLanguage,omitempty"`
	Localized       *Localized  `json:"localized,omitempty"`
}

type PlaylistStatus struct {
	PrivacyStatus PrivacyStatus `json:"privacyStatus,omitempty"`
	PodcastStatus PodcastStatus `json:"podcastStatus,omitempty"`
}

type PlaylistContentDetails struct {
	ItemCount *int64 `json:"itemCount,omitempty"`
}

// Player holds the embed markup of a playlist or video.
type Player struct {
	EmbedHTML   string `json:"embedHtml,omitempty"`
	EmbedHeight *int64 `json:"embedHeight,omitempty"`
	EmbedWidth  *int64 `json:"embedWidth,omitempty"`
}
