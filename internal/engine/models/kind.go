// Package models holds the typed request and response models of the YouTube
// Data API list endpoints: channels, playlists, playlist items and videos.
//
// Inbound arguments are decoded into an Input type and turned into a validated,
// read-only Request by Input.Request. Responses are built from raw pages
// returned by the remote list endpoint.
package models

// Kind identifies a listable resource kind.
type Kind string

const (
	KindChannel      Kind = "channel"
	KindPlaylist     Kind = "playlist"
	KindPlaylistItem Kind = "playlistItem"
	KindVideo        Kind = "video"
)

// Collection is the remote collection name, e.g. "playlistItems".
func (k Kind) Collection() string { return string(k) + "s" }

// ListTag is the kind tag of a list response, e.g. "youtube#videoListResponse".
func (k Kind) ListTag() string { return "youtube#" + string(k) + "ListResponse" }
