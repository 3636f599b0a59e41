package models

import (
	"encoding/json"
	"fmt"
)

// PageRequest carries the optional pagination fields of a single-page call.
type PageRequest struct {
	PageToken  *string `json:"pageToken,omitempty"`
	MaxResults *int64  `json:"maxResults,omitempty"`
}

type PageInfo struct {
	TotalResults   int64 `json:"totalResults"`
	ResultsPerPage int64 `json:"resultsPerPage"`
}

// PageResponse is the pagination metadata of one remote page.
type PageResponse struct {
	Etag          string    `json:"etag,omitempty"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
	PrevPageToken string    `json:"prevPageToken,omitempty"`
	PageInfo      *PageInfo `json:"pageInfo,omitempty"`
}

// Page is one undecoded page as returned by the remote list endpoint.
type Page struct {
	PageResponse
	Items []json.RawMessage `json:"items"`
}

// ListResponse is a single page of typed resources.
type ListResponse[T any] struct {
	Kind string `json:"kind"`
	PageResponse
	Items []T `json:"items"`
}

// ListAllResponse carries every item of a fully drained listing.
type ListAllResponse[T any] struct {
	Kind  string `json:"kind"`
	Items []T    `json:"items"`
}

// Summary is the journaled form of a list response: counts and cursors, no items.
type Summary struct {
	Kind          string `json:"kind"`
	Items         int    `json:"items"`
	NextPageToken string `json:"nextPageToken,omitempty"`
	PrevPageToken string `json:"prevPageToken,omitempty"`
}

func (r *ListResponse[T]) Summary() Summary {
	return Summary{Kind: r.Kind, Items: len(r.Items), NextPageToken: r.NextPageToken, PrevPageToken: r.PrevPageToken}
}

func (r *ListAllResponse[T]) Summary() Summary {
	return Summary{Kind: r.Kind, Items: len(r.Items)}
}

type (
	ChannelListResponse         = ListResponse[Channel]
	ChannelListAllResponse      = ListAllResponse[Channel]
	PlaylistListResponse        = ListResponse[Playlist]
	PlaylistListAllResponse     = ListAllResponse[Playlist]
	PlaylistItemListResponse    = ListResponse[PlaylistItem]
	PlaylistItemListAllResponse = ListAllResponse[PlaylistItem]
	VideoListResponse           = ListResponse[Video]
	VideoListAllResponse        = ListAllResponse[Video]
)

// DecodeItems decodes the raw items of p in order.
func DecodeItems[T any](p *Page) ([]T, error) {
	items := make([]T, 0, len(p.Items))
	for i, raw := range p.Items {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decode item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// NewListResponse decodes p into a typed single-page response of kind.
func NewListResponse[T any](kind Kind, p *Page) (*ListResponse[T], error) {
	items, err := DecodeItems[T](p)
	if err != nil {
		return nil, err
	}
	return &ListResponse[T]{Kind: kind.ListTag(), PageResponse: p.PageResponse, Items: items}, nil
}

// NewListAllResponse wraps drained items. A nil slice is published as empty.
func NewListAllResponse[T any](kind Kind, items []T) *ListAllResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListAllResponse[T]{Kind: kind.ListTag(), Items: items}
}
