package engine

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/engine/params"
)

// DrainPageSize is the page size hint sent while draining a listing.
const DrainPageSize = 50

// Lister fetches one page of a remote listing. Parameters are in wire form.
type Lister interface {
	ListPage(ctx context.Context, kind models.Kind, p params.Params) (*models.Page, error)
}

type drainKey struct{}

// draining reports whether ctx belongs to a DrainAll call.
func draining(ctx context.Context) bool {
	v, _ := ctx.Value(drainKey{}).(bool)
	return v
}

// FetchPage fetches the single page req describes.
func FetchPage[T any](ctx context.Context, l Lister, req *models.Request) (*models.ListResponse[T], error) {
	page, err := l.ListPage(ctx, req.Kind(), req.ForAPICall())
	if err != nil {
		return nil, err
	}
	resp, err := models.NewListResponse[T](req.Kind(), page)
	if err != nil {
		return nil, err
	}
	incrPage(len(resp.Items))
	return resp, nil
}

// DrainAll follows nextPageToken until the listing is exhausted and returns
// every item in remote order. Pages are fetched one at a time. Any error aborts
// the drain and is returned as is; items of earlier pages are discarded.
func DrainAll[T any](ctx context.Context, l Lister, req *models.Request) ([]T, error) {
	metrics.Drains.Add(1)
	ctx = context.WithValue(ctx, drainKey{}, true)

	items := []T{}
	cursor := ""
	for n := 1; ; n++ {
		p := req.ForAPICall()
		if req.AcceptsPageSize() {
			p["maxResults"] = int64(DrainPageSize)
		}
		if cursor != "" {
			p["pageToken"] = cursor
		}

		page, err := l.ListPage(ctx, req.Kind(), p)
		if err != nil {
			return nil, err
		}
		got, err := models.DecodeItems[T](page)
		if err != nil {
			return nil, err
		}
		incrPage(len(got))
		items = append(items, got...)

		slog.Debug("drain: page fetched",
			slog.String("kind", string(req.Kind())),
			slog.Int("page", n),
			slog.Int("items", len(got)),
			slog.Bool("more", page.NextPageToken != ""))

		if page.NextPageToken == "" {
			return items, nil
		}
		cursor = page.NextPageToken
	}
}
