package toolutil

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/engine/params"
	"github.com/anatolykoptev/go_youtube/internal/journal"
)

type memStore struct {
	mu      sync.Mutex
	entries []journal.Entry
	err     error
}

func (m *memStore) Record(_ context.Context, e journal.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memStore) Recent(context.Context, string, int) ([]journal.Entry, error) { return nil, nil }
func (m *memStore) Close() error                                                 { return nil }

type result struct {
	Items []string `json:"items"`
}

func TestRun_Success(t *testing.T) {
	store := &memStore{}
	mine := true
	in := models.PlaylistsInput{Part: params.String("id"), Mine: &mine}

	out, err := Run(context.Background(), store, "listAllPlaylists", in.Request,
		func(_ context.Context, req *models.Request) (*result, error) {
			if req.Filter() != "mine" {
				t.Errorf("filter = %q", req.Filter())
			}
			return &result{Items: []string{"PL1"}}, nil
		})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(out.Items) != 1 {
		t.Errorf("out = %+v", out)
	}
	if len(store.entries) != 1 {
		t.Fatalf("journal entries = %d, want 1", len(store.entries))
	}
	e := store.entries[0]
	if e.Handler != "listAllPlaylists" || e.Failed() {
		t.Errorf("entry = %+v", e)
	}
	if string(e.Request) != `{"mine":true,"part":["id"]}` {
		t.Errorf("request = %s", e.Request)
	}
	if string(e.Response) != `{"items":["PL1"]}` {
		t.Errorf("response = %s", e.Response)
	}
}

func TestRun_ValidationSkipsFetch(t *testing.T) {
	store := &memStore{}
	in := models.PlaylistsInput{Part: params.String("id")}

	called := false
	out, err := Run(context.Background(), store, "listPlaylists", in.Request,
		func(context.Context, *models.Request) (*result, error) {
			called = true
			return &result{}, nil
		})
	if called {
		t.Error("fetch called for invalid arguments")
	}
	if out != nil {
		t.Errorf("out = %+v, want nil", out)
	}
	if !IsValidation(err) {
		t.Errorf("IsValidation(%v) = false", err)
	}
	if len(store.entries) != 1 || !strings.Contains(store.entries[0].Error, "exactly one filter") {
		t.Errorf("entries = %+v", store.entries)
	}
	if store.entries[0].Request != nil {
		t.Errorf("invalid request journaled as %s", store.entries[0].Request)
	}
}

func TestRun_RemoteErrorUnchanged(t *testing.T) {
	remote := errors.New("backend unavailable")
	playlist := "PL1"
	in := models.PlaylistItemsInput{Part: params.String("id"), PlaylistID: &playlist}

	_, err := Run(context.Background(), &memStore{}, "listAllPlaylistItems", in.Request,
		func(context.Context, *models.Request) (*result, error) {
			return nil, remote
		})
	if err != remote {
		t.Errorf("err = %v, want %v", err, remote)
	}
	if IsValidation(err) {
		t.Error("remote error reported as validation error")
	}
}

func TestRun_JournalFailureIgnored(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	mine := true
	in := models.ChannelsInput{Part: params.String("id"), Mine: &mine}

	out, err := Run(context.Background(), store, "listAllChannels", in.Request,
		func(context.Context, *models.Request) (*result, error) {
			return &result{Items: []string{"UC1"}}, nil
		})
	if err != nil || out == nil {
		t.Errorf("Run() = %v, %v; journal failure must not fail the call", out, err)
	}
}

func TestRun_NilStore(t *testing.T) {
	mine := true
	in := models.ChannelsInput{Part: params.String("id"), Mine: &mine}
	if _, err := Run(context.Background(), nil, "listAllChannels", in.Request,
		func(context.Context, *models.Request) (*result, error) { return &result{}, nil }); err != nil {
		t.Fatal(err)
	}
}

func TestRun_JournalsListSummary(t *testing.T) {
	store := &memStore{}
	playlist := "PL1"
	in := models.PlaylistItemsInput{Part: params.String("id"), PlaylistID: &playlist}

	items := make([]models.PlaylistItem, 120)
	for i := range items {
		items[i].ID = strings.Repeat("x", 32)
	}
	out, err := Run(context.Background(), store, "listAllPlaylistItems", in.Request,
		func(_ context.Context, req *models.Request) (*models.PlaylistItemListAllResponse, error) {
			return models.NewListAllResponse(req.Kind(), items), nil
		})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(out.Items) != 120 {
		t.Errorf("items = %d, want 120", len(out.Items))
	}
	if len(store.entries) != 1 {
		t.Fatalf("journal entries = %d, want 1", len(store.entries))
	}
	want := `{"kind":"youtube#playlistItemListResponse","items":120}`
	if got := string(store.entries[0].Response); got != want {
		t.Errorf("response = %s, want %s", got, want)
	}
}

func TestRun_JournalsPageCursor(t *testing.T) {
	store := &memStore{}
	mine := true
	in := models.ListPlaylistsInput{PlaylistsInput: models.PlaylistsInput{Part: params.String("id"), Mine: &mine}}

	_, err := Run(context.Background(), store, "listPlaylists", in.Request,
		func(context.Context, *models.Request) (*models.PlaylistListResponse, error) {
			return &models.PlaylistListResponse{
				Kind:         "youtube#playlistListResponse",
				PageResponse: models.PageResponse{NextPageToken: "t1"},
				Items:        []models.Playlist{{ID: "PL1"}, {ID: "PL2"}},
			}, nil
		})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := `{"kind":"youtube#playlistListResponse","items":2,"nextPageToken":"t1"}`
	if got := string(store.entries[0].Response); got != want {
		t.Errorf("response = %s, want %s", got, want)
	}
}
