package engine

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/engine/params"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := CacheKey("video", "chart=mostPopular")
		k2 := CacheKey("video", "chart=mostPopular")
		if k1 != k2 {
			t.Errorf("CacheKey not deterministic: %q != %q", k1, k2)
		}
	})

	t.Run("different inputs differ", func(t *testing.T) {
		k1 := CacheKey("video", "id=a")
		k2 := CacheKey("video", "id=b")
		if k1 == k2 {
			t.Errorf("different inputs produced same key: %q", k1)
		}
	})

	t.Run("has prefix", func(t *testing.T) {
		k := CacheKey("test")
		if k[:3] != "yt:" {
			t.Errorf("expected yt: prefix, got %q", k[:3])
		}
	})
}

func TestPageKey_OrderIndependent(t *testing.T) {
	a := params.Params{"part": "id", "mine": true}
	b := params.Params{"mine": true, "part": "id"}
	if PageKey(models.KindChannel, a) != PageKey(models.KindChannel, b) {
		t.Error("PageKey depends on map order")
	}
	if PageKey(models.KindChannel, a) == PageKey(models.KindPlaylist, a) {
		t.Error("PageKey ignores kind")
	}
}

func TestCacheExpiration(t *testing.T) {
	InitCache("", 1*time.Millisecond, 100, 5*time.Minute)

	ctx := context.Background()
	key := CacheKey("test", "expiry")

	cacheSet(ctx, key, []byte("temp"))
	time.Sleep(5 * time.Millisecond)

	if _, ok := cacheGet(ctx, key); ok {
		t.Error("expected cache miss after TTL expiry")
	}
}

func TestCacheEviction(t *testing.T) {
	InitCache("", 1*time.Minute, 3, 5*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		cacheSet(ctx, CacheKey("evict", fmt.Sprintf("item-%d", i)), []byte(fmt.Sprintf("v%d", i)))
	}

	count := 0
	pageCache.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count > 3 {
		t.Errorf("expected at most 3 entries after eviction, got %d", count)
	}
}

func TestCachedLister(t *testing.T) {
	InitCache("", 1*time.Minute, 100, 5*time.Minute)
	cacheHits.Store(0)
	cacheMisses.Store(0)
	defer InitCache("", 0, 0, 0)

	inner := &fakeLister{pages: []*models.Page{page("", "A")}}
	l := CachedLister{Lister: inner}
	ctx := context.Background()
	p := params.Params{"part": "id", "id": "A"}

	for i := 0; i < 2; i++ {
		got, err := l.ListPage(ctx, models.KindPlaylistItem, p)
		if err != nil {
			t.Fatalf("ListPage() error = %v", err)
		}
		if len(got.Items) != 1 {
			t.Fatalf("items = %d, want 1", len(got.Items))
		}
	}
	if len(inner.calls) != 1 {
		t.Errorf("inner calls = %d, want 1", len(inner.calls))
	}
	if hits, misses := CacheStats(); hits != 1 || misses != 1 {
		t.Errorf("hits, misses = %d, %d, want 1, 1", hits, misses)
	}
}

func TestCachedLister_Disabled(t *testing.T) {
	InitCache("", 0, 0, 0)

	inner := &fakeLister{pages: []*models.Page{page("", "A"), page("", "A")}}
	l := CachedLister{Lister: inner}
	for i := 0; i < 2; i++ {
		if _, err := l.ListPage(context.Background(), models.KindVideo, params.Params{"id": "A"}); err != nil {
			t.Fatal(err)
		}
	}
	if len(inner.calls) != 2 {
		t.Errorf("inner calls = %d, want 2", len(inner.calls))
	}
}

func TestCachedLister_DrainSkipsCache(t *testing.T) {
	InitCache("", 1*time.Minute, 100, 0)
	defer InitCache("", 0, 0, 0)

	playlist := "PL1"
	ctx := context.Background()

	// A single-page call with the drain page size warms the first-page key.
	stale := &fakeLister{pages: []*models.Page{page("t1", "A", "B")}}
	paged := mustRequest(t, models.ListPlaylistItemsInput{
		PlaylistItemsInput: models.PlaylistItemsInput{Part: params.String("id"), PlaylistID: &playlist},
		PageRequest:        models.PageRequest{MaxResults: ptr(int64(DrainPageSize))},
	})
	if _, err := FetchPage[models.PlaylistItem](ctx, CachedLister{Lister: stale}, paged); err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	live := &fakeLister{pages: []*models.Page{page("t2", "X"), page("", "Y")}}
	req := mustRequest(t, models.PlaylistItemsInput{Part: params.String("id"), PlaylistID: &playlist})
	items, err := DrainAll[models.PlaylistItem](ctx, CachedLister{Lister: live}, req)
	if err != nil {
		t.Fatalf("DrainAll() error = %v", err)
	}
	if got, want := itemIDs(items), []string{"X", "Y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("items = %v, want %v", got, want)
	}
	if len(live.calls) != 2 {
		t.Errorf("live calls = %d, want 2", len(live.calls))
	}

	// Single-page calls still use the cache.
	got, err := FetchPage[models.PlaylistItem](ctx, CachedLister{Lister: live}, paged)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if ids := itemIDs(got.Items); !reflect.DeepEqual(ids, []string{"A", "B"}) {
		t.Errorf("cached items = %v, want [A B]", ids)
	}
}

func ptr[T any](v T) *T { return &v }
