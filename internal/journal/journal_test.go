package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := 0; i < 3; i++ {
		e := NewEntry("listChannels")
		e.StartedAt = base.Add(time.Duration(i) * time.Second)
		e.Request = json.RawMessage(fmt.Sprintf(`{"part":["id"],"id":["c%d"]}`, i))
		e.Response = json.RawMessage(`{"kind":"youtube#channelListResponse","items":[]}`)
		e.Duration = 120 * time.Millisecond
		if err := s.Record(ctx, e); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}
	failed := NewEntry("listAllVideos")
	failed.StartedAt = base.Add(10 * time.Second)
	failed.Error = "exactly one filter must be specified"
	if err := s.Record(ctx, failed); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	all, err := s.Recent(ctx, "", 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Recent(all) = %d entries, want 4", len(all))
	}
	if all[0].ID != failed.ID || !all[0].Failed() {
		t.Errorf("newest entry = %+v, want the failed invocation", all[0])
	}
	if all[0].Request != nil || all[0].Response != nil {
		t.Errorf("failed entry carries payloads: %s %s", all[0].Request, all[0].Response)
	}

	channels, err := s.Recent(ctx, "listChannels", 2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("Recent(listChannels, 2) = %d entries, want 2", len(channels))
	}
	if string(channels[0].Request) != `{"part":["id"],"id":["c2"]}` {
		t.Errorf("newest request = %s", channels[0].Request)
	}
	if channels[0].Duration != 120*time.Millisecond {
		t.Errorf("duration = %v", channels[0].Duration)
	}
	if !channels[0].StartedAt.Equal(base.Add(2 * time.Second)) {
		t.Errorf("started_at = %v, want %v", channels[0].StartedAt, base.Add(2*time.Second))
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Record(ctx, NewEntry("listPlaylists")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()
	got, err := s.Recent(ctx, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Handler != "listPlaylists" {
		t.Errorf("entries after reopen = %+v", got)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("off", func(t *testing.T) {
		s, err := Open(ctx, "off")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := s.(Nop); !ok {
			t.Errorf("Open(off) = %T, want Nop", s)
		}
	})

	t.Run("default path", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		s, err := Open(ctx, "")
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()
		if _, ok := s.(*SQLite); !ok {
			t.Errorf("Open(\"\") = %T, want *SQLite", s)
		}
	})

	t.Run("sqlite scheme", func(t *testing.T) {
		s, err := Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "j.db"))
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		s.Close()
	})

	t.Run("bad postgres url", func(t *testing.T) {
		if _, err := Open(ctx, "postgres://%zz"); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestClampLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, DefaultLimit},
		{-3, DefaultLimit},
		{1, 1},
		{100, 100},
		{500, MaxLimit},
	}
	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
