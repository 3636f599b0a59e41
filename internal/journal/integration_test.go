//go:build integration

package journal

import (
	"context"
	"os"
	"testing"
)

func TestIntegration_Postgres(t *testing.T) {
	url := os.Getenv("JOURNAL_TEST_POSTGRES")
	if url == "" {
		t.Skip("JOURNAL_TEST_POSTGRES not set")
	}
	ctx := context.Background()
	s, err := OpenPostgres(ctx, url)
	if err != nil {
		t.Fatalf("OpenPostgres() error = %v", err)
	}
	defer s.Close()
	if _, err := s.pool.Exec(ctx, "TRUNCATE invocations"); err != nil {
		t.Fatal(err)
	}
	exerciseStore(t, s)
}

func TestIntegration_Redis(t *testing.T) {
	url := os.Getenv("JOURNAL_TEST_REDIS")
	if url == "" {
		t.Skip("JOURNAL_TEST_REDIS not set")
	}
	ctx := context.Background()
	s, err := OpenRedis(ctx, url)
	if err != nil {
		t.Fatalf("OpenRedis() error = %v", err)
	}
	defer s.Close()
	s.key = StreamKey + ":test"
	s.rdb.Del(ctx, s.key)
	defer s.rdb.Del(ctx, s.key)
	exerciseStore(t, s)
}
