package journal

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// StreamKey is the Redis stream entries are appended to.
const StreamKey = "go_youtube:journal"

// streamMaxLen bounds the stream; trimming is approximate.
const streamMaxLen = 10000

// Redis appends entries to a capped Redis stream.
type Redis struct {
	rdb *redis.Client
	key string
}

// OpenRedis connects to the Redis server at url.
func OpenRedis(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("journal: parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("journal: ping redis: %w", err)
	}
	return &Redis{rdb: rdb, key: StreamKey}, nil
}

func (r *Redis) Record(ctx context.Context, e Entry) error {
	err := r.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: r.key,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{
			"id":          e.ID,
			"handler":     e.Handler,
			"request":     string(e.Request),
			"response":    string(e.Response),
			"error":       e.Error,
			"started_at":  strconv.FormatInt(e.StartedAt.UnixNano(), 10),
			"duration_ms": strconv.FormatInt(e.Duration.Milliseconds(), 10),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("journal: xadd: %w", err)
	}
	return nil
}

// Recent walks the stream backwards in batches, filtering by handler.
func (r *Redis) Recent(ctx context.Context, handler string, limit int) ([]Entry, error) {
	limit = ClampLimit(limit)
	const batch = 200

	var out []Entry
	end := "+"
	for len(out) < limit {
		msgs, err := r.rdb.XRevRangeN(ctx, r.key, end, "-", batch).Result()
		if err != nil {
			return nil, fmt.Errorf("journal: xrevrange: %w", err)
		}
		for _, m := range msgs {
			e := entryFromValues(m.Values)
			if handler != "" && e.Handler != handler {
				continue
			}
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
		if len(msgs) < batch {
			break
		}
		end = "(" + msgs[len(msgs)-1].ID
	}
	return out, nil
}

func (r *Redis) Close() error { return r.rdb.Close() }

func entryFromValues(v map[string]any) Entry {
	str := func(k string) string {
		s, _ := v[k].(string)
		return s
	}
	num := func(k string) int64 {
		n, _ := strconv.ParseInt(str(k), 10, 64)
		return n
	}
	req, resp := str("request"), str("response")
	return Entry{
		ID:        str("id"),
		Handler:   str("handler"),
		Request:   rawOrNil(&req),
		Response:  rawOrNil(&resp),
		Error:     str("error"),
		StartedAt: time.Unix(0, num("started_at")).UTC(),
		Duration:  msDuration(num("duration_ms")),
	}
}
