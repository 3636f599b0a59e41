package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_youtube/internal/engine"
	"github.com/anatolykoptev/go_youtube/internal/engine/models"
	"github.com/anatolykoptev/go_youtube/internal/engine/params"
)

// DefaultYouTubeBase is the Data API host; collections live under /youtube/v3.
const DefaultYouTubeBase = "https://www.googleapis.com"

// YouTube lists resources through the YouTube Data API v3 with an API key.
// It is safe for concurrent use.
type YouTube struct {
	baseURL string
	keys    []string
	http    *http.Client
	limiter *rate.Limiter
	retry   engine.RetryConfig

	svc    *youtube.Service
	svcErr error
}

// YouTubeOption configures a YouTube client.
type YouTubeOption func(*YouTube)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) YouTubeOption {
	return func(y *YouTube) { y.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(c *http.Client) YouTubeOption {
	return func(y *YouTube) { y.http = c }
}

// WithFallbackKey adds a key tried when the previous one is out of quota.
func WithFallbackKey(key string) YouTubeOption {
	return func(y *YouTube) {
		if key != "" {
			y.keys = append(y.keys, key)
		}
	}
}

// WithRateLimit paces outgoing requests; rps <= 0 disables pacing.
func WithRateLimit(rps float64, burst int) YouTubeOption {
	return func(y *YouTube) {
		if rps <= 0 {
			y.limiter = nil
			return
		}
		y.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

func WithRetry(rc engine.RetryConfig) YouTubeOption {
	return func(y *YouTube) { y.retry = rc }
}

// NewYouTube returns a client authenticating with apiKey.
func NewYouTube(apiKey string, opts ...YouTubeOption) *YouTube {
	y := &YouTube{
		baseURL: DefaultYouTubeBase,
		keys:    []string{apiKey},
		http:    &http.Client{Timeout: 15 * time.Second},
		retry:   engine.DefaultRetryConfig,
	}
	for _, o := range opts {
		o(y)
	}

	base := y.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := &http.Client{
		Timeout:   y.http.Timeout,
		Transport: &pacedTransport{base: base, limiter: y.limiter, retry: y.retry},
	}
	// The key travels as a query parameter per call, so the service itself
	// carries no credentials.
	y.svc, y.svcErr = youtube.NewService(context.Background(),
		option.WithHTTPClient(hc),
		option.WithEndpoint(y.baseURL+"/"),
	)
	return y
}

// NewYouTubeFromConfig builds a client from engine.Cfg.
func NewYouTubeFromConfig() *YouTube {
	c := engine.Cfg
	opts := []YouTubeOption{
		WithFallbackKey(c.YouTubeAPIKeyFallback),
		WithRateLimit(c.YouTubeRPS, c.YouTubeBurst),
	}
	if c.YouTubeAPIBase != "" {
		opts = append(opts, WithBaseURL(c.YouTubeAPIBase))
	}
	if c.HTTPClient != nil {
		opts = append(opts, WithHTTPClient(c.HTTPClient))
	}
	return NewYouTube(c.YouTubeAPIKey, opts...)
}

// ListPage fetches one page of kind. Remote API failures are returned as
// *googleapi.Error.
func (y *YouTube) ListPage(ctx context.Context, kind models.Kind, p params.Params) (*models.Page, error) {
	if y.svcErr != nil {
		return nil, fmt.Errorf("youtube service: %w", y.svcErr)
	}
	engine.IncrRemoteRequests()

	var lastErr error
	for i, key := range y.keys {
		page, err := y.list(ctx, kind, p, key)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if !quotaExceeded(err) || i == len(y.keys)-1 {
			break
		}
		slog.Debug("youtube: key out of quota, trying fallback", slog.Any("err", err))
	}
	engine.IncrRemoteErrors()
	return nil, lastErr
}

func (y *YouTube) list(ctx context.Context, kind models.Kind, p params.Params, key string) (*models.Page, error) {
	q := p.Values()
	q.Set("key", key)
	opts := make([]googleapi.CallOption, 0, len(q))
	for k, v := range q {
		opts = append(opts, googleapi.QueryParameter(k, v...))
	}
	part := strings.Split(q.Get("part"), ",")

	var (
		resp any
		err  error
	)
	switch kind {
	case models.KindChannel:
		resp, err = y.svc.Channels.List(part).Context(ctx).Do(opts...)
	case models.KindPlaylist:
		resp, err = y.svc.Playlists.List(part).Context(ctx).Do(opts...)
	case models.KindPlaylistItem:
		resp, err = y.svc.PlaylistItems.List(part).Context(ctx).Do(opts...)
	case models.KindVideo:
		resp, err = y.svc.Videos.List(part).Context(ctx).Do(opts...)
	default:
		return nil, fmt.Errorf("youtube: unsupported kind %q", kind)
	}
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, err
		}
		return nil, fmt.Errorf("youtube %s: %w", kind.Collection(), err)
	}
	return toPage(resp)
}

// toPage re-encodes a typed list response as an undecoded page.
func toPage(resp any) (*models.Page, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode youtube response: %w", err)
	}
	var page models.Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decode youtube response: %w", err)
	}
	return &page, nil
}

// pacedTransport waits on the rate limiter before every attempt and retries
// transient statuses.
type pacedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
	retry   engine.RetryConfig
}

func (t *pacedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	return engine.RetryHTTP(ctx, t.retry, func() (*http.Response, error) {
		if t.limiter != nil {
			if err := t.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		r := req.Clone(ctx)
		r.Header.Set("User-Agent", engine.UserAgent)
		return t.base.RoundTrip(r)
	})
}

func quotaExceeded(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Code != http.StatusForbidden {
		return false
	}
	for _, e := range gerr.Errors {
		switch e.Reason {
		case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded":
			return true
		}
	}
	return false
}
