// go_youtube: YouTube Data API list MCP server.
//
// Exposes list tools for channels, playlists, playlist items and videos, each
// as a single-page and an all-pages variant, plus recentInvocations.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_youtube/internal/engine"
	"github.com/anatolykoptev/go_youtube/internal/engine/sources"
	"github.com/anatolykoptev/go_youtube/internal/journal"
	"github.com/anatolykoptev/go_youtube/internal/ytserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	initEngine()
	c := engine.Cfg

	if c.YouTubeAPIKey == "" {
		slog.Error("GOOGLE_API_KEY is required")
		os.Exit(1)
	}

	slog.Info("starting go_youtube",
		slog.String("port", mcpPort),
		slog.String("service", c.ServiceName),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := journal.Open(ctx, c.JournalDSN)
	cancel()
	if err != nil {
		slog.Warn("journal init failed, invocations will not be recorded", slog.Any("error", err))
		store = journal.Nop{}
	}
	defer store.Close()

	lister := engine.CachedLister{Lister: sources.NewYouTubeFromConfig()}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_youtube",
		Title:   c.ServiceName,
		Version: version,
	}, nil)

	if err := ytserver.RegisterTools(server, lister, store); err != nil {
		slog.Error("tool registration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("tools registered", slog.Int("count", ytserver.ToolCount))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_youtube",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		ServiceName:           env.Str("SERVICE_NAME", "YouTube"),
		YouTubeAPIKey:         env.Str("GOOGLE_API_KEY", ""),
		YouTubeAPIKeyFallback: env.Str("GOOGLE_API_KEY_FALLBACK", ""),
		YouTubeAPIBase:        env.Str("YOUTUBE_API_BASE", sources.DefaultYouTubeBase),
		YouTubeRPS:            env.Float("YOUTUBE_RPS", 5),
		YouTubeBurst:          env.Int("YOUTUBE_BURST", 5),
		FetchTimeout:          env.Duration("FETCH_TIMEOUT", 15*time.Second),
		JournalDSN:            env.Str("JOURNAL_DSN", ""),
		RedisURL:              env.Str("REDIS_URL", ""),
		CacheTTL:              env.Duration("CACHE_TTL", 0),
		CacheMaxEntries:       env.Int("CACHE_MAX_ENTRIES", 1000),
	}
	c.CacheCleanupInterval = env.Duration("CACHE_CLEANUP_INTERVAL", c.CacheTTL)
	c.HTTPClient = &http.Client{
		Timeout: c.FetchTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
		},
	}

	engine.Init(c)
	engine.InitCache(c.RedisURL, c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
