package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	ServiceName           string
	YouTubeAPIKey         string
	YouTubeAPIKeyFallback string // tried when the primary key is out of quota
	YouTubeAPIBase        string
	YouTubeRPS            float64
	YouTubeBurst          int
	FetchTimeout          time.Duration
	JournalDSN            string // sqlite path, postgres:// or redis:// URL; "off" disables
	RedisURL              string // L2 page cache; empty = memory only
	CacheTTL              time.Duration
	CacheMaxEntries       int
	CacheCleanupInterval  time.Duration
	HTTPClient            *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, journal).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
