package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Defaults are tuned for local development: no Redis, no Elasticsearch and
// no upstream key means the service still boots and serves fallback data.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// YouTube Data API
	YouTubeAPIKey   string
	YouTubeEndpoint string // optional override, used by tests and proxies
	YouTubeTimeout  time.Duration

	// Sessions
	SessionTTL        time.Duration
	SeedAdminPassword string

	// Cookies
	CookieDomain string
	CookieSecure bool

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Redis (optional; empty address disables sessions-in-redis, feed cache and rate limits)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	FeedCacheTTL  time.Duration

	// Elasticsearch (optional catalog index)
	ElasticsearchAddrs string // comma-separated
	ElasticsearchUser  string
	ElasticsearchPass  string
	ESVideosIndex      string

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	env := getenv("APP_ENV", "development")
	return &Config{
		AppName: getenv("APP_NAME", "skatetube"),
		Env:     env,
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		YouTubeAPIKey:   getenv("YOUTUBE_API_KEY", ""),
		YouTubeEndpoint: getenv("YOUTUBE_API_ENDPOINT", ""),
		YouTubeTimeout:  getdur("YOUTUBE_TIMEOUT", 15*time.Second),

		SessionTTL:        getdur("SESSION_TTL", 7*24*time.Hour),
		SeedAdminPassword: getenv("SEED_ADMIN_PASSWORD", "admin123"),

		CookieDomain: getenv("COOKIE_DOMAIN", ""),
		// secure cookies follow the environment unless overridden
		CookieSecure: getbool("COOKIE_SECURE", env == "production"),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),
		FeedCacheTTL:  getdur("FEED_CACHE_TTL", 10*time.Minute),

		ElasticsearchAddrs: getenv("ELASTICSEARCH_ADDRS", ""),
		ElasticsearchUser:  getenv("ELASTICSEARCH_USERNAME", ""),
		ElasticsearchPass:  getenv("ELASTICSEARCH_PASSWORD", ""),
		ESVideosIndex:      getenv("ES_VIDEOS_INDEX", "videos"),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
	}
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// ESAddrs returns Elasticsearch addresses as a slice
func (c *Config) ESAddrs() []string {
	return splitList(c.ElasticsearchAddrs)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
