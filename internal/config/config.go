package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Roulette RouletteConfig
	Tracker  TrackerConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr     string
	RateLimitDur time.Duration
}

// CacheConfig holds cache configuration
type CacheConfig struct {
	Backend   string // "memory" or "redis"
	TTL       time.Duration
	RedisAddr string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// CatalogConfig holds upstream catalog fetch settings
type CatalogConfig struct {
	BaseURL         string
	RefreshInterval time.Duration
}

// RouletteConfig holds roulette session settings
type RouletteConfig struct {
	SessionTTL time.Duration
}

// TrackerConfig holds price tracker settings
type TrackerConfig struct {
	DataPath string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// Load parses flags and environment variables to build configuration
func Load() *Config {
	cfg := &Config{}

	// Define flags with defaults
	httpAddr := flag.String("http", ":8080", "HTTP server address")
	rateLimitDur := flag.Duration("rate-limit", time.Second, "Minimum delay between requests to the upstream API")
	cacheTTL := flag.Duration("cache-ttl", 36*time.Hour, "Cache TTL for catalog snapshots")
	cacheBackend := flag.String("cache-backend", "memory", "Cache backend: memory or redis")
	redisAddr := flag.String("redis-addr", "localhost:6379", "Redis server address")
	catalogBaseURL := flag.String("catalog-url", "https://valorant-api.com/v1", "Upstream catalog API base URL")
	refreshInterval := flag.Duration("refresh-interval", 6*time.Hour, "Interval between catalog refreshes")
	sessionTTL := flag.Duration("session-ttl", 30*time.Minute, "Idle TTL for roulette sessions")
	trackerPath := flag.String("tracker-data", "data/skins.json", "Price tracker data file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	dbHost := flag.String("db-host", "localhost", "PostgreSQL host")
	dbPort := flag.Int("db-port", 5432, "PostgreSQL port")
	dbUser := flag.String("db-user", "postgres", "PostgreSQL user")
	dbPassword := flag.String("db-password", "postgres", "PostgreSQL password")
	dbName := flag.String("db-name", "valorant_hub", "PostgreSQL database name")
	dbSSLMode := flag.String("db-sslmode", "disable", "PostgreSQL SSL mode")

	flag.Parse()

	// Apply environment variable overrides
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		*httpAddr = v
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*rateLimitDur = d
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*cacheTTL = d
		}
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		*cacheBackend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		*redisAddr = v
	}
	if v := os.Getenv("CATALOG_URL"); v != "" {
		*catalogBaseURL = v
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*refreshInterval = d
		}
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*sessionTTL = d
		}
	}
	if v := os.Getenv("TRACKER_DATA"); v != "" {
		*trackerPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		*logLevel = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		*dbHost = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			*dbPort = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		*dbUser = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		*dbPassword = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		*dbName = v
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		*dbSSLMode = v
	}

	cfg.Server = ServerConfig{
		HTTPAddr:     *httpAddr,
		RateLimitDur: *rateLimitDur,
	}

	cfg.Cache = CacheConfig{
		Backend:   *cacheBackend,
		TTL:       *cacheTTL,
		RedisAddr: *redisAddr,
	}

	cfg.Database = DatabaseConfig{
		Host:     *dbHost,
		Port:     *dbPort,
		User:     *dbUser,
		Password: *dbPassword,
		Database: *dbName,
		SSLMode:  *dbSSLMode,
	}

	cfg.Catalog = CatalogConfig{
		BaseURL:         *catalogBaseURL,
		RefreshInterval: *refreshInterval,
	}

	cfg.Roulette = RouletteConfig{
		SessionTTL: *sessionTTL,
	}

	cfg.Tracker = TrackerConfig{
		DataPath: *trackerPath,
	}

	cfg.Logging = LoggingConfig{
		Level: *logLevel,
	}

	return cfg
}
