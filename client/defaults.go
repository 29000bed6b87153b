// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default cache, HTTP, and logger backends

package briefly

import (
	"time"

	"briefly-news-core/core/interfaces"
	"briefly-news-core/infrastructure/cache/memory"
	"briefly-news-core/infrastructure/cache/redis"
	"briefly-news-core/infrastructure/cache/sqlite"
	httpInfra "briefly-news-core/infrastructure/http/standard"
	loggerInfra "briefly-news-core/infrastructure/logger/logrus"
	"briefly-news-core/pkg/config"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a SQLite cache at the given file path
func DefaultSQLiteCache(filePath string) (interfaces.Cache, error) {
	return sqlite.NewSQLiteCache(filePath)
}

// DefaultRedisCache creates a Redis cache from the given configuration
func DefaultRedisCache(cfg config.RedisConfig) (interfaces.Cache, error) {
	return redis.NewRedisCache(cfg)
}

// DefaultLogger creates a logrus logger at info level
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewLogrusLogger("info")
}

// newEnvLogger creates a logrus logger at the configured level
func newEnvLogger(level string) interfaces.Logger {
	return loggerInfra.NewLogrusLogger(level)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// defaultConfig returns the baseline configuration before options apply
func defaultConfig() Config {
	return Config{
		PageSize:      10,
		CacheTTL:      5 * time.Minute,
		SourceTimeout: 15 * time.Second,
	}
}
