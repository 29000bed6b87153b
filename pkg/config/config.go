// ABOUTME: Configuration management for the library with environment variable support
// ABOUTME: Defines configuration structures for fetching, caching, pagination, and the hosted API

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all library configuration
type Config struct {
	// Fetch contains feed fetching configuration
	Fetch FetchConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Pagination contains page sizing configuration
	Pagination PaginationConfig

	// Remote contains hosted digest API configuration
	Remote RemoteConfig

	// Registry contains feed registry configuration
	Registry RegistryConfig

	// LogLevel controls logging verbosity (debug/info/warn/error)
	LogLevel string
}

// FetchConfig holds feed fetching configuration
type FetchConfig struct {
	// HTTPTimeout is the per-request timeout in seconds
	HTTPTimeout int

	// SourceTimeout is the per-source fetch deadline in seconds
	SourceTimeout int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// TTL is the feed document cache TTL in seconds
	TTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// PaginationConfig holds page sizing configuration
type PaginationConfig struct {
	// PageSize is the number of items per page
	PageSize int
}

// RemoteConfig holds hosted digest API configuration
type RemoteConfig struct {
	// BaseURL is the API base URL; empty disables the hosted backend
	BaseURL string
}

// RegistryConfig holds feed registry configuration
type RegistryConfig struct {
	// Path is the feed configuration file path; empty keeps the
	// registry in memory only
	Path string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Fetch: FetchConfig{
			HTTPTimeout:   getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
			SourceTimeout: getEnvAsIntOrDefault("SOURCE_TIMEOUT", 15),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			TTL:  getEnvAsIntOrDefault("CACHE_TTL", 300),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "briefly_cache.db"),
			},
		},
		Pagination: PaginationConfig{
			PageSize: getEnvAsIntOrDefault("PAGE_SIZE", 10),
		},
		Remote: RemoteConfig{
			BaseURL: getEnvOrDefault("NEWS_API_BASE_URL", ""),
		},
		Registry: RegistryConfig{
			Path: getEnvOrDefault("FEED_CONFIG_PATH", ""),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Fetch.HTTPTimeout < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	if c.Fetch.SourceTimeout < 1 {
		return errors.New("source timeout must be at least 1 second")
	}

	if c.Cache.Type != "memory" && c.Cache.Type != "redis" && c.Cache.Type != "sqlite" {
		return errors.New("cache type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Pagination.PageSize < 1 {
		return errors.New("page size must be at least 1")
	}

	return nil
}
