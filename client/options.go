// ABOUTME: Configuration options for the Briefly library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package briefly

import (
	"time"

	"briefly-news-core/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// Cache stores fetched feed documents between page turns
	Cache interfaces.Cache

	// HTTPClient performs feed and API requests
	HTTPClient interfaces.HTTPClient

	// Logger receives structured log output
	Logger interfaces.Logger

	// PageSize is the number of items per page
	PageSize int

	// RegistryPath is the feed configuration file; empty keeps the
	// registry in memory with default categories
	RegistryPath string

	// HostedAPIBaseURL switches the client to the hosted digest API
	// backend; empty uses local RSS aggregation
	HostedAPIBaseURL string

	// CacheTTL controls how long fetched feed documents stay cached
	CacheTTL time.Duration

	// SourceTimeout bounds each individual feed fetch
	SourceTimeout time.Duration
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithPageSize sets the number of items per page
func WithPageSize(size int) Option {
	return func(c *Config) error {
		if size < 1 {
			return ErrInvalidPageSize
		}
		c.PageSize = size
		return nil
	}
}

// WithRegistryPath sets the feed configuration file path
func WithRegistryPath(path string) Option {
	return func(c *Config) error {
		c.RegistryPath = path
		return nil
	}
}

// WithHostedAPI routes news loading through the hosted digest API
// instead of aggregating RSS feeds locally
func WithHostedAPI(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return ErrEmptyBaseURL
		}
		c.HostedAPIBaseURL = baseURL
		return nil
	}
}

// WithCacheTTL sets how long fetched feed documents stay cached
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		c.CacheTTL = ttl
		return nil
	}
}

// WithSourceTimeout bounds each individual feed fetch
func WithSourceTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.SourceTimeout = timeout
		return nil
	}
}
