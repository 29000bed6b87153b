// ABOUTME: Main client for the Briefly library providing category news loading and feed management
// ABOUTME: Wires the registry, fetcher, aggregation engine, and pagination behind a clean API

package briefly

import (
	"context"
	"time"

	"briefly-news-core/core/aggregate"
	"briefly-news-core/core/discover"
	"briefly-news-core/core/fetch"
	"briefly-news-core/core/interfaces"
	"briefly-news-core/core/news"
	"briefly-news-core/core/registry"
	"briefly-news-core/core/remote"
	"briefly-news-core/pkg/config"
)

// Client is the main entry point for the Briefly library
type Client struct {
	service    *news.Service
	registry   *registry.Store
	discoverer *discover.Discoverer
	previewer  *discover.Previewer

	deps   interfaces.Dependencies
	config Config
}

// NewClient creates a new Briefly client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = DefaultHTTPClient()
	}
	if cfg.Cache == nil {
		cfg.Cache = DefaultMemoryCache()
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger()
	}

	deps := interfaces.Dependencies{
		Cache:      cfg.Cache,
		HTTPClient: cfg.HTTPClient,
		Logger:     cfg.Logger,
	}

	reg, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		return nil, err
	}

	provider, err := buildProvider(cfg, deps, reg)
	if err != nil {
		return nil, err
	}

	return &Client{
		service:    news.NewService(provider, cfg.Logger),
		registry:   reg,
		discoverer: discover.NewDiscoverer(cfg.HTTPClient),
		previewer:  discover.NewPreviewer(cfg.HTTPClient),
		deps:       deps,
		config:     cfg,
	}, nil
}

// NewClientFromEnv creates a client configured from environment variables
func NewClientFromEnv() (*Client, error) {
	envCfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if err := envCfg.Validate(); err != nil {
		return nil, err
	}

	options := []Option{
		WithHTTPClient(DefaultHTTPClient()),
		WithLogger(newEnvLogger(envCfg.LogLevel)),
		WithPageSize(envCfg.Pagination.PageSize),
		WithCacheTTL(time.Duration(envCfg.Cache.TTL) * time.Second),
		WithSourceTimeout(time.Duration(envCfg.Fetch.SourceTimeout) * time.Second),
		WithRegistryPath(envCfg.Registry.Path),
	}

	cache, err := buildEnvCache(envCfg)
	if err != nil {
		return nil, err
	}
	options = append(options, WithCache(cache))

	if envCfg.Remote.BaseURL != "" {
		options = append(options, WithHostedAPI(envCfg.Remote.BaseURL))
	}

	return NewClient(options...)
}

// buildProvider constructs the page provider for the configured backend
func buildProvider(cfg Config, deps interfaces.Dependencies, reg *registry.Store) (news.PageProvider, error) {
	if cfg.HostedAPIBaseURL != "" {
		return remote.NewClient(cfg.HostedAPIBaseURL, deps)
	}

	fetcher := fetch.NewFetcher(deps)
	fetcher.SetSourceTimeout(cfg.SourceTimeout)
	fetcher.SetCacheTTL(cfg.CacheTTL)

	return news.NewAggregatingProvider(reg, fetcher, aggregate.NewEngine(), cfg.PageSize), nil
}

// buildEnvCache constructs the cache backend named by the environment
func buildEnvCache(cfg *config.Config) (interfaces.Cache, error) {
	switch cfg.Cache.Type {
	case "redis":
		return DefaultRedisCache(cfg.Cache.Redis)
	case "sqlite":
		return DefaultSQLiteCache(cfg.Cache.SQLite.Path)
	default:
		return DefaultMemoryCache(), nil
	}
}

// FetchNews starts a fresh load for the given category.
// The returned error is also published to subscribers via the snapshot.
func (c *Client) FetchNews(ctx context.Context, category string) error {
	return c.service.FetchNews(ctx, category)
}

// FetchMoreNews loads the next page for the given category.
// It is a no-op when a load is already running or no more pages exist.
func (c *Client) FetchMoreNews(ctx context.Context, category string) error {
	return c.service.FetchMoreNews(ctx, category)
}

// Snapshot returns the current news state
func (c *Client) Snapshot() Snapshot {
	return snapshotToPublic(c.service.Snapshot())
}

// Subscribe registers a listener that receives every state change.
// The listener is called immediately with the current state.
func (c *Client) Subscribe(l Listener) {
	c.service.Subscribe(func(s news.Snapshot) {
		l(snapshotToPublic(s))
	})
}

// Reset clears the news state
func (c *Client) Reset() {
	c.service.Reset()
}

// Categories returns all category names in sorted order
func (c *Client) Categories() []string {
	return c.registry.Categories()
}

// Feeds returns the subscribed feeds for a category
func (c *Client) Feeds(category string) []FeedSource {
	domainFeeds := c.registry.Feeds(category)
	feeds := make([]FeedSource, len(domainFeeds))
	for i, f := range domainFeeds {
		feeds[i] = domainSourceToPublic(f)
	}
	return feeds
}

// AddFeed subscribes a feed under the given category
func (c *Client) AddFeed(category string, feed FeedSource) error {
	return c.registry.AddFeed(category, publicSourceToDomain(feed))
}

// RemoveFeed unsubscribes the feed with the given URL from a category
func (c *Client) RemoveFeed(category, url string) error {
	return c.registry.RemoveFeed(category, url)
}

// AddCategory creates a new empty category
func (c *Client) AddCategory(category string) error {
	return c.registry.AddCategory(category)
}

// RemoveCategory deletes a category and its feeds
func (c *Client) RemoveCategory(category string) error {
	return c.registry.RemoveCategory(category)
}

// RenameCategory renames a category, moving its feeds along
func (c *Client) RenameCategory(oldName, newName string) error {
	return c.registry.RenameCategory(oldName, newName)
}

// DiscoverFeed finds the RSS feed URL for a website
func (c *Client) DiscoverFeed(ctx context.Context, siteURL string) (string, error) {
	return c.discoverer.DiscoverFeedURL(ctx, siteURL)
}

// PreviewFeed fetches a candidate feed URL and returns its metadata
func (c *Client) PreviewFeed(ctx context.Context, feedURL string) (*discover.Preview, error) {
	return c.previewer.PreviewFeed(ctx, feedURL)
}

// Close releases resources held by the cache backend, if any
func (c *Client) Close() error {
	if closer, ok := c.deps.Cache.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
