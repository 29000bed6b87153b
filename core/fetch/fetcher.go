// ABOUTME: Concurrent feed fetcher retrieving every source of a category in parallel
// ABOUTME: Tolerates partial failures; only a fully failed category surfaces an error

package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"briefly-news-core/core/domain"
	coreerrors "briefly-news-core/core/errors"
	"briefly-news-core/core/interfaces"
	"briefly-news-core/core/rss"
)

const (
	// maxConcurrentFetches bounds the fan-out so a category with many
	// sources does not open unbounded connections.
	maxConcurrentFetches = 10

	defaultSourceTimeout = 15 * time.Second
	defaultCacheTTL      = 5 * time.Minute
)

// Fetcher retrieves and parses every RSS source of a category concurrently.
type Fetcher struct {
	deps          interfaces.Dependencies
	sourceTimeout time.Duration
	cacheTTL      time.Duration
}

// NewFetcher creates a new fetcher instance
func NewFetcher(deps interfaces.Dependencies) *Fetcher {
	return &Fetcher{
		deps:          deps,
		sourceTimeout: defaultSourceTimeout,
		cacheTTL:      defaultCacheTTL,
	}
}

// SetSourceTimeout overrides the per-source fetch timeout
func (f *Fetcher) SetSourceTimeout(d time.Duration) {
	if d > 0 {
		f.sourceTimeout = d
	}
}

// SetCacheTTL overrides how long parsed source results are cached
func (f *Fetcher) SetCacheTTL(d time.Duration) {
	f.cacheTTL = d
}

// FetchCategory fetches all sources for a category and returns the union
// of entries from the sources that succeeded. A source that times out,
// returns a non-2xx status, or fails to parse contributes zero entries
// and is logged. The call errors only when the category has no sources
// or every source failed.
func (f *Fetcher) FetchCategory(ctx context.Context, category string, sources []domain.FeedSource) ([]domain.RawFeedEntry, error) {
	if len(sources) == 0 {
		return nil, &coreerrors.NoFeedsError{Category: category}
	}

	type sourceResult struct {
		entries []domain.RawFeedEntry
		err     error
		source  domain.FeedSource
	}

	resultsChan := make(chan sourceResult, len(sources))
	semaphore := make(chan struct{}, maxConcurrentFetches)

	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src domain.FeedSource) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				resultsChan <- sourceResult{source: src, err: ctx.Err()}
				return
			default:
			}

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			entries, err := f.fetchSource(ctx, src)
			resultsChan <- sourceResult{entries: entries, err: err, source: src}
		}(src)
	}

	// Barrier: no entry is processed until every source has settled.
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	entries := make([]domain.RawFeedEntry, 0)
	failed := 0
	var ctxErr error

	for result := range resultsChan {
		if result.err != nil {
			failed++
			if errors.Is(result.err, context.Canceled) && ctxErr == nil {
				ctxErr = result.err
			}
			if f.deps.Logger != nil {
				f.deps.Logger.Warn("Feed source failed", map[string]interface{}{
					"source":   result.source.Name,
					"url":      result.source.URL,
					"category": category,
					"error":    result.err.Error(),
				})
			}
			continue
		}
		entries = append(entries, result.entries...)
	}

	if ctxErr != nil {
		return entries, ctxErr
	}

	if failed == len(sources) {
		return nil, &coreerrors.AllSourcesFailedError{Category: category, Sources: len(sources)}
	}

	return entries, nil
}

// fetchSource retrieves one source, consulting the cache first. Cached
// values hold the already parsed entries so a cache hit skips both the
// network round trip and the XML parse.
func (f *Fetcher) fetchSource(ctx context.Context, src domain.FeedSource) ([]domain.RawFeedEntry, error) {
	if err := src.Validate(); err != nil {
		return nil, &coreerrors.SourceError{Source: src.Name, URL: src.URL, Err: err}
	}

	if cached := f.getCachedEntries(ctx, src.URL); cached != nil {
		return cached, nil
	}

	if f.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	fetchCtx, cancel := context.WithTimeout(ctx, f.sourceTimeout)
	defer cancel()

	resp, err := f.deps.HTTPClient.Get(fetchCtx, src.URL)
	if err != nil {
		return nil, &coreerrors.SourceError{Source: src.Name, URL: src.URL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.SourceError{
			Source: src.Name,
			URL:    src.URL,
			Err:    fmt.Errorf("feed returned status %d", resp.StatusCode()),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.SourceError{Source: src.Name, URL: src.URL, Err: err}
	}

	result, err := rss.Parse(body, src.Name)
	if err != nil {
		return nil, &coreerrors.SourceError{Source: src.Name, URL: src.URL, Err: err}
	}

	f.cacheEntries(ctx, src.URL, result.Items)

	return result.Items, nil
}

func (f *Fetcher) getCachedEntries(ctx context.Context, url string) []domain.RawFeedEntry {
	if f.deps.Cache == nil || f.cacheTTL <= 0 {
		return nil
	}

	data, err := f.deps.Cache.Get(ctx, "feed:"+url)
	if err != nil || data == nil {
		return nil
	}

	var entries []domain.RawFeedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	return entries
}

func (f *Fetcher) cacheEntries(ctx context.Context, url string, entries []domain.RawFeedEntry) {
	if f.deps.Cache == nil || f.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}

	// Cache errors are not worth failing a successful fetch over.
	_ = f.deps.Cache.Set(ctx, "feed:"+url, data, f.cacheTTL)
}
