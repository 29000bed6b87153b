// ABOUTME: Page providers backing the news façade
// ABOUTME: The RSS provider recomputes the full aggregation per page; the hosted API is the alternative

package news

import (
	"context"

	"briefly-news-core/core/aggregate"
	"briefly-news-core/core/fetch"
	"briefly-news-core/core/pagination"
	"briefly-news-core/core/registry"
)

// PageProvider supplies one page of digest items for a category. The
// hosted API client and the local RSS aggregation pipeline both satisfy
// it, so the façade does not care which backend serves a category.
type PageProvider interface {
	// FetchPage returns the page identified by cursor; an empty cursor
	// means the first page.
	FetchPage(ctx context.Context, category, cursor string) (pagination.Page, error)
}

// AggregatingProvider serves pages by aggregating a category's RSS
// sources locally. Every page request re-runs the full fetch and
// aggregation, then slices at the cursor's offset; the fetcher's
// short-lived source cache keeps consecutive page turns from hammering
// the upstream feeds.
type AggregatingProvider struct {
	registry *registry.Store
	fetcher  *fetch.Fetcher
	engine   *aggregate.Engine
	pageSize int
}

// NewAggregatingProvider wires the RSS pipeline into a page provider.
func NewAggregatingProvider(reg *registry.Store, fetcher *fetch.Fetcher, engine *aggregate.Engine, pageSize int) *AggregatingProvider {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &AggregatingProvider{
		registry: reg,
		fetcher:  fetcher,
		engine:   engine,
		pageSize: pageSize,
	}
}

// FetchPage implements PageProvider.
func (p *AggregatingProvider) FetchPage(ctx context.Context, category, cursor string) (pagination.Page, error) {
	pageIndex, err := pagination.DecodeCursor(cursor)
	if err != nil {
		return pagination.Page{}, err
	}

	sources := p.registry.Feeds(category)
	entries, err := p.fetcher.FetchCategory(ctx, category, sources)
	if err != nil {
		return pagination.Page{}, err
	}

	items := p.engine.Aggregate(category, entries)
	return pagination.Slice(items, pageIndex, p.pageSize), nil
}
