package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"briefly-news-core/core/domain"
	coreerrors "briefly-news-core/core/errors"
	"briefly-news-core/core/interfaces"
)

func feedXML(titles ...string) string {
	body := `<rss><channel><title>Channel</title>`
	for _, title := range titles {
		body += fmt.Sprintf(`<item><title>%s</title><link>https://example.com/%s</link></item>`, title, title)
	}
	return body + `</channel></rss>`
}

func testSources(n int) []domain.FeedSource {
	sources := make([]domain.FeedSource, n)
	for i := range sources {
		sources[i] = domain.FeedSource{
			Name:     fmt.Sprintf("Source %d", i),
			URL:      fmt.Sprintf("https://feeds.example.com/%d", i),
			Category: "technology",
		}
	}
	return sources
}

func TestFetchCategory_AllSourcesSucceed(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: feedXML("a", "b")}, nil
		},
	}

	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}})
	entries, err := f.FetchCategory(context.Background(), "technology", testSources(3))

	if err != nil {
		t.Fatalf("FetchCategory returned error: %v", err)
	}
	if len(entries) != 6 {
		t.Errorf("FetchCategory returned %d entries, want 6", len(entries))
	}
}

func TestFetchCategory_OneSourceFails(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if url == "https://feeds.example.com/1" {
				return nil, errors.New("connection refused")
			}
			return &mockResponse{statusCode: 200, body: feedXML("a")}, nil
		},
	}

	logger := &mockLogger{}
	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Logger: logger})
	entries, err := f.FetchCategory(context.Background(), "technology", testSources(3))

	if err != nil {
		t.Fatalf("FetchCategory returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("FetchCategory returned %d entries, want 2 from surviving sources", len(entries))
	}
	if len(logger.warnings) != 1 {
		t.Errorf("logged %d warnings, want 1", len(logger.warnings))
	}
}

func TestFetchCategory_AllSourcesFail(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}

	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}})
	_, err := f.FetchCategory(context.Background(), "technology", testSources(3))

	if !coreerrors.IsAllSourcesFailed(err) {
		t.Errorf("FetchCategory error = %v, want AllSourcesFailedError", err)
	}
}

func TestFetchCategory_NoSources(t *testing.T) {
	f := NewFetcher(interfaces.Dependencies{HTTPClient: &mockHTTPClient{}})
	_, err := f.FetchCategory(context.Background(), "technology", nil)

	if !coreerrors.IsNoFeeds(err) {
		t.Errorf("FetchCategory error = %v, want NoFeedsError", err)
	}
}

func TestFetchCategory_NonSuccessStatusIsFailure(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if url == "https://feeds.example.com/0" {
				return &mockResponse{statusCode: 503, body: "unavailable"}, nil
			}
			return &mockResponse{statusCode: 200, body: feedXML("a")}, nil
		},
	}

	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}})
	entries, err := f.FetchCategory(context.Background(), "technology", testSources(2))

	if err != nil {
		t.Fatalf("FetchCategory returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("FetchCategory returned %d entries, want 1", len(entries))
	}
}

func TestFetchCategory_MalformedFeedIsFailure(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if url == "https://feeds.example.com/0" {
				return &mockResponse{statusCode: 200, body: "<rss><channel><item>"}, nil
			}
			return &mockResponse{statusCode: 200, body: feedXML("a")}, nil
		},
	}

	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}})
	entries, err := f.FetchCategory(context.Background(), "technology", testSources(2))

	if err != nil {
		t.Fatalf("FetchCategory returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("FetchCategory returned %d entries, want 1", len(entries))
	}
}

func TestFetchCategory_InvalidSourceURLSkippedWithoutIO(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200, body: feedXML("a")}, nil
		},
	}

	sources := []domain.FeedSource{
		{Name: "Bad", URL: "not-a-url", Category: "technology"},
		{Name: "Good", URL: "https://feeds.example.com/ok", Category: "technology"},
	}

	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}})
	entries, err := f.FetchCategory(context.Background(), "technology", sources)

	if err != nil {
		t.Fatalf("FetchCategory returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("FetchCategory returned %d entries, want 1", len(entries))
	}
	if calls != 1 {
		t.Errorf("HTTP client called %d times, want 1 (invalid URL skipped)", calls)
	}
}

func TestFetchCategory_CacheHitSkipsHTTP(t *testing.T) {
	cached, _ := json.Marshal([]domain.RawFeedEntry{{Title: "cached", Source: "Source 0"}})
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return cached, nil
		},
	}

	calls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200, body: feedXML("a")}, nil
		},
	}

	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Cache: cache, Logger: &mockLogger{}})
	entries, err := f.FetchCategory(context.Background(), "technology", testSources(1))

	if err != nil {
		t.Fatalf("FetchCategory returned error: %v", err)
	}
	if calls != 0 {
		t.Errorf("HTTP client called %d times, want 0 on cache hit", calls)
	}
	if len(entries) != 1 || entries[0].Title != "cached" {
		t.Errorf("entries = %+v, want the cached entry", entries)
	}
}

func TestFetchCategory_SuccessPopulatesCache(t *testing.T) {
	var setKey string
	var setTTL time.Duration
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("key not found")
		},
		setFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			setKey = key
			setTTL = ttl
			return nil
		},
	}

	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: feedXML("a")}, nil
		},
	}

	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Cache: cache, Logger: &mockLogger{}})
	f.SetCacheTTL(2 * time.Minute)

	if _, err := f.FetchCategory(context.Background(), "technology", testSources(1)); err != nil {
		t.Fatalf("FetchCategory returned error: %v", err)
	}

	if setKey != "feed:https://feeds.example.com/0" {
		t.Errorf("cache key = %q, want feed:<url>", setKey)
	}
	if setTTL != 2*time.Minute {
		t.Errorf("cache TTL = %v, want 2m", setTTL)
	}
}
