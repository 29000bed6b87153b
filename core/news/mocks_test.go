package news

import (
	"context"
	"io"
	"strings"
	"sync"

	"briefly-news-core/core/interfaces"
	"briefly-news-core/core/pagination"
)

// mockProvider is a mock implementation of the PageProvider interface
type mockProvider struct {
	fetchFunc func(ctx context.Context, category, cursor string) (pagination.Page, error)

	mu    sync.Mutex
	calls []string
}

func (m *mockProvider) FetchPage(ctx context.Context, category, cursor string) (pagination.Page, error) {
	m.mu.Lock()
	m.calls = append(m.calls, category+"|"+cursor)
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, category, cursor)
	}
	return pagination.Page{}, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int          { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
