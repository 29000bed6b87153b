// ABOUTME: Client for the hosted digest API returning pre-digested news pages
// ABOUTME: Decodes the response as a tagged union, never mixing the two shapes

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"

	coreerrors "briefly-news-core/core/errors"
	"briefly-news-core/core/interfaces"
	"briefly-news-core/core/pagination"
)

// Client fetches digest pages from the hosted news API.
type Client struct {
	baseURL string
	deps    interfaces.Dependencies
}

// NewClient creates a hosted API client rooted at baseURL.
func NewClient(baseURL string, deps interfaces.Dependencies) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.New("invalid base URL")
	}

	return &Client{baseURL: parsed.String(), deps: deps}, nil
}

// newsResponse is the success shape of GET /news/{category}.
type newsResponse struct {
	Category   string            `json:"category"`
	News       []json.RawMessage `json:"news"`
	NextCursor *string           `json:"next_cursor"`
}

// errorResponse is the failure shape.
type errorResponse struct {
	Error string `json:"error"`
}

// FetchPage retrieves one page of digested news for a category. An empty
// cursor fetches the first page. The category path segment is
// percent-encoded before use.
func (c *Client) FetchPage(ctx context.Context, category, cursor string) (pagination.Page, error) {
	if category == "" {
		return pagination.Page{}, &coreerrors.ValidationError{Field: "category", Message: "category cannot be empty"}
	}
	if c.deps.HTTPClient == nil {
		return pagination.Page{}, errors.New("HTTP client not configured")
	}

	requestURL := c.baseURL + "/news/" + url.PathEscape(category)
	if cursor != "" {
		requestURL += "?cursor=" + url.QueryEscape(cursor)
	}

	resp, err := c.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return pagination.Page{}, &coreerrors.RemoteAPIError{Message: "failed to fetch news: " + err.Error()}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return pagination.Page{}, &coreerrors.RemoteAPIError{Message: "failed to read response: " + err.Error()}
	}

	page, err := decodePage(body)
	if err != nil {
		var apiErr *coreerrors.RemoteAPIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode()
		}
		return pagination.Page{}, err
	}

	return page, nil
}

// decodePage decodes the API response as a tagged union: the news shape
// is attempted first, and only on a structural mismatch (no "news" key)
// is the error shape attempted. The two shapes are never both applied
// to the same buffer.
func decodePage(body []byte) (pagination.Page, error) {
	var probe struct {
		News  json.RawMessage `json:"news"`
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return pagination.Page{}, &coreerrors.RemoteAPIError{Message: "failed to decode response: " + err.Error()}
	}

	if probe.News != nil {
		var news newsResponse
		if err := json.Unmarshal(body, &news); err != nil {
			return pagination.Page{}, &coreerrors.RemoteAPIError{Message: "failed to decode news payload: " + err.Error()}
		}
		return toPage(news)
	}

	if probe.Error != nil {
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err != nil {
			return pagination.Page{}, &coreerrors.RemoteAPIError{Message: "failed to decode error payload: " + err.Error()}
		}
		return pagination.Page{}, &coreerrors.RemoteAPIError{Message: apiErr.Error}
	}

	return pagination.Page{}, &coreerrors.RemoteAPIError{Message: "unrecognized response shape"}
}

func toPage(news newsResponse) (pagination.Page, error) {
	page := pagination.Page{}

	for _, raw := range news.News {
		item, err := decodeItem(raw)
		if err != nil {
			return pagination.Page{}, &coreerrors.RemoteAPIError{Message: "failed to decode news item: " + err.Error()}
		}
		page.Items = append(page.Items, item)
	}

	if news.NextCursor != nil {
		page.NextCursor = *news.NextCursor
	}

	return page, nil
}
