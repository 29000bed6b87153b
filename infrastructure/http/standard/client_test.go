// ABOUTME: Tests for the standard HTTP client
// ABOUTME: Covers retry behavior, status handling, headers, and context cancellation

package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<rss></rss>"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if string(body) != "<rss></rss>" {
		t.Errorf("unexpected body: %q", string(body))
	}

	if got := resp.Header("Content-Type"); got != "application/rss+xml" {
		t.Errorf("expected content type header, got %q", got)
	}
}

func TestGet_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body().Close()

	if gotUA != userAgent {
		t.Errorf("expected user agent %q, got %q", userAgent, gotUA)
	}
}

func TestGet_RetriesOnServerError(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		t.Errorf("expected status 200 after retries, got %d", resp.StatusCode())
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestGet_DoesNotRetryClientErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body().Close()

	if resp.StatusCode() != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.StatusCode())
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Errorf("expected 1 attempt for 4xx, got %d", got)
	}
}

func TestGet_ExhaustsRetries(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	_, err := client.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if got := atomic.LoadInt32(&attempts); got != maxRetries {
		t.Errorf("expected %d attempts, got %d", maxRetries, got)
	}
}

func TestGet_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewStandardHTTPClient(5 * time.Second)
	_, err := client.Get(ctx, server.URL)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestGet_InvalidURL(t *testing.T) {
	client := NewStandardHTTPClient(5 * time.Second)
	_, err := client.Get(context.Background(), "://not-a-url")
	if err == nil {
		t.Fatal("expected error for invalid URL")
	}
}

func TestLimiterFor_SharedPerHost(t *testing.T) {
	client := NewStandardHTTPClient(5 * time.Second)

	a := client.limiterFor("https://example.com/feed.xml")
	b := client.limiterFor("https://example.com/other.xml")
	c := client.limiterFor("https://elsewhere.com/feed.xml")

	if a != b {
		t.Error("expected same limiter for same host")
	}
	if a == c {
		t.Error("expected distinct limiters for distinct hosts")
	}
}
