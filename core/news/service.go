// ABOUTME: News façade orchestrating fetch, aggregation, and pagination per category
// ABOUTME: Publishes immutable state snapshots; generation tagging drops stale in-flight results

package news

import (
	"context"
	"sync"

	"briefly-news-core/core/domain"
	coreerrors "briefly-news-core/core/errors"
	"briefly-news-core/core/interfaces"
)

// Snapshot is an immutable view of the façade's state, published to
// subscribers after every state change. The presentation layer renders
// snapshots; it never reaches into the service.
type Snapshot struct {
	Category      string
	Items         []domain.DigestItem
	IsLoading     bool
	IsLoadingMore bool
	Err           error
	NextCursor    string
}

// HasMore reports whether another page can be loaded.
func (s Snapshot) HasMore() bool {
	return s.NextCursor != ""
}

// Listener receives state snapshots.
type Listener func(Snapshot)

// Service is the client façade over the news pipeline. One Service
// instance backs one category screen; its state is owned here and
// mutated only by its own operations.
type Service struct {
	provider PageProvider
	logger   interfaces.Logger

	mu         sync.Mutex
	state      Snapshot
	generation uint64
	listeners  []Listener
}

// NewService creates a façade over the given page provider.
func NewService(provider PageProvider, logger interfaces.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Subscribe registers a listener for state snapshots. The listener is
// immediately called with the current state.
func (s *Service) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	l(snap)
}

// Snapshot returns the current state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// FetchNews resets all state for the category and loads its first page.
// A newer FetchNews call supersedes any in-flight one: the superseded
// call's results are dropped when they arrive, never written over
// fresher state.
func (s *Service) FetchNews(ctx context.Context, category string) error {
	if category == "" {
		err := &coreerrors.ValidationError{Field: "category", Message: "category cannot be empty"}
		s.mu.Lock()
		s.generation++
		s.state = Snapshot{Err: err}
		s.publishLocked()
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state = Snapshot{Category: category, IsLoading: true}
	s.publishLocked()
	s.mu.Unlock()

	page, err := s.provider.FetchPage(ctx, category, "")

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// A newer fetch superseded this one while it was in flight.
		if s.logger != nil {
			s.logger.Debug("Dropping stale fetch result", map[string]interface{}{
				"category": category,
			})
		}
		return nil
	}

	if err != nil {
		if s.logger != nil {
			s.logger.Error("Fetch failed", map[string]interface{}{
				"category": category,
				"error":    err.Error(),
			})
		}
		s.state = Snapshot{Category: category, Err: err}
		s.publishLocked()
		return err
	}

	s.state = Snapshot{
		Category:   category,
		Items:      page.Items,
		NextCursor: page.NextCursor,
	}
	s.publishLocked()
	return nil
}

// FetchMoreNews loads the next page for the category and appends it.
// The call is a no-op when no next cursor exists, when another load-more
// is already in flight, or when the category is not the one currently
// displayed.
func (s *Service) FetchMoreNews(ctx context.Context, category string) error {
	s.mu.Lock()
	if s.state.IsLoadingMore || s.state.NextCursor == "" || s.state.Category != category {
		s.mu.Unlock()
		return nil
	}

	gen := s.generation
	cursor := s.state.NextCursor
	s.state.IsLoadingMore = true
	s.publishLocked()
	s.mu.Unlock()

	page, err := s.provider.FetchPage(ctx, category, cursor)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return nil
	}

	s.state.IsLoadingMore = false

	if err != nil {
		if s.logger != nil {
			s.logger.Error("Load more failed", map[string]interface{}{
				"category": category,
				"error":    err.Error(),
			})
		}
		s.state.Err = err
		s.publishLocked()
		return err
	}

	s.state.Items = append(s.state.Items, page.Items...)
	s.state.NextCursor = page.NextCursor
	s.state.Err = nil
	s.publishLocked()
	return nil
}

// Reset clears all state, invalidating any cursor the previous category
// issued.
func (s *Service) Reset() {
	s.mu.Lock()
	s.generation++
	s.state = Snapshot{}
	s.publishLocked()
	s.mu.Unlock()
}

// snapshotLocked copies the state so published snapshots are immune to
// later appends. Caller holds the lock.
func (s *Service) snapshotLocked() Snapshot {
	snap := s.state
	snap.Items = make([]domain.DigestItem, len(s.state.Items))
	copy(snap.Items, s.state.Items)
	return snap
}

// publishLocked delivers the current snapshot to all listeners. Caller
// holds the lock; delivery is synchronous and listeners must not call
// back into the service.
func (s *Service) publishLocked() {
	snap := s.snapshotLocked()
	for _, l := range s.listeners {
		l(snap)
	}
}
