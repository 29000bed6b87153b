// ABOUTME: Feed registry mapping category names to their configured RSS sources
// ABOUTME: Explicitly owned store with JSON persistence, no ambient singleton

package registry

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"

	"briefly-news-core/core/domain"
	coreerrors "briefly-news-core/core/errors"
)

// Config is the persisted shape of the registry.
type Config struct {
	Categories map[string][]domain.FeedSource `json:"categories"`
}

// Store owns the category-to-sources mapping. All mutations are written
// back to the config file immediately. Safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	path       string
	categories map[string][]domain.FeedSource
}

// Load reads the registry from the given JSON file. A missing or
// unreadable file falls back to the default configuration, which is
// written out so later mutations start from a known state. An empty
// path keeps the store purely in memory.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			var cfg Config
			if err := json.Unmarshal(data, &cfg); err == nil && cfg.Categories != nil {
				s.categories = cfg.Categories
				return s, nil
			}
		}
	}

	s.categories = defaultCategories()
	if path != "" {
		if err := s.save(); err != nil {
			return nil, coreerrors.WrapError(err, "failed to write default feed config")
		}
	}

	return s, nil
}

// Feeds returns the sources configured for a category. The slice is a
// copy; callers cannot mutate registry state through it.
func (s *Store) Feeds(category string) []domain.FeedSource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feeds := s.categories[normalize(category)]
	out := make([]domain.FeedSource, len(feeds))
	copy(out, feeds)
	return out
}

// Categories returns all category names, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.categories))
	for name := range s.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryExists reports whether a category is configured.
func (s *Store) CategoryExists(category string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.categories[normalize(category)]
	return ok
}

// AddFeed appends a source to a category, creating the category if
// needed. The source's category field is rewritten to match.
func (s *Store) AddFeed(category string, feed domain.FeedSource) error {
	key := normalize(category)
	feed.Category = key

	if err := feed.Validate(); err != nil {
		return &coreerrors.ValidationError{Field: "feed", Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[key] = append(s.categories[key], feed)
	return s.save()
}

// RemoveFeed deletes the source with the given URL from a category.
func (s *Store) RemoveFeed(category, url string) error {
	key := normalize(category)

	s.mu.Lock()
	defer s.mu.Unlock()

	feeds, ok := s.categories[key]
	if !ok {
		return errors.New("category not found")
	}

	kept := feeds[:0]
	for _, f := range feeds {
		if f.URL != url {
			kept = append(kept, f)
		}
	}
	s.categories[key] = kept
	return s.save()
}

// AddCategory creates an empty category. Adding an existing category is
// a no-op.
func (s *Store) AddCategory(category string) error {
	key := normalize(category)
	if key == "" {
		return &coreerrors.ValidationError{Field: "category", Message: "category name cannot be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[key]; ok {
		return nil
	}
	s.categories[key] = []domain.FeedSource{}
	return s.save()
}

// RemoveCategory deletes a category and all its sources.
func (s *Store) RemoveCategory(category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categories, normalize(category))
	return s.save()
}

// RenameCategory moves a category's sources under a new name, rewriting
// the category field of every member feed.
func (s *Store) RenameCategory(oldName, newName string) error {
	oldKey := normalize(oldName)
	newKey := normalize(newName)
	if oldKey == newKey {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	feeds, ok := s.categories[oldKey]
	if !ok {
		return errors.New("category not found")
	}

	renamed := make([]domain.FeedSource, len(feeds))
	for i, f := range feeds {
		f.Category = newKey
		renamed[i] = f
	}

	delete(s.categories, oldKey)
	s.categories[newKey] = renamed
	return s.save()
}

// save writes the current state to the config file. Caller holds the lock.
func (s *Store) save() error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(Config{Categories: s.categories}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
