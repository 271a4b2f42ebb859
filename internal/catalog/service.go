package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"atlantis/internal/model"
)

// Fetcher is the catalog upstream collaborator.
type Fetcher interface {
	GetBooks(ctx context.Context) ([]map[string]any, error)
}

// Service owns the shared catalog index. It builds lazily on first use,
// deduplicates concurrent builds, and replaces the index as a unit on
// refresh. Callers never observe a half-built index.
type Service struct {
	fetch Fetcher

	mu    sync.RWMutex
	idx   *Index
	books []model.Book

	group singleflight.Group
}

func NewService(f Fetcher) *Service {
	return &Service{fetch: f}
}

// Get returns the current index, building it first if none exists.
// Concurrent callers during a build share a single upstream fetch.
func (s *Service) Get(ctx context.Context) (*Index, error) {
	s.mu.RLock()
	idx := s.idx
	s.mu.RUnlock()
	if idx != nil {
		return idx, nil
	}
	return s.Refresh(ctx)
}

// Refresh rebuilds the index from upstream and atomically replaces the
// previous one. On failure the previous index (if any) is left in place.
func (s *Service) Refresh(ctx context.Context) (*Index, error) {
	v, err, _ := s.group.Do("build", func() (any, error) {
		entries, err := s.fetch.GetBooks(ctx)
		if err != nil {
			return nil, err
		}
		idx := BuildIndex(entries)
		books := DecodeBooks(entries)
		s.mu.Lock()
		s.idx = idx
		s.books = books
		s.mu.Unlock()
		return idx, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Index), nil
}

// Books returns the decoded catalog listing, fetching it if needed.
func (s *Service) Books(ctx context.Context) ([]model.Book, error) {
	s.mu.RLock()
	books := s.books
	built := s.idx != nil
	s.mu.RUnlock()
	if built {
		return books, nil
	}
	if _, err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.books, nil
}
