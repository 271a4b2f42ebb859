// Package session persists the authenticated customer locally, the way
// the browser client kept it in localStorage. The session is an opaque
// JSON object under a fixed storage key.
package session

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/pebble"

	"atlantis/internal/model"
)

// Key is the fixed storage key for the session record.
const Key = "atlantis_session_v1"

// Store abstracts the session backend.
type Store interface {
	Save(c model.Customer) error
	// Load returns ok=false when no session is saved.
	Load() (c model.Customer, ok bool, err error)
	Clear() error
}

// MemoryStore keeps the session for the lifetime of the process only.
type MemoryStore struct {
	mu sync.RWMutex
	c  *model.Customer
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Save(c model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = &c
	return nil
}

func (s *MemoryStore) Load() (model.Customer, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.c == nil {
		return model.Customer{}, false, nil
	}
	return *s.c, true, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = nil
	return nil
}

// PebbleStore persists the session across runs.
type PebbleStore struct {
	db *pebble.DB
}

func NewPebbleStore(dir string) (*PebbleStore, error) {
	d, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStore{db: d}, nil
}

func (s *PebbleStore) Close() error { return s.db.Close() }

func (s *PebbleStore) Save(c model.Customer) error {
	b, err := json.Marshal(&c)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.db.Set([]byte(Key), b, pebble.Sync); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *PebbleStore) Load() (model.Customer, bool, error) {
	v, closer, err := s.db.Get([]byte(Key))
	if err == pebble.ErrNotFound {
		return model.Customer{}, false, nil
	}
	if err != nil {
		return model.Customer{}, false, fmt.Errorf("load session: %w", err)
	}
	var c model.Customer
	uerr := json.Unmarshal(v, &c)
	_ = closer.Close()
	if uerr != nil {
		return model.Customer{}, false, fmt.Errorf("decode session: %w", uerr)
	}
	return c, true, nil
}

func (s *PebbleStore) Clear() error {
	if err := s.db.Delete([]byte(Key), pebble.Sync); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
