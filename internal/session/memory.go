package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"bookingform/internal/domain"
)

type memoryEntry struct {
	form      domain.FormState
	expiresAt time.Time
}

// MemoryStore is a single-process Store for deployments without Redis and for
// tests. Reads treat expired entries as missing; Sweep reclaims them.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(ctx context.Context, form *domain.FormState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[form.Token] = memoryEntry{form: *form, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*domain.FormState, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok || s.now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}
	form := entry.form
	return &form, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, token)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps on the given interval until ctx is canceled.
func (s *MemoryStore) StartJanitor(ctx context.Context, interval time.Duration, logger *zap.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := s.Sweep(); removed > 0 && logger != nil {
					logger.Info("expired form sessions", zap.Int("count", removed))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

var _ Store = (*MemoryStore)(nil)
