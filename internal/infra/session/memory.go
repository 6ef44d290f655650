package session

import (
	"context"
	"sync"
	"time"

	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/usecase"
)

type entry struct {
	reference string
	expiresAt time.Time
}

// memoryStore serves single-instance deployments without Redis.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) usecase.SessionStore {
	return &memoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *memoryStore) SetCurrentReference(_ context.Context, sessionID, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = entry{reference: reference, expiresAt: s.clock.Now().Add(s.ttl)}
	return nil
}

func (s *memoryStore) CurrentReference(_ context.Context, sessionID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sessionID]
	if !ok {
		return "", false, nil
	}
	if s.ttl > 0 && !s.clock.Now().Before(e.expiresAt) {
		delete(s.entries, sessionID)
		return "", false, nil
	}
	return e.reference, true, nil
}

func (s *memoryStore) ClearCurrentReference(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}
