package draft

import (
	"context"
	"sync"

	"flightdesk/internal/domain"
)

// Store holds one draft itinerary per session with an explicit Reset.
type Store interface {
	Get(ctx context.Context, sessionID string) (Itinerary, error)
	Save(ctx context.Context, sessionID string, it Itinerary) error
	Reset(ctx context.Context, sessionID string) error
}

// MemoryStore is the fallback when Redis is not configured; also used by tests.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]Itinerary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: map[string]Itinerary{}}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.drafts[sessionID]
	if !ok {
		return Itinerary{}, domain.NotFoundError{Resource: "draft"}
	}
	return it, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, it Itinerary) error {
	if sessionID == "" {
		return domain.ValidationError{Field: "session_id", Msg: "session id kosong"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = it
	return nil
}

func (s *MemoryStore) Reset(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}
