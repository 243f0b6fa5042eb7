package store

import (
	"context"
	"sync"

	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
)

// MemoryStore keeps the queue state in process memory. It is the default
// backend when no external storage is configured and the backend used by
// unit tests. State does not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	state *domain.QueueState
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a deep copy of the stored state, or the empty state.
func (s *MemoryStore) Load(ctx context.Context) (domain.QueueState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return domain.EmptyState(), nil
	}
	return s.state.Clone(), nil
}

// Save replaces the stored state with a deep copy of the given one.
func (s *MemoryStore) Save(ctx context.Context, state domain.QueueState) error {
	snapshot := state.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &snapshot
	return nil
}
