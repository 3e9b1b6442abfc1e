package repository

import (
	"sync"

	"wolfeye-backend/internal/domain"
)

// MemoryStore is the process-lifetime transaction registry. Records are
// published with Put only after they are fully built; reads hand out deep
// copies so callers cannot mutate stored state.
type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Transaction
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]*domain.Transaction)}
}

func (s *MemoryStore) Put(t *domain.Transaction) {
	id := t.ID.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		s.order = append(s.order, id)
	}
	s.byID[id] = t.Clone()
}

func (s *MemoryStore) Get(id string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return t.Clone(), nil
}

// List returns all transactions in insertion order.
func (s *MemoryStore) List() []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Transaction, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
