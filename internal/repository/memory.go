package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/lcasviana/chess/internal/cherrors"
	"github.com/lcasviana/chess/internal/domain/match"
)

// MemoryMatchStore keeps active matches in process memory. It backs the
// service when no Redis address is configured.
type MemoryMatchStore struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMemoryMatchStore() *MemoryMatchStore {
	return &MemoryMatchStore{matches: make(map[string]match.Match)}
}

// cloneMatch copies the move history so callers never alias the stored
// slice.
func cloneMatch(m match.Match) match.Match {
	m.Moves = append([]string(nil), m.Moves...)
	return m
}

func (s *MemoryMatchStore) Save(ctx context.Context, m *match.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = cloneMatch(*m)
	return nil
}

func (s *MemoryMatchStore) Get(ctx context.Context, id string) (*match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.matches[id]
	if !ok {
		return nil, cherrors.ErrMatchNotFound
	}
	found := cloneMatch(stored)
	return &found, nil
}

func (s *MemoryMatchStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[id]; !ok {
		return cherrors.ErrMatchNotFound
	}
	delete(s.matches, id)
	return nil
}

func (s *MemoryMatchStore) List(ctx context.Context) ([]*match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*match.Match, 0, len(s.matches))
	for _, stored := range s.matches {
		found := cloneMatch(stored)
		result = append(result, &found)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
