package repository

import (
	"context"
	"sync"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"
)

// MemoryStore keeps the operations dataset in process memory.
//
// Update works on a clone and swaps it in only when the callback succeeds.
// Writers are serialized; readers get their own snapshot.

type MemoryStore struct {
	mu    sync.RWMutex
	state entities.Dataset
}

var _ interfaces.IEntityStore = (*MemoryStore)(nil)

func NewMemoryStore(seed entities.Dataset) *MemoryStore {
	return &MemoryStore{state: seed.Clone()}
}

func (s *MemoryStore) View(ctx context.Context, fn func(entities.Dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	snapshot := s.state.Clone()
	s.mu.RUnlock()
	return fn(snapshot)
}

func (s *MemoryStore) Update(ctx context.Context, fn func(*entities.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	working := s.state.Clone()
	if err := fn(&working); err != nil {
		return err
	}
	s.state = working
	return nil
}
