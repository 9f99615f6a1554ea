// Package memstore keeps items in process memory.
package memstore

import (
	"context"
	"itemlist/internal/domain"
	"itemlist/internal/ports"
	"sync"
)

var _ ports.ItemStore = (*Store)(nil)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	items  []domain.Item
}

func New() *Store {
	return &Store{}
}

func (s *Store) List(_ context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) Create(_ context.Context, text string) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	it := domain.Item{ID: s.nextID, Text: text}
	s.items = append(s.items, it)
	return it, nil
}

func (s *Store) Ping(_ context.Context) error { return nil }
