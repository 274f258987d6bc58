package store

import (
	"context"
	"sync"
)

// MemoryStore keeps settings in process memory. Values are lost on restart.
type MemoryStore struct {
	mu          sync.RWMutex
	active      bool
	activeAgent *ActiveAgent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{active: true}
}

func (s *MemoryStore) GetReceptionistStatus(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, nil
}

func (s *MemoryStore) SetReceptionistStatus(ctx context.Context, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
	return nil
}

func (s *MemoryStore) GetActiveAgent(ctx context.Context) (ActiveAgent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeAgent == nil {
		return ActiveAgent{}, ErrNotFound
	}
	return *s.activeAgent, nil
}

func (s *MemoryStore) SetActiveAgent(ctx context.Context, agent ActiveAgent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeAgent = &agent
	return nil
}
