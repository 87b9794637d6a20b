// Package settings provides the units-preference stores. The memory
// store is the default; the Redis store is used when an external
// key-value collaborator is configured.
package settings

import (
	"context"
	"sync"

	"github.com/poop4ik/weather-service/internal/domain/entities"
)

// MemoryStore keeps the preference in process memory, guarded by a
// RWMutex so concurrent requests never share mutable state directly.
type MemoryStore struct {
	mu      sync.RWMutex
	current entities.UnitsSettings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		current: entities.DefaultUnitsSettings(),
	}
}

func (s *MemoryStore) Get(ctx context.Context) (entities.UnitsSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

func (s *MemoryStore) Save(ctx context.Context, settings entities.UnitsSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = settings
	return nil
}

func (s *MemoryStore) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
