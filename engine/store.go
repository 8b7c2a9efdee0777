package engine

import (
	"sync"

	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/parameter"
)

// Store is a generic container for a specific component type T
// Sparse set: the sparse index maps entity to a slot in the dense arrays, so iteration is over packed slices
// Every Set stamps the slot with the world change tick for change detection
type Store[T any] struct {
	mu     sync.RWMutex
	name   string
	sparse map[core.Entity]int
	dense  []core.Entity
	values []T
	ticks  []uint64
	clock  *uint64 // World change tick, nil for standalone stores
}

// NewStore creates a standalone component store for type T
func NewStore[T any](name string) *Store[T] {
	return &Store[T]{
		name:   name,
		sparse: make(map[core.Entity]int),
		dense:  make([]core.Entity, 0, parameter.StoreInitialCapacity),
		values: make([]T, 0, parameter.StoreInitialCapacity),
		ticks:  make([]uint64, 0, parameter.StoreInitialCapacity),
	}
}

func (s *Store[T]) now() uint64 {
	if s.clock == nil {
		return 0
	}
	return *s.clock
}

// Name returns the component name used in diagnostics
func (s *Store[T]) Name() string {
	return s.name
}

// Set inserts or updates a component for an entity and marks it changed
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.sparse[e]; ok {
		s.values[idx] = val
		s.ticks[idx] = s.now()
		return
	}
	s.sparse[e] = len(s.dense)
	s.dense = append(s.dense, e)
	s.values = append(s.values, val)
	s.ticks = append(s.ticks, s.now())
}

// Get retrieves a copy of the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx, ok := s.sparse[e]; ok {
		return s.values[idx], true
	}
	var zero T
	return zero, false
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sparse[e]
	return ok
}

// Remove deletes the component from an entity by swapping the last slot into its place
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.sparse[e]
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if idx != last {
		moved := s.dense[last]
		s.dense[idx] = moved
		s.values[idx] = s.values[last]
		s.ticks[idx] = s.ticks[last]
		s.sparse[moved] = idx
	}
	var zero T
	s.values[last] = zero
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.ticks = s.ticks[:last]
	delete(s.sparse, e)
}

// All returns a snapshot of entities with this component, safe to hold across structural changes
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.dense))
	copy(result, s.dense)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dense)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.sparse)
	s.dense = s.dense[:0]
	s.values = s.values[:0]
	s.ticks = s.ticks[:0]
}

// ChangedAt returns the change tick of the last Set on the entity's component
func (s *Store[T]) ChangedAt(e core.Entity) (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx, ok := s.sparse[e]; ok {
		return s.ticks[idx], true
	}
	return 0, false
}

// ChangedSince returns entities whose component was Set after the given tick
func (s *Store[T]) ChangedSince(tick uint64) []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []core.Entity
	for i, t := range s.ticks {
		if t > tick {
			result = append(result, s.dense[i])
		}
	}
	return result
}
