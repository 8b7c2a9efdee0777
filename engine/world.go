package engine

import (
	"sync"

	"github.com/lixenwraith/zenith/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// changeTick advances once per scheduler stage, stamped on every store Set
	changeTick uint64

	Components ComponentStore
	Resources  *Resource
	Commands   *Commands

	stores      []AnyStore
	updateMutex sync.Mutex
}

// NewWorld creates an empty world with every component store registered
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Resources:    &Resource{},
		// Setup writes must be newer than a zero watermark
		changeTick: 1,
	}
	initComponentStores(w)
	w.Commands = newCommands(w)
	return w
}

// CreateEntity allocates a live entity immediately, bypassing the command buffer
// Systems must use Commands.Spawn; direct creation is for setup and tests
func (w *World) CreateEntity() core.Entity {
	e := w.reserveEntity()
	w.mu.Lock()
	w.alive[e] = struct{}{}
	w.mu.Unlock()
	return e
}

// reserveEntity hands out an ID that is not yet alive
func (w *World) reserveEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

func (w *World) markAlive(e core.Entity) {
	w.mu.Lock()
	w.alive[e] = struct{}{}
	w.mu.Unlock()
}

// DestroyEntity removes the entity from every store; unknown entities are ignored
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	_, ok := w.alive[e]
	delete(w.alive, e)
	w.mu.Unlock()

	if !ok {
		return
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
}

// Alive reports whether an entity has been flushed into the world and not destroyed
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// ChangeTick returns the current change tick
func (w *World) ChangeTick() uint64 {
	return w.changeTick
}

func (w *World) advanceChangeTick() uint64 {
	w.changeTick++
	return w.changeTick
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}
