package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lixenwraith/zenith/event"
)

// maxSettlePasses bounds handler chains that keep emitting events at one flush point
const maxSettlePasses = 8

// Scheduler runs systems in the fixed stage order
// After every stage the command buffer is flushed and queued events are dispatched,
// so entities spawned in a stage become visible to queries from the next stage on
type Scheduler struct {
	world  *World
	router *event.Router
	stages [stageCount][]System
}

// NewScheduler creates a scheduler bound to a world and router
func NewScheduler(w *World, router *event.Router) *Scheduler {
	return &Scheduler{world: w, router: router}
}

// Add registers a system in its stage, ordered by priority, and routes its events if it is a handler
func (s *Scheduler) Add(sys System) {
	stage := sys.Stage()
	if stage >= stageCount {
		panic(fmt.Sprintf("system %s: invalid stage %d", sys.Name(), stage))
	}
	list := append(s.stages[stage], sys)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority() < list[j].Priority()
	})
	s.stages[stage] = list

	if h, ok := sys.(event.Handler); ok {
		s.router.Register(h)
	}
}

// Systems returns all systems in execution order
func (s *Scheduler) Systems() []System {
	var out []System
	for _, list := range s.stages {
		out = append(out, list...)
	}
	return out
}

// Validate reports same-stage systems whose declared access overlaps on a write
func (s *Scheduler) Validate() error {
	var errs []error
	for stage, list := range s.stages {
		for i := 0; i < len(list); i++ {
			a, ok := list[i].(AccessDeclarer)
			if !ok {
				continue
			}
			for j := i + 1; j < len(list); j++ {
				b, ok := list[j].(AccessDeclarer)
				if !ok {
					continue
				}
				if name, conflict := overlap(a.Access(), b.Access()); conflict {
					errs = append(errs, fmt.Errorf("stage %s: %s and %s both access %s with a write",
						Stage(stage), list[i].Name(), list[j].Name(), name))
				}
			}
		}
	}
	return errors.Join(errs...)
}

func overlap(a, b Access) (string, bool) {
	if disjoint(a, b) {
		return "", false
	}
	for _, w := range a.Writes {
		if contains(b.Writes, w) || contains(b.Reads, w) {
			return w.Name(), true
		}
	}
	for _, w := range b.Writes {
		if contains(a.Reads, w) {
			return w.Name(), true
		}
	}
	return "", false
}

// disjoint reports whether the filters prove the two systems match no common entity
func disjoint(a, b Access) bool {
	for _, s := range a.With {
		if contains(b.Without, s) {
			return true
		}
	}
	for _, s := range b.With {
		if contains(a.Without, s) {
			return true
		}
	}
	return false
}

func contains(stores []AnyStore, s AnyStore) bool {
	for _, x := range stores {
		if x == s {
			return true
		}
	}
	return false
}

// Init resets every system and applies their setup commands
func (s *Scheduler) Init() {
	for _, sys := range s.Systems() {
		sys.Init()
	}
	s.sync()
}

// RunFrame executes one frame for the given match state
func (s *Scheduler) RunFrame(state MatchState) {
	s.router.DispatchAll()
	for _, list := range s.stages {
		s.world.advanceChangeTick()
		for _, sys := range list {
			if sys.ActiveIn().Has(state) {
				sys.Update()
			}
		}
		s.sync()
	}
}

// sync flushes commands and dispatches events until both are drained
// Handlers may queue commands or events, which settle at the same flush point
func (s *Scheduler) sync() {
	for i := 0; i < maxSettlePasses; i++ {
		s.world.Commands.Flush()
		if s.router.DispatchAll() == 0 {
			return
		}
	}
	s.world.Commands.Flush()
}
