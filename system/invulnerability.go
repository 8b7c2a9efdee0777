package system

import (
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
)

// InvulnerabilitySystem counts down spawn protection and drops it once expired
type InvulnerabilitySystem struct {
	engine.SystemBase
}

func NewInvulnerabilitySystem(world *engine.World) engine.System {
	return &InvulnerabilitySystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *InvulnerabilitySystem) Init()                      {}
func (s *InvulnerabilitySystem) Name() string               { return "invulnerability" }
func (s *InvulnerabilitySystem) Stage() engine.Stage        { return engine.StageTimers }
func (s *InvulnerabilitySystem) Priority() int              { return parameter.PriorityShield }
func (s *InvulnerabilitySystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *InvulnerabilitySystem) Access() engine.Access {
	return engine.Access{}.Write(s.Component.Invulnerable)
}

func (s *InvulnerabilitySystem) Update() {
	dt := s.Resource.Time.DeltaTime
	for _, e := range s.Component.Invulnerable.All() {
		inv, _ := s.Component.Invulnerable.Get(e)
		inv.Timer.Tick(dt)
		s.Component.Invulnerable.Set(e, inv)
		if inv.Timer.Finished() {
			engine.Remove(s.Commands.Entity(e), s.Component.Invulnerable)
		}
	}
}
