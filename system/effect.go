package system

import (
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

// CullSystem despawns bounds-limited entities once they are fully outside the play area plus a margin
type CullSystem struct {
	engine.SystemBase
}

func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *CullSystem) Init()                      {}
func (s *CullSystem) Name() string               { return "cull" }
func (s *CullSystem) Stage() engine.Stage        { return engine.StageLifecycle }
func (s *CullSystem) Priority() int              { return parameter.PriorityCull }
func (s *CullSystem) ActiveIn() engine.StateMask { return engine.ActiveEffects }

func (s *CullSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.Read(c.DespawnOutside, c.Transform, c.Sprite)
}

func (s *CullSystem) Update() {
	cfg := s.Resource.Config
	entities := s.World.Query().
		With(s.Component.DespawnOutside).
		With(s.Component.Transform).
		Execute()

	for _, e := range entities {
		sprite, _ := s.Component.Sprite.Get(e)
		limit := cfg.OuterBound(sprite.Size).Add(vmath.V2(parameter.DespawnMargin, parameter.DespawnMargin))
		tr, _ := s.Component.Transform.Get(e)
		p := tr.Position
		if p.X > limit.X || p.X < -limit.X || p.Y > limit.Y || p.Y < -limit.Y {
			s.Commands.Despawn(e)
		}
	}
}

// EffectCullSystem despawns timed effects once their stopwatch reaches the full visual duration
// Independent of how many animation loops have completed
type EffectCullSystem struct {
	engine.SystemBase
}

func NewEffectCullSystem(world *engine.World) engine.System {
	return &EffectCullSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *EffectCullSystem) Init()                      {}
func (s *EffectCullSystem) Name() string               { return "effect_cull" }
func (s *EffectCullSystem) Stage() engine.Stage        { return engine.StageLifecycle }
func (s *EffectCullSystem) Priority() int              { return parameter.PriorityEffectCull }
func (s *EffectCullSystem) ActiveIn() engine.StateMask { return engine.ActiveEffects }

func (s *EffectCullSystem) Access() engine.Access {
	return engine.Access{}.Read(s.Component.AnimationLimit)
}

func (s *EffectCullSystem) Update() {
	for _, e := range s.Component.AnimationLimit.All() {
		limit, _ := s.Component.AnimationLimit.Get(e)
		if limit.Stopwatch.Reached(limit.Limit) {
			s.Commands.Despawn(e)
		}
	}
}
