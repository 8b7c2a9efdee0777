package system

import (
	"sync/atomic"

	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/parameter"
)

// DeathSystem runs the death sequence for entities whose health reached zero
// Health is watched through its change tick, so each death is processed once per tick
// regardless of how many hits caused it
type DeathSystem struct {
	engine.SystemBase

	lastTick   uint64
	statKilled *atomic.Int64
}

func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{SystemBase: engine.NewSystemBase(world)}
	s.statKilled = s.Resource.Status.Ints.Get("enemy.killed")
	return s
}

// Init resets the change watermark
func (s *DeathSystem) Init() {
	s.lastTick = 0
}

func (s *DeathSystem) Name() string               { return "death" }
func (s *DeathSystem) Stage() engine.Stage        { return engine.StageLifecycle }
func (s *DeathSystem) Priority() int              { return parameter.PriorityDeath }
func (s *DeathSystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *DeathSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.Read(c.Health, c.Transform, c.OnDeath, c.Player, c.Enemy)
}

func (s *DeathSystem) Update() {
	since := s.lastTick
	s.lastTick = s.World.ChangeTick()

	for _, e := range s.Component.Health.ChangedSince(since) {
		health, ok := s.Component.Health.Get(e)
		if !ok || !health.Dead() {
			continue
		}
		s.die(e)
	}
}

func (s *DeathSystem) die(e core.Entity) {
	c := s.Component
	tr, ok := c.Transform.Get(e)

	s.Commands.Despawn(e)
	if ok {
		archetype.SpawnExplosion(s.World, tr.Position)
		if onDeath, has := c.OnDeath.Get(e); has && onDeath.Behavior == component.DeathStar {
			s.starBurst(tr)
		}
	}

	if c.Player.Has(e) {
		s.World.PushEvent(event.EventPlayerDied, nil)
		return
	}
	if enemy, has := c.Enemy.Get(e); has {
		s.statKilled.Add(1)
		s.World.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{Kind: enemy.Kind})
	}
}

// starBurst fires a ring of enemy bullets at fixed steps from a random base angle
func (s *DeathSystem) starBurst(tr component.TransformComponent) {
	base := s.Resource.Rand.Float64() * parameter.StarBurstStep
	for k := 0; k < parameter.StarBurstCount; k++ {
		angle := base + float64(k)*parameter.StarBurstStep
		archetype.SpawnShot(s.World, archetype.BurstShot(tr.Position, angle))
	}
}
