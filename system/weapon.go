package system

import (
	"time"

	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/input"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

// WeaponSystem advances every fire rate and spawns projectiles when it allows
// The player fires while the fire key is held; enemies fire on their own schedule
type WeaponSystem struct {
	engine.SystemBase
}

func NewWeaponSystem(world *engine.World) engine.System {
	return &WeaponSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *WeaponSystem) Init()                      {}
func (s *WeaponSystem) Name() string               { return "weapon" }
func (s *WeaponSystem) Stage() engine.Stage        { return engine.StageTimers }
func (s *WeaponSystem) Priority() int              { return parameter.PriorityFire }
func (s *WeaponSystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *WeaponSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.
		Read(c.Transform, c.Velocity, c.Attack, c.Player, c.Enemy).
		Write(c.FireRate)
}

func (s *WeaponSystem) Update() {
	dt := s.Resource.Time.DeltaTime
	firing := s.Resource.Input.Keys.Has(input.KeyFire)

	for _, e := range s.Component.FireRate.All() {
		rate, _ := s.Component.FireRate.Get(e)
		ready := s.ready(&rate, dt)
		s.Component.FireRate.Set(e, rate)
		if !ready {
			continue
		}

		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}

		switch {
		case s.Component.Player.Has(e):
			if firing {
				archetype.SpawnShot(s.World, archetype.PlayerShot(tr.Position))
				s.World.PlaySound(parameter.CueFire)
			}
		case s.Component.Enemy.Has(e):
			s.enemyFire(e, tr.Position)
		}
	}
}

// ready ticks the fire rate and reports whether it allows a shot this tick
// The random variant is one Bernoulli trial per tick, so its rate scales with tick rate
func (s *WeaponSystem) ready(rate *component.FireRateComponent, dt time.Duration) bool {
	switch rate.Kind {
	case component.FireRegular:
		rate.Timer.Tick(dt)
		return rate.Timer.Finished()
	case component.FireRandom:
		return s.Resource.Rand.Float64() < rate.Probability
	default:
		return false
	}
}

func (s *WeaponSystem) enemyFire(e core.Entity, pos vmath.Vec2) {
	attack, ok := s.Component.Attack.Get(e)
	if !ok {
		return
	}
	switch attack.Attack {
	case component.AttackBasic:
		archetype.SpawnShot(s.World, archetype.EnemyShot(pos))
	case component.AttackBomb:
		vel, _ := s.Component.Velocity.Get(e)
		archetype.SpawnShot(s.World, archetype.BombShot(pos, vel.Vec2))
	}
}
