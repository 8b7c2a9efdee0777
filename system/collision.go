package system

import (
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

// CollisionSystem resolves projectile hits against damageable targets of the opposing faction
// A projectile is consumed by its first hit; several projectiles may hit one target in a tick and
// their damage accumulates. Death is observed later by DeathSystem through the health change tick
type CollisionSystem struct {
	engine.SystemBase
}

func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *CollisionSystem) Init()                      {}
func (s *CollisionSystem) Name() string               { return "collision" }
func (s *CollisionSystem) Stage() engine.Stage        { return engine.StageCollision }
func (s *CollisionSystem) Priority() int              { return parameter.PriorityCollision }
func (s *CollisionSystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *CollisionSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.
		Read(c.Bullet, c.Faction, c.Hitbox, c.Transform, c.Damage, c.Invulnerable, c.Player).
		Write(c.Health)
}

func (s *CollisionSystem) Update() {
	c := s.Component

	projectiles := s.World.Query().
		With(c.Bullet).
		With(c.Faction).
		With(c.Hitbox).
		With(c.Transform).
		With(c.Damage).
		Execute()
	if len(projectiles) == 0 {
		return
	}

	targets := s.World.Query().
		With(c.Health).
		With(c.Faction).
		With(c.Hitbox).
		With(c.Transform).
		Without(c.Bullet).
		Execute()

	for _, p := range projectiles {
		pf, _ := c.Faction.Get(p)
		ph, _ := c.Hitbox.Get(p)
		pt, _ := c.Transform.Get(p)

		for _, t := range targets {
			tf, _ := c.Faction.Get(t)
			if !pf.Faction.Opposes(tf.Faction) {
				continue
			}
			th, _ := c.Hitbox.Get(t)
			tt, _ := c.Transform.Get(t)
			if !vmath.CirclesOverlap(pt.Position, ph.Radius, tt.Position, th.Radius) {
				continue
			}
			// Spawn protection lets the projectile pass through unconsumed
			if c.Invulnerable.Has(t) {
				continue
			}

			dmg, _ := c.Damage.Get(p)
			health, _ := c.Health.Get(t)
			health.Damage(dmg.Amount)
			c.Health.Set(t, health)
			s.Commands.Despawn(p)

			if c.Player.Has(t) {
				s.World.PlaySound(parameter.CueHit)
			}
			break
		}
	}
}
