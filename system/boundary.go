package system

import (
	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

// PlayerClampSystem keeps the player ship fully inside the viewport
type PlayerClampSystem struct {
	engine.SystemBase
}

func NewPlayerClampSystem(world *engine.World) engine.System {
	return &PlayerClampSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *PlayerClampSystem) Init()                      {}
func (s *PlayerClampSystem) Name() string               { return "player_clamp" }
func (s *PlayerClampSystem) Stage() engine.Stage        { return engine.StageBoundary }
func (s *PlayerClampSystem) Priority() int              { return parameter.PriorityClamp }
func (s *PlayerClampSystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *PlayerClampSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.Read(c.Sprite).Write(c.Transform).Require(c.Player)
}

func (s *PlayerClampSystem) Update() {
	cfg := s.Resource.Config
	entities := s.World.Query().
		With(s.Component.Player).
		With(s.Component.Transform).
		Execute()

	for _, e := range entities {
		sprite, _ := s.Component.Sprite.Get(e)
		bound := cfg.InnerBound(sprite.Size)
		tr, _ := s.Component.Transform.Get(e)
		tr.Position = vmath.V2(
			vmath.ClampSym(tr.Position.X, bound.X),
			vmath.ClampSym(tr.Position.Y, bound.Y),
		)
		s.Component.Transform.Set(e, tr)
	}
}

// BehaviorSystem resolves the per-archetype reactions to the play area edges:
// strafing enemies steer between the side walls, bouncing projectiles reflect
// off them, and exploding projectiles burst into a fan at the floor
type BehaviorSystem struct {
	engine.SystemBase
}

func NewBehaviorSystem(world *engine.World) engine.System {
	return &BehaviorSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *BehaviorSystem) Init()                      {}
func (s *BehaviorSystem) Name() string               { return "behavior" }
func (s *BehaviorSystem) Stage() engine.Stage        { return engine.StageBoundary }
func (s *BehaviorSystem) Priority() int              { return parameter.PriorityBehavior }
func (s *BehaviorSystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *BehaviorSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.
		Read(c.Movement, c.Wall, c.Floor, c.Sprite).
		Write(c.Transform, c.Velocity).
		Exclude(c.Player, c.Star)
}

func (s *BehaviorSystem) Update() {
	s.steer()
	s.bounce()
	s.explode()
}

func (s *BehaviorSystem) bound(e core.Entity) vmath.Vec2 {
	sprite, _ := s.Component.Sprite.Get(e)
	return s.Resource.Config.InnerBound(sprite.Size)
}

// steer flips strafing enemies at a side wall, or at random
func (s *BehaviorSystem) steer() {
	r := s.Resource.Rand
	for _, e := range s.Component.Movement.All() {
		mv, _ := s.Component.Movement.Get(e)
		if mv.Movement != component.MovementStrafe {
			continue
		}
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		vel, _ := s.Component.Velocity.Get(e)
		bound := s.bound(e).X

		outward := (tr.Position.X >= bound && vel.X > 0) || (tr.Position.X <= -bound && vel.X < 0)
		if outward || r.Float64() < parameter.StrafeFlipChance {
			vel.X = -vel.X
			s.Component.Velocity.Set(e, vel)
		}
	}
}

// bounce clamps wall-bouncing projectiles to the side bounds, reversing horizontal
// velocity only when it still points outward so one crossing flips exactly once
func (s *BehaviorSystem) bounce() {
	for _, e := range s.Component.Wall.All() {
		wall, _ := s.Component.Wall.Get(e)
		if wall.Behavior != component.WallBounce {
			continue
		}
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		vel, _ := s.Component.Velocity.Get(e)
		bound := s.bound(e).X

		switch {
		case tr.Position.X > bound:
			tr.Position.X = bound
			if vel.X > 0 {
				vel.X = -vel.X
			}
		case tr.Position.X < -bound:
			tr.Position.X = -bound
			if vel.X < 0 {
				vel.X = -vel.X
			}
		default:
			continue
		}
		s.Component.Transform.Set(e, tr)
		s.Component.Velocity.Set(e, vel)
	}
}

// explode replaces floor-exploding projectiles that crossed the lower bound with an explosion and a bullet fan
func (s *BehaviorSystem) explode() {
	for _, e := range s.Component.Floor.All() {
		floor, _ := s.Component.Floor.Get(e)
		if floor.Behavior != component.FloorExplode {
			continue
		}
		tr, ok := s.Component.Transform.Get(e)
		if !ok || tr.Position.Y >= -s.bound(e).Y {
			continue
		}

		s.Commands.Despawn(e)
		archetype.SpawnExplosion(s.World, tr.Position)
		archetype.SpawnSpread(s.World, archetype.FanShot(tr.Position), parameter.BombFanOffsets[:])
	}
}

// WrapSystem moves stars leaving the bottom edge back above the top edge
type WrapSystem struct {
	engine.SystemBase
}

func NewWrapSystem(world *engine.World) engine.System {
	return &WrapSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *WrapSystem) Init()                      {}
func (s *WrapSystem) Name() string               { return "wrap" }
func (s *WrapSystem) Stage() engine.Stage        { return engine.StageBoundary }
func (s *WrapSystem) Priority() int              { return parameter.PriorityWrap }
func (s *WrapSystem) ActiveIn() engine.StateMask { return engine.ActiveEffects }

func (s *WrapSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.Read(c.Sprite).Write(c.Transform).Require(c.Star).Exclude(c.Player)
}

func (s *WrapSystem) Update() {
	cfg := s.Resource.Config
	entities := s.World.Query().
		With(s.Component.Star).
		With(s.Component.Transform).
		Execute()

	for _, e := range entities {
		sprite, _ := s.Component.Sprite.Get(e)
		top := cfg.OuterBound(sprite.Size).Y
		tr, _ := s.Component.Transform.Get(e)
		if tr.Position.Y < -top {
			tr.Position.Y = top
			s.Component.Transform.Set(e, tr)
		}
	}
}
