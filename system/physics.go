package system

import (
	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
)

// AccelerationSystem adds acceleration to velocity, one stage ahead of integration
type AccelerationSystem struct {
	engine.SystemBase
}

func NewAccelerationSystem(world *engine.World) engine.System {
	return &AccelerationSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *AccelerationSystem) Init()                      {}
func (s *AccelerationSystem) Name() string               { return "acceleration" }
func (s *AccelerationSystem) Stage() engine.Stage        { return engine.StageAcceleration }
func (s *AccelerationSystem) Priority() int              { return parameter.PriorityAccel }
func (s *AccelerationSystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *AccelerationSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.Read(c.Acceleration).Write(c.Velocity)
}

func (s *AccelerationSystem) Update() {
	entities := s.World.Query().
		With(s.Component.Acceleration).
		With(s.Component.Velocity).
		Execute()

	for _, e := range entities {
		acc, _ := s.Component.Acceleration.Get(e)
		vel, _ := s.Component.Velocity.Get(e)
		vel.Vec2 = vel.Add(acc.Vec2)
		s.Component.Velocity.Set(e, vel)
	}
}

// VelocitySystem moves gameplay entities by their velocity, one fixed step per tick
// Stars are integrated by StarfieldSystem
type VelocitySystem struct {
	engine.SystemBase
}

func NewVelocitySystem(world *engine.World) engine.System {
	return &VelocitySystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *VelocitySystem) Init()                      {}
func (s *VelocitySystem) Name() string               { return "velocity" }
func (s *VelocitySystem) Stage() engine.Stage        { return engine.StageIntegrate }
func (s *VelocitySystem) Priority() int              { return parameter.PriorityVelocity }
func (s *VelocitySystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *VelocitySystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.Read(c.Velocity).Write(c.Transform).Exclude(c.Star)
}

func (s *VelocitySystem) Update() {
	entities := s.World.Query().
		With(s.Component.Velocity).
		With(s.Component.Transform).
		Without(s.Component.Star).
		Execute()
	integrate(s.Component, entities)
}

// StarfieldSystem populates the decorative background once and scrolls it
// Stars are never cleared, including across match resets
type StarfieldSystem struct {
	engine.SystemBase
}

func NewStarfieldSystem(world *engine.World) engine.System {
	return &StarfieldSystem{SystemBase: engine.NewSystemBase(world)}
}

// Init spawns the starfield; flushed by the scheduler after every system's Init
func (s *StarfieldSystem) Init() {
	if s.Component.Star.Count() > 0 {
		return
	}
	for i := 0; i < parameter.StarCount; i++ {
		archetype.SpawnStar(s.World)
	}
}

func (s *StarfieldSystem) Name() string               { return "starfield" }
func (s *StarfieldSystem) Stage() engine.Stage        { return engine.StageIntegrate }
func (s *StarfieldSystem) Priority() int              { return parameter.PriorityStarfield }
func (s *StarfieldSystem) ActiveIn() engine.StateMask { return engine.ActiveEffects }

func (s *StarfieldSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.Read(c.Velocity).Write(c.Transform).Require(c.Star)
}

func (s *StarfieldSystem) Update() {
	entities := s.World.Query().
		With(s.Component.Star).
		With(s.Component.Velocity).
		With(s.Component.Transform).
		Execute()
	integrate(s.Component, entities)
}

func integrate(c engine.ComponentStore, entities []core.Entity) {
	for _, e := range entities {
		vel, _ := c.Velocity.Get(e)
		tr, _ := c.Transform.Get(e)
		tr.Position = tr.Position.Add(vel.Vec2)
		c.Transform.Set(e, tr)
	}
}
