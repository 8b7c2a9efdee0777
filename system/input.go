package system

import (
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/input"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

// PlayerMoveSystem translates held direction keys into a per-tick displacement
// Diagonal input is clamped to the ship's speed; precision halves it
type PlayerMoveSystem struct {
	engine.SystemBase
}

func NewPlayerMoveSystem(world *engine.World) engine.System {
	return &PlayerMoveSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *PlayerMoveSystem) Init()                      {}
func (s *PlayerMoveSystem) Name() string               { return "player_move" }
func (s *PlayerMoveSystem) Stage() engine.Stage        { return engine.StageInput }
func (s *PlayerMoveSystem) Priority() int              { return parameter.PriorityInput }
func (s *PlayerMoveSystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *PlayerMoveSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.Read(c.Speed).Write(c.Transform).Require(c.Player)
}

func (s *PlayerMoveSystem) Update() {
	keys := s.Resource.Input.Keys
	step := direction(keys)
	if step == (vmath.Vec2{}) {
		return
	}

	entities := s.World.Query().
		With(s.Component.Player).
		With(s.Component.Speed).
		With(s.Component.Transform).
		Execute()

	for _, e := range entities {
		speed, _ := s.Component.Speed.Get(e)
		v := speed.Value
		if keys.Has(input.KeyPrecision) {
			v *= parameter.PlayerPrecisionScale
		}

		tr, _ := s.Component.Transform.Get(e)
		tr.Position = tr.Position.Add(step.Scale(v).ClampLength(v))
		s.Component.Transform.Set(e, tr)
	}
}

// direction sums unit axes of the held direction keys
func direction(keys input.KeySet) vmath.Vec2 {
	var d vmath.Vec2
	if keys.Has(input.KeyLeft) {
		d.X--
	}
	if keys.Has(input.KeyRight) {
		d.X++
	}
	if keys.Has(input.KeyUp) {
		d.Y++
	}
	if keys.Has(input.KeyDown) {
		d.Y--
	}
	return d
}
