package system

import (
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
)

// AnimationSystem steps sprite sheet frames and the stopwatches of timed effects
type AnimationSystem struct {
	engine.SystemBase
}

func NewAnimationSystem(world *engine.World) engine.System {
	return &AnimationSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *AnimationSystem) Init()                      {}
func (s *AnimationSystem) Name() string               { return "animation" }
func (s *AnimationSystem) Stage() engine.Stage        { return engine.StageTimers }
func (s *AnimationSystem) Priority() int              { return parameter.PriorityAnimate }
func (s *AnimationSystem) ActiveIn() engine.StateMask { return engine.ActiveEffects }

func (s *AnimationSystem) Access() engine.Access {
	c := s.Component
	return engine.Access{}.Write(c.Animation, c.Sprite, c.AnimationLimit)
}

func (s *AnimationSystem) Update() {
	dt := s.Resource.Time.DeltaTime

	for _, e := range s.Component.Animation.All() {
		anim, _ := s.Component.Animation.Get(e)
		anim.Timer.Tick(dt)
		s.Component.Animation.Set(e, anim)

		if anim.Timer.Finished() && anim.Frames > 1 {
			if sprite, ok := s.Component.Sprite.Get(e); ok {
				sprite.Frame = (sprite.Frame + int(anim.Timer.TimesFinished())) % anim.Frames
				s.Component.Sprite.Set(e, sprite)
			}
		}
	}

	// Stopwatch runs independently of the loop timer
	for _, e := range s.Component.AnimationLimit.All() {
		limit, _ := s.Component.AnimationLimit.Get(e)
		limit.Stopwatch.Tick(dt)
		s.Component.AnimationLimit.Set(e, limit)
	}
}
