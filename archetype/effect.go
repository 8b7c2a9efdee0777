package archetype

import (
	"time"

	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

// SpawnExplosion queues a timed explosion effect and requests its sound cue
// The effect lives for one full pass over its frames regardless of animation loop count
func SpawnExplosion(w *engine.World, pos vmath.Vec2) core.Entity {
	c := w.Components
	sprite, frames := resolveSprite(w, parameter.AssetExplosion)

	ec := w.Commands.Spawn()
	engine.Insert(ec, c.Transform, component.TransformComponent{Position: pos, Z: parameter.ZExplosion})
	engine.Insert(ec, c.Sprite, sprite)
	engine.Insert(ec, c.Animation, animation(frames))
	engine.Insert(ec, c.AnimationLimit, component.AnimationLimitComponent{
		Limit: time.Duration(frames) * parameter.AnimationFrameDuration,
	})

	w.PlaySound(parameter.CueExplosion)
	return ec.ID()
}

var starSizes = []struct {
	asset  string
	weight int
}{
	{parameter.AssetStarSmall, 3},
	{parameter.AssetStarMedium, 2},
	{parameter.AssetStarLarge, 1},
}

// SpawnStar queues one decorative star at a uniform point in the viewport, drifting down
func SpawnStar(w *engine.World) core.Entity {
	c := w.Components
	res := w.Resources
	r := res.Rand

	total := 0
	for _, s := range starSizes {
		total += s.weight
	}
	pick := r.IntN(total)
	asset := starSizes[len(starSizes)-1].asset
	for _, s := range starSizes {
		if pick < s.weight {
			asset = s.asset
			break
		}
		pick -= s.weight
	}
	sprite, _ := resolveSprite(w, asset)

	halfW, halfH := res.Config.Width/2, res.Config.Height/2
	pos := vmath.V2(between(r.Rand, -halfW, halfW), between(r.Rand, -halfH, halfH))
	speed := between(r.Rand, parameter.StarSpeedMin, parameter.StarSpeedMax)

	ec := w.Commands.Spawn()
	engine.Insert(ec, c.Star, component.StarComponent{})
	engine.Insert(ec, c.Transform, component.TransformComponent{Position: pos, Z: parameter.ZStar})
	engine.Insert(ec, c.Velocity, component.VelocityComponent{Vec2: vmath.V2(0, -speed)})
	engine.Insert(ec, c.Sprite, sprite)
	return ec.ID()
}
