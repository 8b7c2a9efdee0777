// Package archetype builds every entity kind through the world's deferred command buffer
// Faction and all gameplay components are queued in the same spawn, so no entity
// becomes queryable half-built
package archetype

import (
	"math/rand/v2"

	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
)

// resolveSprite looks the asset up in the provider
// An unresolved asset yields a zero extent and a single frame; it renders nothing until resolved
func resolveSprite(w *engine.World, path string) (component.SpriteComponent, int) {
	res := w.Resources
	sprite := component.SpriteComponent{Asset: path}
	if res.Assets == nil || res.Assets.Provider == nil {
		return sprite, 1
	}
	desc, ok := res.Assets.Provider.Lookup(path)
	if !ok || desc.FrameCount() <= 0 {
		return sprite, 1
	}
	sprite.Size = desc.Extent(res.Config.Scale)
	return sprite, desc.FrameCount()
}

func animation(frames int) component.AnimationComponent {
	return component.AnimationComponent{
		Timer:  core.NewTimer(parameter.AnimationFrameDuration, core.TimerRepeating),
		Frames: frames,
	}
}

// between draws uniformly from [lo, hi)
func between(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
