package archetype

import (
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
)

// NewSession builds a session record positioned on wave 0
// An empty campaign starts exhausted
func NewSession(w *engine.World) component.WaveComponent {
	wave, ok := w.Resources.Levels.Campaign.Wave(0)
	if !ok {
		return component.WaveComponent{Exhausted: true}
	}
	return component.WaveComponent{
		Index:      0,
		Remaining:  wave.Quota,
		SpawnTimer: core.NewTimer(parameter.FirstSpawnDelay, core.TimerOnce),
	}
}

// SpawnSession queues the singleton session record
func SpawnSession(w *engine.World) core.Entity {
	ec := w.Commands.Spawn()
	engine.Insert(ec, w.Components.Wave, NewSession(w))
	return ec.ID()
}
