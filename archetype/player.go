package archetype

import (
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

// PlayerSpawnPosition is the fixed respawn point, a quarter height below center
func PlayerSpawnPosition(cfg *engine.ConfigResource) vmath.Vec2 {
	return vmath.V2(0, -cfg.Height/4)
}

// SpawnPlayer queues the player ship with default health, fire rate and a fresh invulnerability window
func SpawnPlayer(w *engine.World) core.Entity {
	c := w.Components
	res := w.Resources
	sprite, frames := resolveSprite(w, parameter.AssetPlayer)

	ec := w.Commands.Spawn()
	engine.Insert(ec, c.Player, component.PlayerComponent{})
	engine.Insert(ec, c.Faction, component.FactionComponent{Faction: component.FactionPlayer})
	engine.Insert(ec, c.Transform, component.TransformComponent{
		Position: PlayerSpawnPosition(res.Config),
		Z:        parameter.ZPlayer,
	})
	engine.Insert(ec, c.Sprite, sprite)
	engine.Insert(ec, c.Animation, animation(frames))
	engine.Insert(ec, c.Health, component.HealthComponent{
		Current: parameter.PlayerHealth,
		Max:     parameter.PlayerHealth,
	})
	engine.Insert(ec, c.Speed, component.SpeedComponent{Value: parameter.PlayerSpeed})
	engine.Insert(ec, c.FireRate, component.RegularFire(
		core.NewTimer(parameter.PlayerFireInterval, core.TimerRepeating),
	))
	engine.Insert(ec, c.Hitbox, component.HitboxComponent{Radius: parameter.PlayerRadius * res.Config.Scale})
	engine.Insert(ec, c.Invulnerable, component.InvulnerableComponent{
		Timer: core.NewTimer(parameter.PlayerInvulnerable, core.TimerOnce),
	})
	return ec.ID()
}
