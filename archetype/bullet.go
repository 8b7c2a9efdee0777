package archetype

import (
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

// Shot describes one projectile; Angle is in degrees, counterclockwise from +X
type Shot struct {
	Kind     component.BulletKind
	Faction  component.Faction
	Position vmath.Vec2
	Angle    float64
	Speed    float64
	Damage   uint32

	// BaseVelocity is added to the angle-derived velocity, used by bombs inheriting the shooter's motion
	BaseVelocity vmath.Vec2
	Acceleration vmath.Vec2
	Wall         component.WallBehavior
	Floor        component.FloorBehavior
}

// PlayerShot is the small bullet fired straight up by the player
func PlayerShot(pos vmath.Vec2) Shot {
	return Shot{
		Kind:     component.BulletSmall,
		Faction:  component.FactionPlayer,
		Position: pos,
		Angle:    parameter.PlayerBulletAngle,
		Speed:    parameter.PlayerBulletSpeed,
		Damage:   parameter.PlayerBulletDamage,
	}
}

// EnemyShot is the small enemy bullet fired straight down
func EnemyShot(pos vmath.Vec2) Shot {
	return Shot{
		Kind:     component.BulletSmall,
		Faction:  component.FactionEnemy,
		Position: pos,
		Angle:    parameter.EnemyBulletAngle,
		Speed:    parameter.EnemyBulletSpeed,
		Damage:   parameter.EnemyBulletDamage,
	}
}

// BombShot is a slow bouncing bomb that inherits the shooter's velocity and explodes on the floor
func BombShot(pos, shooterVelocity vmath.Vec2) Shot {
	return Shot{
		Kind:         component.BulletBomb,
		Faction:      component.FactionEnemy,
		Position:     pos,
		Angle:        parameter.EnemyBulletAngle,
		Speed:        parameter.BombSpeed,
		Damage:       parameter.BombDamage,
		BaseVelocity: shooterVelocity,
		Acceleration: vmath.V2(0, parameter.BombAcceleration),
		Wall:         component.WallBounce,
		Floor:        component.FloorExplode,
	}
}

// FanShot is one bullet of the spread released by an exploding bomb
func FanShot(pos vmath.Vec2) Shot {
	return Shot{
		Kind:     component.BulletSmall,
		Faction:  component.FactionEnemy,
		Position: pos,
		Angle:    parameter.BombFanAngle,
		Speed:    parameter.BombFanSpeed,
		Damage:   parameter.EnemyBulletDamage,
	}
}

// BurstShot is one bullet of a death burst ring
func BurstShot(pos vmath.Vec2, angle float64) Shot {
	return Shot{
		Kind:     component.BulletSmall,
		Faction:  component.FactionEnemy,
		Position: pos,
		Angle:    angle,
		Speed:    parameter.StarBurstSpeed,
		Damage:   parameter.EnemyBulletDamage,
	}
}

// SpawnShot queues one projectile with its faction attached
func SpawnShot(w *engine.World, s Shot) core.Entity {
	c := w.Components
	res := w.Resources

	path, radius := parameter.AssetBulletSmall, parameter.BulletRadius
	if s.Kind == component.BulletBomb {
		path, radius = parameter.AssetBulletBomb, parameter.BombRadius
	}
	sprite, _ := resolveSprite(w, path)

	ec := w.Commands.Spawn()
	engine.Insert(ec, c.Bullet, component.BulletComponent{Kind: s.Kind})
	engine.Insert(ec, c.Faction, component.FactionComponent{Faction: s.Faction})
	engine.Insert(ec, c.Transform, component.TransformComponent{Position: s.Position, Z: parameter.ZBullet})
	engine.Insert(ec, c.Velocity, component.VelocityComponent{
		Vec2: s.BaseVelocity.Add(vmath.FromAngle(s.Angle, s.Speed)),
	})
	engine.Insert(ec, c.Damage, component.DamageComponent{Amount: s.Damage})
	engine.Insert(ec, c.Hitbox, component.HitboxComponent{Radius: radius * res.Config.Scale})
	engine.Insert(ec, c.Sprite, sprite)
	engine.Insert(ec, c.DespawnOutside, component.DespawnOutsideComponent{})
	if s.Acceleration != (vmath.Vec2{}) {
		engine.Insert(ec, c.Acceleration, component.AccelerationComponent{Vec2: s.Acceleration})
	}
	if s.Wall != component.WallNone {
		engine.Insert(ec, c.Wall, component.WallComponent{Behavior: s.Wall})
	}
	if s.Floor != component.FloorNone {
		engine.Insert(ec, c.Floor, component.FloorComponent{Behavior: s.Floor})
	}

	res.Status.Ints.Get("bullet.fired").Add(1)
	return ec.ID()
}

// SpawnSpread queues one projectile per angle offset from the shot's base angle
func SpawnSpread(w *engine.World, s Shot, offsets []float64) []core.Entity {
	out := make([]core.Entity, 0, len(offsets))
	base := s.Angle
	for _, off := range offsets {
		s.Angle = base + off
		out = append(out, SpawnShot(w, s))
	}
	return out
}
