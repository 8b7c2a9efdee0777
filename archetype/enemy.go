package archetype

import (
	"time"

	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

// enemyTemplate is the spawn-time stat block of one enemy kind
type enemyTemplate struct {
	asset    string
	health   uint32
	radius   float64
	movement component.Movement
	attack   component.Attack
	death    component.DeathBehavior

	// Exactly one of fireInterval or fireChance is set
	fireInterval time.Duration
	fireChance   float64
}

var enemyTemplates = map[component.EnemyKind]enemyTemplate{
	component.EnemyBasic: {
		asset:      parameter.AssetEnemyBasic,
		health:     2,
		radius:     20.5,
		movement:   component.MovementDown,
		attack:     component.AttackBasic,
		death:      component.DeathNone,
		fireChance: 0.004,
	},
	component.EnemyStrafer: {
		asset:      parameter.AssetEnemyStrafe,
		health:     2,
		radius:     19,
		movement:   component.MovementStrafe,
		attack:     component.AttackBasic,
		death:      component.DeathNone,
		fireChance: 0.008,
	},
	component.EnemyBomber: {
		asset:        parameter.AssetEnemyBomber,
		health:       4,
		radius:       26,
		movement:     component.MovementDown,
		attack:       component.AttackBomb,
		death:        component.DeathStar,
		fireInterval: 2500 * time.Millisecond,
	},
	component.EnemyGunner: {
		asset:        parameter.AssetEnemyGunner,
		health:       3,
		radius:       22,
		movement:     component.MovementStrafe,
		attack:       component.AttackBasic,
		death:        component.DeathStar,
		fireInterval: 1200 * time.Millisecond,
	},
}

// EnemyHealth returns the spawn health of a kind
func EnemyHealth(kind component.EnemyKind) uint32 {
	return enemyTemplates[kind].health
}

// SpawnEnemy queues an enemy of the given kind just above the viewport at a random column
func SpawnEnemy(w *engine.World, kind component.EnemyKind) core.Entity {
	tpl, ok := enemyTemplates[kind]
	if !ok {
		tpl, kind = enemyTemplates[component.EnemyBasic], component.EnemyBasic
	}

	c := w.Components
	res := w.Resources
	r := res.Rand
	sprite, frames := resolveSprite(w, tpl.asset)

	inner := res.Config.InnerBound(sprite.Size)
	outer := res.Config.OuterBound(sprite.Size)
	x := 0.0
	if inner.X > 0 {
		x = between(r.Rand, -inner.X, inner.X)
	}

	velocity := vmath.V2(0, -between(r.Rand, parameter.EnemySpeedMin, parameter.EnemySpeedMax))
	if tpl.movement == component.MovementStrafe {
		velocity.X = parameter.StrafeSpeed
		if r.IntN(2) == 0 {
			velocity.X = -velocity.X
		}
	}

	fire := component.RandomFire(tpl.fireChance)
	if tpl.fireInterval > 0 {
		fire = component.RegularFire(core.NewTimer(tpl.fireInterval, core.TimerRepeating))
	}

	ec := w.Commands.Spawn()
	engine.Insert(ec, c.Enemy, component.EnemyComponent{Kind: kind})
	engine.Insert(ec, c.Faction, component.FactionComponent{Faction: component.FactionEnemy})
	engine.Insert(ec, c.Transform, component.TransformComponent{
		Position: vmath.V2(x, outer.Y),
		Z:        parameter.ZEnemy,
	})
	engine.Insert(ec, c.Velocity, component.VelocityComponent{Vec2: velocity})
	engine.Insert(ec, c.Sprite, sprite)
	engine.Insert(ec, c.Animation, animation(frames))
	engine.Insert(ec, c.Health, component.HealthComponent{Current: tpl.health, Max: tpl.health})
	engine.Insert(ec, c.Hitbox, component.HitboxComponent{Radius: tpl.radius * res.Config.Scale})
	engine.Insert(ec, c.Movement, component.MovementComponent{Movement: tpl.movement})
	engine.Insert(ec, c.FireRate, fire)
	engine.Insert(ec, c.Attack, component.AttackComponent{Attack: tpl.attack})
	engine.Insert(ec, c.OnDeath, component.DeathBehaviorComponent{Behavior: tpl.death})
	engine.Insert(ec, c.DespawnOutside, component.DespawnOutsideComponent{})

	res.Status.Ints.Get("enemy.spawned").Add(1)
	return ec.ID()
}
