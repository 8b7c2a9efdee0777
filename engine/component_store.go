package engine

import (
	"github.com/lixenwraith/zenith/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; pointers remain valid for the application lifetime
type ComponentStore struct {
	// Spatial
	Transform    *Store[component.TransformComponent]
	Velocity     *Store[component.VelocityComponent]
	Acceleration *Store[component.AccelerationComponent]
	Speed        *Store[component.SpeedComponent]

	// Combat
	Hitbox  *Store[component.HitboxComponent]
	Health  *Store[component.HealthComponent]
	Damage  *Store[component.DamageComponent]
	Faction *Store[component.FactionComponent]

	// Behavior
	FireRate *Store[component.FireRateComponent]
	Attack   *Store[component.AttackComponent]
	Movement *Store[component.MovementComponent]
	Wall     *Store[component.WallComponent]
	Floor    *Store[component.FloorComponent]
	OnDeath  *Store[component.DeathBehaviorComponent]

	// Identity
	Player       *Store[component.PlayerComponent]
	Enemy        *Store[component.EnemyComponent]
	Bullet       *Store[component.BulletComponent]
	Star         *Store[component.StarComponent]
	Invulnerable *Store[component.InvulnerableComponent]

	// Visual & lifecycle
	Sprite         *Store[component.SpriteComponent]
	Animation      *Store[component.AnimationComponent]
	AnimationLimit *Store[component.AnimationLimitComponent]
	DespawnOutside *Store[component.DespawnOutsideComponent]

	// Session
	Wave *Store[component.WaveComponent]
}

// initComponentStores creates and registers every store with the world
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Transform:    registerStore[component.TransformComponent](w, "Transform"),
		Velocity:     registerStore[component.VelocityComponent](w, "Velocity"),
		Acceleration: registerStore[component.AccelerationComponent](w, "Acceleration"),
		Speed:        registerStore[component.SpeedComponent](w, "Speed"),

		Hitbox:  registerStore[component.HitboxComponent](w, "Hitbox"),
		Health:  registerStore[component.HealthComponent](w, "Health"),
		Damage:  registerStore[component.DamageComponent](w, "Damage"),
		Faction: registerStore[component.FactionComponent](w, "Faction"),

		FireRate: registerStore[component.FireRateComponent](w, "FireRate"),
		Attack:   registerStore[component.AttackComponent](w, "Attack"),
		Movement: registerStore[component.MovementComponent](w, "Movement"),
		Wall:     registerStore[component.WallComponent](w, "Wall"),
		Floor:    registerStore[component.FloorComponent](w, "Floor"),
		OnDeath:  registerStore[component.DeathBehaviorComponent](w, "DeathBehavior"),

		Player:       registerStore[component.PlayerComponent](w, "Player"),
		Enemy:        registerStore[component.EnemyComponent](w, "Enemy"),
		Bullet:       registerStore[component.BulletComponent](w, "Bullet"),
		Star:         registerStore[component.StarComponent](w, "Star"),
		Invulnerable: registerStore[component.InvulnerableComponent](w, "Invulnerable"),

		Sprite:         registerStore[component.SpriteComponent](w, "Sprite"),
		Animation:      registerStore[component.AnimationComponent](w, "Animation"),
		AnimationLimit: registerStore[component.AnimationLimitComponent](w, "AnimationLimit"),
		DespawnOutside: registerStore[component.DespawnOutsideComponent](w, "DespawnOutside"),

		Wave: registerStore[component.WaveComponent](w, "Wave"),
	}
}

func registerStore[T any](w *World, name string) *Store[T] {
	s := NewStore[T](name)
	s.clock = &w.changeTick
	w.stores = append(w.stores, s)
	return s
}
