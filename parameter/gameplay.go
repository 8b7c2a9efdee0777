package parameter

import "time"

// Player
const (
	PlayerSpeed          = 6.0
	PlayerHealth         = 5
	PlayerFireInterval   = 180 * time.Millisecond
	PlayerInvulnerable   = 2 * time.Second
	PlayerBulletSpeed    = 12.0
	PlayerBulletAngle    = 90.0
	PlayerBulletDamage   = 1
	PlayerPrecisionScale = 0.5 // Speed multiplier while shift is held
	PlayerRadius         = 16.0
)

// Z ordering, higher draws on top
const (
	ZStar      = 0.0
	ZBullet    = 1.0
	ZEnemy     = 2.0
	ZPlayer    = 3.0
	ZExplosion = 4.0
)

// Enemies and projectiles
const (
	// EnemySpeedMin and EnemySpeedMax bound the downward speed drawn at spawn
	EnemySpeedMin = 1.0
	EnemySpeedMax = 2.0

	// StrafeSpeed is the horizontal speed of strafing enemies
	StrafeSpeed = 2.5

	// StrafeFlipChance is the per-tick probability a strafing enemy reverses direction
	StrafeFlipChance = 0.02

	EnemyBulletSpeed  = 5.0
	EnemyBulletAngle  = 270.0
	EnemyBulletDamage = 1

	BombSpeed        = 2.0
	BombAcceleration = -0.05
	BombDamage       = 2

	// BombFanAngle is the base angle of the fan released when a bomb reaches the floor
	BombFanAngle = 90.0
	BombFanSpeed = 5.0

	StarBurstCount = 6
	StarBurstStep  = 60.0
	StarBurstSpeed = 4.0

	BulletRadius = 2.0
	BombRadius   = 5.0
)

// BombFanOffsets are the spread offsets from BombFanAngle in degrees
var BombFanOffsets = [3]float64{-25, 0, 25}

// Boundaries
const (
	// DespawnMargin keeps partially visible sprites alive past the outer bound
	DespawnMargin = 12.0
)

// Waves
const (
	// FirstSpawnDelay is the spawn timer duration when a wave becomes active
	FirstSpawnDelay = time.Second
)

// Effects
const (
	AnimationFrameDuration = 100 * time.Millisecond
)

// Starfield
const (
	StarCount    = 200
	StarSpeedMin = 1.0
	StarSpeedMax = 9.0
)
