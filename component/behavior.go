package component

// WallBehavior selects the reaction to reaching a horizontal bound
type WallBehavior uint8

const (
	WallNone WallBehavior = iota
	WallBounce
)

// FloorBehavior selects the reaction to crossing the lower bound
type FloorBehavior uint8

const (
	FloorNone FloorBehavior = iota
	FloorExplode
)

// Movement selects horizontal steering for enemies
type Movement uint8

const (
	MovementDown Movement = iota
	MovementStrafe
)

// DeathBehavior selects what happens after the standard death sequence
type DeathBehavior uint8

const (
	DeathNone DeathBehavior = iota
	DeathStar
)

// Attack selects the projectile pattern an enemy fires
type Attack uint8

const (
	AttackBasic Attack = iota
	AttackBomb
)

// WallComponent attaches a wall behavior
type WallComponent struct {
	Behavior WallBehavior
}

// FloorComponent attaches a floor behavior
type FloorComponent struct {
	Behavior FloorBehavior
}

// MovementComponent attaches a steering behavior
type MovementComponent struct {
	Movement Movement
}

// DeathBehaviorComponent attaches a post-death behavior
type DeathBehaviorComponent struct {
	Behavior DeathBehavior
}

// AttackComponent attaches a firing pattern
type AttackComponent struct {
	Attack Attack
}
