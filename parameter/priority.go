package parameter

// System Execution Priorities within a stage (lower runs first)
const (
	// Input stage
	PriorityInput = 10

	// Timers stage
	PriorityFire    = 10
	PriorityAnimate = 20
	PriorityShield  = 30

	// Acceleration stage
	PriorityAccel = 10

	// Integrate stage
	PriorityVelocity  = 10
	PriorityStarfield = 20

	// Boundary stage
	PriorityClamp    = 10
	PriorityBehavior = 20
	PriorityWrap     = 30

	// Collision stage
	PriorityCollision = 10

	// Lifecycle stage
	PriorityDeath      = 10
	PriorityCull       = 20
	PriorityEffectCull = 30

	// Wave stage
	PriorityWave = 10

	// State stage
	PriorityMatch = 10
	PriorityAudio = 20 // Drains cue requests after state resolution
)
