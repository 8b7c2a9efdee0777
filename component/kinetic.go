package component

import "github.com/lixenwraith/zenith/vmath"

// TransformComponent places an entity in world space, origin at viewport center
type TransformComponent struct {
	Position vmath.Vec2
	// Z orders drawing only, never physics
	Z float64
}

// VelocityComponent is added to position once per tick
type VelocityComponent struct {
	vmath.Vec2
}

// AccelerationComponent is added to velocity once per tick, in a stage before integration
type AccelerationComponent struct {
	vmath.Vec2
}

// SpeedComponent is the base movement magnitude for input-driven entities
type SpeedComponent struct {
	Value float64
}
