package parameter

import "time"

// Game Loop & Engine Timing
const (
	// DefaultTickRate is the simulation rate in ticks per second; physics applies one step per tick
	DefaultTickRate = 60

	// MaxFrameDelta caps the delta fed to timers after a stall (debugger, suspended terminal)
	MaxFrameDelta = 250 * time.Millisecond

	// HoldTimeout is how long a key stays pressed after its last press event on backends without release events
	HoldTimeout = 150 * time.Millisecond

	// HUDPublishInterval is the period between HUD feed snapshots
	HUDPublishInterval = 100 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 512

	// StoreInitialCapacity is the dense array preallocation per component store
	StoreInitialCapacity = 64
)

// Viewport defaults
const (
	DefaultWidth  = 800
	DefaultHeight = 960
	DefaultScale  = 1.5
)
