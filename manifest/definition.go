package manifest

import (
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/system"
)

// SystemDef defines a system for registration
type SystemDef struct {
	Name string // Diagnostic key, matches the system's Name()
	New  func(*engine.World) engine.System
}

// Systems is the authoritative system list
// Execution order comes from each system's stage and priority, not from slice order
var Systems = []SystemDef{
	// Input & timers
	{"player_move", system.NewPlayerMoveSystem},
	{"weapon", system.NewWeaponSystem},
	{"animation", system.NewAnimationSystem},
	{"invulnerability", system.NewInvulnerabilitySystem},

	// Physics
	{"acceleration", system.NewAccelerationSystem},
	{"velocity", system.NewVelocitySystem},
	{"starfield", system.NewStarfieldSystem},

	// Boundary
	{"player_clamp", system.NewPlayerClampSystem},
	{"behavior", system.NewBehaviorSystem},
	{"wrap", system.NewWrapSystem},

	// Combat & lifecycle
	{"collision", system.NewCollisionSystem},
	{"death", system.NewDeathSystem},
	{"cull", system.NewCullSystem},
	{"effect_cull", system.NewEffectCullSystem},

	// Progression & state
	{"wave", system.NewWaveSystem},
	{"match", system.NewMatchSystem},
	{"audio", system.NewAudioSystem},
}
