package component

import (
	"time"

	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/vmath"
)

// SpriteComponent names the asset to draw and its scaled on-screen extent
type SpriteComponent struct {
	Asset string
	Size  vmath.Vec2
	Frame int
}

// AnimationComponent advances SpriteComponent.Frame each time the repeating timer completes
type AnimationComponent struct {
	Timer  core.Timer
	Frames int
}

// AnimationLimitComponent despawns an effect once its stopwatch reaches Limit
type AnimationLimitComponent struct {
	Limit     time.Duration
	Stopwatch core.Stopwatch
}

// DespawnOutsideComponent tags entities removed after leaving the play area
type DespawnOutsideComponent struct{}

// StarComponent tags decorative background entities that wrap instead of despawning
type StarComponent struct{}
