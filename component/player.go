package component

import "github.com/lixenwraith/zenith/core"

// PlayerComponent marks the player ship
type PlayerComponent struct{}

// InvulnerableComponent suppresses incoming projectile hits until the timer finishes
type InvulnerableComponent struct {
	Timer core.Timer
}
