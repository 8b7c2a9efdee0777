package event

import "github.com/lixenwraith/zenith/component"

// SoundRequestPayload carries a symbolic cue path
type SoundRequestPayload struct {
	Cue string
}

// EnemyKilledPayload identifies the destroyed enemy
type EnemyKilledPayload struct {
	Kind component.EnemyKind
}

// WaveAdvancedPayload carries the new wave index, Exhausted set once no wave remains
type WaveAdvancedPayload struct {
	Index     int
	Exhausted bool
}
