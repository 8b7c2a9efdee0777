package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for automatic FSM transitions evaluated every update
	EventTick EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests a fire-and-forget sound cue
	// Trigger: fire, death and hit systems
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Match Event ===

	// EventPauseToggle toggles between Playing and Paused
	// Trigger: front end key binding
	// Consumer: MatchSystem | Payload: nil
	EventPauseToggle

	// EventRestart starts a new match from GameOver
	// Trigger: front end key binding
	// Consumer: MatchSystem | Payload: nil
	EventRestart

	// EventPlayerDied signals the player death sequence ran
	// Trigger: DeathSystem
	// Consumer: MatchSystem | Payload: nil
	EventPlayerDied

	// === Gameplay Event ===

	// EventEnemyKilled reports an enemy destroyed by damage, not by leaving the play area
	// Trigger: DeathSystem
	// Consumer: MatchSystem (score) | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventWaveAdvanced reports the wave controller moving to the next wave or exhausting the campaign
	// Trigger: WaveSystem
	// Consumer: AudioSystem | Payload: *WaveAdvancedPayload
	EventWaveAdvanced
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
