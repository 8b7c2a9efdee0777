package engine

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/zenith/asset"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/input"
	"github.com/lixenwraith/zenith/level"
	"github.com/lixenwraith/zenith/status"
	"github.com/lixenwraith/zenith/vmath"
)

//go:generate go tool mockgen -destination=./mocks/mock_audio.go -package=mocks . AudioPlayer

// Resource holds singleton game resources, installed by NewGameContext and read by systems
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Input  *InputResource
	Levels *LevelResource
	Rand   *RandResource
	Match  *MatchResource
	Event  *EventQueueResource

	// Telemetry
	Status *status.Registry

	// Bridged external collaborators
	Audio  *AudioResource
	Assets *AssetResource
}

// TimeResource wraps time data for systems, updated at the start of every frame
type TimeResource struct {
	// DeltaTime is the real time elapsed since the previous frame, fed to timers
	DeltaTime time.Duration
	// Elapsed is the sum of all deltas
	Elapsed     time.Duration
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(dt time.Duration, frame int64) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber = frame
}

// ConfigResource holds the viewport and sprite scale, read-only after startup
type ConfigResource struct {
	Width  float64
	Height float64
	// Scale applies uniformly to sprite extents and hitbox radii at spawn
	Scale float64
}

// InnerBound returns the largest center offset keeping a sprite of the given extent inside the viewport
func (c *ConfigResource) InnerBound(size vmath.Vec2) vmath.Vec2 {
	return vmath.V2(vmath.InnerBound(c.Width, size.X), vmath.InnerBound(c.Height, size.Y))
}

// OuterBound returns the smallest center offset at which a sprite of the given extent is outside the viewport
func (c *ConfigResource) OuterBound(size vmath.Vec2) vmath.Vec2 {
	return vmath.V2(vmath.OuterBound(c.Width, size.X), vmath.OuterBound(c.Height, size.Y))
}

// InputResource is the pressed key set polled by movement and fire systems
type InputResource struct {
	Keys input.KeySet
}

// LevelResource holds the campaign wave table
type LevelResource struct {
	Campaign level.Campaign
}

// RandResource is the single injectable random source for all stochastic behavior
type RandResource struct {
	*rand.Rand
	Seed uint64
}

// NewRandResource builds a PCG-backed source from a seed
func NewRandResource(seed uint64) *RandResource {
	return &RandResource{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Seed: seed,
	}
}

// MatchResource is the match phase and per-match bookkeeping, written only by the match system
type MatchResource struct {
	State   MatchState
	Session uuid.UUID
	Score   int
	Matches int
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// AudioPlayer is the fire-and-forget sound sink
type AudioPlayer interface {
	// Play requests a cue by symbolic path, returning false if dropped
	Play(cue string) bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// AssetResource wraps the sprite descriptor provider
type AssetResource struct {
	Provider asset.Provider
}
