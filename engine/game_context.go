package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/zenith/asset"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/input"
	"github.com/lixenwraith/zenith/level"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/status"
)

// GameContext owns the world, its resources and the scheduler, and is the single frame entry point
// Front ends call Tick from one goroutine; read hooks and PushEvent are safe from any goroutine
type GameContext struct {
	World     *World
	Scheduler *Scheduler
	Router    *event.Router

	eventQueue *event.EventQueue
	frame      atomic.Int64
	started    atomic.Bool

	statTicks   *atomic.Int64
	statFrameMs *status.Gauge
}

type contextOptions struct {
	seed     uint64
	seeded   bool
	audio    AudioPlayer
	assets   asset.Provider
	campaign level.Campaign
	status   *status.Registry
}

// Option configures NewGameContext
type Option func(*contextOptions)

// WithSeed fixes the random seed; zero keeps wall-clock seeding
func WithSeed(seed uint64) Option {
	return func(o *contextOptions) {
		if seed != 0 {
			o.seed, o.seeded = seed, true
		}
	}
}

// WithAudio installs the cue sink
func WithAudio(p AudioPlayer) Option {
	return func(o *contextOptions) { o.audio = p }
}

// WithAssets installs the sprite descriptor provider
func WithAssets(p asset.Provider) Option {
	return func(o *contextOptions) { o.assets = p }
}

// WithCampaign replaces the default wave table
func WithCampaign(c level.Campaign) Option {
	return func(o *contextOptions) { o.campaign = c }
}

// WithStatus shares a metric registry with the front end
func WithStatus(r *status.Registry) Option {
	return func(o *contextOptions) { o.status = r }
}

// NewGameContext creates a world with all resources installed
// Systems are registered by the caller, then Start runs their setup
func NewGameContext(view ConfigResource, opts ...Option) *GameContext {
	o := contextOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = uint64(time.Now().UnixNano())
		log.Printf("random seed: %d", o.seed)
	}
	if o.assets == nil {
		o.assets = asset.DefaultCatalogue()
	}
	if len(o.campaign.Waves) == 0 {
		o.campaign = level.DefaultCampaign()
	}
	if o.status == nil {
		o.status = status.NewRegistry()
	}
	if o.audio == nil {
		o.audio = silentPlayer{}
	}

	world := NewWorld()
	queue := event.NewEventQueue()
	router := event.NewRouter(queue)

	world.Resources = &Resource{
		Time:   &TimeResource{},
		Config: &view,
		Input:  &InputResource{},
		Levels: &LevelResource{Campaign: o.campaign},
		Rand:   NewRandResource(o.seed),
		Match:  &MatchResource{State: MatchPlaying, Session: uuid.New()},
		Event:  &EventQueueResource{Queue: queue},
		Status: o.status,
		Audio:  &AudioResource{Player: o.audio},
		Assets: &AssetResource{Provider: o.assets},
	}

	return &GameContext{
		World:       world,
		Scheduler:   NewScheduler(world, router),
		Router:      router,
		eventQueue:  queue,
		statTicks:   o.status.Ints.Get("engine.ticks"),
		statFrameMs: o.status.Floats.Get("engine.frame_ms"),
	}
}

// AddSystem registers a system with the scheduler, before Start
func (ctx *GameContext) AddSystem(sys System) {
	ctx.Scheduler.Add(sys)
}

// Start validates stage access and runs system setup; idempotent
func (ctx *GameContext) Start() error {
	if !ctx.started.CompareAndSwap(false, true) {
		return nil
	}
	if err := ctx.Scheduler.Validate(); err != nil {
		ctx.started.Store(false)
		return err
	}
	ctx.World.RunSafe(ctx.Scheduler.Init)
	return nil
}

// Tick advances the simulation one frame by dt of real time
func (ctx *GameContext) Tick(dt time.Duration) {
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	ctx.World.RunSafe(func() {
		frame := ctx.frame.Add(1)
		res := ctx.World.Resources
		res.Time.Update(dt, frame)
		ctx.Scheduler.RunFrame(res.Match.State)
	})
	ctx.statTicks.Add(1)
	ctx.statFrameMs.Set(float64(dt) / float64(time.Millisecond))
}

// SetInput replaces the pressed key set polled on the next tick
func (ctx *GameContext) SetInput(keys input.KeySet) {
	ctx.World.RunSafe(func() {
		ctx.World.Resources.Input.Keys = keys
	})
}

// PushEvent queues an event from any goroutine; it is dispatched at the next flush point
func (ctx *GameContext) PushEvent(et event.EventType, payload any) {
	ctx.eventQueue.Push(event.GameEvent{Type: et, Payload: payload, Frame: ctx.frame.Load()})
}

// FrameNumber returns the number of completed ticks
func (ctx *GameContext) FrameNumber() int64 {
	return ctx.frame.Load()
}

// RunSafe executes fn under the world update lock, for renderers
func (ctx *GameContext) RunSafe(fn func()) {
	ctx.World.RunSafe(fn)
}

type silentPlayer struct{}

func (silentPlayer) Play(string) bool { return false }
func (silentPlayer) IsMuted() bool    { return true }
