package system

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/vmath"
)

const frame = 16 * time.Millisecond

var testView = engine.ConfigResource{Width: 800, Height: 960, Scale: 1.5}

// newGame builds a seeded context running only the given systems
func newGame(t *testing.T, opts []engine.Option, systems ...func(*engine.World) engine.System) *engine.GameContext {
	t.Helper()
	opts = append([]engine.Option{engine.WithSeed(7)}, opts...)
	ctx := engine.NewGameContext(testView, opts...)
	for _, build := range systems {
		ctx.AddSystem(build(ctx.World))
	}
	if err := ctx.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return ctx
}

// eventCounter counts dispatched events by type
type eventCounter struct {
	types []event.EventType
	seen  map[event.EventType]int
	last  map[event.EventType]any
}

func newEventCounter(types ...event.EventType) *eventCounter {
	return &eventCounter{
		types: types,
		seen:  make(map[event.EventType]int),
		last:  make(map[event.EventType]any),
	}
}

func (c *eventCounter) Init()                      {}
func (c *eventCounter) Name() string               { return "event_counter" }
func (c *eventCounter) Stage() engine.Stage        { return engine.StageState }
func (c *eventCounter) Priority() int              { return 100 }
func (c *eventCounter) ActiveIn() engine.StateMask { return engine.ActiveAlways }
func (c *eventCounter) Update()                    {}

func (c *eventCounter) EventTypes() []event.EventType { return c.types }
func (c *eventCounter) HandleEvent(ev event.GameEvent) {
	c.seen[ev.Type]++
	c.last[ev.Type] = ev.Payload
}

// placeTarget creates a live damageable entity at pos
func placeTarget(w *engine.World, faction component.Faction, pos vmath.Vec2, radius float64, health uint32) core.Entity {
	c := w.Components
	e := w.CreateEntity()
	c.Transform.Set(e, component.TransformComponent{Position: pos})
	c.Faction.Set(e, component.FactionComponent{Faction: faction})
	c.Hitbox.Set(e, component.HitboxComponent{Radius: radius})
	c.Health.Set(e, component.HealthComponent{Current: health, Max: health})
	return e
}

// placeBullet creates a live projectile at pos
func placeBullet(w *engine.World, faction component.Faction, pos vmath.Vec2, radius float64, damage uint32) core.Entity {
	c := w.Components
	e := w.CreateEntity()
	c.Bullet.Set(e, component.BulletComponent{Kind: component.BulletSmall})
	c.Transform.Set(e, component.TransformComponent{Position: pos})
	c.Faction.Set(e, component.FactionComponent{Faction: faction})
	c.Hitbox.Set(e, component.HitboxComponent{Radius: radius})
	c.Damage.Set(e, component.DamageComponent{Amount: damage})
	c.DespawnOutside.Set(e, component.DespawnOutsideComponent{})
	return e
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

// headings returns the sorted direction of each velocity in degrees within [0, 360)
func headings(c *engine.ComponentStore, entities []core.Entity) []float64 {
	out := make([]float64, 0, len(entities))
	for _, e := range entities {
		v, _ := c.Velocity.Get(e)
		deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
		if deg < 0 {
			deg += 360
		}
		out = append(out, deg)
	}
	slices.Sort(out)
	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
