package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/event"
)

type probeSystem struct {
	name     string
	stage    Stage
	priority int
	mask     StateMask
	access   *Access
	update   func()
	trace    *[]string
}

func (p *probeSystem) Init()               {}
func (p *probeSystem) Name() string        { return p.name }
func (p *probeSystem) Stage() Stage        { return p.stage }
func (p *probeSystem) Priority() int       { return p.priority }
func (p *probeSystem) ActiveIn() StateMask { return p.mask }
func (p *probeSystem) Update() {
	if p.trace != nil {
		*p.trace = append(*p.trace, p.name)
	}
	if p.update != nil {
		p.update()
	}
}

type accessProbe struct {
	*probeSystem
}

func (a accessProbe) Access() Access { return *a.access }

func newTestScheduler() (*World, *Scheduler, *event.EventQueue) {
	w := NewWorld()
	q := event.NewEventQueue()
	w.Resources.Event = &EventQueueResource{Queue: q}
	w.Resources.Time = &TimeResource{}
	return w, NewScheduler(w, event.NewRouter(q)), q
}

func TestStageOrderAndPriority(t *testing.T) {
	_, s, _ := newTestScheduler()
	var trace []string

	s.Add(&probeSystem{name: "state", stage: StageState, mask: ActiveAlways, trace: &trace})
	s.Add(&probeSystem{name: "collide", stage: StageCollision, mask: ActiveAlways, trace: &trace})
	s.Add(&probeSystem{name: "fire", stage: StageInput, priority: 20, mask: ActiveAlways, trace: &trace})
	s.Add(&probeSystem{name: "move", stage: StageInput, priority: 10, mask: ActiveAlways, trace: &trace})
	s.Add(&probeSystem{name: "integrate", stage: StageIntegrate, mask: ActiveAlways, trace: &trace})

	s.RunFrame(MatchPlaying)

	want := []string{"move", "fire", "integrate", "collide", "state"}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("got %v, want %v", trace, want)
	}
}

func TestStateGating(t *testing.T) {
	_, s, _ := newTestScheduler()
	var trace []string

	s.Add(&probeSystem{name: "sim", stage: StageIntegrate, mask: ActiveSimulation, trace: &trace})
	s.Add(&probeSystem{name: "fx", stage: StageLifecycle, mask: ActiveEffects, trace: &trace})
	s.Add(&probeSystem{name: "match", stage: StageState, mask: ActiveAlways, trace: &trace})

	s.RunFrame(MatchPaused)
	if !reflect.DeepEqual(trace, []string{"match"}) {
		t.Errorf("paused: got %v", trace)
	}

	trace = nil
	s.RunFrame(MatchGameOver)
	if !reflect.DeepEqual(trace, []string{"fx", "match"}) {
		t.Errorf("game over: got %v", trace)
	}
}

func TestSpawnVisibleFromNextStage(t *testing.T) {
	w, s, _ := newTestScheduler()
	c := w.Components

	var spawned core.Entity
	var sameStage, nextStage int

	s.Add(&probeSystem{name: "spawner", stage: StageTimers, mask: ActiveAlways, update: func() {
		ec := w.Commands.Spawn()
		Insert(ec, c.Bullet, component.BulletComponent{})
		spawned = ec.ID()
	}})
	s.Add(&probeSystem{name: "peer", stage: StageTimers, priority: 1, mask: ActiveAlways, update: func() {
		sameStage = c.Bullet.Count()
	}})
	s.Add(&probeSystem{name: "reader", stage: StageIntegrate, mask: ActiveAlways, update: func() {
		nextStage = c.Bullet.Count()
	}})

	s.RunFrame(MatchPlaying)

	if sameStage != 0 {
		t.Errorf("same-stage system saw %d bullets", sameStage)
	}
	if nextStage != 1 || !w.Alive(spawned) {
		t.Errorf("next stage saw %d bullets", nextStage)
	}
}

func TestValidateReportsConflicts(t *testing.T) {
	w, s, _ := newTestScheduler()
	c := w.Components

	writeHealth := Access{}.Write(c.Health)
	readHealth := Access{}.Read(c.Health, c.Transform)
	writeVelocity := Access{}.Write(c.Velocity).Read(c.Transform)

	s.Add(accessProbe{&probeSystem{name: "damage", stage: StageCollision, mask: ActiveAlways, access: &writeHealth}})
	s.Add(accessProbe{&probeSystem{name: "observer", stage: StageCollision, mask: ActiveAlways, access: &readHealth}})
	s.Add(accessProbe{&probeSystem{name: "steer", stage: StageCollision, mask: ActiveAlways, access: &writeVelocity}})
	// same store in a different stage is fine
	s.Add(accessProbe{&probeSystem{name: "regen", stage: StageLifecycle, mask: ActiveAlways, access: &writeHealth}})

	err := s.Validate()
	if err == nil {
		t.Fatal("expected conflict")
	}
	msg := err.Error()
	if !strings.Contains(msg, "damage and observer") || !strings.Contains(msg, "Health") {
		t.Errorf("unexpected error: %v", msg)
	}
	if strings.Contains(msg, "steer") || strings.Contains(msg, "regen") {
		t.Errorf("false positive: %v", msg)
	}
}

func TestValidateHonorsQueryFilters(t *testing.T) {
	w, s, _ := newTestScheduler()
	c := w.Components

	clamp := Access{}.Write(c.Transform).Require(c.Player)
	wrap := Access{}.Write(c.Transform).Require(c.Star).Exclude(c.Player)
	drift := Access{}.Write(c.Transform).Require(c.Velocity)

	s.Add(accessProbe{&probeSystem{name: "clamp", stage: StageBoundary, mask: ActiveAlways, access: &clamp}})
	s.Add(accessProbe{&probeSystem{name: "wrap", stage: StageBoundary, mask: ActiveAlways, access: &wrap}})

	if err := s.Validate(); err != nil {
		t.Fatalf("filtered systems reported as conflicting: %v", err)
	}

	s.Add(accessProbe{&probeSystem{name: "drift", stage: StageBoundary, mask: ActiveAlways, access: &drift}})
	err := s.Validate()
	if err == nil || !strings.Contains(err.Error(), "drift") {
		t.Errorf("expected drift conflict, got %v", err)
	}
}

type pauseCounter struct {
	probeSystem
	seen int
}

func (p *pauseCounter) EventTypes() []event.EventType   { return []event.EventType{event.EventPauseToggle} }
func (p *pauseCounter) HandleEvent(ev event.GameEvent) { p.seen++ }

func TestEventsDispatchedAtFlush(t *testing.T) {
	w, s, _ := newTestScheduler()

	h := &pauseCounter{probeSystem: probeSystem{name: "counter", stage: StageState, mask: ActiveAlways}}
	s.Add(h)
	s.Add(&probeSystem{name: "emitter", stage: StageInput, mask: ActiveAlways, update: func() {
		w.PushEvent(event.EventPauseToggle, nil)
	}})

	s.RunFrame(MatchPlaying)
	if h.seen != 1 {
		t.Errorf("expected 1 dispatched event, got %d", h.seen)
	}
}
