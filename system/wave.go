package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/parameter"
)

// WaveSystem drives enemy spawning across the campaign
// It is the only writer of the session record: each finished spawn timer draws one
// enemy from the active wave's weighted table, spends one unit of quota and reseeds
// the timer; an empty quota advances to the next wave or exhausts the campaign
type WaveSystem struct {
	engine.SystemBase

	statIndex *atomic.Int64
}

func NewWaveSystem(world *engine.World) engine.System {
	s := &WaveSystem{SystemBase: engine.NewSystemBase(world)}
	s.statIndex = s.Resource.Status.Ints.Get("wave.index")
	return s
}

func (s *WaveSystem) Init() {
	s.statIndex.Store(0)
}

func (s *WaveSystem) Name() string               { return "wave" }
func (s *WaveSystem) Stage() engine.Stage        { return engine.StageWave }
func (s *WaveSystem) Priority() int              { return parameter.PriorityWave }
func (s *WaveSystem) ActiveIn() engine.StateMask { return engine.ActiveSimulation }

func (s *WaveSystem) Access() engine.Access {
	return engine.Access{}.Write(s.Component.Wave)
}

func (s *WaveSystem) Update() {
	entity, session := engine.Single(s.Component.Wave)
	index, ok := session.Level()
	if !ok {
		return
	}

	waves := s.Resource.Levels.Campaign.Waves
	wave := waves[index]
	r := s.Resource.Rand.Rand

	session.SpawnTimer.Tick(s.Resource.Time.DeltaTime)
	if session.SpawnTimer.Finished() && session.Remaining > 0 {
		archetype.SpawnEnemy(s.World, wave.Sample(r))
		session.Remaining--
		session.SpawnTimer.ResetWith(wave.SpawnDelay(r))
	}

	if session.Remaining == 0 {
		s.advance(&session, len(waves))
	}
	s.Component.Wave.Set(entity, session)
}

// advance moves to the next wave, or marks the campaign exhausted after the last one
func (s *WaveSystem) advance(session *component.WaveComponent, waves int) {
	next := session.Index + 1
	if next >= waves {
		session.Exhausted = true
		log.Printf("campaign exhausted after wave %d", session.Index)
		s.World.PushEvent(event.EventWaveAdvanced, &event.WaveAdvancedPayload{Index: session.Index, Exhausted: true})
		return
	}

	session.Index = next
	session.Remaining = s.Resource.Levels.Campaign.Waves[next].Quota
	session.SpawnTimer.Reset()
	s.statIndex.Store(int64(next))
	log.Printf("wave %d started, quota %d", next, session.Remaining)
	s.World.PushEvent(event.EventWaveAdvanced, &event.WaveAdvancedPayload{Index: next})
}
