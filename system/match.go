package system

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/asset"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/engine/fsm"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/parameter"
)

// MatchSystem owns the Playing / Paused / GameOver machine and the match bookkeeping
// Commands and deaths arrive as events, are queued at dispatch and applied in order
// during the state stage, so a transition takes effect from the next frame on
type MatchSystem struct {
	engine.SystemBase

	machine *fsm.Machine[*MatchSystem]
	pending []event.EventType
}

// NewMatchSystem builds the machine from the built-in match config
// The config is part of the binary, so a load failure is a programming error
func NewMatchSystem(world *engine.World) engine.System {
	s := &MatchSystem{SystemBase: engine.NewSystemBase(world)}

	m := fsm.NewMachine[*MatchSystem]()
	m.RegisterAction("BeginSession", func(s *MatchSystem, _ any) { s.beginSession() })
	m.RegisterAction("ResetSession", func(s *MatchSystem, _ any) { s.resetSession() })
	m.RegisterAction("SetMatchState", func(s *MatchSystem, args any) { s.setState(args) })
	if err := m.LoadConfig(asset.DefaultMatchFSMConfig); err != nil {
		panic(fmt.Sprintf("match state machine: %v", err))
	}
	s.machine = m
	return s
}

// Init enters the initial state, which spawns the first session and player
func (s *MatchSystem) Init() {
	s.pending = s.pending[:0]
	if err := s.machine.Init(s); err != nil {
		panic(fmt.Sprintf("match state machine: %v", err))
	}
}

func (s *MatchSystem) Name() string               { return "match" }
func (s *MatchSystem) Stage() engine.Stage        { return engine.StageState }
func (s *MatchSystem) Priority() int              { return parameter.PriorityMatch }
func (s *MatchSystem) ActiveIn() engine.StateMask { return engine.ActiveAlways }

func (s *MatchSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPauseToggle,
		event.EventRestart,
		event.EventPlayerDied,
		event.EventEnemyKilled,
	}
}

func (s *MatchSystem) HandleEvent(ev event.GameEvent) {
	s.pending = append(s.pending, ev.Type)
}

func (s *MatchSystem) Update() {
	match := s.Resource.Match
	for _, et := range s.pending {
		if et == event.EventEnemyKilled {
			if match.State == engine.MatchPlaying {
				match.Score++
			}
			continue
		}
		s.machine.HandleEvent(s, et)
	}
	s.pending = s.pending[:0]

	s.machine.Update(s, s.Resource.Time.DeltaTime)
}

// ActiveState returns the machine's leaf state name
func (s *MatchSystem) ActiveState() string {
	return s.machine.ActiveStateName()
}

func (s *MatchSystem) beginSession() {
	match := s.Resource.Match
	match.Matches++
	archetype.SpawnSession(s.World)
	archetype.SpawnPlayer(s.World)
	log.Printf("match %d started, session %s", match.Matches, match.Session)
}

// resetSession clears every transient entity and starts a fresh session
// Stars survive; the session record is replaced in the same flush, keeping exactly one
func (s *MatchSystem) resetSession() {
	c := s.Component
	seen := make(map[core.Entity]struct{})
	for _, store := range []engine.AnyStore{c.Bullet, c.Enemy, c.Animation, c.AnimationLimit, c.Player, c.Wave} {
		for _, e := range store.All() {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			s.Commands.Despawn(e)
		}
	}

	match := s.Resource.Match
	match.Score = 0
	match.Session = uuid.New()
	s.Resource.Status.Ints.Get("wave.index").Store(0)
	log.Printf("match reset, %d entities cleared", len(seen))

	s.beginSession()
}

func (s *MatchSystem) setState(args any) {
	name, _ := args.(string)
	var state engine.MatchState
	switch name {
	case "playing":
		state = engine.MatchPlaying
	case "paused":
		state = engine.MatchPaused
	case "gameover":
		state = engine.MatchGameOver
	default:
		panic(fmt.Sprintf("unknown match state %q", name))
	}

	match := s.Resource.Match
	if match.State != state {
		log.Printf("match state %s -> %s", match.State, state)
	}
	match.State = state
}
