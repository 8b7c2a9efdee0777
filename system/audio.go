package system

import (
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/parameter"
)

// AudioSystem consumes sound request events and forwards cues to the audio player
// Decouples game systems from direct player access
type AudioSystem struct {
	engine.SystemBase
	player engine.AudioPlayer
}

// NewAudioSystem creates an audio system bound to the world's player, which may be nil
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{SystemBase: engine.NewSystemBase(world)}
	if s.Resource.Audio != nil {
		s.player = s.Resource.Audio.Player
	}
	return s
}

func (s *AudioSystem) Init()                      {}
func (s *AudioSystem) Name() string               { return "audio" }
func (s *AudioSystem) Stage() engine.Stage        { return engine.StageState }
func (s *AudioSystem) Priority() int              { return parameter.PriorityAudio }
func (s *AudioSystem) ActiveIn() engine.StateMask { return engine.ActiveAlways }

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventWaveAdvanced,
	}
}

// HandleEvent plays the requested cue; delivery is fire-and-forget
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}
	switch ev.Type {
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.player.Play(p.Cue)
		}
	case event.EventWaveAdvanced:
		if p, ok := ev.Payload.(*event.WaveAdvancedPayload); ok && !p.Exhausted {
			s.player.Play(parameter.CueWave)
		}
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
