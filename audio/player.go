package audio

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/zenith/parameter"
)

// Player synthesizes cues on demand and mixes them into the speaker
// Implements engine.AudioPlayer; Play never blocks the simulation on the device
type Player struct {
	config *Config
	mixer  *beep.Mixer

	running atomic.Bool
	muted   atomic.Bool

	played  atomic.Int64
	dropped atomic.Int64
}

// NewPlayer creates a stopped player; Start opens the device
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Player{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start initializes the speaker and attaches the cue mixer
func (p *Player) Start() error {
	if p.running.Load() {
		return fmt.Errorf("audio player already running")
	}
	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.running.Store(true)
	log.Printf("audio started at %d Hz", p.config.SampleRate)
	return nil
}

// Stop detaches all voices and closes the device
func (p *Player) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	speaker.Clear()
	speaker.Close()
	log.Printf("audio stopped, %d cues played, %d dropped", p.played.Load(), p.dropped.Load())
}

// Play mixes the cue in; returns false when muted, stopped, saturated or the cue is unknown
func (p *Player) Play(cue string) bool {
	if p.muted.Load() || !p.running.Load() {
		return false
	}
	s, ok := Synthesize(cue, p.config)
	if !ok {
		return false
	}

	speaker.Lock()
	full := p.mixer.Len() >= parameter.AudioMaxVoices
	if !full {
		p.mixer.Add(s)
	}
	speaker.Unlock()

	if full {
		p.dropped.Add(1)
		return false
	}
	p.played.Add(1)
	return true
}

func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// SetMuted switches playback; voices already mixing finish
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Stats returns played and dropped cue counts
func (p *Player) Stats() (played, dropped int64) {
	return p.played.Load(), p.dropped.Load()
}
