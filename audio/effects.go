package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/zenith/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from startFreq to endFreq
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding between two pitches over its duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over a fixed duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a linear gain as an effects.Volume
// math.Log2(0) is -Inf, so zero volume becomes Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// synth builds one cue at unity gain
type synth func(rate beep.SampleRate) beep.Streamer

var cueSynths = map[string]synth{
	parameter.CueFire:      fireSound,
	parameter.CueExplosion: explosionSound,
	parameter.CueHit:       hitSound,
	parameter.CueWave:      waveSound,
}

func fireSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.FireStartFreq, parameter.FireEndFreq, parameter.FireSoundDuration, WaveSquare, rate)
	return NewEnvelope(osc, parameter.FireSoundDuration, parameter.FireSoundAttack, parameter.FireSoundRelease, rate)
}

func explosionSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ExplosionSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
	rumble := NewEnvelope(NewOscillator(parameter.ExplosionRumbleFreq, d, WaveSine, rate), d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
	return beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
}

func hitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.HitSoundFreq, parameter.HitSoundDuration, WaveSaw, rate)
	return NewEnvelope(osc, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
}

func waveSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(parameter.WaveSoundNote1Freq, parameter.WaveSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.WaveSoundNote1Duration, parameter.WaveSoundAttack, parameter.WaveSoundNote1Release, rate)

	n2 := NewOscillator(parameter.WaveSoundNote2Freq, parameter.WaveSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.WaveSoundNote2Duration, parameter.WaveSoundAttack, parameter.WaveSoundNote2Release, rate)

	return beep.Seq(n1Shaped, n2Shaped)
}

// Synthesize returns the streamer for a cue path scaled by its configured volume, false for unknown cues
func Synthesize(cue string, cfg *Config) (beep.Streamer, bool) {
	build, ok := cueSynths[cue]
	if !ok {
		return nil, false
	}
	return newVolume(build(beep.SampleRate(cfg.SampleRate)), cfg.volume(cue)), true
}
