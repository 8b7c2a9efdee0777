package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker mixer
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMaxVoices caps concurrently mixed cues; further requests are dropped
	AudioMaxVoices = 16

	// AudioMasterVolume is the default gain applied on top of per-cue volumes
	AudioMasterVolume = 0.6
)

// Fire Sound: falling square chirp
const (
	FireSoundDuration = 60 * time.Millisecond
	FireSoundAttack   = 2 * time.Millisecond
	FireSoundRelease  = 30 * time.Millisecond
	FireStartFreq     = 1320.0 // Hz
	FireEndFreq       = 660.0  // Hz
)

// Explosion Sound: noise burst with a long tail
const (
	ExplosionSoundDuration = 450 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 380 * time.Millisecond
	ExplosionRumbleFreq    = 55.0 // Hz
)

// Hit Sound: low saw buzz when the player takes damage
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 60 * time.Millisecond
	HitSoundFreq     = 110.0 // Hz
)

// Wave Sound: two-note rising chime
const (
	WaveSoundNote1Duration = 90 * time.Millisecond
	WaveSoundNote2Duration = 260 * time.Millisecond
	WaveSoundAttack        = 5 * time.Millisecond
	WaveSoundNote1Release  = 40 * time.Millisecond
	WaveSoundNote2Release  = 200 * time.Millisecond
	WaveSoundNote1Freq     = 659.25  // E5
	WaveSoundNote2Freq     = 1318.51 // E6
)
