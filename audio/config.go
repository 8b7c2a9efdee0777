package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/zenith/parameter"
)

// Config controls cue synthesis and playback
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	// CueVolumes scales each cue by its symbolic path; missing cues play at unity
	CueVolumes map[string]float64
}

// DefaultConfig returns the built-in mix
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		CueVolumes: map[string]float64{
			parameter.CueFire:      0.35,
			parameter.CueExplosion: 0.9,
			parameter.CueHit:       0.8,
			parameter.CueWave:      0.6,
		},
	}
}

// LoadConfig applies ZENITH_* environment overrides to the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("ZENITH_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100
	if volume := os.Getenv("ZENITH_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-cue volumes as a JSON object keyed by cue path
	if cueVols := os.Getenv("ZENITH_CUE_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for cue, v := range volumes {
				if _, known := cfg.CueVolumes[cue]; known {
					cfg.CueVolumes[cue] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("ZENITH_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume returns the effective gain for a cue
func (c *Config) volume(cue string) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
