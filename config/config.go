// Package config assembles runtime settings from defaults, an optional TOML file and command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/zenith/parameter"
)

// Config is the resolved runtime configuration shared by both front ends
type Config struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Scale    float64 `toml:"scale"`
	TickRate int     `toml:"tick_rate"`
	// Seed fixes the random source; zero seeds from the wall clock
	Seed uint64 `toml:"seed"`
	// Campaign is an optional wave table path replacing the built-in campaign
	Campaign string `toml:"campaign"`
	Mute     bool   `toml:"mute"`
	Debug    bool   `toml:"debug"`
	// HUDAddr enables the websocket feed when non-empty
	HUDAddr   string `toml:"hud_addr"`
	ColorMode string `toml:"color"`
	// Keys overrides terminal bindings, key name to control or command
	Keys map[string]string `toml:"keys"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:     parameter.DefaultWidth,
		Height:    parameter.DefaultHeight,
		Scale:     parameter.DefaultScale,
		TickRate:  parameter.DefaultTickRate,
		ColorMode: "auto",
	}
}

// LoadFile overlays a TOML file onto c; keys absent from the file keep their value
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %gx%g must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %g must be positive", c.Scale))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate %d must be positive", c.TickRate))
	}
	switch c.ColorMode {
	case "auto", "truecolor", "256":
	default:
		errs = append(errs, fmt.Errorf("color mode %q is not auto, truecolor or 256", c.ColorMode))
	}
	return errors.Join(errs...)
}

// Parse resolves defaults, then -config, then explicitly set flags, in that order of precedence
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()

	var path string
	var width, height, scale float64
	var tickRate int
	var seed uint64
	var campaign, hud, color string
	var mute, debug bool

	fs.StringVar(&path, "config", "", "TOML configuration file")
	fs.Float64Var(&width, "width", cfg.Width, "viewport width in world units")
	fs.Float64Var(&height, "height", cfg.Height, "viewport height in world units")
	fs.Float64Var(&scale, "scale", cfg.Scale, "sprite scale factor")
	fs.IntVar(&tickRate, "tick", cfg.TickRate, "simulation ticks per second")
	fs.Uint64Var(&seed, "seed", cfg.Seed, "random seed, 0 for wall clock")
	fs.StringVar(&campaign, "campaign", "", "TOML campaign file")
	fs.StringVar(&hud, "hud", "", "HUD websocket listen address, e.g. :8088")
	fs.StringVar(&color, "color", cfg.ColorMode, "Color mode: auto, truecolor, 256")
	fs.BoolVar(&mute, "mute", false, "disable audio")
	fs.BoolVar(&debug, "debug", false, "write logs/zenith.log")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = width
		case "height":
			cfg.Height = height
		case "scale":
			cfg.Scale = scale
		case "tick":
			cfg.TickRate = tickRate
		case "seed":
			cfg.Seed = seed
		case "campaign":
			cfg.Campaign = campaign
		case "hud":
			cfg.HUDAddr = hud
		case "color":
			cfg.ColorMode = color
		case "mute":
			cfg.Mute = mute
		case "debug":
			cfg.Debug = debug
		}
	})

	return cfg, cfg.Validate()
}
