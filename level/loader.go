package level

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/zenith/asset"
	"github.com/lixenwraith/zenith/component"
)

type campaignFile struct {
	Wave []struct {
		DelayMS [2]int64 `toml:"delay_ms"`
		Quota   int      `toml:"quota"`
		Enemies []struct {
			Kind   string `toml:"kind"`
			Weight int    `toml:"weight"`
		} `toml:"enemies"`
	} `toml:"wave"`
}

// Parse decodes and validates a TOML campaign
func Parse(data string) (Campaign, error) {
	var f campaignFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return Campaign{}, fmt.Errorf("decode campaign: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Campaign{}, fmt.Errorf("decode campaign: unknown key %s", undecoded[0])
	}

	var c Campaign
	for i, fw := range f.Wave {
		w := Wave{
			DelayMin: time.Duration(fw.DelayMS[0]) * time.Millisecond,
			DelayMax: time.Duration(fw.DelayMS[1]) * time.Millisecond,
			Quota:    fw.Quota,
		}
		for _, fe := range fw.Enemies {
			kind, err := component.ParseEnemyKind(fe.Kind)
			if err != nil {
				return Campaign{}, fmt.Errorf("wave %d: %w", i, err)
			}
			w.Enemies = append(w.Enemies, WeightedEnemy{Kind: kind, Weight: fe.Weight})
		}
		c.Waves = append(c.Waves, w)
	}

	if err := c.Validate(); err != nil {
		return Campaign{}, err
	}
	return c, nil
}

// Load reads a campaign file
func Load(path string) (Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Campaign{}, fmt.Errorf("read campaign: %w", err)
	}
	c, err := Parse(string(data))
	if err != nil {
		return Campaign{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate rejects tables the wave controller cannot run
func (c Campaign) Validate() error {
	if len(c.Waves) == 0 {
		return errors.New("campaign has no waves")
	}
	var errs []error
	for i, w := range c.Waves {
		if w.Quota <= 0 {
			errs = append(errs, fmt.Errorf("wave %d: quota must be positive", i))
		}
		if w.DelayMin < 0 || w.DelayMax <= w.DelayMin {
			errs = append(errs, fmt.Errorf("wave %d: delay range [%v, %v) is empty", i, w.DelayMin, w.DelayMax))
		}
		if len(w.Enemies) == 0 {
			errs = append(errs, fmt.Errorf("wave %d: empty enemy table", i))
		}
		for _, e := range w.Enemies {
			if e.Weight < 0 {
				errs = append(errs, fmt.Errorf("wave %d: negative weight for %s", i, e.Kind))
			}
		}
		if len(w.Enemies) > 0 && w.TotalWeight() <= 0 {
			errs = append(errs, fmt.Errorf("wave %d: weights sum to zero", i))
		}
	}
	return errors.Join(errs...)
}

var (
	defaultOnce     sync.Once
	defaultCampaign Campaign
)

// DefaultCampaign returns the built-in wave table
func DefaultCampaign() Campaign {
	defaultOnce.Do(func() {
		c, err := Parse(asset.DefaultCampaignConfig)
		if err != nil {
			panic(fmt.Sprintf("built-in campaign: %v", err))
		}
		defaultCampaign = c
	})
	// Waves slice is shared; callers treat campaigns as read-only
	return defaultCampaign
}
