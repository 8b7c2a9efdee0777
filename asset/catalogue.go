package asset

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/zenith/vmath"
)

//go:generate go tool mockgen -destination=../engine/mocks/mock_provider.go -package=mocks . Provider

// Descriptor is a sprite sheet frame grid
type Descriptor struct {
	FrameWidth  float64
	FrameHeight float64
	Columns     int
	Rows        int
}

// FrameCount returns the number of animation frames in the sheet
func (d Descriptor) FrameCount() int {
	return d.Columns * d.Rows
}

// Extent returns one frame's on-screen size at the given scale
func (d Descriptor) Extent(scale float64) vmath.Vec2 {
	return vmath.V2(d.FrameWidth*scale, d.FrameHeight*scale)
}

// Provider resolves symbolic asset paths to frame grid descriptors
// A miss is not an error: the entity spawns and renders nothing until the asset resolves
type Provider interface {
	Lookup(path string) (Descriptor, bool)
}

// Catalogue is an in-memory Provider
type Catalogue map[string]Descriptor

// Lookup implements Provider
func (c Catalogue) Lookup(path string) (Descriptor, bool) {
	d, ok := c[path]
	return d, ok
}

type catalogueFile struct {
	Sprite map[string]struct {
		Frame [2]float64 `toml:"frame"`
		Grid  [2]int     `toml:"grid"`
	} `toml:"sprite"`
}

// ParseCatalogue decodes a TOML sprite catalogue
func ParseCatalogue(data string) (Catalogue, error) {
	var f catalogueFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	c := make(Catalogue, len(f.Sprite))
	for path, s := range f.Sprite {
		if s.Frame[0] <= 0 || s.Frame[1] <= 0 {
			return nil, fmt.Errorf("sprite %q: frame size must be positive", path)
		}
		if s.Grid[0] <= 0 || s.Grid[1] <= 0 {
			return nil, fmt.Errorf("sprite %q: grid must be at least 1x1", path)
		}
		c[path] = Descriptor{
			FrameWidth:  s.Frame[0],
			FrameHeight: s.Frame[1],
			Columns:     s.Grid[0],
			Rows:        s.Grid[1],
		}
	}
	return c, nil
}

var (
	defaultOnce      sync.Once
	defaultCatalogue Catalogue
)

// DefaultCatalogue returns the built-in catalogue, parsed once
func DefaultCatalogue() Catalogue {
	defaultOnce.Do(func() {
		c, err := ParseCatalogue(DefaultCatalogueConfig)
		if err != nil {
			panic(fmt.Sprintf("built-in catalogue: %v", err))
		}
		defaultCatalogue = c
	})
	return defaultCatalogue
}
