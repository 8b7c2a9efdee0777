// Package tui draws the simulation to a terminal through tcell
// Renderers only read the world; they run under the world update lock
package tui

import (
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/vmath"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	World    *engine.World
	Snapshot engine.Snapshot

	// Play area in cells; the status bar occupies the row below it
	Cols int
	Rows int

	// Viewport in world units
	Width  float64
	Height float64
}

// Project maps a world position (origin at center, y up) to a cell (origin top-left, y down)
func (c Context) Project(p vmath.Vec2) (x, y int, ok bool) {
	if c.Cols <= 0 || c.Rows <= 0 {
		return 0, 0, false
	}
	fx := (p.X + c.Width/2) / c.Width
	fy := (c.Height/2 - p.Y) / c.Height
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	return int(fx * float64(c.Cols)), int(fy * float64(c.Rows)), true
}
