package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zenith/engine"
)

// Renderer draws one layer
type Renderer interface {
	Render(ctx Context, screen tcell.Screen)
}

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline over a tcell screen
type Orchestrator struct {
	screen    tcell.Screen
	palette   Palette
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator with no renderers
func NewOrchestrator(screen tcell.Screen, palette Palette) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		palette:   palette,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the full renderer stack
func NewDefaultOrchestrator(screen tcell.Screen, palette Palette) *Orchestrator {
	o := NewOrchestrator(screen, palette)
	o.Register(&StarRenderer{palette: palette}, PriorityBackground)
	o.Register(&BulletRenderer{palette: palette}, PriorityProjectiles)
	o.Register(&ShipRenderer{palette: palette}, PriorityShips)
	o.Register(&ExplosionRenderer{palette: palette}, PriorityEffects)
	o.Register(&StatusRenderer{palette: palette}, PriorityUI)
	o.Register(&OverlayRenderer{palette: palette}, PriorityOverlay)
	return o
}

// Register adds a renderer at the given priority, keeping sorted order via insertion
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame clears the screen, runs every renderer under the world lock, then shows
func (o *Orchestrator) RenderFrame(game *engine.GameContext) {
	cols, rows := o.screen.Size()
	cfg := game.World.Resources.Config

	o.screen.SetStyle(o.palette.Background)
	o.screen.Clear()

	game.RunSafe(func() {
		ctx := Context{
			World:    game.World,
			Snapshot: game.SnapshotLocked(),
			Cols:     cols,
			Rows:     rows - 1,
			Width:    cfg.Width,
			Height:   cfg.Height,
		}
		for _, entry := range o.renderers {
			entry.renderer.Render(ctx, o.screen)
		}
	})

	o.screen.Show()
}

// Resize resynchronizes the terminal after a size change
func (o *Orchestrator) Resize() {
	o.screen.Sync()
}
