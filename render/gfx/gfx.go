// Package gfx draws the simulation in a window through ebiten and polls its keyboard
package gfx

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/input"
	"github.com/lixenwraith/zenith/vmath"
)

var (
	colorBackground = color.RGBA{R: 10, G: 10, B: 24, A: 255}
	colorStar       = color.RGBA{R: 200, G: 200, B: 230, A: 255}
	colorPlayer     = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	colorEnemy      = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	colorPlayerShot = color.RGBA{R: 255, G: 255, B: 120, A: 255}
	colorEnemyShot  = color.RGBA{R: 255, G: 140, B: 60, A: 255}
	colorBomb       = color.RGBA{R: 255, G: 60, B: 200, A: 255}
	colorExplosion  = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	colorText       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	colorShade      = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

var face = text.NewGoXFace(basicfont.Face7x13)

// heldKeys maps ebiten keys to held controls
var heldKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyZ:          input.KeyFire,
	ebiten.KeySpace:      input.KeyFire,
	ebiten.KeyShiftLeft:  input.KeyPrecision,
	ebiten.KeyShiftRight: input.KeyPrecision,
}

// Game adapts a GameContext to ebiten's loop; ebiten drives the tick rate
type Game struct {
	ctx    *engine.GameContext
	width  int
	height int
	dt     time.Duration

	// OnMute is called when the mute key is pressed
	OnMute func()
}

// NewGame creates the adapter; the window matches the viewport one pixel per world unit
func NewGame(ctx *engine.GameContext, tickRate int) *Game {
	cfg := ctx.World.Resources.Config
	return &Game{
		ctx:    ctx,
		width:  int(cfg.Width),
		height: int(cfg.Height),
		dt:     time.Second / time.Duration(tickRate),
	}
}

// Update polls input, forwards commands and advances one frame
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctx.PushEvent(event.EventPauseToggle, nil)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctx.PushEvent(event.EventRestart, nil)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.OnMute != nil {
		g.OnMute()
	}

	var keys input.KeySet
	for k, control := range heldKeys {
		if ebiten.IsKeyPressed(k) {
			keys = keys.With(control)
		}
	}
	g.ctx.SetInput(keys)
	g.ctx.Tick(g.dt)
	return nil
}

// Draw renders every entity layer then the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	var snap engine.Snapshot
	g.ctx.RunSafe(func() {
		g.drawWorld(screen)
		snap = g.ctx.SnapshotLocked()
	})
	g.drawHUD(screen, snap)
}

// Layout fixes the logical screen to the viewport
func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

// toScreen maps world coordinates (origin at center, y up) to pixels
func (g *Game) toScreen(p vmath.Vec2) (float32, float32) {
	return float32(p.X + float64(g.width)/2), float32(float64(g.height)/2 - p.Y)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	c := g.ctx.World.Components

	for _, e := range c.Star.All() {
		tr, _ := c.Transform.Get(e)
		sprite, _ := c.Sprite.Get(e)
		x, y := g.toScreen(tr.Position)
		vector.FillRect(screen, x, y, float32(max(sprite.Size.X, 1)), float32(max(sprite.Size.Y, 1)), colorStar, false)
	}

	for _, e := range c.Bullet.All() {
		tr, _ := c.Transform.Get(e)
		hb, _ := c.Hitbox.Get(e)
		b, _ := c.Bullet.Get(e)
		f, _ := c.Faction.Get(e)
		clr := colorEnemyShot
		switch {
		case b.Kind == component.BulletBomb:
			clr = colorBomb
		case f.Faction == component.FactionPlayer:
			clr = colorPlayerShot
		}
		x, y := g.toScreen(tr.Position)
		vector.FillCircle(screen, x, y, float32(hb.Radius), clr, true)
	}

	for _, e := range c.Enemy.All() {
		tr, _ := c.Transform.Get(e)
		hb, _ := c.Hitbox.Get(e)
		x, y := g.toScreen(tr.Position)
		vector.FillCircle(screen, x, y, float32(hb.Radius), colorEnemy, true)
	}

	for _, e := range c.Player.All() {
		tr, _ := c.Transform.Get(e)
		hb, _ := c.Hitbox.Get(e)
		x, y := g.toScreen(tr.Position)
		clr := colorPlayer
		if c.Invulnerable.Has(e) && g.ctx.FrameNumber()/8%2 == 1 {
			clr.A = 90
		}
		r := float32(hb.Radius)
		var path vector.Path
		path.MoveTo(x, y-r)
		path.LineTo(x+r, y+r)
		path.LineTo(x-r, y+r)
		path.Close()
		vector.FillPath(screen, &path, &vector.FillOptions{}, &vector.DrawPathOptions{AntiAlias: true, ColorScale: colorScale(clr)})
	}

	for _, e := range c.AnimationLimit.All() {
		tr, _ := c.Transform.Get(e)
		sprite, _ := c.Sprite.Get(e)
		lim, _ := c.AnimationLimit.Get(e)
		progress := float32(lim.Stopwatch.Elapsed()) / float32(max(lim.Limit, 1))
		clr := colorExplosion
		clr.A = uint8(255 * (1 - min(progress, 1)))
		x, y := g.toScreen(tr.Position)
		vector.FillCircle(screen, x, y, float32(sprite.Size.X/2)*(0.3+0.7*progress), clr, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, s engine.Snapshot) {
	status := fmt.Sprintf("HP %d/%d   WAVE %d/%d   LEFT %d   SCORE %d", s.Health, s.MaxHealth, s.Wave+1, s.Waves, s.Remaining, s.Score)
	if s.Exhausted {
		status = fmt.Sprintf("HP %d/%d   CAMPAIGN CLEAR   SCORE %d", s.Health, s.MaxHealth, s.Score)
	}
	drawText(screen, status, 8, 8)

	var banner string
	switch s.State {
	case engine.MatchPaused.String():
		banner = "PAUSED - P to resume"
	case engine.MatchGameOver.String():
		banner = fmt.Sprintf("GAME OVER - score %d - R to restart", s.Score)
	default:
		return
	}
	vector.FillRect(screen, 0, float32(g.height)/2-20, float32(g.width), 40, colorShade, false)
	w, _ := text.Measure(banner, face, 0)
	drawText(screen, banner, (float64(g.width)-w)/2, float64(g.height)/2-6)
}

func drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, s, face, op)
}

func colorScale(c color.RGBA) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(c)
	return cs
}

// Run opens the window and blocks until it is closed or Q is pressed
func Run(game *Game, title string) error {
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(int(time.Second / game.dt))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
