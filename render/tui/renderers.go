package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/parameter"
)

var enemyGlyphs = map[component.EnemyKind]rune{
	component.EnemyBasic:   'V',
	component.EnemyStrafer: 'W',
	component.EnemyBomber:  'M',
	component.EnemyGunner:  'Y',
}

var explosionGlyphs = []rune("·oO@#*X*#@O·")

// StarRenderer draws the starfield, brighter for larger stars
type StarRenderer struct {
	palette Palette
}

func (r *StarRenderer) Render(ctx Context, screen tcell.Screen) {
	c := ctx.World.Components
	for _, e := range c.Star.All() {
		tr, _ := c.Transform.Get(e)
		x, y, ok := ctx.Project(tr.Position)
		if !ok {
			continue
		}
		sprite, _ := c.Sprite.Get(e)
		switch sprite.Asset {
		case parameter.AssetStarLarge:
			screen.SetContent(x, y, '*', nil, r.palette.StarBright)
		case parameter.AssetStarMedium:
			screen.SetContent(x, y, '.', nil, r.palette.StarBright)
		default:
			screen.SetContent(x, y, '.', nil, r.palette.StarDim)
		}
	}
}

// BulletRenderer draws projectiles colored by owner
type BulletRenderer struct {
	palette Palette
}

func (r *BulletRenderer) Render(ctx Context, screen tcell.Screen) {
	c := ctx.World.Components
	for _, e := range c.Bullet.All() {
		tr, _ := c.Transform.Get(e)
		x, y, ok := ctx.Project(tr.Position)
		if !ok {
			continue
		}
		b, _ := c.Bullet.Get(e)
		if b.Kind == component.BulletBomb {
			screen.SetContent(x, y, 'o', nil, r.palette.Bomb)
			continue
		}
		f, _ := c.Faction.Get(e)
		if f.Faction == component.FactionPlayer {
			screen.SetContent(x, y, '|', nil, r.palette.PlayerShot)
		} else {
			screen.SetContent(x, y, '!', nil, r.palette.EnemyShot)
		}
	}
}

// ShipRenderer draws enemies and the player; a protected player blinks
type ShipRenderer struct {
	palette Palette
}

func (r *ShipRenderer) Render(ctx Context, screen tcell.Screen) {
	c := ctx.World.Components
	for _, e := range c.Enemy.All() {
		tr, _ := c.Transform.Get(e)
		x, y, ok := ctx.Project(tr.Position)
		if !ok {
			continue
		}
		en, _ := c.Enemy.Get(e)
		glyph, known := enemyGlyphs[en.Kind]
		if !known {
			glyph = '?'
		}
		screen.SetContent(x, y, glyph, nil, r.palette.Enemy)
	}

	for _, e := range c.Player.All() {
		tr, _ := c.Transform.Get(e)
		x, y, ok := ctx.Project(tr.Position)
		if !ok {
			continue
		}
		style := r.palette.Player
		if c.Invulnerable.Has(e) && ctx.Snapshot.Frame/8%2 == 1 {
			style = r.palette.PlayerBlink
		}
		screen.SetContent(x, y, 'A', nil, style)
	}
}

// ExplosionRenderer draws timed effects by animation frame
type ExplosionRenderer struct {
	palette Palette
}

func (r *ExplosionRenderer) Render(ctx Context, screen tcell.Screen) {
	c := ctx.World.Components
	for _, e := range c.AnimationLimit.All() {
		tr, _ := c.Transform.Get(e)
		x, y, ok := ctx.Project(tr.Position)
		if !ok {
			continue
		}
		sprite, _ := c.Sprite.Get(e)
		screen.SetContent(x, y, explosionGlyphs[sprite.Frame%len(explosionGlyphs)], nil, r.palette.Explosion)
	}
}

// StatusRenderer draws health, wave and score on the bottom row
type StatusRenderer struct {
	palette Palette
}

func (r *StatusRenderer) Render(ctx Context, screen tcell.Screen) {
	row := ctx.Rows
	for x := 0; x < ctx.Cols; x++ {
		screen.SetContent(x, row, ' ', nil, r.palette.Status)
	}

	s := ctx.Snapshot
	x := drawText(screen, 1, row, r.palette.Heart,
		strings.Repeat("♥", int(s.Health))+strings.Repeat("♡", int(s.MaxHealth-min(s.Health, s.MaxHealth))))

	wave := fmt.Sprintf("WAVE %d/%d  LEFT %d", s.Wave+1, s.Waves, s.Remaining)
	if s.Exhausted {
		wave = "CAMPAIGN CLEAR"
	}
	x = drawText(screen, x+2, row, r.palette.Status, wave)
	drawText(screen, x+2, row, r.palette.Status, fmt.Sprintf("SCORE %d", s.Score))
}

// OverlayRenderer centers a banner while paused or after the match ends
type OverlayRenderer struct {
	palette Palette
}

func (r *OverlayRenderer) Render(ctx Context, screen tcell.Screen) {
	var banner string
	switch ctx.Snapshot.State {
	case engine.MatchPaused.String():
		banner = " PAUSED  P to resume "
	case engine.MatchGameOver.String():
		banner = fmt.Sprintf(" GAME OVER  score %d  R to restart ", ctx.Snapshot.Score)
	default:
		return
	}
	x := (ctx.Cols - len([]rune(banner))) / 2
	drawText(screen, max(x, 0), ctx.Rows/2, r.palette.Overlay, banner)
}

// drawText writes s starting at (x, y) and returns the column after it
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
