package tui

import "github.com/gdamore/tcell/v2"

// Palette holds every style the renderers use
type Palette struct {
	Background  tcell.Style
	StarDim     tcell.Style
	StarBright  tcell.Style
	Player      tcell.Style
	PlayerBlink tcell.Style
	Enemy       tcell.Style
	PlayerShot  tcell.Style
	EnemyShot   tcell.Style
	Bomb        tcell.Style
	Explosion   tcell.Style
	Status      tcell.Style
	Heart       tcell.Style
	Overlay     tcell.Style
}

// NewPalette resolves styles for a color mode: "truecolor", "256" or "auto"
// auto trusts tcell's terminfo detection and uses RGB, which tcell downsamples when needed
func NewPalette(mode string) Palette {
	rgb := func(r, g, b int32, fallback int) tcell.Color {
		if mode == "256" {
			return tcell.PaletteColor(fallback)
		}
		return tcell.NewRGBColor(r, g, b)
	}
	bg := rgb(26, 27, 38, 234)
	base := tcell.StyleDefault.Background(bg)

	return Palette{
		Background:  base,
		StarDim:     base.Foreground(rgb(90, 90, 110, 240)),
		StarBright:  base.Foreground(rgb(220, 220, 235, 254)),
		Player:      base.Foreground(rgb(100, 200, 255, 81)).Bold(true),
		PlayerBlink: base.Foreground(rgb(60, 100, 140, 67)),
		Enemy:       base.Foreground(rgb(255, 90, 90, 203)).Bold(true),
		PlayerShot:  base.Foreground(rgb(255, 255, 120, 228)),
		EnemyShot:   base.Foreground(rgb(255, 140, 60, 208)),
		Bomb:        base.Foreground(rgb(255, 60, 200, 201)).Bold(true),
		Explosion:   base.Foreground(rgb(255, 200, 0, 220)),
		Status:      tcell.StyleDefault.Background(rgb(40, 42, 58, 236)).Foreground(rgb(255, 255, 255, 255)),
		Heart:       tcell.StyleDefault.Background(rgb(40, 42, 58, 236)).Foreground(rgb(255, 80, 80, 203)),
		Overlay:     base.Foreground(rgb(255, 255, 255, 255)).Bold(true).Reverse(true),
	}
}
