package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/input"
	"github.com/lixenwraith/zenith/vmath"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func cell(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestProject(t *testing.T) {
	ctx := Context{Cols: 80, Rows: 40, Width: 800, Height: 960}
	tests := []struct {
		name   string
		pos    vmath.Vec2
		x, y   int
		inside bool
	}{
		{"center", vmath.V2(0, 0), 40, 20, true},
		{"top left", vmath.V2(-400, 480), 0, 0, true},
		{"bottom right edge", vmath.V2(399, -479), 79, 39, true},
		{"off right", vmath.V2(400, 0), 0, 0, false},
		{"below", vmath.V2(0, -481), 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := ctx.Project(tt.pos)
		if ok != tt.inside || (ok && (x != tt.x || y != tt.y)) {
			t.Errorf("%s: got (%d,%d,%v), want (%d,%d,%v)", tt.name, x, y, ok, tt.x, tt.y, tt.inside)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	screen := newScreen(t, 80, 41)
	game := engine.NewGameContext(engine.ConfigResource{Width: 800, Height: 960, Scale: 1.5}, engine.WithSeed(1))
	if err := game.Start(); err != nil {
		t.Fatal(err)
	}
	w := game.World
	archetype.SpawnPlayer(w)
	e := archetype.SpawnEnemy(w, component.EnemyBomber)
	w.Commands.Flush()
	w.Components.Transform.Set(e, component.TransformComponent{Position: vmath.V2(0, 240)})

	NewDefaultOrchestrator(screen, NewPalette("truecolor")).RenderFrame(game)

	// Player spawns at (0, -H/4), the bomber was moved to (0, H/4)
	if got := cell(screen, 40, 30); got != 'A' {
		t.Errorf("player cell %q", got)
	}
	if got := cell(screen, 40, 10); got != 'M' {
		t.Errorf("bomber cell %q", got)
	}
	if got := cell(screen, 1, 40); got != '♥' {
		t.Errorf("status bar starts with %q", got)
	}
}

func TestOverlayShowsPause(t *testing.T) {
	screen := newScreen(t, 40, 21)
	r := &OverlayRenderer{palette: NewPalette("256")}
	r.Render(Context{Cols: 40, Rows: 20, Snapshot: engine.Snapshot{State: engine.MatchPaused.String()}}, screen)
	screen.Show()

	banner := " PAUSED  P to resume "
	x := (40 - len(banner)) / 2
	if got := cell(screen, x+1, 10); got != 'P' {
		t.Errorf("overlay cell %q", got)
	}
}

func TestResolveKey(t *testing.T) {
	table := input.DefaultKeyTable()
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		want  input.Binding
		shift bool
		ok    bool
	}{
		{"fire", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), input.Binding{Key: input.KeyFire, Held: true}, false, true},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'L', tcell.ModShift), input.Binding{Key: input.KeyRight, Held: true}, true, true},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.Binding{Key: input.KeyLeft, Held: true}, false, true},
		{"shift arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), input.Binding{Key: input.KeyUp, Held: true}, true, true},
		{"pause", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Binding{Intent: input.IntentPause}, false, true},
		{"quit", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.Binding{Intent: input.IntentQuit}, false, true},
		{"unbound", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), input.Binding{}, false, false},
	}
	for _, tt := range tests {
		b, shift, ok := ResolveKey(table, tt.ev)
		if ok != tt.ok || b != tt.want || shift != tt.shift {
			t.Errorf("%s: got (%+v, %v, %v)", tt.name, b, shift, ok)
		}
	}
}
