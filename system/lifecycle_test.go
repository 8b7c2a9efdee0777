package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

func TestExplosionOutlivesLoopsUntilLimit(t *testing.T) {
	ctx := newGame(t, nil, NewAnimationSystem, NewEffectCullSystem)
	w := ctx.World
	c := w.Components

	e := archetype.SpawnExplosion(w, vmath.V2(10, 10))
	w.Commands.Flush()

	limit, _ := c.AnimationLimit.Get(e)
	if limit.Limit != 12*parameter.AnimationFrameDuration {
		t.Fatalf("limit %v", limit.Limit)
	}

	step := parameter.AnimationFrameDuration
	frames := map[int]bool{}
	for i := 0; i < 11; i++ {
		ctx.Tick(step)
		if !w.Alive(e) {
			t.Fatalf("explosion gone after %v", time.Duration(i+1)*step)
		}
		sprite, _ := c.Sprite.Get(e)
		frames[sprite.Frame] = true
	}
	if len(frames) < 11 {
		t.Errorf("animation visited %d frames", len(frames))
	}

	ctx.Tick(step)
	if w.Alive(e) {
		t.Error("explosion alive after reaching its limit")
	}
}

func TestInvulnerabilityExpires(t *testing.T) {
	ctx := newGame(t, nil, NewInvulnerabilitySystem)
	w := ctx.World
	p := archetype.SpawnPlayer(w)
	w.Commands.Flush()

	for elapsed := time.Duration(0); elapsed < parameter.PlayerInvulnerable-frame; elapsed += frame * 4 {
		ctx.Tick(frame * 4)
	}
	if !w.Components.Invulnerable.Has(p) {
		t.Fatal("protection dropped early")
	}
	ctx.Tick(frame * 4)
	if w.Components.Invulnerable.Has(p) {
		t.Error("protection outlived its timer")
	}
}
