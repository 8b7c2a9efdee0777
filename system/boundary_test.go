package system

import (
	"testing"

	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

func TestWallBounceFlipsOncePerCrossing(t *testing.T) {
	ctx := newGame(t, nil, NewVelocitySystem, NewBehaviorSystem)
	w := ctx.World
	c := w.Components

	bomb := archetype.SpawnShot(w, archetype.BombShot(vmath.V2(0, 400), vmath.V2(3, 0)))
	w.Commands.Flush()
	c.Velocity.Set(bomb, component.VelocityComponent{Vec2: vmath.V2(3, 0)})

	sprite, _ := c.Sprite.Get(bomb)
	bound := w.Resources.Config.InnerBound(sprite.Size).X

	var walls []float64
	lastSign := 1.0
	for i := 0; i < 1000 && len(walls) < 2; i++ {
		ctx.Tick(frame)
		tr, _ := c.Transform.Get(bomb)
		v, _ := c.Velocity.Get(bomb)
		if tr.Position.X > bound || tr.Position.X < -bound {
			t.Fatalf("tick %d: x %v outside [-%v, %v]", i, tr.Position.X, bound, bound)
		}
		sign := 1.0
		if v.X < 0 {
			sign = -1
		}
		if sign != lastSign {
			walls = append(walls, tr.Position.X)
			lastSign = sign
		}
	}
	if len(walls) != 2 {
		t.Fatalf("expected two wall contacts, got %v", walls)
	}
	if walls[0] != bound || walls[1] != -bound {
		t.Errorf("flips at %v, want right wall then left wall at %v", walls, bound)
	}
}

func TestStraferTurnsAtWall(t *testing.T) {
	ctx := newGame(t, nil, NewBehaviorSystem)
	w := ctx.World
	c := w.Components

	e := archetype.SpawnEnemy(w, component.EnemyStrafer)
	w.Commands.Flush()
	sprite, _ := c.Sprite.Get(e)
	bound := w.Resources.Config.InnerBound(sprite.Size).X

	c.Transform.Set(e, component.TransformComponent{Position: vmath.V2(bound, 0)})
	c.Velocity.Set(e, component.VelocityComponent{Vec2: vmath.V2(parameter.StrafeSpeed, -1)})
	ctx.Tick(frame)

	v, _ := c.Velocity.Get(e)
	if v.X != -parameter.StrafeSpeed || v.Y != -1 {
		t.Errorf("expected inward strafe, got %+v", v.Vec2)
	}
}

func TestBombExplodesAtFloor(t *testing.T) {
	ctx := newGame(t, nil, NewBehaviorSystem)
	w := ctx.World
	c := w.Components

	bomb := archetype.SpawnShot(w, archetype.BombShot(vmath.V2(20, -479), vmath.Vec2{}))
	w.Commands.Flush()
	fired := c.Bullet.Count()

	ctx.Tick(frame)

	if w.Alive(bomb) {
		t.Fatal("bomb survived the floor")
	}
	if got := c.Bullet.Count(); got != fired-1+3 {
		t.Errorf("expected a 3-bullet fan, bullets %d", got)
	}
	if c.AnimationLimit.Count() != 1 {
		t.Errorf("expected an explosion, got %d", c.AnimationLimit.Count())
	}
	fan := c.Bullet.All()
	want := []float64{
		parameter.BombFanAngle + parameter.BombFanOffsets[0],
		parameter.BombFanAngle + parameter.BombFanOffsets[1],
		parameter.BombFanAngle + parameter.BombFanOffsets[2],
	}
	if got := headings(&w.Components, fan); len(got) == len(want) {
		for i := range want {
			if !near(got[i], want[i]) {
				t.Errorf("fan headings %v, want %v", got, want)
				break
			}
		}
	}
	for _, e := range fan {
		v, _ := c.Velocity.Get(e)
		if !near(v.Length(), parameter.BombFanSpeed) {
			t.Errorf("fan bullet speed %v", v.Length())
		}
		if v.Y <= 0 {
			t.Errorf("fan bullet not moving up: %+v", v.Vec2)
		}
		if c.Floor.Has(e) {
			t.Error("fan bullet explodes again")
		}
	}
}

func TestCullOutsideMargin(t *testing.T) {
	ctx := newGame(t, nil, NewCullSystem)
	w := ctx.World

	inside := archetype.SpawnShot(w, archetype.PlayerShot(vmath.Vec2{}))
	outside := archetype.SpawnShot(w, archetype.PlayerShot(vmath.Vec2{}))
	w.Commands.Flush()

	sprite, _ := w.Components.Sprite.Get(inside)
	limit := w.Resources.Config.OuterBound(sprite.Size).X + parameter.DespawnMargin

	w.Components.Transform.Set(inside, component.TransformComponent{Position: vmath.V2(limit, 0)})
	w.Components.Transform.Set(outside, component.TransformComponent{Position: vmath.V2(0, -w.Resources.Config.OuterBound(sprite.Size).Y-parameter.DespawnMargin-0.01)})
	ctx.Tick(frame)

	if !w.Alive(inside) {
		t.Error("entity on the limit was despawned")
	}
	if w.Alive(outside) {
		t.Error("entity past the limit survived")
	}
}
