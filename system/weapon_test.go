package system

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/zenith/archetype"
	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/engine/mocks"
	"github.com/lixenwraith/zenith/input"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

func TestPlayerFiresWithCue(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockAudioPlayer(ctrl)
	player.EXPECT().Play(parameter.CueFire).Return(true).Times(1)

	ctx := newGame(t, []engine.Option{engine.WithAudio(player)}, NewWeaponSystem, NewAudioSystem)
	w := ctx.World
	archetype.SpawnPlayer(w)
	w.Commands.Flush()

	ctx.SetInput(input.Keys(input.KeyFire))
	ctx.Tick(200 * time.Millisecond)

	if got := w.Components.Bullet.Count(); got != 1 {
		t.Fatalf("expected one player bullet, got %d", got)
	}
	e := w.Components.Bullet.All()[0]
	f, _ := w.Components.Faction.Get(e)
	if f.Faction != component.FactionPlayer {
		t.Errorf("bullet faction %v", f.Faction)
	}
	v, _ := w.Components.Velocity.Get(e)
	if !approx(v.X, 0) || !approx(v.Y, parameter.PlayerBulletSpeed) {
		t.Errorf("bullet velocity %+v", v.Vec2)
	}
	if got := w.Resources.Status.Ints.Get("bullet.fired").Load(); got != 1 {
		t.Errorf("bullet.fired = %d", got)
	}
}

func TestPlayerHoldsFireWithoutKey(t *testing.T) {
	ctx := newGame(t, nil, NewWeaponSystem)
	w := ctx.World
	archetype.SpawnPlayer(w)
	w.Commands.Flush()

	for i := 0; i < 5; i++ {
		ctx.Tick(200 * time.Millisecond)
	}
	if got := w.Components.Bullet.Count(); got != 0 {
		t.Errorf("fired %d bullets with no fire key", got)
	}
}

func TestRandomFire(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		want int
	}{
		{"always", 1, 3},
		{"never", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newGame(t, nil, NewWeaponSystem)
			w := ctx.World
			c := w.Components

			e := w.CreateEntity()
			c.Enemy.Set(e, component.EnemyComponent{Kind: component.EnemyBasic})
			c.Transform.Set(e, component.TransformComponent{Position: vmath.V2(0, 100)})
			c.Attack.Set(e, component.AttackComponent{Attack: component.AttackBasic})
			c.FireRate.Set(e, component.RandomFire(tt.p))

			for i := 0; i < 3; i++ {
				ctx.Tick(frame)
			}
			if got := c.Bullet.Count(); got != tt.want {
				t.Errorf("bullets = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBomberDropsBombWithItsVelocity(t *testing.T) {
	ctx := newGame(t, nil, NewWeaponSystem)
	w := ctx.World
	c := w.Components

	e := w.CreateEntity()
	c.Enemy.Set(e, component.EnemyComponent{Kind: component.EnemyBomber})
	c.Transform.Set(e, component.TransformComponent{Position: vmath.V2(0, 100)})
	c.Velocity.Set(e, component.VelocityComponent{Vec2: vmath.V2(2, -1)})
	c.Attack.Set(e, component.AttackComponent{Attack: component.AttackBomb})
	c.FireRate.Set(e, component.RandomFire(1))

	ctx.Tick(frame)

	bullets := c.Bullet.All()
	if len(bullets) != 1 {
		t.Fatalf("expected one bomb, got %d", len(bullets))
	}
	b, _ := c.Bullet.Get(bullets[0])
	if b.Kind != component.BulletBomb {
		t.Errorf("kind %v", b.Kind)
	}
	v, _ := c.Velocity.Get(bullets[0])
	if !approx(v.X, 2) || !approx(v.Y, -1-parameter.BombSpeed) {
		t.Errorf("bomb velocity %+v", v.Vec2)
	}
	if !c.Wall.Has(bullets[0]) || !c.Floor.Has(bullets[0]) || !c.Acceleration.Has(bullets[0]) {
		t.Error("bomb is missing edge behaviors")
	}
}
