package system

import (
	"testing"

	"github.com/lixenwraith/zenith/component"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/vmath"
)

func TestCollisionRadiusSum(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		hit      bool
	}{
		{"inside", 33, true},
		{"touching", 34, false},
		{"outside", 35, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newGame(t, nil, NewCollisionSystem)
			w := ctx.World
			c := w.Components

			enemy := placeTarget(w, component.FactionEnemy, vmath.V2(0, 0), 31, 5)
			bullet := placeBullet(w, component.FactionPlayer, vmath.V2(tt.distance, 0), 3, 1)

			ctx.Tick(frame)

			h, _ := c.Health.Get(enemy)
			if tt.hit {
				if h.Current != 4 || w.Alive(bullet) {
					t.Errorf("expected hit: health %d, bullet alive %v", h.Current, w.Alive(bullet))
				}
			} else if h.Current != 5 || !w.Alive(bullet) {
				t.Errorf("expected miss: health %d, bullet alive %v", h.Current, w.Alive(bullet))
			}
		})
	}
}

func TestCollisionIgnoresSameFaction(t *testing.T) {
	ctx := newGame(t, nil, NewCollisionSystem)
	w := ctx.World

	enemy := placeTarget(w, component.FactionEnemy, vmath.V2(0, 0), 31, 5)
	bullet := placeBullet(w, component.FactionEnemy, vmath.V2(0, 0), 3, 1)
	ctx.Tick(frame)

	h, _ := w.Components.Health.Get(enemy)
	if h.Current != 5 || !w.Alive(bullet) {
		t.Error("enemy bullet damaged an enemy")
	}
}

func TestProjectileConsumedByFirstHitOnly(t *testing.T) {
	ctx := newGame(t, nil, NewCollisionSystem)
	w := ctx.World
	c := w.Components

	a := placeTarget(w, component.FactionEnemy, vmath.V2(-5, 0), 31, 5)
	b := placeTarget(w, component.FactionEnemy, vmath.V2(5, 0), 31, 5)
	placeBullet(w, component.FactionPlayer, vmath.V2(0, 0), 3, 1)

	ctx.Tick(frame)

	ha, _ := c.Health.Get(a)
	hb, _ := c.Health.Get(b)
	if total := (5 - ha.Current) + (5 - hb.Current); total != 1 {
		t.Errorf("expected one damage application, got %d", total)
	}
}

func TestInvulnerablePlayerLetsBulletsPass(t *testing.T) {
	ctx := newGame(t, nil, NewCollisionSystem)
	w := ctx.World
	c := w.Components

	player := placeTarget(w, component.FactionPlayer, vmath.V2(0, 0), 24, 5)
	c.Player.Set(player, component.PlayerComponent{})
	c.Invulnerable.Set(player, component.InvulnerableComponent{})
	bullet := placeBullet(w, component.FactionEnemy, vmath.V2(0, 0), 3, 1)

	ctx.Tick(frame)

	h, _ := c.Health.Get(player)
	if h.Current != 5 || !w.Alive(bullet) {
		t.Errorf("invulnerable player hit: health %d, bullet alive %v", h.Current, w.Alive(bullet))
	}
}

// Player takes three single hits then an overkill hit; death runs exactly once
func TestPlayerDamageAndSingleDeath(t *testing.T) {
	counter := newEventCounter(event.EventPlayerDied)
	ctx := newGame(t, nil, NewCollisionSystem, NewDeathSystem)
	ctx.AddSystem(counter)
	w := ctx.World
	c := w.Components

	player := placeTarget(w, component.FactionPlayer, vmath.V2(0, -240), 24, 5)
	c.Player.Set(player, component.PlayerComponent{})

	for i := 0; i < 3; i++ {
		placeBullet(w, component.FactionEnemy, vmath.V2(0, -240), 3, 1)
	}
	ctx.Tick(frame)

	h, _ := c.Health.Get(player)
	if h.Current != 2 {
		t.Fatalf("expected health 2 after three hits, got %d", h.Current)
	}
	if c.Bullet.Count() != 0 {
		t.Errorf("expected every bullet consumed, %d left", c.Bullet.Count())
	}

	placeBullet(w, component.FactionEnemy, vmath.V2(0, -240), 3, 10)
	placeBullet(w, component.FactionEnemy, vmath.V2(0, -240), 3, 10)
	ctx.Tick(frame)

	if w.Alive(player) {
		t.Fatal("player survived lethal damage")
	}
	if counter.seen[event.EventPlayerDied] != 1 {
		t.Errorf("expected one death event, got %d", counter.seen[event.EventPlayerDied])
	}
	if c.AnimationLimit.Count() != 1 {
		t.Errorf("expected one explosion, got %d", c.AnimationLimit.Count())
	}

	ctx.Tick(frame)
	if counter.seen[event.EventPlayerDied] != 1 {
		t.Error("death sequence repeated")
	}
}

func TestDeathBurstAndKillReport(t *testing.T) {
	counter := newEventCounter(event.EventEnemyKilled)
	ctx := newGame(t, nil, NewDeathSystem)
	ctx.AddSystem(counter)
	w := ctx.World
	c := w.Components

	bomber := placeTarget(w, component.FactionEnemy, vmath.V2(50, 100), 39, 4)
	c.Enemy.Set(bomber, component.EnemyComponent{Kind: component.EnemyBomber})
	c.OnDeath.Set(bomber, component.DeathBehaviorComponent{Behavior: component.DeathStar})
	c.Health.Set(bomber, component.HealthComponent{Current: 0, Max: 4})

	ctx.Tick(frame)

	if w.Alive(bomber) {
		t.Fatal("dead enemy not despawned")
	}
	bullets := c.Bullet.All()
	if len(bullets) != 6 {
		t.Fatalf("expected 6 burst bullets, got %d", len(bullets))
	}
	for _, b := range bullets {
		f, _ := c.Faction.Get(b)
		tr, _ := c.Transform.Get(b)
		v, _ := c.Velocity.Get(b)
		if f.Faction != component.FactionEnemy || tr.Position != vmath.V2(50, 100) {
			t.Errorf("burst bullet %d: faction %v at %+v", b, f.Faction, tr.Position)
		}
		if !approx(v.Length(), 4) {
			t.Errorf("burst bullet speed %v", v.Length())
		}
	}
	angles := headings(&w.Components, bullets)
	if angles[0] < 0 || angles[0] >= parameter.StarBurstStep {
		t.Errorf("burst base angle %v outside [0, %v)", angles[0], parameter.StarBurstStep)
	}
	for i := 1; i < len(angles); i++ {
		if gap := angles[i] - angles[i-1]; !near(gap, parameter.StarBurstStep) {
			t.Errorf("burst spacing %v between %v and %v", gap, angles[i-1], angles[i])
		}
	}
	if counter.seen[event.EventEnemyKilled] != 1 {
		t.Errorf("expected one kill event, got %d", counter.seen[event.EventEnemyKilled])
	}
	p, ok := counter.last[event.EventEnemyKilled].(*event.EnemyKilledPayload)
	if !ok || p.Kind != component.EnemyBomber {
		t.Errorf("kill payload: %#v", counter.last[event.EventEnemyKilled])
	}
	if got := w.Resources.Status.Ints.Get("enemy.killed").Load(); got != 1 {
		t.Errorf("enemy.killed: got %d", got)
	}
}
