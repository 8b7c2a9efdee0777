package engine

import "github.com/lixenwraith/zenith/status"

// WaveStatus is the read-only wave counter exposed to presentation
type WaveStatus struct {
	Index     int
	Waves     int
	Remaining int
	Exhausted bool
}

// Snapshot is the complete UI read surface for one frame
type Snapshot struct {
	Frame     int64  `json:"frame"`
	Health    uint32 `json:"health"`
	MaxHealth uint32 `json:"max_health"`
	Wave      int    `json:"wave"`
	Waves     int    `json:"waves"`
	Remaining int    `json:"remaining"`
	Exhausted bool   `json:"exhausted"`
	State     string `json:"state"`
	Score     int    `json:"score"`
	Session   string `json:"session"`
}

// PlayerHealth returns current and max player health; ok is false while no player exists
func (ctx *GameContext) PlayerHealth() (current, max uint32, ok bool) {
	ctx.World.RunSafe(func() {
		current, max, ok = ctx.playerHealthLocked()
	})
	return
}

// WaveStatus returns the session record counters
func (ctx *GameContext) WaveStatus() (ws WaveStatus) {
	ctx.World.RunSafe(func() {
		ws = ctx.waveStatusLocked()
	})
	return
}

// MatchState returns the current match phase
func (ctx *GameContext) MatchState() (s MatchState) {
	ctx.World.RunSafe(func() {
		s = ctx.World.Resources.Match.State
	})
	return
}

// Snapshot returns every UI hook under a single lock acquisition
func (ctx *GameContext) Snapshot() (snap Snapshot) {
	ctx.World.RunSafe(func() {
		snap = ctx.SnapshotLocked()
	})
	return
}

// SnapshotLocked builds a snapshot; caller must hold the world update lock
func (ctx *GameContext) SnapshotLocked() Snapshot {
	cur, max, _ := ctx.playerHealthLocked()
	ws := ctx.waveStatusLocked()
	m := ctx.World.Resources.Match
	return Snapshot{
		Frame:     ctx.frame.Load(),
		Health:    cur,
		MaxHealth: max,
		Wave:      ws.Index,
		Waves:     ws.Waves,
		Remaining: ws.Remaining,
		Exhausted: ws.Exhausted,
		State:     m.State.String(),
		Score:     m.Score,
		Session:   m.Session.String(),
	}
}

func (ctx *GameContext) playerHealthLocked() (uint32, uint32, bool) {
	c := ctx.World.Components
	for _, e := range c.Player.All() {
		if h, ok := c.Health.Get(e); ok {
			return h.Current, h.Max, true
		}
	}
	return 0, 0, false
}

// waveStatusLocked tolerates a missing session record, which only occurs before Start
func (ctx *GameContext) waveStatusLocked() WaveStatus {
	c := ctx.World.Components
	ws := WaveStatus{Waves: len(ctx.World.Resources.Levels.Campaign.Waves)}
	if c.Wave.Count() != 1 {
		return ws
	}
	_, wave := Single(c.Wave)
	ws.Index = wave.Index
	ws.Remaining = wave.Remaining
	ws.Exhausted = wave.Exhausted
	return ws
}

// Stats copies the telemetry counters; safe from any goroutine
func (ctx *GameContext) Stats() status.Stats {
	return ctx.World.Resources.Status.Snapshot()
}
