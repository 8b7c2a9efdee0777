// Package level defines the wave table driving enemy spawns
package level

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/zenith/component"
)

// WeightedEnemy is one entry in a wave's spawn table
type WeightedEnemy struct {
	Kind   component.EnemyKind
	Weight int
}

// Wave is one level-progression unit
type Wave struct {
	Enemies  []WeightedEnemy
	DelayMin time.Duration
	DelayMax time.Duration
	Quota    int
}

// Campaign is the ordered sequence of waves
type Campaign struct {
	Waves []Wave
}

// Wave returns the wave at index i, false past the end
func (c Campaign) Wave(i int) (Wave, bool) {
	if i < 0 || i >= len(c.Waves) {
		return Wave{}, false
	}
	return c.Waves[i], true
}

// TotalWeight sums the spawn table weights
func (w Wave) TotalWeight() int {
	total := 0
	for _, e := range w.Enemies {
		total += e.Weight
	}
	return total
}

// Sample draws one enemy kind by cumulative weight, with replacement
func (w Wave) Sample(r *rand.Rand) component.EnemyKind {
	pick := r.IntN(w.TotalWeight())
	for _, e := range w.Enemies {
		if pick < e.Weight {
			return e.Kind
		}
		pick -= e.Weight
	}
	return w.Enemies[len(w.Enemies)-1].Kind
}

// SpawnDelay draws a delay uniformly from [DelayMin, DelayMax), truncated to whole milliseconds
func (w Wave) SpawnDelay(r *rand.Rand) time.Duration {
	lo := w.DelayMin.Milliseconds()
	hi := w.DelayMax.Milliseconds()
	if hi <= lo {
		return w.DelayMin
	}
	return time.Duration(lo+r.Int64N(hi-lo)) * time.Millisecond
}
