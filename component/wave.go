package component

import "github.com/lixenwraith/zenith/core"

// WaveComponent is the session record; exactly one exists while a match is live
type WaveComponent struct {
	// Index is the active wave; meaningless once Exhausted
	Index     int
	Exhausted bool
	// Remaining is the spawn quota left in the active wave
	Remaining  int
	SpawnTimer core.Timer
}

// Level returns the active wave index, false once the campaign is exhausted
func (w WaveComponent) Level() (int, bool) {
	if w.Exhausted {
		return 0, false
	}
	return w.Index, true
}
