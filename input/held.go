package input

import (
	"sync"
	"time"
)

// HeldKeys tracks controls for backends that report presses but never releases
// A key counts as held until timeout passes without a repeat press
// Backends with release events call Release directly
type HeldKeys struct {
	mu      sync.Mutex
	timeout time.Duration
	last    [keyCount]time.Time
	down    KeySet
}

// NewHeldKeys creates a tracker with the given hold timeout
func NewHeldKeys(timeout time.Duration) *HeldKeys {
	return &HeldKeys{timeout: timeout}
}

// Press records a press or auto-repeat of k at now
func (h *HeldKeys) Press(k Key, now time.Time) {
	if k >= keyCount {
		return
	}
	h.mu.Lock()
	h.last[k] = now
	h.down = h.down.With(k)
	h.mu.Unlock()
}

// Release drops k immediately
func (h *HeldKeys) Release(k Key) {
	if k >= keyCount {
		return
	}
	h.mu.Lock()
	h.down = h.down.Without(k)
	h.mu.Unlock()
}

// Snapshot returns keys still considered held at now, expiring stale ones
func (h *HeldKeys) Snapshot(now time.Time) KeySet {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k := Key(0); k < keyCount; k++ {
		if h.down.Has(k) && now.Sub(h.last[k]) > h.timeout {
			h.down = h.down.Without(k)
		}
	}
	return h.down
}
