package component

import "github.com/lixenwraith/zenith/core"

// FireRateKind discriminates FireRateComponent variants
type FireRateKind uint8

const (
	// FireRegular fires each time the repeating timer completes
	FireRegular FireRateKind = iota
	// FireRandom fires on an independent per-tick Bernoulli trial
	FireRandom
)

// FireRateComponent governs how often an entity spawns projectiles
type FireRateComponent struct {
	Kind        FireRateKind
	Timer       core.Timer
	Probability float64
}

// RegularFire builds a timer-driven fire rate
func RegularFire(timer core.Timer) FireRateComponent {
	return FireRateComponent{Kind: FireRegular, Timer: timer}
}

// RandomFire builds a per-tick probabilistic fire rate
func RandomFire(p float64) FireRateComponent {
	return FireRateComponent{Kind: FireRandom, Probability: p}
}
