package vmath

// InnerBound is the largest center offset keeping a sprite fully inside a region
func InnerBound(dimension, sprite float64) float64 {
	return (dimension - sprite) / 2
}

// OuterBound is the smallest center offset at which a sprite is fully outside a region
func OuterBound(dimension, sprite float64) float64 {
	return (dimension + sprite) / 2
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSym limits v to [-bound, bound]
func ClampSym(v, bound float64) float64 {
	return Clamp(v, -bound, bound)
}

// CirclesOverlap reports a hit when squared center distance is strictly below the squared radius sum
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	sum := ra + rb
	return a.DistanceSq(b) < sum*sum
}
