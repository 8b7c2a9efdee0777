package input

// Key is a backend-neutral game control
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	// KeyPrecision halves movement speed while held
	KeyPrecision
	keyCount
)

var keyNames = [keyCount]string{"left", "right", "up", "down", "fire", "precision"}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// KeySet is the set of controls pressed during a tick
type KeySet uint16

// Keys builds a set from individual keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is pressed
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// With returns the set with k pressed
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Without returns the set with k released
func (s KeySet) Without(k Key) KeySet {
	return s &^ (1 << k)
}
