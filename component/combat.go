package component

// Faction separates player-owned from enemy-owned entities for collision filtering
type Faction uint8

const (
	FactionPlayer Faction = iota + 1
	FactionEnemy
)

// Opposes reports whether two factions resolve collisions against each other
func (f Faction) Opposes(o Faction) bool {
	return f != 0 && o != 0 && f != o
}

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// FactionComponent is attached at construction; an entity is never queryable without it
type FactionComponent struct {
	Faction Faction
}

// HitboxComponent is a circular collision proxy, radius already scaled
type HitboxComponent struct {
	Radius float64
}

// HealthComponent tracks hit points, never below zero
type HealthComponent struct {
	Current uint32
	Max     uint32
}

// Damage subtracts amount with saturation at zero and returns the amount actually removed
func (h *HealthComponent) Damage(amount uint32) uint32 {
	if amount >= h.Current {
		removed := h.Current
		h.Current = 0
		return removed
	}
	h.Current -= amount
	return amount
}

// Dead reports zero health
func (h HealthComponent) Dead() bool {
	return h.Current == 0
}

// DamageComponent is carried by a projectile and consumed once on collision
type DamageComponent struct {
	Amount uint32
}
