package tui

// Priority determines render order; lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityProjectiles
	PriorityShips
	PriorityEffects
	PriorityUI
	PriorityOverlay
)
