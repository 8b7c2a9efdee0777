package engine

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
	Commands  *Commands
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor, after resources are installed
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
		Commands:  w.Commands,
	}
}
