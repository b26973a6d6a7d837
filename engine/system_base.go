package engine

// System is a unit of per-frame game logic
type System interface {
	// Update runs once per frame
	Update()
	// Priority orders systems; lower runs first
	Priority() int
}

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor, after resources are installed
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resource,
		Component: w.Components,
	}
}
