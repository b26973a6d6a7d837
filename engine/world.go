package engine

import (
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/event"
	"github.com/lixenwraith/rolling/status"
)

// World contains all entities, their components, resources and systems
// Accessed only from the frame goroutine
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resource   Resource

	systems []System
}

// NewWorld creates a world with empty stores and the engine-owned resources
// Physics, audio, tuning and input are bridged in by the caller before systems are built
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		systems:      make([]System, 0, 8),
	}
	w.Resource = Resource{
		Time:   &TimeResource{},
		Game:   &GameStateResource{State: NewGameState()},
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		Input:  &InputResource{},
		Status: status.NewRegistry(),
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.RemoveEntity(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.nextEntityID = 1
	for _, s := range w.Components.all() {
		s.ClearAllComponents()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N), stable for equal priorities
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.Resource.Time.FrameNumber
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resource.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resource.Time.FrameNumber,
	})
}
