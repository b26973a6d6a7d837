package system

import (
	"io"

	"github.com/lixenwraith/rolling/engine"
)

// RegisterAll adds the game systems to the world in frame order and wires their event handlers
// Resources must be installed on the world before this call
func RegisterAll(world *engine.World, sched *engine.Scheduler, announce io.Writer) {
	world.AddSystem(NewControlSystem(world))
	world.AddSystem(NewInputSystem(world))
	world.AddSystem(NewMovementSystem(world))
	world.AddSystem(NewPhysicsSystem(world))
	world.AddSystem(NewWinConditionSystem(world))
	world.AddSystem(NewCollisionFeedbackSystem(world))
	world.AddSystem(NewAudioSystem(world))
	world.AddSystem(NewAnnounceSystem(announce))

	sched.RegisterSystems()
}
