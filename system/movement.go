package system

import (
	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/vmath"
)

// MovementSystem converts each player's move axis into the external force for this frame
// force = axis * moveForce * dt, torque 0; the component is overwritten, never accumulated
type MovementSystem struct {
	engine.SystemBase

	moveForce float64
}

// NewMovementSystem creates the movement system
func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		SystemBase: engine.NewSystemBase(world),
		moveForce:  parameter.DefaultTuning().Player.MoveForce,
	}
	if s.Resource.Tuning != nil {
		s.moveForce = s.Resource.Tuning.Player.MoveForce
	}
	return s
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update writes forces; zero delta or a decided round yields zero force
func (s *MovementSystem) Update() {
	dt := s.Resource.Time.DeltaSeconds()
	frozen := s.Resource.Game.State.GetPhase() == engine.PhaseWon

	for _, e := range s.Component.ExternalForce.GetAllEntities() {
		var force vmath.Vec2
		if !frozen && dt > 0 {
			if action, ok := s.Component.Action.GetComponent(e); ok {
				force = vmath.V2Scale(action.Move, s.moveForce*dt)
			}
		}
		s.Component.ExternalForce.SetComponent(e, component.ExternalForceComponent{Force: force})
	}
}
