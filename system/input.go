package system

import (
	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/input"
	"github.com/lixenwraith/rolling/parameter"
)

// InputSystem resolves the raw device sample into each player's action state
type InputSystem struct {
	engine.SystemBase

	deadZone float64
}

// NewInputSystem creates the input system
func NewInputSystem(world *engine.World) engine.System {
	s := &InputSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	if s.Resource.Tuning != nil {
		s.deadZone = s.Resource.Tuning.Input.GamepadDeadZone
	}
	return s
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

// Update samples devices once and resolves every bound player
func (s *InputSystem) Update() {
	var sample input.DeviceSample
	res := s.Resource.Input
	if res.Keys != nil {
		sample = res.Keys.Sample(s.Resource.Time.RealTime)
	}
	if res.Gamepads != nil {
		res.Gamepads.Poll(&sample)
	}

	for _, e := range s.Component.InputMap.GetAllEntities() {
		m, _ := s.Component.InputMap.GetComponent(e)
		s.Component.Action.SetComponent(e, component.ActionStateComponent{
			Move: input.Resolve(m.Map, sample, s.deadZone),
		})
	}
}
