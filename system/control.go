package system

import (
	"log"

	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/event"
	"github.com/lixenwraith/rolling/input"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/scene"
)

// ControlSystem turns non-movement intents into events and owns round restarts
type ControlSystem struct {
	engine.SystemBase
}

// NewControlSystem creates the control system
func NewControlSystem(world *engine.World) engine.System {
	return &ControlSystem{
		SystemBase: engine.NewSystemBase(world),
	}
}

// Priority returns the system's priority
func (s *ControlSystem) Priority() int {
	return parameter.PriorityControl
}

// EventTypes returns the event types ControlSystem handles
func (s *ControlSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

// HandleEvent restarts the round: players back at spawn, phase back to playing
func (s *ControlSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGameReset {
		return
	}
	if s.Resource.Physics != nil {
		scene.Reset(s.World, s.Resource.Physics.World)
	}
	state := s.Resource.Game.State
	state.Restart(s.Resource.Time.GameTime)
	log.Printf("control: round %d started at frame %d", state.Round, ev.Frame)
}

// Update drains queued intents
func (s *ControlSystem) Update() {
	for _, intent := range s.Resource.Input.DrainIntents() {
		switch intent {
		case input.IntentQuit:
			s.World.PushEvent(event.EventQuit, nil)
		case input.IntentPause:
			s.World.PushEvent(event.EventPauseToggle, nil)
		case input.IntentRestart:
			s.World.PushEvent(event.EventGameReset, nil)
		case input.IntentMute:
			s.World.PushEvent(event.EventMuteToggle, nil)
		}
	}
}
