package system

import (
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/event"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/status"
)

// CollisionFeedbackSystem requests at most one impact cue per frame from the contact snapshot
// CueEveryFrame: any pair with active contacts triggers
// CueOnBegin: only a pair that was not active in the previous stepped frame triggers
type CollisionFeedbackSystem struct {
	engine.SystemBase

	mode   parameter.CueMode
	active map[core.PairKey]struct{}
	next   map[core.PairKey]struct{}

	statRequested *status.Counter
}

// NewCollisionFeedbackSystem creates the collision feedback system
func NewCollisionFeedbackSystem(world *engine.World) engine.System {
	s := &CollisionFeedbackSystem{
		SystemBase:    engine.NewSystemBase(world),
		mode:          parameter.CueEveryFrame,
		active:        make(map[core.PairKey]struct{}),
		next:          make(map[core.PairKey]struct{}),
		statRequested: world.Resource.Status.Counters.Get(status.KeyCuesRequested),
	}
	if s.Resource.Tuning != nil {
		s.mode = s.Resource.Tuning.Audio.CueMode
	}
	return s
}

// Init forgets tracked pairs
func (s *CollisionFeedbackSystem) Init() {
	clear(s.active)
	clear(s.next)
}

// Priority returns the system's priority
func (s *CollisionFeedbackSystem) Priority() int {
	return parameter.PriorityCollisionFeedback
}

// EventTypes returns the event types CollisionFeedbackSystem handles
func (s *CollisionFeedbackSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent clears pair tracking on restart
func (s *CollisionFeedbackSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update skips frames where physics did not step; the snapshot would be stale
func (s *CollisionFeedbackSystem) Update() {
	if s.Resource.Time.DeltaTime <= 0 {
		return
	}

	var trigger bool
	switch s.mode {
	case parameter.CueOnBegin:
		trigger = s.diffPairs()
	default:
		for _, p := range s.Resource.Physics.World.ContactPairs() {
			if p.HasAnyActiveContacts() {
				trigger = true
				break
			}
		}
	}

	if !trigger {
		return
	}
	s.statRequested.Add(1)
	s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundImpact})
}

// diffPairs swaps in this frame's active set and reports whether any pair is new
func (s *CollisionFeedbackSystem) diffPairs() bool {
	clear(s.next)
	began := false
	for _, p := range s.Resource.Physics.World.ContactPairs() {
		if !p.HasAnyActiveContacts() {
			continue
		}
		k := p.Key()
		s.next[k] = struct{}{}
		if _, was := s.active[k]; !was {
			began = true
		}
	}
	s.active, s.next = s.next, s.active
	return began
}
