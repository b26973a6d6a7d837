package system

import (
	"math"

	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/status"
)

// PhysicsSystem hands forces to the physics world, steps it once, and mirrors poses back
type PhysicsSystem struct {
	engine.SystemBase

	maxStep float64

	statSteps    *status.Counter
	statContacts *status.Counter
}

// NewPhysicsSystem creates the physics system
func NewPhysicsSystem(world *engine.World) engine.System {
	s := &PhysicsSystem{
		SystemBase:   engine.NewSystemBase(world),
		maxStep:      parameter.DefaultTuning().Physics.MaxStepSeconds,
		statSteps:    world.Resource.Status.Counters.Get(status.KeyPhysicsSteps),
		statContacts: world.Resource.Status.Counters.Get(status.KeyActiveContacts),
	}
	if s.Resource.Tuning != nil {
		s.maxStep = s.Resource.Tuning.Physics.MaxStepSeconds
	}
	return s
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Update steps by min(delta, max step); a zero delta leaves the world untouched
func (s *PhysicsSystem) Update() {
	phys := s.Resource.Physics.World

	for _, e := range s.Component.ExternalForce.GetAllEntities() {
		f, _ := s.Component.ExternalForce.GetComponent(e)
		phys.SetExternalForce(e, f.Force, f.Torque)
	}

	dt := math.Min(s.Resource.Time.DeltaSeconds(), s.maxStep)
	if dt <= 0 {
		return
	}
	phys.Step(dt)
	s.statSteps.Add(1)

	for _, e := range s.Component.RigidBody.GetAllEntities() {
		rb, _ := s.Component.RigidBody.GetComponent(e)
		if rb.Kind != component.BodyDynamic {
			continue
		}
		if tr, ok := phys.Transform(e); ok {
			s.Component.Transform.SetComponent(e, component.TransformComponent{Transform: tr})
		}
	}

	active := 0
	for _, p := range phys.ContactPairs() {
		if p.HasAnyActiveContacts() {
			active++
		}
	}
	s.statContacts.Store(int64(active))
}
