package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/status"
	"github.com/lixenwraith/rolling/vmath"
)

func TestPhysicsSystemStepsClampedDelta(t *testing.T) {
	phys := newFakePhysics()
	w, _ := newTestWorld(phys)
	s := NewPhysicsSystem(w)
	maxStep := w.Resource.Tuning.Physics.MaxStepSeconds

	setFrame(w, 1, 0)
	s.Update()
	if len(phys.steps) != 0 {
		t.Fatalf("Zero delta should not step, got %v", phys.steps)
	}

	setFrame(w, 2, 10*time.Millisecond)
	s.Update()
	setFrame(w, 3, 100*time.Millisecond)
	s.Update()

	if len(phys.steps) != 2 {
		t.Fatalf("Expected 2 steps, got %v", phys.steps)
	}
	if math.Abs(phys.steps[0]-0.010) > 1e-12 {
		t.Errorf("First step = %f, want 0.010", phys.steps[0])
	}
	if phys.steps[1] != maxStep {
		t.Errorf("Second step = %f, want max step %f", phys.steps[1], maxStep)
	}
	if n := w.Resource.Status.Counters.Get(status.KeyPhysicsSteps).Load(); n != 2 {
		t.Errorf("Steps stat = %d, want 2", n)
	}
}

func TestPhysicsSystemPushesForcesAndSyncsPoses(t *testing.T) {
	phys := newFakePhysics()
	w, _ := newTestWorld(phys)
	s := NewPhysicsSystem(w)

	ball := w.CreateEntity()
	w.Components.RigidBody.SetComponent(ball, component.RigidBodyComponent{Kind: component.BodyDynamic})
	w.Components.ExternalForce.SetComponent(ball, component.ExternalForceComponent{Force: vmath.V2(24, 0)})

	piece := w.CreateEntity()
	w.Components.RigidBody.SetComponent(piece, component.RigidBodyComponent{Kind: component.BodyFixed})

	phys.transforms[ball] = core.Transform{Position: vmath.V2(12, 3)}
	phys.transforms[piece] = core.Transform{Position: vmath.V2(150, 150)}
	phys.pairs = []core.ContactPair{core.NewContactPair(ball, piece, 1), core.NewContactPair(1, 9, 0)}

	setFrame(w, 1, 16*time.Millisecond)
	s.Update()

	if f := phys.forces[ball]; f != vmath.V2(24, 0) {
		t.Errorf("Force pushed = %v, want (24, 0)", f)
	}
	if tr, ok := w.Components.Transform.GetComponent(ball); !ok || tr.Position != vmath.V2(12, 3) {
		t.Errorf("Ball transform not synced: %+v ok=%v", tr, ok)
	}
	if _, ok := w.Components.Transform.GetComponent(piece); ok {
		t.Error("Fixed bodies should not be synced")
	}
	if n := w.Resource.Status.Counters.Get(status.KeyActiveContacts).Load(); n != 1 {
		t.Errorf("Active contacts stat = %d, want 1", n)
	}
}
