package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/vmath"
)

func addMover(w *engine.World, move vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Action.SetComponent(e, component.ActionStateComponent{Move: move})
	w.Components.ExternalForce.SetComponent(e, component.ExternalForceComponent{})
	return e
}

func forceOf(t *testing.T, w *engine.World, e core.Entity) vmath.Vec2 {
	t.Helper()
	f, ok := w.Components.ExternalForce.GetComponent(e)
	if !ok {
		t.Fatalf("Entity %d has no external force", e)
	}
	if f.Torque != 0 {
		t.Errorf("Torque should stay 0, got %f", f.Torque)
	}
	return f.Force
}

func TestMovementForceScalesWithDelta(t *testing.T) {
	w, _ := newTestWorld(newFakePhysics())
	s := NewMovementSystem(w)

	tests := []struct {
		name  string
		move  vmath.Vec2
		delta time.Duration
		want  vmath.Vec2
	}{
		{"right at 16ms", vmath.Vec2{X: 1}, 16 * time.Millisecond, vmath.Vec2{X: 24}},
		{"up at 16ms", vmath.Vec2{Y: 1}, 16 * time.Millisecond, vmath.Vec2{Y: 24}},
		{"half left at 8ms", vmath.Vec2{X: -0.5}, 8 * time.Millisecond, vmath.Vec2{X: -6}},
		{"zero delta", vmath.Vec2{X: 1}, 0, vmath.Vec2{}},
		{"no input", vmath.Vec2{}, 16 * time.Millisecond, vmath.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := addMover(w, tt.move)
			setFrame(w, 1, tt.delta)
			s.Update()

			got := forceOf(t, w, e)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Force = %v, want %v", got, tt.want)
			}
			w.DestroyEntity(e)
		})
	}
}

func TestMovementOverwritesForce(t *testing.T) {
	w, _ := newTestWorld(newFakePhysics())
	s := NewMovementSystem(w)
	e := addMover(w, vmath.Vec2{X: 1})
	w.Components.ExternalForce.SetComponent(e, component.ExternalForceComponent{Force: vmath.Vec2{X: 1000, Y: 1000}})

	for frame := int64(1); frame <= 3; frame++ {
		setFrame(w, frame, 16*time.Millisecond)
		s.Update()
	}

	if got := forceOf(t, w, e); math.Abs(got.X-24) > 1e-9 || got.Y != 0 {
		t.Errorf("Force should be overwritten each frame, got %v", got)
	}
}

func TestMovementFrozenAfterWin(t *testing.T) {
	w, _ := newTestWorld(newFakePhysics())
	s := NewMovementSystem(w)
	e := addMover(w, vmath.Vec2{X: 1})

	w.Resource.Game.State.DeclareWinner(0, e, time.Unix(0, 0))
	setFrame(w, 1, 16*time.Millisecond)
	s.Update()

	if got := forceOf(t, w, e); got != (vmath.Vec2{}) {
		t.Errorf("Force should be zero once the round is won, got %v", got)
	}
}
