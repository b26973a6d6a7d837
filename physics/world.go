// Package physics is the rigid-body world service: bodies, colliders, sensors, stepping and queries
// Positions are world pixels with y up; mass follows the meter scale given by pixels per meter
package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/vmath"
)

// handle is the engine-side record of one entity's body and collider
type handle struct {
	entity core.Entity
	body   *cp.Body
	shape  *cp.Shape
	kind   component.BodyKind
}

// World owns the cp space and the entity to body mapping
type World struct {
	space   *cp.Space
	tuning  parameter.PhysicsTuning
	handles map[core.Entity]*handle
	dynamic []*handle // Iteration order for contact collection

	stepped bool
	steps   uint64
	pairs   []core.ContactPair
}

// NewWorld creates an empty physics world from tuning
func NewWorld(t parameter.PhysicsTuning) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: t.Gravity.X, Y: t.Gravity.Y})
	space.Iterations = t.Iterations

	return &World{
		space:   space,
		tuning:  t,
		handles: make(map[core.Entity]*handle),
	}
}

func vec(v vmath.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVec(v cp.Vector) vmath.Vec2 {
	return vmath.Vec2{X: v.X, Y: v.Y}
}

func (w *World) register(e core.Entity, h *handle) error {
	if e == core.NoEntity {
		return fmt.Errorf("physics: cannot register NoEntity")
	}
	if _, exists := w.handles[e]; exists {
		return fmt.Errorf("physics: entity %d already has a body", e)
	}
	h.entity = e
	h.shape.UserData = e
	h.body.UserData = e
	w.handles[e] = h
	if h.kind == component.BodyDynamic {
		w.dynamic = append(w.dynamic, h)
	}
	return nil
}

// BallMass returns the mass of a ball of pixel radius r: density * pi * (r / ppm)^2
func (w *World) BallMass(radius, density float64) float64 {
	rm := radius / w.tuning.PixelsPerMeter
	return density * math.Pi * rm * rm
}

// AddDynamicBall creates a dynamic body with a circular collider and per-body damping
func (w *World) AddDynamicBall(e core.Entity, pos vmath.Vec2, spec component.BallSpec) error {
	if spec.Radius <= 0 || spec.Density <= 0 {
		return fmt.Errorf("physics: ball %d needs positive radius and density", e)
	}
	if _, exists := w.handles[e]; exists {
		return fmt.Errorf("physics: entity %d already has a body", e)
	}

	mass := w.BallMass(spec.Radius, spec.Density)
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, spec.Radius, cp.Vector{}))
	body.SetPosition(vec(pos))
	body.SetVelocityUpdateFunc(dampedVelocity(spec.LinearDamping, spec.AngularDamping))

	shape := cp.NewCircle(body, spec.Radius, cp.Vector{})
	shape.SetElasticity(spec.Restitution)
	shape.SetFriction(spec.Friction)

	h := &handle{body: body, shape: shape, kind: component.BodyDynamic}
	if err := w.register(e, h); err != nil {
		return err
	}
	w.space.AddBody(body)
	w.space.AddShape(shape)
	return nil
}

// AddStaticRoundTriangle creates a fixed body with a rounded triangle collider
// Pose is applied before the shape is indexed; fixed bodies never move afterwards
func (w *World) AddStaticRoundTriangle(e core.Entity, pos vmath.Vec2, rotation float64, spec component.TriangleSpec) error {
	if _, exists := w.handles[e]; exists {
		return fmt.Errorf("physics: entity %d already has a body", e)
	}

	body := cp.NewStaticBody()
	body.SetPosition(vec(pos))
	body.SetAngle(rotation)

	verts := make([]cp.Vector, 0, 3)
	for _, v := range spec.Vertices {
		verts = append(verts, vec(v))
	}
	shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), spec.CornerRadius)
	shape.SetElasticity(spec.Restitution)
	shape.SetFriction(spec.Friction)

	h := &handle{body: body, shape: shape, kind: component.BodyFixed}
	if err := w.register(e, h); err != nil {
		return err
	}
	w.space.AddBody(body)
	w.space.AddShape(shape)
	return nil
}

// AddSensorBall creates a fixed circular sensor; it reports overlap but produces no response
func (w *World) AddSensorBall(e core.Entity, pos vmath.Vec2, radius float64) error {
	if radius <= 0 {
		return fmt.Errorf("physics: sensor %d needs positive radius", e)
	}
	if _, exists := w.handles[e]; exists {
		return fmt.Errorf("physics: entity %d already has a body", e)
	}

	body := cp.NewStaticBody()
	body.SetPosition(vec(pos))

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetSensor(true)

	h := &handle{body: body, shape: shape, kind: component.BodyFixed}
	if err := w.register(e, h); err != nil {
		return err
	}
	w.space.AddBody(body)
	w.space.AddShape(shape)
	return nil
}

// dampedVelocity integrates like cp.BodyUpdateVelocity, then applies v *= 1 / (1 + dt*c) per body
func dampedVelocity(linear, angular float64) cp.BodyVelocityFunc {
	return func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(body, gravity, damping, dt)
		if linear > 0 {
			body.SetVelocityVector(body.Velocity().Mult(1 / (1 + dt*linear)))
		}
		if angular > 0 {
			body.SetAngularVelocity(body.AngularVelocity() / (1 + dt*angular))
		}
	}
}

// SetExternalForce overwrites the force and torque applied during the next step
// Returns false for unknown or fixed bodies
func (w *World) SetExternalForce(e core.Entity, force vmath.Vec2, torque float64) bool {
	h, ok := w.handles[e]
	if !ok || h.kind != component.BodyDynamic {
		return false
	}
	h.body.SetForce(vec(force))
	h.body.SetTorque(torque)
	return true
}

// Force returns the force currently set on a body
func (w *World) Force(e core.Entity) (vmath.Vec2, bool) {
	h, ok := w.handles[e]
	if !ok {
		return vmath.Vec2{}, false
	}
	return fromVec(h.body.Force()), true
}

// Step advances the simulation by dt seconds and refreshes the contact snapshot
// dt <= 0 does nothing; forces are consumed by the step
func (w *World) Step(dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	w.space.Step(dt)
	w.stepped = true
	w.steps++
	w.collectPairs()
}

// Steps returns how many non-empty steps have run
func (w *World) Steps() uint64 {
	return w.steps
}

func (w *World) collectPairs() {
	w.pairs = w.pairs[:0]
	seen := make(map[*cp.Arbiter]struct{})
	for _, h := range w.dynamic {
		h.body.EachArbiter(func(arb *cp.Arbiter) {
			if _, dup := seen[arb]; dup {
				return
			}
			seen[arb] = struct{}{}

			a, b := arb.Shapes()
			if a.Sensor() || b.Sensor() {
				return
			}
			ea, okA := a.UserData.(core.Entity)
			eb, okB := b.UserData.(core.Entity)
			if !okA || !okB {
				return
			}
			w.pairs = append(w.pairs, core.NewContactPair(ea, eb, arb.Count()))
		})
	}
}

// ContactPairs lists solid collider pairs tracked by the last step, each with its active point count
// The slice is a copy
func (w *World) ContactPairs() []core.ContactPair {
	out := make([]core.ContactPair, len(w.pairs))
	copy(out, w.pairs)
	return out
}

// IntersectionPair reports whether two colliders overlap when at least one is a sensor
// ok is false before the first step, for unknown entities, or when neither collider is a sensor
func (w *World) IntersectionPair(a, b core.Entity) (hit, ok bool) {
	if !w.stepped {
		return false, false
	}
	ha, okA := w.handles[a]
	hb, okB := w.handles[b]
	if !okA || !okB || a == b {
		return false, false
	}
	if !ha.shape.Sensor() && !hb.shape.Sensor() {
		return false, false
	}
	return cp.ShapesCollide(ha.shape, hb.shape).Count > 0, true
}

// Transform returns the current pose of a body
func (w *World) Transform(e core.Entity) (core.Transform, bool) {
	h, ok := w.handles[e]
	if !ok {
		return core.Transform{}, false
	}
	return core.Transform{
		Position: fromVec(h.body.Position()),
		Rotation: h.body.Angle(),
	}, true
}

// Velocity returns the linear velocity of a body in pixels per second
func (w *World) Velocity(e core.Entity) (vmath.Vec2, bool) {
	h, ok := w.handles[e]
	if !ok {
		return vmath.Vec2{}, false
	}
	return fromVec(h.body.Velocity()), true
}

// Reset teleports a dynamic body and clears its velocity and force
func (w *World) Reset(e core.Entity, t core.Transform) bool {
	h, ok := w.handles[e]
	if !ok || h.kind != component.BodyDynamic {
		return false
	}
	h.body.SetPosition(vec(t.Position))
	h.body.SetAngle(t.Rotation)
	h.body.SetVelocityVector(cp.Vector{})
	h.body.SetAngularVelocity(0)
	h.body.SetForce(cp.Vector{})
	h.body.SetTorque(0)
	h.shape.CacheBB()
	return true
}

// Count returns the number of registered bodies
func (w *World) Count() int {
	return len(w.handles)
}
