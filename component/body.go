package component

import (
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/vmath"
)

// BodyKind selects how the physics world integrates a body
type BodyKind uint8

const (
	BodyDynamic BodyKind = iota
	BodyFixed
)

// ColliderShape discriminates collider geometry
type ColliderShape uint8

const (
	ShapeBall ColliderShape = iota
	ShapeRoundTriangle
)

// RigidBodyComponent declares the body type; the physics world owns the kinematics
type RigidBodyComponent struct {
	Kind BodyKind
}

// ColliderComponent describes the geometry registered with the physics world
type ColliderComponent struct {
	Shape ColliderShape
	// Radius is the ball radius or the corner rounding of a triangle
	Radius   float64
	Vertices [3]vmath.Vec2 // Local space, triangles only
	Sensor   bool
}

// ExternalForceComponent is the force written for the next integration step
// Overwritten every frame, never accumulated
type ExternalForceComponent struct {
	Force  vmath.Vec2
	Torque float64
}

// DampingComponent holds per-body velocity damping coefficients
type DampingComponent struct {
	Linear  float64
	Angular float64
}

// RestitutionComponent holds the bounce coefficient, 1.0 is perfectly elastic
type RestitutionComponent struct {
	Coefficient float64
}

// TransformComponent mirrors the physics pose after each step, read by the renderer
type TransformComponent struct {
	core.Transform
}

// SpawnComponent keeps the spawn pose for restarts and immobility checks
type SpawnComponent struct {
	core.Transform
}

// SpriteComponent is an opaque asset handle for the renderer
type SpriteComponent struct {
	Handle string
}

// BallSpec is the material and geometry of a dynamic ball
type BallSpec struct {
	Radius         float64
	Density        float64
	LinearDamping  float64
	AngularDamping float64
	Restitution    float64
	Friction       float64
}

// TriangleSpec is the geometry of a fixed rounded triangle, vertices in local space
type TriangleSpec struct {
	Vertices     [3]vmath.Vec2
	CornerRadius float64
	Restitution  float64
	Friction     float64
}
