package core

import "github.com/lixenwraith/rolling/vmath"

// ContactPair is a snapshot of two colliders the physics world tracks as touching
// A and B are ordered so that A < B, making the pair usable as a map key
type ContactPair struct {
	A, B           Entity
	ActiveContacts int
}

// NewContactPair returns a pair with canonical ordering
func NewContactPair(a, b Entity, contacts int) ContactPair {
	if b < a {
		a, b = b, a
	}
	return ContactPair{A: a, B: b, ActiveContacts: contacts}
}

// HasAnyActiveContacts reports whether the manifold holds at least one point
func (p ContactPair) HasAnyActiveContacts() bool {
	return p.ActiveContacts > 0
}

// Key returns the identity of the pair without the contact count
func (p ContactPair) Key() PairKey {
	return PairKey{A: p.A, B: p.B}
}

// PairKey identifies a contact pair across frames
type PairKey struct {
	A, B Entity
}

// Transform is a body pose in world units (pixels), y axis up
type Transform struct {
	Position vmath.Vec2
	Rotation float64 // Radians, counter-clockwise
}
