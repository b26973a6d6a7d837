package engine

import (
	"github.com/lixenwraith/rolling/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; systems copy it by value at construction
type ComponentStore struct {
	// Roles
	Player *Store[component.PlayerComponent]
	Piece  *Store[component.PieceComponent]
	Goal   *Store[component.GoalComponent]

	// Input
	Action   *Store[component.ActionStateComponent]
	InputMap *Store[component.InputMapComponent]

	// Physics
	RigidBody     *Store[component.RigidBodyComponent]
	Collider      *Store[component.ColliderComponent]
	ExternalForce *Store[component.ExternalForceComponent]
	Damping       *Store[component.DampingComponent]
	Restitution   *Store[component.RestitutionComponent]
	Transform     *Store[component.TransformComponent]
	Spawn         *Store[component.SpawnComponent]

	// Visual
	Sprite *Store[component.SpriteComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Player: NewStore[component.PlayerComponent](),
		Piece:  NewStore[component.PieceComponent](),
		Goal:   NewStore[component.GoalComponent](),

		Action:   NewStore[component.ActionStateComponent](),
		InputMap: NewStore[component.InputMapComponent](),

		RigidBody:     NewStore[component.RigidBodyComponent](),
		Collider:      NewStore[component.ColliderComponent](),
		ExternalForce: NewStore[component.ExternalForceComponent](),
		Damping:       NewStore[component.DampingComponent](),
		Restitution:   NewStore[component.RestitutionComponent](),
		Transform:     NewStore[component.TransformComponent](),
		Spawn:         NewStore[component.SpawnComponent](),

		Sprite: NewStore[component.SpriteComponent](),
	}
}

// all returns every store for entity-wide operations
func (cs ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Player, cs.Piece, cs.Goal,
		cs.Action, cs.InputMap,
		cs.RigidBody, cs.Collider, cs.ExternalForce, cs.Damping, cs.Restitution, cs.Transform, cs.Spawn,
		cs.Sprite,
	}
}
