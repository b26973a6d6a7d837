// Package scene spawns the fixed playfield: two player balls, four rounded-triangle pieces and one goal sensor
package scene

import (
	"fmt"

	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/input"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/vmath"
)

// Layout records the entities created by Setup
type Layout struct {
	Players [parameter.PlayerCount]core.Entity // Indexed by player id
	Pieces  [parameter.PieceCount]core.Entity
	Goal    core.Entity
}

// Setup creates every scene entity in the world and registers its body with the physics world
func Setup(w *engine.World, phys engine.PhysicsWorld, t parameter.Tuning) (Layout, error) {
	var l Layout

	for id := 0; id < parameter.PlayerCount; id++ {
		e, err := spawnPlayer(w, phys, t, id)
		if err != nil {
			return Layout{}, err
		}
		l.Players[id] = e
	}

	for i, pose := range t.Piece.Poses {
		e, err := spawnPiece(w, phys, t.Piece, i, pose)
		if err != nil {
			return Layout{}, err
		}
		l.Pieces[i] = e
	}

	e, err := spawnGoal(w, phys, t.Goal)
	if err != nil {
		return Layout{}, err
	}
	l.Goal = e

	if err := Verify(w); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func spawnPlayer(w *engine.World, phys engine.PhysicsWorld, t parameter.Tuning, id int) (core.Entity, error) {
	pt := t.Player
	spawn := core.Transform{Position: vmath.V2(pt.Spawns[id].X, pt.Spawns[id].Y)}
	spec := component.BallSpec{
		Radius:         pt.Radius,
		Density:        pt.Density,
		LinearDamping:  pt.LinearDamping,
		AngularDamping: pt.AngularDamping,
		Restitution:    pt.Restitution,
		Friction:       pt.Friction,
	}

	e := w.CreateEntity()
	if err := phys.AddDynamicBall(e, spawn.Position, spec); err != nil {
		return core.NoEntity, fmt.Errorf("spawn player %d: %w", id, err)
	}

	c := w.Components
	c.Player.SetComponent(e, component.PlayerComponent{ID: id})
	c.Action.SetComponent(e, component.ActionStateComponent{})
	c.InputMap.SetComponent(e, component.InputMapComponent{Map: input.PlayerInputMap(id)})
	c.RigidBody.SetComponent(e, component.RigidBodyComponent{Kind: component.BodyDynamic})
	c.Collider.SetComponent(e, component.ColliderComponent{Shape: component.ShapeBall, Radius: pt.Radius})
	c.ExternalForce.SetComponent(e, component.ExternalForceComponent{})
	c.Damping.SetComponent(e, component.DampingComponent{Linear: pt.LinearDamping, Angular: pt.AngularDamping})
	c.Restitution.SetComponent(e, component.RestitutionComponent{Coefficient: pt.Restitution})
	c.Transform.SetComponent(e, component.TransformComponent{Transform: spawn})
	c.Spawn.SetComponent(e, component.SpawnComponent{Transform: spawn})
	c.Sprite.SetComponent(e, component.SpriteComponent{Handle: parameter.PlayerSprite(id)})
	return e, nil
}

func spawnPiece(w *engine.World, phys engine.PhysicsWorld, pt parameter.PieceTuning, index int, pose parameter.Pose) (core.Entity, error) {
	at := core.Transform{Position: vmath.V2(pose.X, pose.Y), Rotation: pose.Rotation()}
	spec := component.TriangleSpec{
		CornerRadius: pt.CornerRadius,
		Restitution:  pt.Restitution,
		Friction:     pt.Friction,
	}
	for i, v := range pt.Vertices {
		spec.Vertices[i] = vmath.V2(v.X, v.Y)
	}

	e := w.CreateEntity()
	if err := phys.AddStaticRoundTriangle(e, at.Position, at.Rotation, spec); err != nil {
		return core.NoEntity, fmt.Errorf("spawn piece %d: %w", index, err)
	}

	c := w.Components
	c.Piece.SetComponent(e, component.PieceComponent{Index: index})
	c.RigidBody.SetComponent(e, component.RigidBodyComponent{Kind: component.BodyFixed})
	c.Collider.SetComponent(e, component.ColliderComponent{
		Shape:    component.ShapeRoundTriangle,
		Radius:   pt.CornerRadius,
		Vertices: spec.Vertices,
	})
	c.Restitution.SetComponent(e, component.RestitutionComponent{Coefficient: pt.Restitution})
	c.Transform.SetComponent(e, component.TransformComponent{Transform: at})
	c.Spawn.SetComponent(e, component.SpawnComponent{Transform: at})
	c.Sprite.SetComponent(e, component.SpriteComponent{Handle: parameter.SpritePiece})
	return e, nil
}

func spawnGoal(w *engine.World, phys engine.PhysicsWorld, gt parameter.GoalTuning) (core.Entity, error) {
	at := core.Transform{Position: vmath.V2(gt.Position.X, gt.Position.Y)}

	e := w.CreateEntity()
	if err := phys.AddSensorBall(e, at.Position, gt.Radius); err != nil {
		return core.NoEntity, fmt.Errorf("spawn goal: %w", err)
	}

	c := w.Components
	c.Goal.SetComponent(e, component.GoalComponent{})
	c.RigidBody.SetComponent(e, component.RigidBodyComponent{Kind: component.BodyFixed})
	c.Collider.SetComponent(e, component.ColliderComponent{Shape: component.ShapeBall, Radius: gt.Radius, Sensor: true})
	c.Transform.SetComponent(e, component.TransformComponent{Transform: at})
	c.Spawn.SetComponent(e, component.SpawnComponent{Transform: at})
	c.Sprite.SetComponent(e, component.SpriteComponent{Handle: parameter.SpriteGoal})
	return e, nil
}

// Reset puts every player back at its spawn with zero velocity, force and input
func Reset(w *engine.World, phys engine.PhysicsWorld) {
	c := w.Components
	for _, e := range c.Player.GetAllEntities() {
		spawn, ok := c.Spawn.GetComponent(e)
		if !ok {
			continue
		}
		phys.Reset(e, spawn.Transform)
		c.Transform.SetComponent(e, component.TransformComponent{Transform: spawn.Transform})
		c.ExternalForce.SetComponent(e, component.ExternalForceComponent{})
		c.Action.SetComponent(e, component.ActionStateComponent{})
	}
}

// Verify checks scene cardinality: exactly 2 players with distinct ids, 4 pieces, 1 goal
func Verify(w *engine.World) error {
	c := w.Components
	if n := c.Player.CountEntities(); n != parameter.PlayerCount {
		return fmt.Errorf("scene: want %d players, have %d", parameter.PlayerCount, n)
	}
	if n := c.Piece.CountEntities(); n != parameter.PieceCount {
		return fmt.Errorf("scene: want %d pieces, have %d", parameter.PieceCount, n)
	}
	if n := c.Goal.CountEntities(); n != parameter.GoalCount {
		return fmt.Errorf("scene: want %d goal, have %d", parameter.GoalCount, n)
	}

	var seen [parameter.PlayerCount]bool
	for _, e := range c.Player.GetAllEntities() {
		p, _ := c.Player.GetComponent(e)
		if p.ID < 0 || p.ID >= parameter.PlayerCount || seen[p.ID] {
			return fmt.Errorf("scene: invalid or duplicate player id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
