package engine

import (
	"time"

	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/event"
	"github.com/lixenwraith/rolling/input"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/status"
	"github.com/lixenwraith/rolling/vmath"
)

// Resource holds singleton game resources, populated before the first frame, accessed via World.Resource
type Resource struct {
	// World Resource
	Time   *TimeResource
	Game   *GameStateResource
	Event  *EventQueueResource
	Tuning *TuningResource
	Input  *InputResource

	// Telemetry
	Status *status.Registry

	// Bridged resources from services
	Physics *PhysicsResource
	Audio   *AudioResource
}

// === World Resources ===

// TimeResource wraps time data for systems
// Updated by the Scheduler at the start of a frame
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the game time elapsed since the previous frame, zero on the first frame and while paused
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// DeltaSeconds returns the frame delta in seconds
func (tr *TimeResource) DeltaSeconds() float64 {
	return tr.DeltaTime.Seconds()
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// GameStateResource wraps GameState for systems
type GameStateResource struct {
	State *GameState
}

// TuningResource holds the decoded tunables
type TuningResource struct {
	parameter.Tuning
}

// InputResource carries raw device state into the frame
// The frame loop feeds Keys and Intents from terminal events; InputSystem samples them
type InputResource struct {
	Keys     *input.KeyTracker
	Gamepads GamepadSource
	Intents  []input.IntentType
}

// GamepadSource fills gamepad state into a device sample; nil when no gamepad backend exists
type GamepadSource interface {
	Poll(s *input.DeviceSample)
}

// PushIntent queues a non-movement intent for ControlSystem
func (r *InputResource) PushIntent(it input.IntentType) {
	r.Intents = append(r.Intents, it)
}

// DrainIntents returns and clears queued intents
func (r *InputResource) DrainIntents() []input.IntentType {
	out := r.Intents
	r.Intents = nil
	return out
}

// === Bridged Resources from Service ===

// PhysicsWorld defines the physics capability used by game systems
// Implemented by physics.World over the rigid-body engine
type PhysicsWorld interface {
	AddDynamicBall(e core.Entity, pos vmath.Vec2, spec component.BallSpec) error
	AddStaticRoundTriangle(e core.Entity, pos vmath.Vec2, rotation float64, spec component.TriangleSpec) error
	AddSensorBall(e core.Entity, pos vmath.Vec2, radius float64) error

	// SetExternalForce overwrites the force and torque applied during the next step
	SetExternalForce(e core.Entity, force vmath.Vec2, torque float64) bool

	// Step advances the simulation once; dt <= 0 does nothing
	Step(dt float64)

	// IntersectionPair reports sensor overlap; ok is false when the answer is unavailable
	IntersectionPair(a, b core.Entity) (hit, ok bool)

	// ContactPairs lists solid collider pairs tracked by the last step
	ContactPairs() []core.ContactPair

	Transform(e core.Entity) (core.Transform, bool)
	Velocity(e core.Entity) (vmath.Vec2, bool)

	// Reset teleports a body and clears its velocity and force
	Reset(e core.Entity, t core.Transform) bool
}

// PhysicsResource wraps the physics world
type PhysicsResource struct {
	World PhysicsWorld
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// Publish installs a resource contributed by a service, routed by type
// Unknown resource types are reported as false
func (r *Resource) Publish(resource any) bool {
	switch v := resource.(type) {
	case *PhysicsResource:
		r.Physics = v
	case *AudioResource:
		r.Audio = v
	case *TuningResource:
		r.Tuning = v
	default:
		return false
	}
	return true
}
