package system

import (
	"time"

	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/event"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/vmath"
)

// fakePhysics is a scripted physics world for system tests
type fakePhysics struct {
	pairs      []core.ContactPair
	overlaps   map[core.Entity]bool // player -> inside goal
	available  bool
	forces     map[core.Entity]vmath.Vec2
	steps      []float64
	transforms map[core.Entity]core.Transform
	resets     []core.Entity
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{
		overlaps:   make(map[core.Entity]bool),
		available:  true,
		forces:     make(map[core.Entity]vmath.Vec2),
		transforms: make(map[core.Entity]core.Transform),
	}
}

func (f *fakePhysics) AddDynamicBall(e core.Entity, pos vmath.Vec2, _ component.BallSpec) error {
	f.transforms[e] = core.Transform{Position: pos}
	return nil
}

func (f *fakePhysics) AddStaticRoundTriangle(e core.Entity, pos vmath.Vec2, rot float64, _ component.TriangleSpec) error {
	f.transforms[e] = core.Transform{Position: pos, Rotation: rot}
	return nil
}

func (f *fakePhysics) AddSensorBall(e core.Entity, pos vmath.Vec2, _ float64) error {
	f.transforms[e] = core.Transform{Position: pos}
	return nil
}

func (f *fakePhysics) SetExternalForce(e core.Entity, force vmath.Vec2, _ float64) bool {
	f.forces[e] = force
	return true
}

func (f *fakePhysics) Step(dt float64) {
	if dt > 0 {
		f.steps = append(f.steps, dt)
	}
}

func (f *fakePhysics) IntersectionPair(a, _ core.Entity) (bool, bool) {
	return f.overlaps[a], f.available
}

func (f *fakePhysics) ContactPairs() []core.ContactPair { return f.pairs }

func (f *fakePhysics) Transform(e core.Entity) (core.Transform, bool) {
	t, ok := f.transforms[e]
	return t, ok
}

func (f *fakePhysics) Velocity(core.Entity) (vmath.Vec2, bool) { return vmath.Vec2{}, true }

func (f *fakePhysics) Reset(e core.Entity, t core.Transform) bool {
	f.transforms[e] = t
	f.resets = append(f.resets, e)
	return true
}

// fakeAudio records played cues
type fakeAudio struct {
	played []core.SoundType
	muted  bool
}

func (a *fakeAudio) Play(st core.SoundType) bool {
	if a.muted {
		return false
	}
	a.played = append(a.played, st)
	return true
}
func (a *fakeAudio) ToggleMute() bool { a.muted = !a.muted; return a.muted }
func (a *fakeAudio) IsMuted() bool    { return a.muted }
func (a *fakeAudio) IsRunning() bool  { return true }

// newTestWorld returns a world with tuning, the given physics and a recording audio player
func newTestWorld(phys engine.PhysicsWorld) (*engine.World, *fakeAudio) {
	w := engine.NewWorld()
	audio := &fakeAudio{}
	w.Resource.Tuning = &engine.TuningResource{Tuning: parameter.DefaultTuning()}
	w.Resource.Physics = &engine.PhysicsResource{World: phys}
	w.Resource.Audio = &engine.AudioResource{Player: audio}
	return w, audio
}

// setFrame simulates the scheduler's time update
func setFrame(w *engine.World, frame int64, delta time.Duration) {
	w.Resource.Time.Update(time.Unix(0, 0).Add(time.Duration(frame)*delta), time.Unix(0, 0), delta, frame)
}

// soundRequests pops pending events and counts sound requests by type
func soundRequests(w *engine.World) map[core.SoundType]int {
	counts := make(map[core.SoundType]int)
	for _, ev := range w.Resource.Event.Queue.Consume() {
		if ev.Type != event.EventSoundRequest {
			continue
		}
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			counts[p.SoundType]++
		}
	}
	return counts
}
