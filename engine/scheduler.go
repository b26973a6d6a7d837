package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/rolling/event"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/status"
)

// Scheduler drives frames: time update, systems in priority order, event dispatch
// Single goroutine; owns the pausable clock and the quit flag
type Scheduler struct {
	world    *World
	clock    *PausableClock
	router   *EventRouter
	timeRes  *TimeResource
	stateRes *GameStateResource

	lastGameTime time.Time
	started      bool
	frame        int64
	quit         bool

	// Cached metric pointers
	statFrames *status.Counter
	statDelta  *status.Gauge
}

// FrameHooks are called around each tick by Run
type FrameHooks struct {
	// Poll feeds pending device events into resources before the tick
	Poll func()
	// Render draws the world after the tick
	Render func()
}

// NewScheduler creates a scheduler over a world and clock
// The scheduler registers itself for pause and quit events
func NewScheduler(world *World, clock *PausableClock) *Scheduler {
	s := &Scheduler{
		world:      world,
		clock:      clock,
		router:     NewEventRouter(world.Resource.Event.Queue),
		timeRes:    world.Resource.Time,
		stateRes:   world.Resource.Game,
		statFrames: world.Resource.Status.Counters.Get(status.KeyFrames),
		statDelta:  world.Resource.Status.Gauges.Get(status.KeyFrameDelta),
	}
	s.router.Register(s)
	return s
}

// RegisterEventHandler adds an event handler to router
func (s *Scheduler) RegisterEventHandler(handler EventHandler) {
	s.router.Register(handler)
}

// RegisterSystems registers every world system that also handles events
func (s *Scheduler) RegisterSystems() {
	for _, sys := range s.world.Systems() {
		if h, ok := sys.(EventHandler); ok {
			s.router.Register(h)
		}
	}
}

// Tick executes one frame
// Delta is zero on the first frame and while paused, and capped at MaxFrameDelta after a stall
func (s *Scheduler) Tick() {
	gameNow := s.clock.Now()

	var delta time.Duration
	if s.started {
		delta = gameNow.Sub(s.lastGameTime)
		if delta < 0 {
			delta = 0
		}
		if delta > parameter.MaxFrameDelta {
			log.Printf("scheduler: frame delta %v capped to %v", delta, parameter.MaxFrameDelta)
			delta = parameter.MaxFrameDelta
		}
	}
	s.started = true
	s.lastGameTime = gameNow

	s.frame++
	s.timeRes.Update(gameNow, s.clock.RealTime(), delta, s.frame)

	s.world.Update()
	s.router.DispatchAll()

	s.statFrames.Store(s.frame)
	s.statDelta.Set(float64(delta) / float64(time.Millisecond))
}

// Run ticks at the given interval until ctx is cancelled or a quit event is handled
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, hooks FrameHooks) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if hooks.Poll != nil {
			hooks.Poll()
		}
		s.Tick()
		if hooks.Render != nil {
			hooks.Render()
		}
		if s.quit {
			return nil
		}
	}
}

// EventTypes implements EventHandler
func (s *Scheduler) EventTypes() []event.EventType {
	return []event.EventType{event.EventPauseToggle, event.EventQuit}
}

// HandleEvent implements EventHandler
func (s *Scheduler) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPauseToggle:
		paused := s.clock.Toggle()
		log.Printf("scheduler: paused=%v at frame %d", paused, s.frame)
	case event.EventQuit:
		s.quit = true
	}
}

// QuitRequested reports whether a quit event was handled
func (s *Scheduler) QuitRequested() bool {
	return s.quit
}

// IsPaused reports whether game time is frozen
func (s *Scheduler) IsPaused() bool {
	return s.clock.IsPaused()
}

// FrameNumber returns the number of ticks run
func (s *Scheduler) FrameNumber() int64 {
	return s.frame
}
