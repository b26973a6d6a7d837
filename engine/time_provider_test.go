package engine

import (
	"testing"
	"time"
)

func TestSteppedTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewSteppedTimeProvider(start, 16*time.Millisecond)

	if now := p.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}
	if !p.Now().Equal(start) {
		t.Error("Time moved without Step or Advance")
	}

	p.Step()
	p.Step()
	if got := p.Now().Sub(start); got != 32*time.Millisecond {
		t.Errorf("Expected 32ms after two steps, got %v", got)
	}

	p.Advance(time.Second)
	if got := p.Now().Sub(start); got != time.Second+32*time.Millisecond {
		t.Errorf("Expected 1.032s after Advance, got %v", got)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	mock := NewSteppedTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Millisecond)
	clock := NewPausableClock(mock)
	start := clock.Now()

	mock.Advance(100 * time.Millisecond)
	if got := clock.Now().Sub(start); got != 100*time.Millisecond {
		t.Errorf("Expected 100ms elapsed, got %v", got)
	}

	clock.Pause()
	frozen := clock.Now()
	mock.Advance(time.Second)
	if !clock.Now().Equal(frozen) {
		t.Errorf("Game time advanced while paused: %v -> %v", frozen, clock.Now())
	}
	if got := clock.GetTotalPauseDuration(); got != time.Second {
		t.Errorf("Expected 1s pause so far, got %v", got)
	}

	clock.Resume()
	mock.Advance(50 * time.Millisecond)
	if got := clock.Now().Sub(start); got != 150*time.Millisecond {
		t.Errorf("Expected 150ms game time after resume, got %v", got)
	}
	if !clock.RealTime().Equal(mock.Now()) {
		t.Error("RealTime should follow the provider")
	}
}

func TestPausableClockToggle(t *testing.T) {
	clock := NewPausableClock(NewSteppedTimeProvider(time.Unix(0, 0), time.Millisecond))
	if !clock.Toggle() || !clock.IsPaused() {
		t.Error("First toggle should pause")
	}
	clock.Pause() // idempotent
	if clock.Toggle() || clock.IsPaused() {
		t.Error("Second toggle should resume")
	}
}
