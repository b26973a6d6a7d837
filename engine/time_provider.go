package engine

import "time"

// TimeProvider is a source of wall-clock time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// SteppedTimeProvider is a manually driven time source for headless runs and tests
// Time moves only when Step or Advance is called
type SteppedTimeProvider struct {
	now  time.Time
	step time.Duration
}

// NewSteppedTimeProvider starts at start and moves by step on each Step call
func NewSteppedTimeProvider(start time.Time, step time.Duration) *SteppedTimeProvider {
	return &SteppedTimeProvider{now: start, step: step}
}

// Now returns the current stepped time
func (p *SteppedTimeProvider) Now() time.Time {
	return p.now
}

// Step moves time forward by one frame step
func (p *SteppedTimeProvider) Step() {
	p.now = p.now.Add(p.step)
}

// Advance moves time forward by d, ignoring the frame step
func (p *SteppedTimeProvider) Advance(d time.Duration) {
	p.now = p.now.Add(d)
}
