package engine

import "time"

// PausableClock provides pausable game time with pause duration tracking
// Game time = real elapsed since creation - total paused time
type PausableClock struct {
	real TimeProvider

	realStartTime time.Time // When clock was created (real time)
	gameStartTime time.Time // Game time epoch

	paused          bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration of finished pauses
}

// NewPausableClock creates a new pausable clock over the given real time source
func NewPausableClock(real TimeProvider) *PausableClock {
	if real == nil {
		real = NewMonotonicTimeProvider()
	}
	now := real.Now()
	return &PausableClock{
		real:          real,
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	realNow := pc.real.Now()
	if pc.paused {
		realNow = pc.pauseStartTime
	}
	return pc.gameStartTime.Add(realNow.Sub(pc.realStartTime) - pc.totalPausedTime)
}

// RealTime returns wall clock time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.real.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.real.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.paused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return pc.paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// GetTotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.real.Now().Sub(pc.pauseStartTime)
	}
	return total
}
