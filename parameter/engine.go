package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame interval (~60 FPS); systems and render run once per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta handed to systems after a stall so a long pause does not become one giant force impulse
	MaxFrameDelta = 250 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Logging
const (
	// DebugLogging routes the standard logger to logs/ instead of discarding it
	DebugLogging = false
)
