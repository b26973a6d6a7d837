package parameter

// System Execution Priorities (lower runs first)
// The order is the frame contract: input is resolved before movement writes forces,
// forces are written before the physics step, queries run on the post-step world
const (
	PriorityControl           = 5
	PriorityInput             = 10
	PriorityMovement          = 20
	PriorityPhysics           = 30
	PriorityWinCondition      = 40
	PriorityCollisionFeedback = 50
	PriorityAudio             = 900 // Event-driven only
	PriorityAnnounce          = 910 // Event-driven only
)
