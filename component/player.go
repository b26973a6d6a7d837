package component

import "github.com/lixenwraith/rolling/vmath"

// PlayerComponent marks a steerable ball; ID selects control scheme and sprite
type PlayerComponent struct {
	ID int
}

// ActionStateComponent holds the resolved logical input of a player for the current frame
type ActionStateComponent struct {
	// Move is the clamped axis pair, each axis in [-1, 1], magnitude within the unit disc
	Move vmath.Vec2
}
