package component

import "github.com/lixenwraith/rolling/input"

// InputMapComponent binds devices to a player's movement action
type InputMapComponent struct {
	Map input.InputMap
}
