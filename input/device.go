package input

// Key is a device-independent keyboard key used by bindings
type Key uint8

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	keyCount
)

// GamepadState is a raw stick sample, axes in [-1, 1], y up
type GamepadState struct {
	LeftX, LeftY float64
}

// DeviceSample is the raw device state observed for one frame
// Zero value is a valid sample with nothing pressed and no gamepads
type DeviceSample struct {
	held     [keyCount]bool
	gamepads map[int]GamepadState
}

// Press marks a key as held in the sample
func (s *DeviceSample) Press(k Key) {
	if k > KeyNone && k < keyCount {
		s.held[k] = true
	}
}

// Held reports whether a key is held
func (s DeviceSample) Held(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return s.held[k]
}

// SetGamepad records the stick state for a connected gamepad id
func (s *DeviceSample) SetGamepad(id int, state GamepadState) {
	if s.gamepads == nil {
		s.gamepads = make(map[int]GamepadState)
	}
	s.gamepads[id] = state
}

// Gamepad returns the stick state of a gamepad, false if not connected
func (s DeviceSample) Gamepad(id int) (GamepadState, bool) {
	state, ok := s.gamepads[id]
	return state, ok
}
