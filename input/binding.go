package input

// VirtualDPad maps four keys to an axis pair
type VirtualDPad struct {
	Up, Down, Left, Right Key
}

// WASD is the dpad for player 0
func WASD() VirtualDPad {
	return VirtualDPad{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD}
}

// ArrowKeys is the dpad for player 1
func ArrowKeys() VirtualDPad {
	return VirtualDPad{Up: KeyUp, Down: KeyDown, Left: KeyLeft, Right: KeyRight}
}

// InputMap binds devices to the move action of one player
// Zero value binds nothing and always resolves to a zero vector
type InputMap struct {
	dpads     []VirtualDPad
	leftStick bool
	gamepad   int
	bound     bool // gamepad id was set
}

// NewInputMap returns an empty map
func NewInputMap() InputMap {
	return InputMap{}
}

// InsertDPad adds a keyboard dpad binding
func (m InputMap) InsertDPad(d VirtualDPad) InputMap {
	m.dpads = append(append([]VirtualDPad(nil), m.dpads...), d)
	return m
}

// InsertLeftStick adds the gamepad left stick binding
func (m InputMap) InsertLeftStick() InputMap {
	m.leftStick = true
	return m
}

// SetGamepad restricts stick bindings to one gamepad id
func (m InputMap) SetGamepad(id int) InputMap {
	m.gamepad = id
	m.bound = true
	return m
}

// Gamepad returns the bound gamepad id
func (m InputMap) Gamepad() (int, bool) {
	return m.gamepad, m.bound
}

// PlayerInputMap returns the reference binding for a player id:
// left stick of the gamepad with the same id, plus WASD for 0 or arrows for 1
func PlayerInputMap(id int) InputMap {
	dpad := WASD()
	if id != 0 {
		dpad = ArrowKeys()
	}
	return NewInputMap().InsertLeftStick().SetGamepad(id).InsertDPad(dpad)
}
