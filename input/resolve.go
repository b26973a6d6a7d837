package input

import (
	"math"

	"github.com/lixenwraith/rolling/vmath"
)

// Resolve maps a device sample to the clamped move axis pair of one player
// Bound inputs are summed, each axis clamped to [-1, 1], then the magnitude to the unit disc
func Resolve(m InputMap, s DeviceSample, deadZone float64) vmath.Vec2 {
	var sum vmath.Vec2

	for _, d := range m.dpads {
		sum = vmath.V2Add(sum, resolveDPad(d, s))
	}

	if m.leftStick && m.bound {
		if pad, ok := s.Gamepad(m.gamepad); ok {
			sum = vmath.V2Add(sum, applyDeadZone(vmath.Vec2{X: pad.LeftX, Y: pad.LeftY}, deadZone))
		}
	}

	return vmath.V2ClampAxisPair(sum)
}

func resolveDPad(d VirtualDPad, s DeviceSample) vmath.Vec2 {
	var v vmath.Vec2
	if s.Held(d.Right) {
		v.X++
	}
	if s.Held(d.Left) {
		v.X--
	}
	if s.Held(d.Up) {
		v.Y++
	}
	if s.Held(d.Down) {
		v.Y--
	}
	return v
}

// applyDeadZone zeroes a stick inside the circular dead zone and rescales the rest to start at zero
func applyDeadZone(v vmath.Vec2, deadZone float64) vmath.Vec2 {
	v = vmath.V2ClampAxes(v)
	if deadZone <= 0 {
		return v
	}
	if deadZone >= 1 {
		return vmath.Vec2{}
	}
	mag := vmath.V2Mag(v)
	if mag <= deadZone {
		return vmath.Vec2{}
	}
	scaled := math.Min((mag-deadZone)/(1-deadZone), 1)
	return vmath.V2Scale(v, scaled/mag)
}
