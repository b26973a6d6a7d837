package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// KeyTracker derives held keys from terminal key events
// Terminals report presses and auto-repeats but never releases, so a key counts as
// held until hold has elapsed since its last event
type KeyTracker struct {
	hold     time.Duration
	lastSeen [keyCount]time.Time
}

// NewKeyTracker creates a tracker with the given hold window
func NewKeyTracker(hold time.Duration) *KeyTracker {
	return &KeyTracker{hold: hold}
}

// HandleKey records a key event; returns false if the key is not a movement key
func (kt *KeyTracker) HandleKey(ev *tcell.EventKey) bool {
	k := TranslateKey(ev)
	if k == KeyNone {
		return false
	}
	kt.lastSeen[k] = ev.When()
	return true
}

// Sample returns the keys held at now
func (kt *KeyTracker) Sample(now time.Time) DeviceSample {
	var s DeviceSample
	for k := KeyNone + 1; k < keyCount; k++ {
		seen := kt.lastSeen[k]
		if seen.IsZero() {
			continue
		}
		if now.Sub(seen) <= kt.hold {
			s.Press(k)
		}
	}
	return s
}

// Reset forgets every key
func (kt *KeyTracker) Reset() {
	kt.lastSeen = [keyCount]time.Time{}
}

// TranslateKey maps a tcell key event to a binding key
func TranslateKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return KeyW
		case 'a', 'A':
			return KeyA
		case 's', 'S':
			return KeyS
		case 'd', 'D':
			return KeyD
		}
	}
	return KeyNone
}
