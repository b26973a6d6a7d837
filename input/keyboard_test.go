package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), KeyW},
		{tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), KeyA},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyNone},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyNone},
	}

	for _, tt := range tests {
		if got := TranslateKey(tt.ev); got != tt.want {
			t.Errorf("TranslateKey(%s) = %d, want %d", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestKeyTrackerHoldWindow(t *testing.T) {
	kt := NewKeyTracker(120 * time.Millisecond)

	ev := tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)
	if !kt.HandleKey(ev) {
		t.Fatal("Expected movement key to be consumed")
	}

	pressed := ev.When()
	if !kt.Sample(pressed.Add(50 * time.Millisecond)).Held(KeyD) {
		t.Error("Expected key held inside hold window")
	}
	if kt.Sample(pressed.Add(200 * time.Millisecond)).Held(KeyD) {
		t.Error("Expected key released after hold window")
	}
}

func TestKeyTrackerIgnoresOtherKeys(t *testing.T) {
	kt := NewKeyTracker(time.Second)
	ev := tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)
	if kt.HandleKey(ev) {
		t.Error("Non-movement key should not be consumed")
	}
}

func TestKeyTrackerReset(t *testing.T) {
	kt := NewKeyTracker(time.Second)
	ev := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	kt.HandleKey(ev)
	kt.Reset()
	if kt.Sample(ev.When()).Held(KeyLeft) {
		t.Error("Expected no keys after reset")
	}
}

func TestKeyTableClassify(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentMute},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		if got := kt.Classify(tt.ev); got != tt.want {
			t.Errorf("Classify(%s) = %d, want %d", tt.ev.Name(), got, tt.want)
		}
	}
}
