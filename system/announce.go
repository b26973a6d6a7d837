package system

import (
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/event"
	"github.com/lixenwraith/rolling/parameter"
)

// AnnounceSystem writes the win notification line
type AnnounceSystem struct {
	out io.Writer
}

// NewAnnounceSystem creates an announcer writing to out
func NewAnnounceSystem(out io.Writer) engine.System {
	return &AnnounceSystem{out: out}
}

// Priority returns the system's priority
func (s *AnnounceSystem) Priority() int {
	return parameter.PriorityAnnounce
}

// EventTypes returns the event types AnnounceSystem handles
func (s *AnnounceSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPlayerWon}
}

// HandleEvent prints "Player <id> wins!"
func (s *AnnounceSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.PlayerWonPayload)
	if !ok {
		return
	}
	if _, err := fmt.Fprintf(s.out, "Player %d wins!\n", payload.PlayerID); err != nil {
		log.Printf("announce: write failed: %v", err)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AnnounceSystem) Update() {}
