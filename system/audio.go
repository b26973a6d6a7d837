package system

import (
	"log"

	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/event"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/status"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	world  *engine.World
	player engine.AudioPlayer

	statPlayed *status.Counter
}

// NewAudioSystem creates an audio system over the bridged audio player
// The player may be absent when audio is disabled
func NewAudioSystem(world *engine.World) engine.System {
	var player engine.AudioPlayer
	if world.Resource.Audio != nil {
		player = world.Resource.Audio.Player
	}
	return &AudioSystem{
		world:      world,
		player:     player,
		statPlayed: world.Resource.Status.Counters.Get(status.KeyCuesPlayed),
	}
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventPlayerWon,
		event.EventMuteToggle,
	}
}

// HandleEvent plays cues and toggles mute
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}

	switch ev.Type {
	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.play(payload.SoundType)
		}
	case event.EventPlayerWon:
		s.play(core.SoundWin)
	case event.EventMuteToggle:
		log.Printf("audio: muted=%v", s.player.ToggleMute())
	}
}

func (s *AudioSystem) play(st core.SoundType) {
	if s.player.Play(st) {
		s.statPlayed.Add(1)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
