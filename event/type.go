package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: CollisionFeedbackSystem on active contact
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventMuteToggle flips the sound manager mute state
	// Trigger: ControlSystem on mute intent
	// Consumer: AudioSystem | Payload: nil
	EventMuteToggle

	// === Game Event ===

	// EventPlayerWon signals a player ball reached the goal
	// Trigger: WinConditionSystem, once per round
	// Consumer: AnnounceSystem, AudioSystem | Payload: *PlayerWonPayload
	EventPlayerWon

	// EventGameReset requests a new round with players back at spawn
	// Trigger: ControlSystem on restart intent
	// Consumer: ControlSystem, CollisionFeedbackSystem | Payload: nil
	EventGameReset

	// EventPauseToggle flips the game clock pause state
	// Trigger: ControlSystem on pause intent
	// Consumer: ControlSystem | Payload: nil
	EventPauseToggle

	// EventQuit requests process exit at end of frame
	// Trigger: ControlSystem on quit intent
	// Consumer: main loop | Payload: nil
	EventQuit

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventNone:         "None",
	EventSoundRequest: "SoundRequest",
	EventMuteToggle:   "MuteToggle",
	EventPlayerWon:    "PlayerWon",
	EventGameReset:    "GameReset",
	EventPauseToggle:  "PauseToggle",
	EventQuit:         "Quit",
}

// String returns the event name for logging
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame the event was pushed in
}
