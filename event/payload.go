package event

import "github.com/lixenwraith/rolling/core"

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}

// PlayerWonPayload identifies the winning player
type PlayerWonPayload struct {
	PlayerID int
	Entity   core.Entity
}
