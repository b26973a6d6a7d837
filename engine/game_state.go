package engine

import (
	"time"

	"github.com/lixenwraith/rolling/core"
)

// GamePhase is the round state
type GamePhase uint8

const (
	// PhasePlaying accepts input and watches the goal
	PhasePlaying GamePhase = iota
	// PhaseWon freezes movement until restart; the winner is recorded
	PhaseWon
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhasePlaying: {PhaseWon},
	PhaseWon:     {PhasePlaying},
}

// GameState holds round state owned by the frame goroutine
type GameState struct {
	CurrentPhase   GamePhase
	PhaseStartTime time.Time

	winnerID     int
	winnerEntity core.Entity

	// Round counts completed restarts, starting at 1
	Round int
}

// NewGameState creates a state in PhasePlaying, round 1
func NewGameState() *GameState {
	return &GameState{
		CurrentPhase: PhasePlaying,
		winnerID:     -1,
		Round:        1,
	}
}

// GetPhase returns the current game phase
func (gs *GameState) GetPhase() GamePhase {
	return gs.CurrentPhase
}

// CanTransition reports whether from -> to is an allowed phase change
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// TransitionPhase attempts to transition to a new phase with validation
// Returns false and leaves state untouched on an invalid transition
func (gs *GameState) TransitionPhase(to GamePhase, now time.Time) bool {
	if !gs.CanTransition(gs.CurrentPhase, to) {
		return false
	}
	gs.CurrentPhase = to
	gs.PhaseStartTime = now
	return true
}

// DeclareWinner moves Playing -> Won and records the winner
// Returns false if a winner already exists for this round
func (gs *GameState) DeclareWinner(playerID int, e core.Entity, now time.Time) bool {
	if !gs.TransitionPhase(PhaseWon, now) {
		return false
	}
	gs.winnerID = playerID
	gs.winnerEntity = e
	return true
}

// Winner returns the winning player id and entity, false while playing
func (gs *GameState) Winner() (int, core.Entity, bool) {
	if gs.CurrentPhase != PhaseWon {
		return -1, core.NoEntity, false
	}
	return gs.winnerID, gs.winnerEntity, true
}

// Restart returns to PhasePlaying and starts a new round
func (gs *GameState) Restart(now time.Time) {
	if gs.CurrentPhase == PhaseWon {
		gs.TransitionPhase(PhasePlaying, now)
	} else {
		gs.PhaseStartTime = now
	}
	gs.winnerID = -1
	gs.winnerEntity = core.NoEntity
	gs.Round++
}

// PhaseSnapshot provides a consistent view of phase state
type PhaseSnapshot struct {
	Phase     GamePhase
	StartTime time.Time
	Duration  time.Duration
	WinnerID  int // -1 while playing
	Round     int
}

// ReadPhaseState returns a snapshot of the current phase state
func (gs *GameState) ReadPhaseState(now time.Time) PhaseSnapshot {
	id, _, _ := gs.Winner()
	return PhaseSnapshot{
		Phase:     gs.CurrentPhase,
		StartTime: gs.PhaseStartTime,
		Duration:  now.Sub(gs.PhaseStartTime),
		WinnerID:  id,
		Round:     gs.Round,
	}
}
