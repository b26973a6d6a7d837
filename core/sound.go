package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundImpact SoundType = iota // Ball hit a piece or another ball
	SoundWin                     // Player reached the goal
	SoundTypeCount
)

// String returns the sound name used in logs and metrics
func (s SoundType) String() string {
	switch s {
	case SoundImpact:
		return "impact"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}
