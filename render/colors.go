package render

import "github.com/gdamore/tcell/v2"

// Playfield palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbArenaEdge  = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbPlayerBlue = tcell.NewRGBColor(100, 150, 255) // Player 0
	RgbPlayerRed  = tcell.NewRGBColor(255, 80, 80)   // Player 1
	RgbPiece      = tcell.NewRGBColor(180, 180, 180) // Light gray blocks
	RgbGoal       = tcell.NewRGBColor(0, 200, 120)   // Green hole
	RgbGoalRim    = tcell.NewRGBColor(0, 130, 80)    // Dark green rim
	RgbContact    = tcell.NewRGBColor(255, 255, 0)   // Bright yellow contact marker
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(36, 40, 59)    // Slightly lifted background
	RgbPausedBg   = tcell.NewRGBColor(224, 175, 104) // Amber
	RgbMutedBg    = tcell.NewRGBColor(247, 118, 142) // Bright red when muted
	RgbUnmutedBg  = tcell.NewRGBColor(158, 206, 106) // Bright green when unmuted
	RgbBannerBg   = tcell.NewRGBColor(187, 154, 247) // Purple
)

// StyleDefault is the playfield base style
var StyleDefault = tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbBackground)

// PlayerColor returns the color of a player id
func PlayerColor(id int) tcell.Color {
	if id == 0 {
		return RgbPlayerBlue
	}
	return RgbPlayerRed
}
