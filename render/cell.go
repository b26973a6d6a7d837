package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell of the frame buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// emptyCell is the cleared state: blank on the playfield background
var emptyCell = Cell{Rune: ' ', Style: StyleDefault}
