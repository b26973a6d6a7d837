package component

// PieceComponent tags a static obstacle; Index is its slot in the layout
type PieceComponent struct {
	Index int
}
