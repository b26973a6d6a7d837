package parameter

// Scene cardinality
const (
	PlayerCount = 2
	PieceCount  = 4
	GoalCount   = 1
)

// Player identities; id selects control scheme and sprite
const (
	PlayerBlue = 0
	PlayerRed  = 1
)

// WindowTitle is the title set on the terminal window at startup
const WindowTitle = "Rolling Game"

// Asset handles, resolved by the asset loader relative to AssetDir
const (
	AssetDir         = "assets"
	SpritePlayerBlue = "ball_blue_large.png"
	SpritePlayerRed  = "ball_red_large.png"
	SpritePiece      = "block_corner.png"
	SpriteGoal       = "hole_large_end.png"
	ClipImpact       = "impactGlass_heavy_002.ogg"
)

// PlayerSprite returns the sprite handle for a player id
func PlayerSprite(id int) string {
	if id == PlayerBlue {
		return SpritePlayerBlue
	}
	return SpritePlayerRed
}

// ShowContacts marks touching collider pairs in the playfield view
const ShowContacts = true
