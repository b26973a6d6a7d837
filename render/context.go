package render

import (
	"math"
	"time"

	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/vmath"
)

// StatusBarHeight is the number of rows reserved below the playfield
const StatusBarHeight = 1

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	GameTime    time.Time
	DeltaTime   float64
	FrameNumber int64
	IsPaused    bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Viewport is the playfield area at the top-left of the screen
	ViewportWidth  int
	ViewportHeight int

	// Arena is the world rectangle mapped onto the viewport, centered on the origin, y up
	ArenaWidth  float64
	ArenaHeight float64
}

// NewRenderContext creates a RenderContext from the world's time and tuning resources
func NewRenderContext(world *engine.World, screenWidth, screenHeight int, paused bool) RenderContext {
	timeRes := world.Resource.Time
	ctx := RenderContext{
		GameTime:       timeRes.GameTime,
		DeltaTime:      timeRes.DeltaSeconds(),
		FrameNumber:    timeRes.FrameNumber,
		IsPaused:       paused,
		ScreenWidth:    screenWidth,
		ScreenHeight:   screenHeight,
		ViewportWidth:  screenWidth,
		ViewportHeight: max(screenHeight-StatusBarHeight, 0),
	}
	if world.Resource.Tuning != nil {
		ctx.ArenaWidth = world.Resource.Tuning.Arena.Width
		ctx.ArenaHeight = world.Resource.Tuning.Arena.Height
	}
	return ctx
}

// WorldToScreen converts a world point to a viewport cell
// Returns (sx, sy, visible) where visible=false if outside the viewport
func (rc *RenderContext) WorldToScreen(p vmath.Vec2) (int, int, bool) {
	if rc.ViewportWidth <= 0 || rc.ViewportHeight <= 0 || rc.ArenaWidth <= 0 || rc.ArenaHeight <= 0 {
		return 0, 0, false
	}
	sx := int(math.Floor((p.X + rc.ArenaWidth/2) * float64(rc.ViewportWidth) / rc.ArenaWidth))
	sy := int(math.Floor((rc.ArenaHeight/2 - p.Y) * float64(rc.ViewportHeight) / rc.ArenaHeight))
	visible := sx >= 0 && sx < rc.ViewportWidth && sy >= 0 && sy < rc.ViewportHeight
	return sx, sy, visible
}

// ScreenToWorld returns the world point at the center of a viewport cell
func (rc *RenderContext) ScreenToWorld(sx, sy int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(sx)+0.5)*rc.ArenaWidth/float64(rc.ViewportWidth) - rc.ArenaWidth/2,
		Y: rc.ArenaHeight/2 - (float64(sy)+0.5)*rc.ArenaHeight/float64(rc.ViewportHeight),
	}
}

// CellBounds returns the viewport cell rectangle covering a world-space box, clamped to the viewport
func (rc *RenderContext) CellBounds(minP, maxP vmath.Vec2) (x0, y0, x1, y1 int) {
	x0, y1, _ = rc.WorldToScreen(vmath.Vec2{X: minP.X, Y: minP.Y})
	x1, y0, _ = rc.WorldToScreen(vmath.Vec2{X: maxP.X, Y: maxP.Y})
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, rc.ViewportWidth-1)
	y1 = min(y1, rc.ViewportHeight-1)
	return x0, y0, x1, y1
}
