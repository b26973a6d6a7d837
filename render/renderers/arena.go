package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rolling/render"
)

// ArenaRenderer draws the playfield border
type ArenaRenderer struct{}

// NewArenaRenderer creates an arena renderer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render implements SystemRenderer
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, h := ctx.ViewportWidth, ctx.ViewportHeight
	if w < 2 || h < 2 {
		return
	}
	style := render.StyleDefault.Foreground(render.RgbArenaEdge)

	for x := 1; x < w-1; x++ {
		buf.Set(x, 0, tcell.RuneHLine, style)
		buf.Set(x, h-1, tcell.RuneHLine, style)
	}
	for y := 1; y < h-1; y++ {
		buf.Set(0, y, tcell.RuneVLine, style)
		buf.Set(w-1, y, tcell.RuneVLine, style)
	}
	buf.Set(0, 0, tcell.RuneULCorner, style)
	buf.Set(w-1, 0, tcell.RuneURCorner, style)
	buf.Set(0, h-1, tcell.RuneLLCorner, style)
	buf.Set(w-1, h-1, tcell.RuneLRCorner, style)
}
