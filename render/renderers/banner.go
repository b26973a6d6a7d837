package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/render"
)

const bannerHint = "[r] restart  [q] quit"

// BannerRenderer overlays the win message at the center of the playfield
type BannerRenderer struct {
	world *engine.World
}

// NewBannerRenderer creates a win banner renderer
func NewBannerRenderer(world *engine.World) *BannerRenderer {
	return &BannerRenderer{world: world}
}

// IsVisible implements VisibilityToggle
func (r *BannerRenderer) IsVisible() bool {
	_, _, won := r.world.Resource.Game.State.Winner()
	return won
}

// Render implements SystemRenderer
func (r *BannerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	id, _, won := r.world.Resource.Game.State.Winner()
	if !won {
		return
	}

	title := fmt.Sprintf(" Player %d wins! ", id)
	hint := " " + bannerHint + " "
	width := max(len([]rune(title)), len([]rune(hint)))
	cy := ctx.ViewportHeight / 2

	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(render.PlayerColor(id)).Bold(true)
	hintStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(render.RgbBannerBg)

	drawCentered(buf, ctx.ViewportWidth, cy-1, title, width, style)
	drawCentered(buf, ctx.ViewportWidth, cy, hint, width, hintStyle)
}

// drawCentered pads s to width and centers it on row y
func drawCentered(buf *render.RenderBuffer, viewWidth, y int, s string, width int, style tcell.Style) {
	x := (viewWidth - width) / 2
	runes := []rune(s)
	pad := (width - len(runes)) / 2
	for i := 0; i < width; i++ {
		ch := ' '
		if j := i - pad; j >= 0 && j < len(runes) {
			ch = runes[j]
		}
		buf.Set(x+i, y, ch, style)
	}
}
