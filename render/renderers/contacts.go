package renderers

import (
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/render"
	"github.com/lixenwraith/rolling/vmath"
)

const glyphContact = '✶'

// ContactRenderer marks the midpoint of every touching collider pair
// Debug view, drawn over bodies
type ContactRenderer struct {
	world   *engine.World
	visible bool
}

// NewContactRenderer creates a contact marker renderer
func NewContactRenderer(world *engine.World, visible bool) *ContactRenderer {
	return &ContactRenderer{world: world, visible: visible}
}

// IsVisible implements VisibilityToggle
func (r *ContactRenderer) IsVisible() bool {
	return r.visible && r.world.Resource.Physics != nil
}

// Render implements SystemRenderer
func (r *ContactRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	phys := r.world.Resource.Physics.World
	style := render.StyleDefault.Foreground(render.RgbContact).Bold(true)

	for _, p := range phys.ContactPairs() {
		if !p.HasAnyActiveContacts() {
			continue
		}
		a, okA := phys.Transform(p.A)
		b, okB := phys.Transform(p.B)
		if !okA || !okB {
			continue
		}
		mid := vmath.V2Scale(vmath.V2Add(a.Position, b.Position), 0.5)
		if sx, sy, visible := ctx.WorldToScreen(mid); visible {
			buf.Set(sx, sy, glyphContact, style)
		}
	}
}
