package renderers

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/render"
	"github.com/lixenwraith/rolling/vmath"
)

// Glyphs per body kind
const (
	glyphPlayer = '●'
	glyphPiece  = '▓'
	glyphGoal   = '░'
	glyphHole   = '◎'
)

// GoalRenderer draws the goal sensor as a shaded disc with a marked center
type GoalRenderer struct {
	world *engine.World
}

// NewGoalRenderer creates a goal renderer
func NewGoalRenderer(world *engine.World) *GoalRenderer {
	return &GoalRenderer{world: world}
}

// Render implements SystemRenderer
func (r *GoalRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.world.Components
	for _, e := range c.Goal.GetAllEntities() {
		tr, col, ok := bodyOf(c, e)
		if !ok {
			continue
		}
		render.FillDisc(ctx, buf, tr.Position, col.Radius, glyphGoal, render.StyleDefault.Foreground(render.RgbGoalRim))
		if sx, sy, visible := ctx.WorldToScreen(tr.Position); visible {
			buf.Set(sx, sy, glyphHole, render.StyleDefault.Foreground(render.RgbGoal).Bold(true))
		}
	}
}

// PieceRenderer draws the fixed triangular pieces
type PieceRenderer struct {
	world *engine.World
}

// NewPieceRenderer creates a piece renderer
func NewPieceRenderer(world *engine.World) *PieceRenderer {
	return &PieceRenderer{world: world}
}

// Render implements SystemRenderer
func (r *PieceRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.world.Components
	style := render.StyleDefault.Foreground(render.RgbPiece)
	for _, e := range c.Piece.GetAllEntities() {
		tr, col, ok := bodyOf(c, e)
		if !ok {
			continue
		}
		render.FillTriangle(ctx, buf, worldTriangle(tr, col.Vertices), glyphPiece, style)
	}
}

// worldTriangle places local vertices at a pose
func worldTriangle(tr core.Transform, local [3]vmath.Vec2) [3]vmath.Vec2 {
	var out [3]vmath.Vec2
	for i, v := range local {
		out[i] = vmath.V2Add(tr.Position, vmath.V2Rotate(v, tr.Rotation))
	}
	return out
}

// PlayerRenderer draws player balls with their id at the center
type PlayerRenderer struct {
	world *engine.World
}

// NewPlayerRenderer creates a player renderer
func NewPlayerRenderer(world *engine.World) *PlayerRenderer {
	return &PlayerRenderer{world: world}
}

// Render implements SystemRenderer
func (r *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.world.Components
	for _, e := range c.Player.GetAllEntities() {
		p, _ := c.Player.GetComponent(e)
		tr, col, ok := bodyOf(c, e)
		if !ok {
			continue
		}
		color := render.PlayerColor(p.ID)
		render.FillDisc(ctx, buf, tr.Position, col.Radius, glyphPlayer, render.StyleDefault.Foreground(color))

		if sx, sy, visible := ctx.WorldToScreen(tr.Position); visible {
			label := rune(strconv.Itoa(p.ID)[0])
			buf.Set(sx, sy, label, render.StyleDefault.Foreground(tcell.ColorBlack).Background(color).Bold(true))
		}
	}
}

func bodyOf(c *engine.ComponentStore, e core.Entity) (core.Transform, component.ColliderComponent, bool) {
	tr, ok := c.Transform.GetComponent(e)
	if !ok {
		return core.Transform{}, component.ColliderComponent{}, false
	}
	col, ok := c.Collider.GetComponent(e)
	if !ok {
		return core.Transform{}, component.ColliderComponent{}, false
	}
	return tr.Transform, col, true
}
