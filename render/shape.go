package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rolling/vmath"
)

// FillDisc rasterizes a world-space disc; cells whose center lies inside are drawn
// A disc smaller than one cell still marks the cell under its center
func FillDisc(ctx RenderContext, buf *RenderBuffer, center vmath.Vec2, radius float64, r rune, style tcell.Style) int {
	x0, y0, x1, y1 := ctx.CellBounds(
		vmath.Vec2{X: center.X - radius, Y: center.Y - radius},
		vmath.Vec2{X: center.X + radius, Y: center.Y + radius},
	)
	rSq := radius * radius
	drawn := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vmath.V2DistSq(ctx.ScreenToWorld(x, y), center) <= rSq {
				buf.Set(x, y, r, style)
				drawn++
			}
		}
	}
	if drawn == 0 {
		if sx, sy, ok := ctx.WorldToScreen(center); ok {
			buf.Set(sx, sy, r, style)
			drawn++
		}
	}
	return drawn
}

// FillTriangle rasterizes a world-space triangle using the same cell-center rule as FillDisc
func FillTriangle(ctx RenderContext, buf *RenderBuffer, tri [3]vmath.Vec2, r rune, style tcell.Style) int {
	minP, maxP := tri[0], tri[0]
	for _, p := range tri[1:] {
		minP.X, minP.Y = min(minP.X, p.X), min(minP.Y, p.Y)
		maxP.X, maxP.Y = max(maxP.X, p.X), max(maxP.Y, p.Y)
	}
	x0, y0, x1, y1 := ctx.CellBounds(minP, maxP)

	drawn := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if insideTriangle(ctx.ScreenToWorld(x, y), tri) {
				buf.Set(x, y, r, style)
				drawn++
			}
		}
	}
	if drawn == 0 {
		centroid := vmath.V2Scale(vmath.V2Add(vmath.V2Add(tri[0], tri[1]), tri[2]), 1.0/3)
		if sx, sy, ok := ctx.WorldToScreen(centroid); ok {
			buf.Set(sx, sy, r, style)
			drawn++
		}
	}
	return drawn
}

func cross(o, a, b vmath.Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// insideTriangle accepts either winding
func insideTriangle(p vmath.Vec2, t [3]vmath.Vec2) bool {
	d0 := cross(t[0], t[1], p)
	d1 := cross(t[1], t[2], p)
	d2 := cross(t[2], t[0], p)
	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}
