package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rolling/vmath"
)

func testContext() RenderContext {
	return RenderContext{
		ScreenWidth:    128,
		ScreenHeight:   37,
		ViewportWidth:  128,
		ViewportHeight: 36,
		ArenaWidth:     1280,
		ArenaHeight:    720,
	}
}

func TestWorldToScreen(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name    string
		p       vmath.Vec2
		x, y    int
		visible bool
	}{
		{"origin is center", vmath.V2(0, 0), 64, 18, true},
		{"top-left corner", vmath.V2(-640, 360), 0, 0, true},
		{"y up maps to lower rows", vmath.V2(0, 200), 64, 8, true},
		{"goal", vmath.V2(450, -300), 109, 33, true},
		{"right edge excluded", vmath.V2(640, 0), 128, 18, false},
		{"below arena", vmath.V2(0, -400), 64, 38, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, visible := ctx.WorldToScreen(tt.p)
			if x != tt.x || y != tt.y || visible != tt.visible {
				t.Errorf("WorldToScreen(%v) = (%d, %d, %v), want (%d, %d, %v)", tt.p, x, y, visible, tt.x, tt.y, tt.visible)
			}
		})
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	ctx := testContext()
	for _, cell := range [][2]int{{0, 0}, {64, 18}, {127, 35}, {10, 30}} {
		p := ctx.ScreenToWorld(cell[0], cell[1])
		x, y, ok := ctx.WorldToScreen(p)
		if !ok || x != cell[0] || y != cell[1] {
			t.Errorf("Cell %v -> %v -> (%d, %d, %v)", cell, p, x, y, ok)
		}
	}
}

func TestWorldToScreenEmptyViewport(t *testing.T) {
	ctx := RenderContext{ArenaWidth: 1280, ArenaHeight: 720}
	if _, _, ok := ctx.WorldToScreen(vmath.V2(0, 0)); ok {
		t.Error("Zero-size viewport should map nothing")
	}
}

func TestFillDisc(t *testing.T) {
	ctx := testContext()
	buf := NewRenderBuffer(ctx.ScreenWidth, ctx.ScreenHeight)

	// r=32 spans ~6.4 columns and ~3.2 rows
	n := FillDisc(ctx, buf, vmath.V2(0, 0), 32, 'o', StyleDefault)
	if n < 10 || n > 30 {
		t.Errorf("Disc covered %d cells, expected a small blob", n)
	}
	if buf.Get(64, 18).Rune != 'o' {
		t.Error("Disc center cell not drawn")
	}
	if buf.Get(0, 0).Rune != ' ' {
		t.Error("Far cell should stay empty")
	}

	// Tiny disc still marks its center cell
	buf.Clear()
	if n := FillDisc(ctx, buf, vmath.V2(-300, 100), 0.5, 'x', StyleDefault); n != 1 {
		t.Errorf("Tiny disc drew %d cells, want 1", n)
	}
}

func TestFillTriangle(t *testing.T) {
	ctx := testContext()
	buf := NewRenderBuffer(ctx.ScreenWidth, ctx.ScreenHeight)
	tri := [3]vmath.Vec2{vmath.V2(-100, -100), vmath.V2(-100, 100), vmath.V2(100, -100)}

	if n := FillTriangle(ctx, buf, tri, '#', StyleDefault); n == 0 {
		t.Fatal("Triangle drew nothing")
	}
	// Lower-left half is filled, upper-right is not
	if buf.Get(58, 21).Rune != '#' {
		t.Error("Expected cell inside the triangle to be drawn")
	}
	if buf.Get(70, 15).Rune == '#' {
		t.Error("Cell beyond the hypotenuse should be empty")
	}
}

func TestRenderBufferBounds(t *testing.T) {
	buf := NewRenderBuffer(4, 2)
	buf.Set(-1, 0, 'x', StyleDefault)
	buf.Set(4, 1, 'x', StyleDefault)
	buf.Set(3, 1, 'y', tcell.StyleDefault)

	if got := buf.Get(3, 1).Rune; got != 'y' {
		t.Errorf("Get(3,1) = %q", got)
	}
	if got := buf.Get(9, 9); got != emptyCell {
		t.Errorf("Out of bounds Get = %+v", got)
	}
	if end := buf.SetString(2, 0, "abc", StyleDefault); end != 5 {
		t.Errorf("SetString end = %d, want 5", end)
	}
	if buf.Get(3, 0).Rune != 'b' {
		t.Error("SetString should write in bounds and clip the rest")
	}

	buf.Resize(2, 2)
	if w, h := buf.Bounds(); w != 2 || h != 2 || buf.Get(1, 1) != emptyCell {
		t.Errorf("Resize should clear to %dx%d", w, h)
	}
}
