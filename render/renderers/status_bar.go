package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/render"
	"github.com/lixenwraith/rolling/status"
)

// Status bar labels
const (
	AudioStr    = " ♪ "
	PausedStr   = " PAUSED "
	ControlsStr = " P0 WASD  P1 arrows  [p]ause [r]estart [m]ute [q]uit "
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct {
	world *engine.World
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(world *engine.World) *StatusBarRenderer {
	return &StatusBarRenderer{world: world}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.ScreenHeight <= ctx.ViewportHeight {
		return
	}
	y := ctx.ViewportHeight
	barStyle := tcell.StyleDefault.Foreground(render.RgbStatusBar).Background(render.RgbStatusBg)

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, y, ' ', barStyle)
	}

	x := 0

	// Audio mute indicator, only when audio is available
	if audio := s.world.Resource.Audio; audio != nil && audio.Player != nil {
		bg := render.RgbUnmutedBg
		if audio.Player.IsMuted() {
			bg = render.RgbMutedBg
		}
		x = buf.SetString(x, y, AudioStr, barStyle.Foreground(tcell.ColorBlack).Background(bg))
	}

	if ctx.IsPaused {
		x = buf.SetString(x, y, PausedStr, barStyle.Foreground(tcell.ColorBlack).Background(render.RgbPausedBg))
	}

	// Every registered metric, in key order
	stats := s.world.Resource.Status
	stats.Counters.Range(func(key string, c *status.Counter) {
		x = buf.SetString(x, y, fmt.Sprintf(" %s %d ", status.Label(key), c.Load()), barStyle)
	})
	stats.Gauges.Range(func(key string, g *status.Gauge) {
		x = buf.SetString(x, y, fmt.Sprintf(" %s %.1f ", status.Label(key), g.Get()), barStyle)
	})

	// Controls are right-aligned when there is room
	if rx := ctx.ScreenWidth - len([]rune(ControlsStr)); rx >= x {
		buf.SetString(rx, y, ControlsStr, barStyle.Dim(true))
	}
}
