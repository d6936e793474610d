package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twentyfive/render"
)

// Status bar text
const (
	statusIdle    = "Space or click the dial to start"
	statusRunning = "Round running"
	statusExpired = "Time's up!"
	statusEditing = "Typing team name, Enter to finish"
	statusHints   = "↑/↓ words  t team  q quit"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// StatusText returns the left-hand status message for the frame
func StatusText(ctx render.RenderContext) string {
	switch {
	case ctx.Editing:
		return statusEditing
	case ctx.Expired:
		return statusExpired
	case ctx.Active:
		return statusRunning
	default:
		return statusIdle
	}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	y := ctx.Layout.StatusY
	if y < 1 {
		return
	}
	base := render.StyleBase().Foreground(render.RgbChrome.Tcell())

	msgStyle := base
	if ctx.Expired {
		msgStyle = base.Foreground(render.RgbAlert.Tcell()).Bold(true)
	}
	x := drawText(screen, 1, y, StatusText(ctx), msgStyle)

	audio := "♪ off"
	if ctx.AudioOn {
		audio = "♪ on"
	}
	right := fmt.Sprintf("%s  %s", statusHints, audio)
	rx := ctx.Layout.Width - len([]rune(right)) - 1
	if rx > x+1 {
		drawText(screen, rx, y, right, base)
	}
}

// CompactRenderer replaces the dial and gauge with one text line when the
// terminal is too small for them.
type CompactRenderer struct{}

// NewCompactRenderer creates a compact renderer
func NewCompactRenderer() *CompactRenderer {
	return &CompactRenderer{}
}

// Render implements SystemRenderer
func (c *CompactRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if !ctx.Layout.Compact || ctx.Layout.Height < 3 {
		return
	}
	style := render.StyleBase()
	x := drawText(screen, 0, 1, fmt.Sprintf("%2ds", ctx.Timer.Current), style)
	x = drawText(screen, x, 1, "  ", style)

	countStyle := style.Foreground(render.RgbChrome.Tcell())
	if !ctx.Fill.Hidden() {
		countStyle = style.Foreground(render.HexRGB(ctx.Fill.Color.Hex()).Tcell())
	}
	drawText(screen, x, 1, fmt.Sprintf("%2d words", ctx.Count.Current), countStyle)
}
