package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twentyfive/game"
	"github.com/lixenwraith/twentyfive/render"
)

// drawRoll draws a sliding current/next pair inside rect. Current moves up
// out of the window while next rises from below.
func drawRoll(screen tcell.Screen, rect render.Rect, frame game.RollFrame, style tcell.Style) {
	shift := int(math.Round(frame.Offset * render.DigitHeight))
	bottom := rect.Y + rect.H

	render.DrawPair(screen, rect.X, rect.Y-shift, frame.Current, rect.Y, bottom, style)
	if shift > 0 {
		render.DrawPair(screen, rect.X, rect.Y+render.DigitHeight-shift, frame.Next, rect.Y, bottom, style)
	}
}

// TimerDigitsRenderer draws the seconds remaining in the middle of the dial.
type TimerDigitsRenderer struct{}

// NewTimerDigitsRenderer creates a timer digits renderer.
func NewTimerDigitsRenderer() *TimerDigitsRenderer {
	return &TimerDigitsRenderer{}
}

// Render implements SystemRenderer.
func (r *TimerDigitsRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if ctx.Layout.Compact {
		return
	}
	style := render.StyleBase()
	if ctx.Expired {
		style = style.Foreground(render.RgbAlert.Tcell())
	}
	drawRoll(screen, ctx.Layout.TimerDigits, ctx.Timer, style)
}

// CountDigitsRenderer draws the words left beside the gauge.
type CountDigitsRenderer struct{}

// NewCountDigitsRenderer creates a count digits renderer.
func NewCountDigitsRenderer() *CountDigitsRenderer {
	return &CountDigitsRenderer{}
}

// Render implements SystemRenderer.
func (r *CountDigitsRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if ctx.Layout.Compact {
		return
	}
	style := render.StyleBase()
	if !ctx.Fill.Hidden() {
		style = style.Foreground(render.HexRGB(ctx.Fill.Color.Hex()).Tcell())
	} else {
		style = style.Foreground(render.RgbChrome.Tcell())
	}
	drawRoll(screen, ctx.Layout.CountDigits, ctx.Count, style)
}
