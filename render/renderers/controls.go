package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twentyfive/render"
)

// drawText writes s from (x, y) and returns the column after it
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// ControlsRenderer draws the counter buttons and the team name field.
type ControlsRenderer struct{}

// NewControlsRenderer creates a controls renderer.
func NewControlsRenderer() *ControlsRenderer {
	return &ControlsRenderer{}
}

// Render implements SystemRenderer.
func (c *ControlsRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	c.renderNameField(ctx, screen)
	if ctx.Layout.Compact {
		return
	}
	c.renderButton(screen, ctx.Layout.IncButton, "[+]", ctx.IncLit)
	c.renderButton(screen, ctx.Layout.DecButton, "[-]", ctx.DecLit)
}

func (c *ControlsRenderer) renderButton(screen tcell.Screen, rect render.Rect, label string, lit bool) {
	style := render.StyleBase().Foreground(render.RgbChrome.Tcell())
	if lit {
		style = style.Background(render.RgbHighlight.Tcell()).Foreground(render.RgbWhite.Tcell())
	}
	drawText(screen, rect.X, rect.Y, label, style)
}

func (c *ControlsRenderer) renderNameField(ctx render.RenderContext, screen tcell.Screen) {
	rect := ctx.Layout.NameField
	if rect.W <= 0 {
		return
	}
	label := render.StyleBase().Foreground(render.RgbChrome.Tcell())
	field := render.StyleBase()
	if ctx.Editing {
		field = field.Background(render.RgbTrack.Tcell())
	}

	end := rect.X + rect.W
	x := drawText(screen, rect.X, rect.Y, "Team: [", label)
	for _, ch := range ctx.TeamName {
		if x >= end-1 {
			break
		}
		screen.SetContent(x, rect.Y, ch, nil, field)
		x++
	}
	if ctx.Editing && x < end-1 {
		screen.SetContent(x, rect.Y, '_', nil, field.Blink(true))
		x++
	}
	for ; x < end-1; x++ {
		screen.SetContent(x, rect.Y, ' ', nil, field)
	}
	if x < end {
		screen.SetContent(x, rect.Y, ']', nil, label)
	}
}
