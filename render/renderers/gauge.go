package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twentyfive/constant"
	"github.com/lixenwraith/twentyfive/render"
)

// Partial blocks for the top cell of the fill, in eighths
var eighthBlocks = [...]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// GaugeRenderer draws the word gauge filling from the bottom.
type GaugeRenderer struct{}

// NewGaugeRenderer creates a gauge renderer.
func NewGaugeRenderer() *GaugeRenderer {
	return &GaugeRenderer{}
}

// Render implements SystemRenderer.
func (g *GaugeRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if ctx.Layout.Compact {
		return
	}
	rect := ctx.Layout.Gauge
	track := render.StyleBase().Background(render.RgbTrack.Tcell())

	// Map the fill's surface height to rows, keeping eighth-row precision
	var filled float64
	fill := track
	if !ctx.Fill.Hidden() {
		filled = ctx.Fill.Height() / constant.FillSurfaceHeight * float64(rect.H)
		fill = track.Foreground(render.HexRGB(ctx.Fill.Color.Hex()).Tcell())
	}
	full := int(filled)
	partial := int((filled - float64(full)) * float64(len(eighthBlocks)))

	for i := 0; i < rect.H; i++ {
		y := rect.Y + rect.H - 1 - i // bottom-up
		ch, style := ' ', track
		switch {
		case i < full:
			ch, style = '█', fill
		case i == full && partial > 0:
			ch, style = eighthBlocks[partial], fill
		}
		for x := rect.X; x < rect.X+rect.W; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
