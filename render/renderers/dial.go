package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twentyfive/constant"
	"github.com/lixenwraith/twentyfive/render"
)

const segmentGlyph = '●'

// DialRenderer draws the 45 second markers around the timer digits.
type DialRenderer struct{}

// NewDialRenderer creates a dial renderer.
func NewDialRenderer() *DialRenderer {
	return &DialRenderer{}
}

// Render implements SystemRenderer.
func (d *DialRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if ctx.Layout.Compact {
		return
	}
	base := render.StyleBase()
	for id := 1; id <= constant.DialSegments; id++ {
		s := ctx.Dial.Segment(id).Style()
		x, y := ctx.Layout.SegmentPosition(id)
		screen.SetContent(x, y, segmentGlyph, nil, base.Foreground(render.OpacityOver(s.Fill, s.Opacity)))
	}
}
