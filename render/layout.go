package render

import (
	"math"

	"github.com/lixenwraith/twentyfive/constant"
	"github.com/lixenwraith/twentyfive/input"
)

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Region binds the rectangle to a click intent
func (r Rect) Region(intent input.IntentType) input.Region {
	return input.Region{X: r.X, Y: r.Y, W: r.W, H: r.H, Intent: intent}
}

// Layout places every widget for one terminal size.
// Compact layouts have no room for the dial or gauge; renderers that need
// them skip drawing.
type Layout struct {
	Width, Height int
	Compact       bool

	DialCX, DialCY int
	DialRX, DialRY int
	TimerDigits    Rect

	Gauge       Rect
	CountDigits Rect
	IncButton   Rect
	DecButton   Rect

	NameField Rect
	StatusY   int
}

const (
	minDialRadiusY = 5
	headerRows     = 2
	footerRows     = 2
	buttonWidth    = 3
	nameLabelWidth = 7 // "Team: " plus opening bracket
)

// ComputeLayout fits the widget into a w×h terminal, shrinking the dial
// before giving up on it
func ComputeLayout(w, h int) Layout {
	l := Layout{Width: w, Height: h, StatusY: h - 1}

	ry := constant.DialRadiusY
	for ry >= minDialRadiusY && h < headerRows+2*ry+1+footerRows {
		ry--
	}
	rx := int(float64(ry) * constant.DialAspect)

	contentW := 2*rx + 1 + constant.WidgetGap + constant.GaugeWidth + 2 + PairWidth
	if ry < minDialRadiusY || w < contentW {
		l.Compact = true
		l.NameField = Rect{X: 0, Y: 0, W: min(w, nameLabelWidth+constant.TeamNameMaxLen+1), H: 1}
		return l
	}

	x0 := (w - contentW) / 2
	cy := headerRows + ry

	l.DialCX, l.DialCY = x0+rx, cy
	l.DialRX, l.DialRY = rx, ry
	l.TimerDigits = Rect{X: l.DialCX - PairWidth/2, Y: cy - DigitHeight/2, W: PairWidth, H: DigitHeight}

	gaugeH := min(constant.GaugeHeight, 2*ry+1)
	l.Gauge = Rect{X: x0 + 2*rx + 1 + constant.WidgetGap, Y: cy - gaugeH/2, W: constant.GaugeWidth, H: gaugeH}

	countX := l.Gauge.X + l.Gauge.W + 2
	l.CountDigits = Rect{X: countX, Y: cy - DigitHeight/2, W: PairWidth, H: DigitHeight}
	l.IncButton = Rect{X: countX + (PairWidth-buttonWidth)/2, Y: l.CountDigits.Y - 2, W: buttonWidth, H: 1}
	l.DecButton = Rect{X: countX + (PairWidth-buttonWidth)/2, Y: l.CountDigits.Y + DigitHeight + 1, W: buttonWidth, H: 1}

	l.NameField = Rect{X: x0, Y: 0, W: min(contentW, nameLabelWidth+constant.TeamNameMaxLen+1), H: 1}
	return l
}

// DialBounds is the rectangle enclosing the segment ring
func (l Layout) DialBounds() Rect {
	return Rect{X: l.DialCX - l.DialRX, Y: l.DialCY - l.DialRY, W: 2*l.DialRX + 1, H: 2*l.DialRY + 1}
}

// SegmentPosition returns the cell of dial segment id (1..DialSegments),
// starting at twelve o'clock and running clockwise
func (l Layout) SegmentPosition(id int) (x, y int) {
	angle := -math.Pi/2 + 2*math.Pi*float64(id-1)/float64(constant.DialSegments)
	x = l.DialCX + int(math.Round(float64(l.DialRX)*math.Cos(angle)))
	y = l.DialCY + int(math.Round(float64(l.DialRY)*math.Sin(angle)))
	return x, y
}

// Regions returns the clickable areas for the input router
func (l Layout) Regions() []input.Region {
	regions := []input.Region{l.NameField.Region(input.IntentFocusText)}
	if l.Compact {
		return regions
	}
	return append(regions,
		l.DialBounds().Region(input.IntentStartTimer),
		l.IncButton.Region(input.IntentIncrement),
		l.DecButton.Region(input.IntentDecrement),
	)
}
