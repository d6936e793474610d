package game

import (
	"github.com/lixenwraith/twentyfive/constant"
)

// FillColor is the colour band of the word gauge
type FillColor uint8

const (
	FillHidden FillColor = iota
	FillRed
	FillOrange
	FillYellow
	FillWhite
)

var fillColorNames = [...]string{
	FillHidden: "none",
	FillRed:    "red",
	FillOrange: "orange",
	FillYellow: "yellow",
	FillWhite:  "white",
}

func (c FillColor) String() string {
	if int(c) < len(fillColorNames) {
		return fillColorNames[c]
	}
	return "unknown"
}

// Hex returns the 24-bit RGB value of the band, 0 for FillHidden
func (c FillColor) Hex() int32 {
	switch c {
	case FillRed:
		return constant.ColorRed
	case FillOrange:
		return constant.ColorOrange
	case FillYellow:
		return constant.ColorYellow
	case FillWhite:
		return constant.ColorWhite
	default:
		return 0
	}
}

// FillProjection is the derived presentation of the word gauge
type FillProjection struct {
	Fraction float64
	Color    FillColor
}

// ProjectFill maps a count in [0, MaxWordCount] to its gauge projection.
// Zero is a hidden fill, not a zero-height coloured bar.
func ProjectFill(count int) FillProjection {
	if count == 0 {
		return FillProjection{Fraction: 0, Color: FillHidden}
	}

	p := FillProjection{Fraction: float64(count) / float64(constant.MaxWordCount)}
	switch {
	case count <= constant.FillRedMax:
		p.Color = FillRed
	case count <= constant.FillOrangeMax:
		p.Color = FillOrange
	case count <= constant.FillYellowMax:
		p.Color = FillYellow
	default:
		p.Color = FillWhite
	}
	return p
}

// Hidden reports whether the fill is not drawn at all
func (p FillProjection) Hidden() bool {
	return p.Color == FillHidden
}

// Height is the fill height on the gauge surface
func (p FillProjection) Height() float64 {
	if p.Hidden() {
		return 0
	}
	return constant.FillSurfaceHeight * p.Fraction
}

// Y is the top edge of the fill on the gauge surface, growing from the bottom
func (p FillProjection) Y() float64 {
	return constant.FillSurfaceHeight - p.Height()
}
