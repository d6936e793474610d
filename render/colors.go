package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twentyfive/constant"
)

// Palette
var (
	RgbBackground = HexRGB(constant.ColorBackground)
	RgbChrome     = HexRGB(constant.ColorChrome)
	RgbTrack      = HexRGB(constant.ColorTrack)
	RgbHighlight  = HexRGB(constant.ColorHighlight)
	RgbWhite      = HexRGB(constant.ColorWhite)
	RgbAlert      = HexRGB(constant.ColorRed)
)

// StyleBase is the background every renderer draws on
func StyleBase() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(RgbWhite.Tcell())
}

// OpacityOver composites a colour at opacity over the background
func OpacityOver(hex int32, opacity float64) tcell.Color {
	return RgbBackground.Blend(HexRGB(hex), opacity).Tcell()
}
