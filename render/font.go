package render

import (
	"github.com/gdamore/tcell/v2"
)

// Big digit geometry, in cells
const (
	DigitWidth   = 3
	DigitHeight  = 5
	DigitSpacing = 1
	PairWidth    = 2*DigitWidth + DigitSpacing
)

var digitGlyphs = [10][DigitHeight]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

// pairRow returns row r of a right-aligned two-digit number
func pairRow(value, r int) string {
	tens, ones := value/10%10, value%10
	left := "   "
	if value >= 10 {
		left = digitGlyphs[tens][r]
	}
	return left + " " + digitGlyphs[ones][r]
}

// DrawPair draws a two-digit number with its top-left at (x, y), clipped to
// rows [clipTop, clipBottom)
func DrawPair(screen tcell.Screen, x, y, value int, clipTop, clipBottom int, style tcell.Style) {
	for r := 0; r < DigitHeight; r++ {
		row := y + r
		if row < clipTop || row >= clipBottom {
			continue
		}
		col := x
		for _, ch := range pairRow(value, r) {
			if ch != ' ' {
				screen.SetContent(col, row, ch, nil, style)
			}
			col++
		}
	}
}
