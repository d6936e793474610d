package input

// Region is a clickable screen rectangle bound to an intent
type Region struct {
	X, Y, W, H int
	Intent     IntentType
}

// Contains reports whether cell (x, y) falls inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// HitTest returns the intent of the last region containing (x, y).
// Later regions win so overlays can be appended on top.
func HitTest(regions []Region, x, y int) IntentType {
	for i := len(regions) - 1; i >= 0; i-- {
		if regions[i].Contains(x, y) {
			return regions[i].Intent
		}
	}
	return IntentNone
}
