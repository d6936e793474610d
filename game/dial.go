package game

import (
	"github.com/lixenwraith/twentyfive/constant"
)

// SegmentState is the visual state of one dial marker
type SegmentState uint8

const (
	SegmentPending SegmentState = iota
	SegmentComplete
)

// SegmentStyle is the fill and opacity a renderer applies to a segment
type SegmentStyle struct {
	Fill    int32
	Opacity float64
}

// Style projects the state to its presentation
func (s SegmentState) Style() SegmentStyle {
	if s == SegmentComplete {
		return SegmentStyle{Fill: constant.ColorWhite, Opacity: constant.SegmentCompleteOpacity}
	}
	return SegmentStyle{Fill: constant.ColorWhite, Opacity: constant.SegmentPendingOpacity}
}

// Dial holds the 45 segments, addressed 1..DialSegments
type Dial [constant.DialSegments]SegmentState

// Reset marks every segment pending
func (d *Dial) Reset() {
	for i := range d {
		d[i] = SegmentPending
	}
}

// Complete marks segment id elapsed; ids outside 1..DialSegments are ignored
func (d *Dial) Complete(id int) {
	if id < 1 || id > len(d) {
		return
	}
	d[id-1] = SegmentComplete
}

// Segment returns the state of segment id, pending for unknown ids
func (d Dial) Segment(id int) SegmentState {
	if id < 1 || id > len(d) {
		return SegmentPending
	}
	return d[id-1]
}

// Completed counts elapsed segments
func (d Dial) Completed() int {
	n := 0
	for _, s := range d {
		if s == SegmentComplete {
			n++
		}
	}
	return n
}
