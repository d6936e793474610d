package constant

import "time"

// FrameUpdateInterval is the render cadence (~60 FPS)
const FrameUpdateInterval = 16 * time.Millisecond

// Fill surface geometry, in surface units
const (
	// FillSurfaceHeight is the height of the gauge surface the fill is laid out on
	FillSurfaceHeight = 375.0
)

// Dial segment opacity
const (
	SegmentPendingOpacity  = 0.3
	SegmentCompleteOpacity = 1.0
)

// Fill colours
const (
	ColorRed    = 0xef4444
	ColorOrange = 0xf97316
	ColorYellow = 0xeab308
	ColorWhite  = 0xffffff
)

// Layout, in terminal cells
const (
	// DialRadiusY is the vertical radius of the segment ring
	DialRadiusY = 9

	// DialAspect widens the ring horizontally to compensate for tall cells
	DialAspect = 2.0

	// GaugeHeight is the number of rows of the word gauge
	GaugeHeight = 16

	// GaugeWidth is the number of columns of the word gauge
	GaugeWidth = 8

	// WidgetGap separates the timer widget from the counter widget
	WidgetGap = 6

	// TeamNameMaxLen caps the team name field
	TeamNameMaxLen = 24
)

// Background and chrome
const (
	ColorBackground = 0x111827
	ColorChrome     = 0x6b7280
	ColorTrack      = 0x1f2937
	ColorHighlight  = 0x3b82f6
)
