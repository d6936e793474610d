package render

import (
	"github.com/lixenwraith/twentyfive/game"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Layout Layout

	// Countdown
	Timer   game.RollFrame
	Dial    game.Dial
	Active  bool
	Expired bool

	// Word counter
	Count  game.RollFrame
	Fill   game.FillProjection
	IncLit bool
	DecLit bool

	// Team name field
	TeamName string
	Editing  bool

	// Audio state for the status bar
	AudioOn bool
}
