package input

// Focus is the widget receiving keyboard input
type Focus uint8

const (
	// FocusNone routes keys to the game controls
	FocusNone Focus = iota
	// FocusText routes keys to the team name field; arrows are suppressed
	FocusText
)

func (f Focus) String() string {
	if f == FocusText {
		return "text"
	}
	return "none"
}
