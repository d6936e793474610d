package game

import (
	"time"

	"github.com/lixenwraith/twentyfive/constant"
)

// Flash is a short-lived highlight, used for counter button feedback
type Flash struct {
	until time.Time
}

// Trigger lights the flash for ButtonFlashDuration from now
func (f *Flash) Trigger(now time.Time) {
	f.until = now.Add(constant.ButtonFlashDuration)
}

// Lit reports whether the flash is visible at now
func (f Flash) Lit(now time.Time) bool {
	return now.Before(f.until)
}
