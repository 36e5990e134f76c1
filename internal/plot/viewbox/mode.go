package viewbox

import (
	"fmt"
	"strings"
)

// Mode is the mouse interaction mode of a ViewBox.
// Exactly one mode is active at a time.
type Mode uint8

const (
	// ModePan: the left button pans the view and the right button
	// scales.
	ModePan Mode = iota

	// ModeCursor: the left button drives the cursor readout line and
	// constrained zoom gestures; other buttons pan the x axis.
	ModeCursor

	// ModeRect: the left button draws a rectangle that updates the
	// visible region. Defined but not currently offered by the menu;
	// re-enabling it is a product decision.
	ModeRect
)

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case ModePan:
		return "pan"
	case ModeCursor:
		return "cursor"
	case ModeRect:
		return "rect"
	default:
		return "unknown"
	}
}

// IsValid reports whether m is one of the three defined modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModePan, ModeCursor, ModeRect:
		return true
	default:
		return false
	}
}

// ParseMode maps the legacy string names to modes, case-insensitively.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "pan":
		return ModePan, nil
	case "cursor":
		return ModeCursor, nil
	case "rect":
		return ModeRect, nil
	default:
		return ModePan, fmt.Errorf("%w: %q (options are \"pan\", \"cursor\" and \"rect\")", ErrUnknownModeName, name)
	}
}
