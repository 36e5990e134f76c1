package viewbox

import "errors"

var (
	// ErrInvalidMode is returned when setting a mode that is not one
	// of ModePan, ModeCursor or ModeRect.
	ErrInvalidMode = errors.New("viewbox: mode must be ModePan, ModeCursor or ModeRect")

	// ErrUnknownModeName is returned by the legacy string mode setter
	// for unrecognized names.
	ErrUnknownModeName = errors.New("viewbox: unknown left button action")
)
