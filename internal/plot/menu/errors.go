package menu

import "errors"

var (
	// ErrNilView is returned when creating a controller without a
	// viewport.
	ErrNilView = errors.New("nil view")

	// ErrUnknownEntry is returned when selecting a label the menu does
	// not contain.
	ErrUnknownEntry = errors.New("unknown entry")
)
