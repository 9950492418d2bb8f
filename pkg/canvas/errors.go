package canvas

import "errors"

var (
	// ErrOutOfBounds is returned when a cell lies outside the grid.
	ErrOutOfBounds = errors.New("cell outside grid")

	// ErrBadPosition is returned for position keys that are not "<x>x<y>".
	ErrBadPosition = errors.New("malformed position key")

	// ErrBadColor is returned for color strings that are not hex RGB.
	ErrBadColor = errors.New("malformed color")

	// ErrBadSize is returned for non-positive grid, square or screen sizes.
	ErrBadSize = errors.New("invalid size")
)
