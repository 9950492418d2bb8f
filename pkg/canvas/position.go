package canvas

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key returns the cell's position key, "<x>x<y>" (e.g. "100x200").
func (c Cell) Key() string {
	return strconv.Itoa(c.X) + "x" + strconv.Itoa(c.Y)
}

func (c Cell) String() string {
	return c.Key()
}

// ParseKey parses a position key produced by Cell.Key. Both halves must be
// base 10 integers; anything else is ErrBadPosition.
func ParseKey(key string) (Cell, error) {
	xs, ys, ok := strings.Cut(key, "x")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadPosition, key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadPosition, key)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadPosition, key)
	}
	return Cell{X: x, Y: y}, nil
}

// Pixel is one painted cell as handed to a Submitter.
type Pixel struct {
	Cell      Cell
	Color     Color
	Timestamp time.Time

	// UID identifies the painter. Empty for local paints.
	UID string
}
