package canvas

import "fmt"

// Grid is the bounded cell buffer. Cells that were never painted read as the
// background color; only painted cells are stored.
type Grid struct {
	size       Size
	background Color
	cells      map[Cell]Color
}

// NewGrid creates a W x H grid filled with background.
func NewGrid(size Size, background Color) (*Grid, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrBadSize, size.W, size.H)
	}
	return &Grid{
		size:       size,
		background: background,
		cells:      make(map[Cell]Color),
	}, nil
}

// Size returns the grid extent in cells.
func (g *Grid) Size() Size { return g.size }

// Background returns the color of unpainted cells.
func (g *Grid) Background() Color { return g.background }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.size.W && c.Y < g.size.H
}

// At returns the current color of c. ok is false outside the grid.
func (g *Grid) At(c Cell) (col Color, ok bool) {
	if !g.Contains(c) {
		return Color{}, false
	}
	if col, painted := g.cells[c]; painted {
		return col, true
	}
	return g.background, true
}

// Set overwrites the color of c.
func (g *Grid) Set(c Cell, col Color) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, c.Key(), g.size.W, g.size.H)
	}
	g.cells[c] = col
	return nil
}

// Painted returns the number of cells that have been painted at least once.
func (g *Grid) Painted() int {
	return len(g.cells)
}

// Each calls fn for every painted cell, in no particular order.
func (g *Grid) Each(fn func(Cell, Color)) {
	for c, col := range g.cells {
		fn(c, col)
	}
}
