package canvas

import (
	"fmt"
	"math"
)

// Surface is a drawing target in grid-local units. The camera transform is
// applied by the surface's owner, not by the renderer.
type Surface interface {
	FillRect(r Rect, c Color, alpha float64)
	Line(from, to Vec2, width float64, c Color, alpha float64)
}

// LineStyle describes the gridline overlay stroke.
type LineStyle struct {
	Width float64
	Color Color
}

// DefaultGridLine is a thin mid grey.
var DefaultGridLine = LineStyle{Width: 0.5, Color: RGB(0x88, 0x88, 0x88)}

// Renderer draws the grid: a single background fill for the whole canvas,
// the painted cells layered on top, and the gridline overlay.
type Renderer struct {
	grid    *Grid
	square  Size
	line    LineStyle
	version uint64
}

// NewRenderer creates a renderer for grid with cells of the given size.
func NewRenderer(grid *Grid, square Size, line LineStyle) (*Renderer, error) {
	if square.W <= 0 || square.H <= 0 {
		return nil, fmt.Errorf("%w: square %dx%d", ErrBadSize, square.W, square.H)
	}
	if line.Width <= 0 {
		line = DefaultGridLine
	}
	return &Renderer{grid: grid, square: square, line: line}, nil
}

// Grid returns the underlying cell buffer.
func (r *Renderer) Grid() *Grid { return r.grid }

// Square returns the cell size in grid-local units.
func (r *Renderer) Square() Size { return r.square }

// Version increases every time a cell is painted. Surfaces that cache the
// cell layer re-record it when the version changes.
func (r *Renderer) Version() uint64 { return r.version }

// Bounds returns the whole canvas in grid-local units.
func (r *Renderer) Bounds() Rect {
	s := r.grid.Size()
	return Rect{Max: Vec2{X: float64(s.W * r.square.W), Y: float64(s.H * r.square.H)}}
}

// PaintCell sets cell (x, y) to c. The previous color is not consulted; the
// newest paint always wins. Cells outside the grid are rejected with
// ErrOutOfBounds and nothing is drawn.
func (r *Renderer) PaintCell(x, y int, c Color) error {
	if err := r.grid.Set(Cell{X: x, Y: y}, c); err != nil {
		return err
	}
	r.version++
	return nil
}

// PaintKey paints the cell named by a position key ("100x200").
func (r *Renderer) PaintKey(key string, c Color) error {
	cell, err := ParseKey(key)
	if err != nil {
		return err
	}
	return r.PaintCell(cell.X, cell.Y, c)
}

// Redraw draws everything inside visible: background, cells, then the
// gridline overlay at the given opacity.
func (r *Renderer) Redraw(s Surface, visible Rect, overlayAlpha float64) {
	r.DrawBackground(s, visible)
	r.DrawCells(s, visible)
	r.DrawGridLines(s, visible, overlayAlpha)
}

// DrawBackground fills the visible part of the canvas with the background.
func (r *Renderer) DrawBackground(s Surface, visible Rect) {
	area := r.Bounds().Intersect(visible)
	if area.Empty() {
		return
	}
	s.FillRect(area, r.grid.Background(), 1)
}

// DrawCells draws every painted cell that overlaps visible.
func (r *Renderer) DrawCells(s Surface, visible Rect) {
	r.grid.Each(func(c Cell, col Color) {
		rect := CellRect(c, r.square)
		if rect.Overlaps(visible) {
			s.FillRect(rect, col, 1)
		}
	})
}

// DrawGridLines draws the lattice at every cell boundary inside visible.
// Nothing is drawn when alpha is zero.
func (r *Renderer) DrawGridLines(s Surface, visible Rect, alpha float64) {
	if alpha <= 0 {
		return
	}
	bounds := r.Bounds()
	area := bounds.Intersect(visible)
	if area.Empty() {
		return
	}
	size := r.grid.Size()
	sx, sy := float64(r.square.W), float64(r.square.H)

	// Vertical lines span the visible rows, horizontal ones the visible columns.
	i0, i1 := latticeRange(area.Min.X, area.Max.X, sx, size.W)
	for i := i0; i <= i1; i++ {
		x := float64(i) * sx
		s.Line(Vec2{X: x, Y: area.Min.Y}, Vec2{X: x, Y: area.Max.Y}, r.line.Width, r.line.Color, alpha)
	}
	j0, j1 := latticeRange(area.Min.Y, area.Max.Y, sy, size.H)
	for j := j0; j <= j1; j++ {
		y := float64(j) * sy
		s.Line(Vec2{X: area.Min.X, Y: y}, Vec2{X: area.Max.X, Y: y}, r.line.Width, r.line.Color, alpha)
	}
}

// latticeRange returns the first and last boundary index in [lo, hi],
// clamped to [0, n].
func latticeRange(lo, hi, step float64, n int) (int, int) {
	first := int(math.Ceil(lo / step))
	last := int(math.Floor(hi / step))
	if first < 0 {
		first = 0
	}
	if last > n {
		last = n
	}
	return first, last
}
