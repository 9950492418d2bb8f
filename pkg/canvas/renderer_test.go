package canvas

import (
	"errors"
	"testing"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	grid, err := NewGrid(Size{W: 20, H: 20}, RGB(0xff, 0xff, 0xff))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	r, err := NewRenderer(grid, Size{W: 3, H: 3}, DefaultGridLine)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}

func TestPaintCellLastWriteWins(t *testing.T) {
	r := newTestRenderer(t)
	red := MustParseColor("e50000")
	blue := MustParseColor("0000ea")

	if err := r.PaintCell(4, 5, red); err != nil {
		t.Fatalf("PaintCell failed: %v", err)
	}
	if err := r.PaintCell(4, 5, blue); err != nil {
		t.Fatalf("PaintCell failed: %v", err)
	}
	if got, _ := r.Grid().At(Cell{X: 4, Y: 5}); got != blue {
		t.Fatalf("cell color = %v, want %v", got, blue)
	}
	if r.Version() != 2 {
		t.Fatalf("Version = %d, want 2", r.Version())
	}
	if got, _ := r.Grid().At(Cell{X: 0, Y: 0}); got != r.Grid().Background() {
		t.Fatalf("unpainted cell = %v, want background", got)
	}
}

func TestPaintCellRejectsOutOfBounds(t *testing.T) {
	r := newTestRenderer(t)
	red := MustParseColor("e50000")

	for _, c := range []Cell{{-1, 0}, {0, -1}, {20, 0}, {0, 20}, {-100, 300}} {
		err := r.PaintCell(c.X, c.Y, red)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("PaintCell(%v) err = %v, want ErrOutOfBounds", c, err)
		}
	}
	if r.Grid().Painted() != 0 || r.Version() != 0 {
		t.Fatalf("rejected paints changed the grid: painted=%d version=%d", r.Grid().Painted(), r.Version())
	}
}

func TestPaintKey(t *testing.T) {
	r := newTestRenderer(t)
	red := MustParseColor("e50000")

	if err := r.PaintKey("7x3", red); err != nil {
		t.Fatalf("PaintKey failed: %v", err)
	}
	if got, _ := r.Grid().At(Cell{X: 7, Y: 3}); got != red {
		t.Fatalf("cell 7x3 = %v", got)
	}

	for _, key := range []string{"", "7", "7x", "x3", "7x3x1", "ax3", "7,3", "1.5x2"} {
		if err := r.PaintKey(key, red); !errors.Is(err, ErrBadPosition) {
			t.Fatalf("PaintKey(%q) err = %v, want ErrBadPosition", key, err)
		}
	}
	if err := r.PaintKey("21x3", red); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("PaintKey(21x3) err = %v, want ErrOutOfBounds", err)
	}
}

func TestRedrawLayers(t *testing.T) {
	r := newTestRenderer(t)
	red := MustParseColor("e50000")
	if err := r.PaintCell(2, 1, red); err != nil {
		t.Fatalf("PaintCell failed: %v", err)
	}

	var s recordSurface
	r.Redraw(&s, Rect{Min: Pt(-100, -100), Max: Pt(100, 100)}, 1)

	if len(s.fills) != 2 {
		t.Fatalf("got %d fills, want background + 1 cell", len(s.fills))
	}
	bg := s.fills[0]
	if bg.rect != (Rect{Max: Pt(60, 60)}) || bg.color != r.Grid().Background() {
		t.Fatalf("background fill = %+v", bg)
	}
	cell := s.fills[1]
	if cell.rect != (Rect{Min: Pt(6, 3), Max: Pt(9, 6)}) || cell.color != red {
		t.Fatalf("cell fill = %+v", cell)
	}

	// 21 vertical + 21 horizontal boundaries for a 20x20 grid.
	if len(s.lines) != 42 {
		t.Fatalf("got %d gridlines, want 42", len(s.lines))
	}
	for _, l := range s.lines {
		if l.alpha != 1 || l.width != DefaultGridLine.Width || l.color != DefaultGridLine.Color {
			t.Fatalf("unexpected gridline style %+v", l)
		}
	}
}

func TestGridLinesHiddenAtZeroAlpha(t *testing.T) {
	r := newTestRenderer(t)
	var s recordSurface
	r.DrawGridLines(&s, r.Bounds(), 0)
	if len(s.lines) != 0 {
		t.Fatalf("drew %d gridlines with overlay hidden", len(s.lines))
	}
}

func TestRedrawCullsToVisible(t *testing.T) {
	r := newTestRenderer(t)
	red := MustParseColor("e50000")
	_ = r.PaintCell(0, 0, red)
	_ = r.PaintCell(19, 19, red)

	var s recordSurface
	visible := Rect{Min: Pt(1, 1), Max: Pt(7, 7)} // columns/rows 0..2
	r.Redraw(&s, visible, 0.5)

	if len(s.fills) != 2 {
		t.Fatalf("got %d fills, want background + cell 0x0 only", len(s.fills))
	}
	if s.fills[0].rect != visible {
		t.Fatalf("background not clipped to visible: %+v", s.fills[0].rect)
	}
	// Boundaries at 3 and 6 on each axis.
	if len(s.lines) != 4 {
		t.Fatalf("got %d gridlines, want 4", len(s.lines))
	}
	for _, l := range s.lines {
		if l.alpha != 0.5 {
			t.Fatalf("gridline alpha = %v, want 0.5", l.alpha)
		}
	}
}

func TestRedrawOffGrid(t *testing.T) {
	r := newTestRenderer(t)
	var s recordSurface
	r.Redraw(&s, Rect{Min: Pt(100, 100), Max: Pt(200, 200)}, 1)
	if len(s.fills) != 0 || len(s.lines) != 0 {
		t.Fatalf("drew %d fills and %d lines for an off-grid view", len(s.fills), len(s.lines))
	}
}

func TestNewGridRejectsBadSize(t *testing.T) {
	if _, err := NewGrid(Size{W: 0, H: 10}, Color{}); !errors.Is(err, ErrBadSize) {
		t.Fatalf("NewGrid(0x10) err = %v", err)
	}
	grid, _ := NewGrid(Size{W: 1, H: 1}, Color{})
	if _, err := NewRenderer(grid, Size{W: 3, H: -1}, DefaultGridLine); !errors.Is(err, ErrBadSize) {
		t.Fatalf("NewRenderer(3x-1) err = %v", err)
	}
}
