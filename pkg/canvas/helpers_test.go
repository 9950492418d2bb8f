package canvas

import (
	"context"
	"sort"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fillOp struct {
	rect  Rect
	color Color
	alpha float64
}

type lineOp struct {
	from, to Vec2
	width    float64
	color    Color
	alpha    float64
}

type recordSurface struct {
	fills []fillOp
	lines []lineOp
}

func (s *recordSurface) FillRect(r Rect, c Color, alpha float64) {
	s.fills = append(s.fills, fillOp{rect: r, color: c, alpha: alpha})
}

func (s *recordSurface) Line(from, to Vec2, width float64, c Color, alpha float64) {
	s.lines = append(s.lines, lineOp{from: from, to: to, width: width, color: c, alpha: alpha})
}

type recordSubmitter struct {
	pixels []Pixel
	err    error
}

func (r *recordSubmitter) SubmitPixel(_ context.Context, px Pixel) error {
	r.pixels = append(r.pixels, px)
	return r.err
}

type recordPainter struct {
	calls []Vec2
	err   error
}

func (r *recordPainter) PaintAt(p Vec2, _ Color) error {
	r.calls = append(r.calls, p)
	return r.err
}

// smallConfig is a 20x20 grid of 3x3 squares.
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.GridSize = Size{W: 20, H: 20}
	cfg.SquareSize = Size{W: 3, H: 3}
	return cfg
}

// newTestPlace returns a 200x200 screen over smallConfig.
func newTestPlace(t *testing.T, opts ...Option) (*Place, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	p, err := New(200, 200, smallConfig(), opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return p, clock
}

// settle runs the animator past the end of any transition.
func settle(p *Place, clock *fakeClock) {
	clock.Advance(ZoomDuration + time.Millisecond)
	p.Tick()
}

func selectColor(t *testing.T, p *Place, hex string) {
	t.Helper()
	c := MustParseColor(hex)
	if !p.Palette().SelectColor(c) {
		t.Fatalf("color %s not in palette", hex)
	}
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

func approxVec(a, b Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func paintedCells(g *Grid) []Cell {
	var cells []Cell
	g.Each(func(c Cell, _ Color) { cells = append(cells, c) })
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
