package canvas

import "math"

// Vec2 is a point or offset in screen or grid-local space.
type Vec2 struct {
	X, Y float64
}

// Pt is shorthand for Vec2{X: x, Y: y}.
func Pt(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Div divides both components by f. Division by zero leaves v unchanged.
func (v Vec2) Div(f float64) Vec2 {
	if f == 0 {
		return v
	}
	return Vec2{X: v.X / f, Y: v.Y / f}
}

// Size is an integer width/height pair (grid extent, square size, viewport).
type Size struct {
	W, H int
}

// Cell identifies one square of the grid.
type Cell struct {
	X, Y int
}

// ViewState is a snapshot of the camera: where the scaled container sits on
// screen, where the grid surface sits inside it, and the current scale.
type ViewState struct {
	// Origin is the container position in screen pixels (the viewport center).
	Origin Vec2

	// PanOffset is the grid surface position inside the container, in grid
	// units (before scaling).
	PanOffset Vec2

	// Scale is the live container scale.
	Scale float64

	// Zoomed reports the zoom target, which may differ from Scale while a
	// transition is animating.
	Zoomed bool
}

// Transform returns the screen transform described by v.
func (v ViewState) Transform() Transform {
	scale := v.Scale
	if scale == 0 {
		scale = 1
	}
	return Transform{
		Translate: v.Origin.Add(v.PanOffset.Mul(scale)),
		Scale:     scale,
	}
}

// Transform represents a uniform scale followed by a translation.
// Screen = Local*Scale + Translate.
type Transform struct {
	Translate Vec2
	Scale     float64
}

// Apply maps a grid-local position to screen space.
func (t Transform) Apply(local Vec2) Vec2 {
	return local.Mul(t.Scale).Add(t.Translate)
}

// ApplyInverse maps a screen position to grid-local space.
func (t Transform) ApplyInverse(screen Vec2) Vec2 {
	return screen.Sub(t.Translate).Div(t.Scale)
}

// ScreenToCell returns the cell under screen point p. The result is not
// clamped: cells outside the grid, including negative ones, are returned as-is
// and must be rejected by whoever mutates the grid.
func ScreenToCell(p Vec2, v ViewState, square Size) Cell {
	local := v.Transform().ApplyInverse(p)
	return Cell{
		X: int(math.Floor(local.X / float64(square.W))),
		Y: int(math.Floor(local.Y / float64(square.H))),
	}
}

// CellToScreen returns the screen position of the top-left corner of c.
func CellToScreen(c Cell, v ViewState, square Size) Vec2 {
	local := Vec2{X: float64(c.X * square.W), Y: float64(c.Y * square.H)}
	return v.Transform().Apply(local)
}

// CellRect returns the grid-local rectangle covered by c.
func CellRect(c Cell, square Size) Rect {
	tl := Vec2{X: float64(c.X * square.W), Y: float64(c.Y * square.H)}
	return Rect{Min: tl, Max: tl.Add(Vec2{X: float64(square.W), Y: float64(square.H)})}
}

// Rect is an axis-aligned rectangle, Max exclusive.
type Rect struct {
	Min, Max Vec2
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Overlaps reports whether r and s share any area.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Intersect returns the largest rectangle contained in both r and s.
func (r Rect) Intersect(s Rect) Rect {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if r.Empty() {
		return Rect{}
	}
	return r
}
