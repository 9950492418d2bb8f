package canvas

import (
	"math"
	"testing"
)

func TestScreenToCellDeterministic(t *testing.T) {
	v := ViewState{Origin: Pt(640, 360), PanOffset: Pt(-1500, -1500), Scale: 6}
	square := Size{W: 3, H: 3}

	for _, p := range []Vec2{{0, 0}, {640, 360}, {123.4, 987.6}, {-50, 12}} {
		a := ScreenToCell(p, v, square)
		b := ScreenToCell(p, v, square)
		if a != b {
			t.Fatalf("ScreenToCell(%v) not deterministic: %v != %v", p, a, b)
		}
	}
}

func TestScreenToCellKnownValues(t *testing.T) {
	square := Size{W: 3, H: 3}
	tests := []struct {
		name string
		p    Vec2
		v    ViewState
		want Cell
	}{
		{
			name: "zoomed out, grid centered",
			p:    Pt(100, 100),
			v:    ViewState{Origin: Pt(100, 100), PanOffset: Pt(-30, -30), Scale: 1},
			want: Cell{X: 10, Y: 10},
		},
		{
			name: "zoomed in",
			p:    Pt(100, 100),
			v:    ViewState{Origin: Pt(100, 100), PanOffset: Pt(-30, -30), Scale: 6},
			want: Cell{X: 10, Y: 10},
		},
		{
			name: "zoomed in, one square right",
			p:    Pt(118, 100),
			v:    ViewState{Origin: Pt(100, 100), PanOffset: Pt(-30, -30), Scale: 6},
			want: Cell{X: 11, Y: 10},
		},
		{
			name: "left of the grid floors to negative",
			p:    Pt(0, 0),
			v:    ViewState{Origin: Pt(100, 100), PanOffset: Pt(-30, -30), Scale: 1},
			want: Cell{X: -24, Y: -24},
		},
		{
			name: "just left of the origin is -1, not 0",
			p:    Pt(69.5, 70),
			v:    ViewState{Origin: Pt(100, 100), PanOffset: Pt(-30, -30), Scale: 1},
			want: Cell{X: -1, Y: 0},
		},
		{
			name: "zero scale treated as 1",
			p:    Pt(100, 100),
			v:    ViewState{Origin: Pt(100, 100), PanOffset: Pt(-30, -30)},
			want: Cell{X: 10, Y: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToCell(tt.p, tt.v, square)
			if got != tt.want {
				t.Fatalf("ScreenToCell(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCellToScreenRoundTrip(t *testing.T) {
	squares := []Size{{W: 3, H: 3}, {W: 4, H: 2}}
	views := []ViewState{
		{Origin: Pt(400, 300), PanOffset: Pt(-1500, -1500), Scale: 1},
		{Origin: Pt(400, 300), PanOffset: Pt(-1433.5, -1502.25), Scale: 6},
		{Origin: Pt(0, 0), PanOffset: Pt(7, -3), Scale: 2.5},
	}

	for _, square := range squares {
		for _, v := range views {
			cellW := float64(square.W) * v.Scale
			cellH := float64(square.H) * v.Scale
			for x := -20.0; x <= 820; x += 13.7 {
				for y := -20.0; y <= 620; y += 17.3 {
					p := Pt(x, y)
					corner := CellToScreen(ScreenToCell(p, v, square), v, square)
					dx, dy := p.X-corner.X, p.Y-corner.Y
					if dx < -1e-9 || dy < -1e-9 || dx >= cellW+1e-9 || dy >= cellH+1e-9 {
						t.Fatalf("square %v view %+v: %v maps back to corner %v (outside one cell)",
							square, v, p, corner)
					}
				}
			}
		}
	}
}

func TestTransformInverse(t *testing.T) {
	tr := Transform{Translate: Pt(12, -7), Scale: 4}
	p := Pt(3.25, 9.5)
	back := tr.ApplyInverse(tr.Apply(p))
	if math.Abs(back.X-p.X) > 1e-12 || math.Abs(back.Y-p.Y) > 1e-12 {
		t.Fatalf("ApplyInverse(Apply(%v)) = %v", p, back)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{Min: Pt(0, 0), Max: Pt(10, 10)}
	b := Rect{Min: Pt(5, -5), Max: Pt(20, 5)}

	got := a.Intersect(b)
	want := Rect{Min: Pt(5, 0), Max: Pt(10, 5)}
	if got != want {
		t.Fatalf("Intersect = %+v, want %+v", got, want)
	}
	if !a.Overlaps(b) {
		t.Fatalf("expected overlap")
	}

	c := Rect{Min: Pt(10, 0), Max: Pt(12, 10)}
	if a.Overlaps(c) {
		t.Fatalf("touching rects must not overlap")
	}
	if !a.Intersect(c).Empty() {
		t.Fatalf("intersection of touching rects should be empty")
	}
}
