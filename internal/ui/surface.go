package ui

import (
	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
)

// opsSurface records canvas drawing into a Gio op list. Coordinates are
// grid-local; the caller pushes the camera transform.
type opsSurface struct {
	ops *op.Ops
}

func (s opsSurface) FillRect(r canvas.Rect, c canvas.Color, alpha float64) {
	var p clip.Path
	p.Begin(s.ops)
	p.MoveTo(pt(r.Min))
	p.LineTo(f32.Pt(float32(r.Max.X), float32(r.Min.Y)))
	p.LineTo(pt(r.Max))
	p.LineTo(f32.Pt(float32(r.Min.X), float32(r.Max.Y)))
	p.Close()
	paint.FillShape(s.ops, c.NRGBA(alpha), clip.Outline{Path: p.End()}.Op())
}

func (s opsSurface) Line(from, to canvas.Vec2, width float64, c canvas.Color, alpha float64) {
	var p clip.Path
	p.Begin(s.ops)
	p.MoveTo(pt(from))
	p.LineTo(pt(to))
	paint.FillShape(s.ops, c.NRGBA(alpha),
		clip.Stroke{
			Path:  p.End(),
			Width: float32(width),
		}.Op())
}

func pt(v canvas.Vec2) f32.Point {
	return f32.Pt(float32(v.X), float32(v.Y))
}

// cellLayer caches the painted cells as a macro and re-records it only when
// the renderer's version moves.
type cellLayer struct {
	ops     op.Ops
	call    op.CallOp
	version uint64
	valid   bool
}

func (l *cellLayer) Add(ops *op.Ops, r *canvas.Renderer) {
	if !l.valid || l.version != r.Version() {
		l.ops.Reset()
		macro := op.Record(&l.ops)
		r.DrawCells(opsSurface{ops: &l.ops}, r.Bounds())
		l.call = macro.Stop()
		l.version = r.Version()
		l.valid = true
	}
	l.call.Add(ops)
}
