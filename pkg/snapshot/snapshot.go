// Package snapshot renders a canvas view to an image without a window.
package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
)

// Surface draws onto a gg context in whatever coordinate space the context's
// current matrix sets up. The first drawing error is kept and reported by Err.
type Surface struct {
	dc  *gg.Context
	err error
}

// NewSurface wraps dc.
func NewSurface(dc *gg.Context) *Surface {
	return &Surface{dc: dc}
}

// FillRect implements canvas.Surface.
func (s *Surface) FillRect(r canvas.Rect, c canvas.Color, alpha float64) {
	s.dc.SetColor(c.NRGBA(alpha))
	s.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	s.keep(s.dc.Fill())
}

// Line implements canvas.Surface.
func (s *Surface) Line(from, to canvas.Vec2, width float64, c canvas.Color, alpha float64) {
	s.dc.SetColor(c.NRGBA(alpha))
	s.dc.SetLineWidth(width)
	s.dc.MoveTo(from.X, from.Y)
	s.dc.LineTo(to.X, to.Y)
	s.keep(s.dc.Stroke())
}

// Err returns the first error seen while drawing.
func (s *Surface) Err() error {
	return s.err
}

func (s *Surface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Render draws the current view of p into a new context the size of its
// screen: the backdrop, then the grid under the live camera transform.
// The caller owns the returned context.
func Render(p *canvas.Place) (*gg.Context, error) {
	cam := p.Camera()
	dc := gg.NewContext(cam.ScreenWidth, cam.ScreenHeight)
	dc.ClearWithColor(gg.FromColor(p.Config().Backdrop))

	tr := p.State().Transform()
	dc.Push()
	dc.Translate(tr.Translate.X, tr.Translate.Y)
	dc.Scale(tr.Scale, tr.Scale)
	s := NewSurface(dc)
	p.Draw(s)
	dc.Pop()

	if err := s.Err(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("snapshot: draw: %w", err)
	}
	return dc, nil
}

// WritePNG renders p and encodes the result as PNG to w.
func WritePNG(p *canvas.Place, w io.Writer) error {
	dc, err := Render(p)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// SavePNG renders p into the PNG file at path.
func SavePNG(p *canvas.Place, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := WritePNG(p, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
