package canvas

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(0, 100, smallConfig()); !errors.Is(err, ErrBadSize) {
		t.Fatalf("New(0x100) err = %v", err)
	}
	cfg := smallConfig()
	cfg.GridSize = Size{}
	if _, err := New(100, 100, cfg); !errors.Is(err, ErrBadSize) {
		t.Fatalf("New with empty grid err = %v", err)
	}
	cfg = smallConfig()
	cfg.Palette = []string{"ffffff", "#12"}
	if _, err := New(100, 100, cfg); !errors.Is(err, ErrBadColor) {
		t.Fatalf("New with bad palette err = %v", err)
	}
}

func TestSubmitFailureKeepsLocalPaint(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sub := &recordSubmitter{err: errors.New("connection refused")}
	p, clock := newTestPlace(t, WithSubmitter(sub), WithLogger(logger))
	p.ZoomIn()
	settle(p, clock)
	selectColor(t, p, "02be01")

	p.PointerDown(Pt(100, 100))
	if out := p.PointerUp(Pt(100, 100)); out != OutcomePaint {
		t.Fatalf("outcome = %v, want paint", out)
	}
	if got, _ := p.Renderer().Grid().At(Cell{X: 10, Y: 10}); got != MustParseColor("02be01") {
		t.Fatalf("local paint rolled back: %v", got)
	}
	if len(sub.pixels) != 1 {
		t.Fatalf("submitted %d pixels", len(sub.pixels))
	}
	if !strings.Contains(buf.String(), "submit failed") {
		t.Fatalf("submit failure not logged: %q", buf.String())
	}
}

func TestSubmitterFunc(t *testing.T) {
	var got []Pixel
	f := SubmitterFunc(func(_ context.Context, px Pixel) error {
		got = append(got, px)
		return nil
	})
	p, clock := newTestPlace(t, WithSubmitter(f))
	p.ZoomIn()
	settle(p, clock)
	p.SelectColor(0)

	if err := p.PaintAt(Pt(100, 100), MustParseColor("ffffff")); err != nil {
		t.Fatalf("PaintAt failed: %v", err)
	}
	if len(got) != 1 || got[0].Cell.Key() != "10x10" {
		t.Fatalf("submitted %+v", got)
	}
}

func TestRemotePixels(t *testing.T) {
	sub := &recordSubmitter{}
	p, _ := newTestPlace(t, WithSubmitter(sub))

	if err := p.OnRemoteKey("3x4", "#0083c7"); err != nil {
		t.Fatalf("OnRemoteKey failed: %v", err)
	}
	if got, _ := p.Renderer().Grid().At(Cell{X: 3, Y: 4}); got != MustParseColor("0083c7") {
		t.Fatalf("cell 3x4 = %v", got)
	}
	if err := p.OnRemotePixel(3, 4, MustParseColor("e59500")); err != nil {
		t.Fatalf("OnRemotePixel failed: %v", err)
	}
	if got, _ := p.Renderer().Grid().At(Cell{X: 3, Y: 4}); got != MustParseColor("e59500") {
		t.Fatalf("newest remote paint did not win: %v", got)
	}

	if err := p.OnRemoteKey("3x4", "zz"); !errors.Is(err, ErrBadColor) {
		t.Fatalf("bad color err = %v", err)
	}
	if err := p.OnRemoteKey("3;4", "fff"); !errors.Is(err, ErrBadPosition) {
		t.Fatalf("bad key err = %v", err)
	}
	if err := p.OnRemoteKey("30x4", "fff"); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("out of grid err = %v", err)
	}
	if err := p.OnRemotePixel(-1, 0, MustParseColor("fff")); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("negative cell err = %v", err)
	}

	if len(sub.pixels) != 0 {
		t.Fatalf("remote pixels were submitted back: %v", sub.pixels)
	}
	if p.Renderer().Grid().Painted() != 1 {
		t.Fatalf("painted %d cells, want 1", p.Renderer().Grid().Painted())
	}
}

func TestResize(t *testing.T) {
	p, _ := newTestPlace(t)
	p.View().PanTo(Pt(-12, -3))

	p.Resize(0, 300)
	if p.Camera().ScreenWidth != 200 {
		t.Fatalf("zero width resize applied")
	}
	p.Resize(400, 300)
	cam := p.Camera()
	if cam.ScreenWidth != 400 || cam.ScreenHeight != 300 || cam.Container != Pt(200, 150) {
		t.Fatalf("camera after resize = %+v", cam)
	}
	if cam.Position != Pt(-12, -3) {
		t.Fatalf("resize lost the pan: %v", cam.Position)
	}

	// The palette strip follows the new height.
	if p.PointerDown(Pt(10, 250)) {
		t.Fatalf("press on the resized palette strip was accepted")
	}
	if !p.PointerDown(Pt(10, 200)) {
		t.Fatalf("press above the resized strip was rejected")
	}
}

func TestDrawShowsGridLinesOnlyWhenZoomed(t *testing.T) {
	p, clock := newTestPlace(t)
	_ = p.OnRemotePixel(1, 1, MustParseColor("222222"))

	var out recordSurface
	p.Draw(&out)
	if len(out.fills) != 2 {
		t.Fatalf("got %d fills, want background + 1 cell", len(out.fills))
	}
	if len(out.lines) != 0 {
		t.Fatalf("zoomed out view drew %d gridlines", len(out.lines))
	}

	p.ZoomIn()
	settle(p, clock)
	var in recordSurface
	p.Draw(&in)
	if len(in.lines) == 0 {
		t.Fatalf("zoomed in view drew no gridlines")
	}
	for _, l := range in.lines {
		if l.alpha != 1 {
			t.Fatalf("gridline alpha = %v, want 1", l.alpha)
		}
	}
}

func TestCellAtFollowsCamera(t *testing.T) {
	p, clock := newTestPlace(t)
	if got := p.CellAt(Pt(100, 100)); got != (Cell{X: 10, Y: 10}) {
		t.Fatalf("CellAt(center) = %v", got)
	}
	p.ZoomIn()
	settle(p, clock)
	if got := p.CellAt(Pt(118, 100)); got != (Cell{X: 11, Y: 10}) {
		t.Fatalf("zoomed CellAt = %v", got)
	}
}

func TestLookAtCentersCell(t *testing.T) {
	p, _ := newTestPlace(t)
	p.ZoomIn()
	p.Finish()
	p.LookAt(Cell{X: 3, Y: 17})

	if p.View().Animating() {
		t.Fatalf("transition still running after Finish")
	}
	if got := p.CellAt(p.Camera().Center()); got != (Cell{X: 3, Y: 17}) {
		t.Fatalf("cell at screen center = %v", got)
	}
	center := CellToScreen(Cell{X: 3, Y: 17}, p.State(), p.Renderer().Square())
	half := 1.5 * DefaultZoomLevel
	if !approxVec(center.Add(Pt(half, half)), p.Camera().Center()) {
		t.Fatalf("cell middle at %v, screen center %v", center.Add(Pt(half, half)), p.Camera().Center())
	}
}
