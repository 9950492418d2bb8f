package canvas

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Submitter receives locally painted pixels. Submission is fire-and-forget:
// a failed submission is logged and the local paint stays.
// Implementations are called on the UI goroutine and must not block.
type Submitter interface {
	SubmitPixel(ctx context.Context, px Pixel) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, px Pixel) error

func (f SubmitterFunc) SubmitPixel(ctx context.Context, px Pixel) error {
	return f(ctx, px)
}

// Config describes a canvas.
type Config struct {
	GridSize   Size
	SquareSize Size
	ZoomLevel  float64
	Background Color

	// Backdrop is the screen color around the grid.
	Backdrop Color
	GridLine LineStyle

	// Palette entries as hex strings. Empty means DefaultPalette.
	Palette []string
}

// DefaultConfig returns a 1000x1000 grid of 3x3 squares.
func DefaultConfig() Config {
	return Config{
		GridSize:   Size{W: 1000, H: 1000},
		SquareSize: Size{W: 3, H: 3},
		ZoomLevel:  DefaultZoomLevel,
		Background: RGB(0xff, 0xff, 0xff),
		Backdrop:   RGB(0xee, 0xee, 0xee),
		GridLine:   DefaultGridLine,
	}
}

// Place is the long-lived canvas context: it owns the grid renderer, the
// camera and its controller, the palette and the interaction state machine,
// and connects them to the outside world.
//
// Place is not safe for concurrent use; drive it from the UI goroutine.
type Place struct {
	cfg      Config
	renderer *Renderer
	camera   *Camera
	view     *ViewController
	palette  *Palette
	input    *Interaction

	submit Submitter
	ctx    context.Context
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Place.
type Option func(*Place)

// WithSubmitter sets the sink for local paints.
func WithSubmitter(s Submitter) Option {
	return func(p *Place) { p.submit = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Place) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClock replaces time.Now for animations and pixel timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Place) {
		if now != nil {
			p.now = now
		}
	}
}

// WithContext sets the context passed to the Submitter.
func WithContext(ctx context.Context) Option {
	return func(p *Place) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// New builds a canvas for a screen of width x height pixels.
func New(width, height int, cfg Config, opts ...Option) (*Place, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: screen %dx%d", ErrBadSize, width, height)
	}
	grid, err := NewGrid(cfg.GridSize, cfg.Background)
	if err != nil {
		return nil, err
	}
	renderer, err := NewRenderer(grid, cfg.SquareSize, cfg.GridLine)
	if err != nil {
		return nil, err
	}
	palette, err := NewPalette(cfg.Palette)
	if err != nil {
		return nil, err
	}

	p := &Place{
		cfg:      cfg,
		renderer: renderer,
		palette:  palette,
		ctx:      context.Background(),
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.camera = NewCamera(width, height, cfg.GridSize, cfg.SquareSize)
	p.view = NewViewController(p.camera, cfg.ZoomLevel, p.now)
	p.input = NewInteraction(p.view, p.palette, p)
	return p, nil
}

func (p *Place) Renderer() *Renderer       { return p.renderer }
func (p *Place) Camera() *Camera           { return p.camera }
func (p *Place) View() *ViewController     { return p.view }
func (p *Place) Palette() *Palette         { return p.palette }
func (p *Place) Interaction() *Interaction { return p.input }
func (p *Place) Config() Config            { return p.cfg }
func (p *Place) State() ViewState          { return p.view.State() }

// CellAt returns the cell under a screen point using the live camera.
func (p *Place) CellAt(screen Vec2) Cell {
	return ScreenToCell(screen, p.view.State(), p.renderer.Square())
}

// PaintAt paints the cell under a screen point and submits it. It implements
// Painter for the interaction state machine.
func (p *Place) PaintAt(screen Vec2, c Color) error {
	cell := p.CellAt(screen)
	if err := p.renderer.PaintCell(cell.X, cell.Y, c); err != nil {
		p.logger.Debug("paint rejected", "cell", cell.Key(), "err", err)
		return err
	}
	px := Pixel{Cell: cell, Color: c, Timestamp: p.now()}
	p.logger.Debug("painted", "cell", cell.Key(), "color", c.Hex())
	if p.submit != nil {
		if err := p.submit.SubmitPixel(p.ctx, px); err != nil {
			p.logger.Warn("submit failed", "cell", cell.Key(), "err", err)
		}
	}
	return nil
}

// OnRemotePixel applies a pixel painted elsewhere. Invalid cells are
// rejected and the error returned; nothing is submitted.
func (p *Place) OnRemotePixel(x, y int, c Color) error {
	if err := p.renderer.PaintCell(x, y, c); err != nil {
		p.logger.Debug("remote pixel rejected", "x", x, "y", y, "err", err)
		return err
	}
	return nil
}

// OnRemoteKey is OnRemotePixel for the "<x>x<y>" / hex string encoding.
func (p *Place) OnRemoteKey(key, color string) error {
	c, err := ParseColor(color)
	if err != nil {
		p.logger.Debug("remote pixel rejected", "key", key, "err", err)
		return err
	}
	cell, err := ParseKey(key)
	if err != nil {
		p.logger.Debug("remote pixel rejected", "key", key, "err", err)
		return err
	}
	return p.OnRemotePixel(cell.X, cell.Y, c)
}

// PointerDown forwards a press. See Interaction.Down.
func (p *Place) PointerDown(pos Vec2) bool {
	return p.input.Down(pos)
}

// PointerMove forwards a move. See Interaction.Move.
func (p *Place) PointerMove(pos Vec2) {
	p.input.Move(pos)
}

// PointerUp forwards a release. See Interaction.Up.
func (p *Place) PointerUp(pos Vec2) Outcome {
	out := p.input.Up(pos)
	if out != OutcomeIgnored {
		p.logger.Debug("gesture", "outcome", out.String(), "x", pos.X, "y", pos.Y, "zoomed", p.view.Zoomed())
	}
	return out
}

// SelectColor toggles palette entry i.
func (p *Place) SelectColor(i int) {
	p.palette.Select(i)
}

// ZoomIn zooms in on the screen center.
func (p *Place) ZoomIn() { p.view.ZoomIn() }

// ZoomOut zooms out to the screen center.
func (p *Place) ZoomOut() { p.view.ZoomOut() }

// Resize re-centers the camera for a new screen size.
func (p *Place) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == p.camera.ScreenWidth && height == p.camera.ScreenHeight {
		return
	}
	p.view.Resize(width, height)
}

// LookAt pans so the middle of cell c sits at the screen center.
func (p *Place) LookAt(c Cell) {
	sq := p.renderer.Square()
	p.view.PanTo(Vec2{
		X: -(float64(c.X) + 0.5) * float64(sq.W),
		Y: -(float64(c.Y) + 0.5) * float64(sq.H),
	})
}

// Finish completes any zoom transition immediately.
func (p *Place) Finish() {
	p.view.Finish()
}

// Tick advances animations; it reports whether another frame is needed.
func (p *Place) Tick() bool {
	return p.view.Tick()
}

// Draw renders the visible part of the canvas onto s in grid-local units.
func (p *Place) Draw(s Surface) {
	p.renderer.Redraw(s, p.camera.VisibleBounds(), p.camera.OverlayAlpha)
}
