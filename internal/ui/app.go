package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
	"github.com/OpenTraceLab/OpenPlace/pkg/feed"
	"github.com/OpenTraceLab/OpenPlace/pkg/snapshot"
)

// App is the canvas window.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme *theme.Theme
	logger  *slog.Logger
	state   *AppState

	place *canvas.Place
	cells cellLayer

	swatches     []widget.Clickable
	zoomInBtn    widget.Clickable
	zoomOutBtn   widget.Clickable
	zoomInIcon   *widget.Icon
	zoomOutIcon  *widget.Icon
	showPalette  bool
	snapExplorer *explorer.Explorer

	updates chan feed.Update
	size    image.Point
	metric  unit.Metric
}

// New creates the canvas app for place on w.
func New(w *app.Window, place *canvas.Place, logger *slog.Logger) *App {
	if w == nil {
		w = new(app.Window)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &App{
		window:      w,
		gvTheme:     theme.NewTheme("", nil, true),
		logger:      logger,
		state:       NewState(),
		place:       place,
		swatches:    make([]widget.Clickable, place.Palette().Len()),
		showPalette: true,
		updates:     make(chan feed.Update, 256),
	}
	if icon, err := widget.NewIcon(icons.ActionZoomIn); err == nil {
		a.zoomInIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ActionZoomOut); err == nil {
		a.zoomOutIcon = icon
	}
	a.snapExplorer = explorer.NewExplorer(w)
	a.applyPalette()
	a.Logf("Tap to zoom, drag to pan, pick a color and tap while zoomed to paint")
	return a
}

// State returns the state shared with background work.
func (a *App) State() *AppState { return a.state }

// Size returns the last laid out window size in dp.
func (a *App) Size() image.Point {
	if a.metric.PxPerDp <= 0 {
		return a.size
	}
	return image.Pt(int(float32(a.size.X)/a.metric.PxPerDp), int(float32(a.size.Y)/a.metric.PxPerDp))
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		a.snapExplorer.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// StartFeed replays src onto the canvas in the background. Updates are
// decoded off the UI goroutine and applied on the next frame.
func (a *App) StartFeed(ctx context.Context, src io.Reader, r *feed.Reader) {
	raw := make(chan feed.Update)
	a.state.SetFeedActive(true)
	go func() {
		defer close(raw)
		if err := r.Stream(ctx, src, raw); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("feed stopped", "err", err)
			a.state.AppendLog(fmt.Sprintf("feed stopped: %v", err))
		}
	}()
	go func() {
		defer a.state.SetFeedActive(false)
		for u := range raw {
			select {
			case a.updates <- u:
				a.window.Invalidate()
			case <-ctx.Done():
				return
			}
		}
		a.window.Invalidate()
	}()
}

func (a *App) drainFeed() {
	for {
		select {
		case u := <-a.updates:
			err := feed.Apply(a.place, u)
			a.state.CountFeed(err == nil)
		default:
			return
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.size = gtx.Constraints.Max
	a.metric = gtx.Metric
	a.place.Resize(a.size.X, a.size.Y)
	a.drainFeed()

	a.handleKeys(gtx)
	a.handlePointer(gtx)
	a.handleButtons(gtx)
	if a.place.Tick() {
		gtx.Execute(op.InvalidateCmd{})
	}

	backdrop := a.place.Config().Backdrop
	paint.FillShape(gtx.Ops, backdrop.NRGBA(1), clip.Rect{Max: a.size}.Op())

	return layout.Stack{}.Layout(gtx,
		layout.Stacked(a.layoutCanvas),
		layout.Stacked(a.layoutInput),
		layout.Stacked(a.layoutStatus),
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return layout.NE.Layout(gtx, a.layoutZoomButtons)
		}),
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return layout.S.Layout(gtx, a.layoutPalette)
		}),
	)
}

func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	cam := a.place.Camera()
	tr := a.place.State().Transform()
	s := float32(tr.Scale)

	defer op.Affine(f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(s, s)).
		Offset(f32.Pt(float32(tr.Translate.X), float32(tr.Translate.Y)))).Push(gtx.Ops).Pop()

	r := a.place.Renderer()
	visible := cam.VisibleBounds()
	surface := opsSurface{ops: gtx.Ops}
	r.DrawBackground(surface, visible)
	a.cells.Add(gtx.Ops, r)
	r.DrawGridLines(surface, visible, cam.OverlayAlpha)
	return layout.Dimensions{Size: a.size}
}

func (a *App) layoutInput(gtx layout.Context) layout.Dimensions {
	area := clip.Rect{Max: a.size}.Push(gtx.Ops)
	event.Op(gtx.Ops, a)
	area.Pop()
	return layout.Dimensions{Size: a.size}
}

func (a *App) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: a,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		p := canvas.Pt(float64(pe.Position.X), float64(pe.Position.Y))
		switch pe.Kind {
		case pointer.Press:
			if pe.Buttons == pointer.ButtonPrimary || pe.Source == pointer.Touch {
				a.place.PointerDown(p)
			}
		case pointer.Drag:
			a.place.PointerMove(p)
		case pointer.Release:
			switch out := a.place.PointerUp(p); out {
			case canvas.OutcomePaint:
				c := a.place.CellAt(p)
				a.Logf("Painted %s", c.Key())
			case canvas.OutcomeRejected:
				a.Logf("Outside the canvas")
			}
		case pointer.Cancel:
			a.place.Interaction().Cancel()
		}
		gtx.Execute(op.InvalidateCmd{})
	}
}

func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "+", Optional: key.ModShift},
			key.Filter{Name: "="},
			key.Filter{Name: "-"},
			key.Filter{Name: "P"},
			key.Filter{Name: "S"},
			key.Filter{Name: key.NameEscape},
		)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		switch ke.Name {
		case "+", "=":
			a.place.ZoomIn()
		case "-":
			a.place.ZoomOut()
		case "P":
			a.showPalette = !a.showPalette
		case "S":
			a.exportSnapshot()
		case key.NameEscape:
			a.place.Palette().Clear()
		}
		gtx.Execute(op.InvalidateCmd{})
	}
}

func (a *App) handleButtons(gtx layout.Context) {
	if a.zoomInBtn.Clicked(gtx) {
		a.place.ZoomIn()
	}
	if a.zoomOutBtn.Clicked(gtx) {
		a.place.ZoomOut()
	}
	for i := range a.swatches {
		if a.swatches[i].Clicked(gtx) {
			a.place.SelectColor(i)
		}
	}
}

func (a *App) layoutZoomButtons(gtx layout.Context) layout.Dimensions {
	if a.zoomInIcon == nil || a.zoomOutIcon == nil {
		return layout.Dimensions{}
	}
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.IconButton(a.gvTheme.Theme, &a.zoomInBtn, a.zoomInIcon, "Zoom in").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.IconButton(a.gvTheme.Theme, &a.zoomOutBtn, a.zoomOutIcon, "Zoom out").Layout(gtx)
			}),
		)
	})
}

// layoutPalette draws the swatch strip. Its height matches the band the
// interaction state machine keeps clear of canvas gestures.
func (a *App) layoutPalette(gtx layout.Context) layout.Dimensions {
	if !a.showPalette {
		return layout.Dimensions{}
	}
	height := int(canvas.PaletteStripHeight)
	gtx.Constraints.Min = image.Pt(a.size.X, height)
	gtx.Constraints.Max = gtx.Constraints.Min
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: gtx.Constraints.Max}.Op())

	colors := a.place.Palette().Colors()
	selected := a.place.Palette().SelectedIndex()
	children := make([]layout.FlexChild, len(colors))
	for i, c := range colors {
		children[i] = layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.swatches[i].Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return a.layoutSwatch(gtx, c, i == selected)
			})
		})
	}
	return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceEvenly}.Layout(gtx, children...)
	})
}

func (a *App) layoutSwatch(gtx layout.Context, c canvas.Color, selected bool) layout.Dimensions {
	size := gtx.Constraints.Max
	inset := gtx.Dp(unit.Dp(2))
	rect := image.Rect(inset, 0, size.X-inset, size.Y)
	paint.FillShape(gtx.Ops, c.NRGBA(1), clip.Rect(rect).Op())
	if selected {
		width := float32(gtx.Dp(unit.Dp(3)))
		paint.FillShape(gtx.Ops, c.Contrast().NRGBA(1),
			clip.Stroke{
				Path:  clip.Rect(rect).Path(),
				Width: width,
			}.Op())
	}
	return layout.Dimensions{Size: size}
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	snap := a.state.Snapshot()
	text := snap.Status
	if snap.FeedActive || snap.FeedApplied+snap.FeedRejected > 0 {
		text = fmt.Sprintf("%s | feed: %d applied, %d rejected", text, snap.FeedApplied, snap.FeedRejected)
	}
	return layout.Inset{Top: 8, Left: 8}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		label := material.Caption(a.gvTheme.Theme, text)
		label.Color = a.gvTheme.Palette.Fg
		label.Color.A = 160
		return label.Layout(gtx)
	})
}

// exportSnapshot renders the current view on the UI goroutine and lets the
// user pick where to save it.
func (a *App) exportSnapshot() {
	var buf bytes.Buffer
	if err := snapshot.WritePNG(a.place, &buf); err != nil {
		a.Logf("Snapshot failed: %v", err)
		return
	}
	go func() {
		file, err := a.snapExplorer.CreateFile("place.png")
		if err != nil {
			if err != explorer.ErrUserDecline {
				a.Logf("Snapshot save failed: %v", err)
			}
			return
		}
		defer file.Close()
		if _, err := buf.WriteTo(file); err != nil {
			a.Logf("Snapshot save failed: %v", err)
			return
		}
		a.Logf("Snapshot saved")
	}()
}

func (a *App) applyPalette() {
	if a.gvTheme == nil {
		return
	}
	a.gvTheme.WithPalette(theme.Palette{
		Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
		Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
	})
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

// Logf sets the status line and records the message.
func (a *App) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.state.SetStatus(msg)
	a.state.AppendLog(msg)
	a.logger.Info(msg)
	a.invalidate()
}
