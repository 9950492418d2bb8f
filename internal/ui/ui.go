package ui

import (
	"context"
	"io"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
	"github.com/OpenTraceLab/OpenPlace/pkg/feed"
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int // dp
	Height int // dp
	Logger *slog.Logger

	// Feed, when set, is replayed onto the canvas as remote paints.
	Feed io.Reader

	// OnClose receives the final window size in dp.
	OnClose func(width, height int)
}

// Run launches the Gio UI and blocks until the window closes. It never
// returns on platforms where app.Main does not.
func Run(cfg canvas.Config, opts Options, placeOpts ...canvas.Option) error {
	if opts.Title == "" {
		opts.Title = "OpenPlace"
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 800
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(context.Background())
	placeOpts = append([]canvas.Option{canvas.WithLogger(logger), canvas.WithContext(ctx)}, placeOpts...)
	place, err := canvas.New(opts.Width, opts.Height, cfg, placeOpts...)
	if err != nil {
		cancel()
		return err
	}

	var reader *feed.Reader
	if opts.Feed != nil {
		if reader, err = feed.NewReader(logger); err != nil {
			cancel()
			return err
		}
	}

	go func() {
		defer cancel()
		w := new(app.Window)
		w.Option(app.Title(opts.Title), app.Size(unit.Dp(opts.Width), unit.Dp(opts.Height)))
		ui := New(w, place, logger)
		if reader != nil {
			ui.StartFeed(ctx, opts.Feed, reader)
		}
		if err := ui.Run(); err != nil {
			logger.Error("ui", "err", err)
		}
		if opts.OnClose != nil {
			size := ui.Size()
			opts.OnClose(size.X, size.Y)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
