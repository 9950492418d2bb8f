package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
)

// Writer is a canvas.Submitter that appends each local paint to w as a feed
// line, so one instance's paints can be piped into another's feed.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// SubmitPixel writes px as one line.
func (w *Writer) SubmitPixel(ctx context.Context, px canvas.Pixel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := Update{Cell: px.Cell, Color: px.Color, Time: px.Timestamp}
	if _, err := io.WriteString(w.w, u.String()+"\n"); err != nil {
		return fmt.Errorf("feed: write %s: %w", px.Cell.Key(), err)
	}
	return nil
}

// LogSubmitter returns a Submitter that only logs.
func LogSubmitter(logger *slog.Logger) canvas.Submitter {
	return canvas.SubmitterFunc(func(_ context.Context, px canvas.Pixel) error {
		logger.Info("pixel", "cell", px.Cell.Key(), "color", px.Color.Hex(), "uid", px.UID)
		return nil
	})
}
