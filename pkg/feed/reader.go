package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
)

// Line is the result of reading one line of a feed.
type Line struct {
	Number int
	Text   string
	Update Update

	// Err is set when the line was rejected; Update is then zero.
	Err error
}

// Reader reads feeds line by line, so a bad line never stops the stream.
type Reader struct {
	parser *Parser
	logger *slog.Logger
}

// NewReader creates a reader. A nil logger discards.
func NewReader(logger *slog.Logger) (*Reader, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{parser: p, logger: logger}, nil
}

// Scan calls fn for every non-blank, non-comment line of src, accepted or
// not. It stops at EOF, when fn returns an error, or when ctx is done.
func (r *Reader) Scan(ctx context.Context, src io.Reader, fn func(Line) error) error {
	sc := bufio.NewScanner(src)
	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		u, ok, err := r.parser.ParseLine(sc.Text())
		if !ok && err == nil {
			continue
		}
		if err := fn(Line{Number: n, Text: sc.Text(), Update: u, Err: err}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("feed: read: %w", err)
	}
	return nil
}

// Stream sends every valid update in src to out. Rejected lines are logged
// and skipped. Stream does not close out.
func (r *Reader) Stream(ctx context.Context, src io.Reader, out chan<- Update) error {
	return r.Scan(ctx, src, func(l Line) error {
		if l.Err != nil {
			r.logger.Warn("feed line rejected", "line", l.Number, "err", l.Err)
			return nil
		}
		select {
		case out <- l.Update:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

// Replay applies every valid update in src to p and returns how many were
// applied. Updates the grid rejects are logged and counted as skipped.
func (r *Reader) Replay(ctx context.Context, src io.Reader, p *canvas.Place) (applied, skipped int, err error) {
	err = r.Scan(ctx, src, func(l Line) error {
		if l.Err == nil {
			l.Err = Apply(p, l.Update)
		}
		if l.Err != nil {
			r.logger.Warn("feed line rejected", "line", l.Number, "err", l.Err)
			skipped++
			return nil
		}
		applied++
		return nil
	})
	return applied, skipped, err
}

// Apply routes u to the canvas as a remote paint.
func Apply(p *canvas.Place, u Update) error {
	return p.OnRemotePixel(u.Cell.X, u.Cell.Y, u.Color)
}
