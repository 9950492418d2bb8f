package feed

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterEmitsFeedLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	ctx := context.Background()

	pixels := []canvas.Pixel{
		{Cell: canvas.Cell{X: 4, Y: 2}, Color: canvas.MustParseColor("e50000"), Timestamp: time.Unix(1700000001, 0)},
		{Cell: canvas.Cell{X: 0, Y: 19}, Color: canvas.MustParseColor("222222")},
	}
	for _, px := range pixels {
		if err := w.SubmitPixel(ctx, px); err != nil {
			t.Fatalf("SubmitPixel failed: %v", err)
		}
	}

	want := "4x2 e50000 @1700000001\n0x19 222222\n"
	if buf.String() != want {
		t.Fatalf("wrote %q, want %q", buf.String(), want)
	}

	// What one instance writes another can read.
	updates, err := newParser(t).ParseString(buf.String())
	if err != nil {
		t.Fatalf("Failed to parse written feed: %v", err)
	}
	if len(updates) != 2 || updates[0].Cell != pixels[0].Cell || updates[1].Color != pixels[1].Color {
		t.Fatalf("parsed back %+v", updates)
	}
}

func TestWriterErrors(t *testing.T) {
	px := canvas.Pixel{Cell: canvas.Cell{X: 1, Y: 1}, Color: canvas.MustParseColor("fff")}

	if err := NewWriter(failWriter{}).SubmitPixel(context.Background(), px); err == nil || !strings.Contains(err.Error(), "1x1") {
		t.Fatalf("err = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := NewWriter(&buf).SubmitPixel(ctx, px); !errors.Is(err, context.Canceled) || buf.Len() != 0 {
		t.Fatalf("cancelled submit: err=%v wrote=%q", err, buf.String())
	}
}

func TestLogSubmitter(t *testing.T) {
	var buf bytes.Buffer
	sub := LogSubmitter(slog.New(slog.NewTextHandler(&buf, nil)))
	px := canvas.Pixel{Cell: canvas.Cell{X: 7, Y: 8}, Color: canvas.MustParseColor("94e044")}
	if err := sub.SubmitPixel(context.Background(), px); err != nil {
		t.Fatalf("SubmitPixel failed: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "cell=7x8") || !strings.Contains(out, "color=94e044") {
		t.Fatalf("log output = %q", out)
	}
}
