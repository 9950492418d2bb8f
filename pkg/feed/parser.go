package feed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
)

// ErrSyntax is returned for lines the grammar does not accept.
var ErrSyntax = errors.New("feed: syntax error")

// Update is one validated pixel update.
type Update struct {
	Cell  canvas.Cell
	Color canvas.Color

	// Time is zero when the line carries no stamp.
	Time time.Time
}

// String formats u as a feed line without the trailing newline.
func (u Update) String() string {
	s := u.Cell.Key() + " " + u.Color.Hex()
	if !u.Time.IsZero() {
		s += " @" + strconv.FormatInt(u.Time.Unix(), 10)
	}
	return s
}

// Update validates the entry and converts it.
func (e *Entry) Update() (Update, error) {
	cell, err := canvas.ParseKey(e.Key)
	if err != nil {
		return Update{}, fmt.Errorf("%d:%d: %w", e.Pos.Line, e.Pos.Column, err)
	}
	c, err := canvas.ParseColor(e.Color)
	if err != nil {
		return Update{}, fmt.Errorf("%d:%d: %w", e.Pos.Line, e.Pos.Column, err)
	}
	u := Update{Cell: cell, Color: c}
	if e.Stamp != "" {
		sec, err := strconv.ParseInt(strings.TrimPrefix(e.Stamp, "@"), 10, 64)
		if err != nil {
			return Update{}, fmt.Errorf("%d:%d: %w: stamp %q", e.Pos.Line, e.Pos.Column, ErrSyntax, e.Stamp)
		}
		u.Time = time.Unix(sec, 0).UTC()
	}
	return u, nil
}

// Parser parses pixel update feeds.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new feed parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(FeedLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a whole feed from a reader. The first bad entry fails the
// parse; use Scan to skip bad lines instead.
func (p *Parser) Parse(r io.Reader) ([]Update, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return entries(f)
}

// ParseString parses a whole feed from a string
func (p *Parser) ParseString(input string) ([]Update, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return entries(f)
}

// ParseFile parses a feed from a file path
func (p *Parser) ParseFile(filename string) ([]Update, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// ParseLine parses a single line. ok is false for blank and comment-only
// lines.
func (p *Parser) ParseLine(line string) (u Update, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "//") {
		return Update{}, false, nil
	}
	f, err := p.parser.ParseString("", line)
	if err != nil {
		return Update{}, false, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	switch len(f.Entries) {
	case 0:
		return Update{}, false, nil
	case 1:
	default:
		return Update{}, false, fmt.Errorf("%w: %d updates on one line", ErrSyntax, len(f.Entries))
	}
	u, err = f.Entries[0].Update()
	if err != nil {
		return Update{}, false, err
	}
	return u, true, nil
}

func entries(f *File) ([]Update, error) {
	out := make([]Update, 0, len(f.Entries))
	for _, e := range f.Entries {
		u, err := e.Update()
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}
