package canvas

import "fmt"

// DefaultPalette is the stock 16 color place palette.
var DefaultPalette = []string{
	"ffffff", // white
	"e4e4e4", // light grey
	"888888", // grey
	"222222", // black
	"ffa7d1", // pink
	"e50000", // red
	"e59500", // orange
	"a06a42", // brown
	"e5d900", // yellow
	"94e044", // lime
	"02be01", // green
	"00d3dd", // cyan
	"0083c7", // blue
	"0000ea", // dark blue
	"cf6ee4", // magenta
	"820080", // purple
}

// Palette is a fixed, ordered list of colors with at most one selected.
type Palette struct {
	colors   []Color
	selected int
}

// NewPalette parses hexes in order. An empty list yields DefaultPalette.
func NewPalette(hexes []string) (*Palette, error) {
	if len(hexes) == 0 {
		hexes = DefaultPalette
	}
	p := &Palette{selected: -1}
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// Colors returns the palette in order.
func (p *Palette) Colors() []Color {
	return p.colors
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Select toggles entry i: selecting the selected entry clears the selection.
// Out of range indexes are ignored.
func (p *Palette) Select(i int) {
	if i < 0 || i >= len(p.colors) {
		return
	}
	if p.selected == i {
		p.selected = -1
		return
	}
	p.selected = i
}

// SelectColor toggles the entry holding c. It reports whether c is in the
// palette.
func (p *Palette) SelectColor(c Color) bool {
	for i, pc := range p.colors {
		if pc == c {
			p.Select(i)
			return true
		}
	}
	return false
}

// Clear drops the selection.
func (p *Palette) Clear() {
	p.selected = -1
}

// Selected returns the selected color, if any.
func (p *Palette) Selected() (Color, bool) {
	if p.selected < 0 {
		return Color{}, false
	}
	return p.colors[p.selected], true
}

// SelectedIndex returns the selected entry or -1.
func (p *Palette) SelectedIndex() int {
	return p.selected
}
