package canvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque palette color. Values are only produced by ParseColor
// or RGB, so anything that reaches the renderer has already been validated.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses a 6 digit hex color. A leading "#" or "0x" is accepted,
// as is the 3 digit shorthand ("fff").
func ParseColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) > 2 && (hex[:2] == "0x" || hex[:2] == "0X") {
		hex = hex[2:]
	}
	if len(hex) != 6 && len(hex) != 3 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
	}
	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseColor is like ParseColor but panics on malformed input. Intended
// for package-level tables of known-good colors.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Hex returns the color as 6 lowercase hex digits without a prefix.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return "#" + c.Hex()
}

// NRGBA converts to the standard library color type with the given opacity.
func (c Color) NRGBA(alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA(1).RGBA()
}

// Contrast returns black or white, whichever reads better on top of c.
// Used for swatch outlines and labels.
func (c Color) Contrast() Color {
	l, _, _ := c.colorful().Lab()
	if l > 0.6 {
		return Color{}
	}
	return Color{R: 0xff, G: 0xff, B: 0xff}
}

// Blend mixes c toward o by t in Lab space (t=0 is c, t=1 is o).
func (c Color) Blend(o Color, t float64) Color {
	m := c.colorful().BlendLab(o.colorful(), t).Clamped()
	r, g, b := m.RGB255()
	return Color{R: r, G: g, B: b}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
