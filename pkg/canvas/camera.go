package canvas

import "math"

// Camera is the viewport onto the grid surface.
//
// The grid surface is a child of a container. The container is pinned to the
// center of the screen and carries the zoom scale; the surface is translated
// inside the container by Position, so panning never touches the scale and
// zooming never touches the pan.
type Camera struct {
	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int

	// Container position in screen pixels, kept at the screen center
	Container Vec2

	// Container scale (1 = zoomed out)
	Scale float64

	// Grid surface position inside the container (grid units).
	// The gridline overlay always shares this position.
	Position Vec2

	// Gridline overlay opacity, 0..1
	OverlayAlpha float64
}

// NewCamera creates a camera for a screen of the given size with the grid
// centered on it.
func NewCamera(screenWidth, screenHeight int, grid Size, square Size) *Camera {
	c := &Camera{Scale: 1}
	c.UpdateScreenSize(screenWidth, screenHeight)
	c.CenterOn(grid, square)
	return c
}

// CenterOn moves the surface so that the middle of the grid is at the
// container origin.
func (c *Camera) CenterOn(grid Size, square Size) {
	c.Position = Vec2{
		X: -float64(grid.W*square.W) / 2,
		Y: -float64(grid.H*square.H) / 2,
	}
}

// UpdateScreenSize updates the camera when the window is resized. Only the
// container is re-centered; pan and scale are left alone.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
	c.Container = c.Center()
}

// Center returns the screen center in pixels.
func (c *Camera) Center() Vec2 {
	return Vec2{X: float64(c.ScreenWidth) / 2, Y: float64(c.ScreenHeight) / 2}
}

// View returns the camera's live state. zoomed is the controller's target.
func (c *Camera) View(zoomed bool) ViewState {
	return ViewState{
		Origin:    c.Container,
		PanOffset: c.Position,
		Scale:     c.Scale,
		Zoomed:    zoomed,
	}
}

// ScreenToWorld converts screen pixels to grid-local units.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return c.View(false).Transform().ApplyInverse(p)
}

// WorldToScreen converts grid-local units to screen pixels.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return c.View(false).Transform().Apply(p)
}

// VisibleBounds returns the visible area in grid-local units. Useful for
// culling cells and gridlines that are off screen.
func (c *Camera) VisibleBounds() Rect {
	a := c.ScreenToWorld(Vec2{})
	b := c.ScreenToWorld(Vec2{X: float64(c.ScreenWidth), Y: float64(c.ScreenHeight)})
	return Rect{
		Min: Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}
