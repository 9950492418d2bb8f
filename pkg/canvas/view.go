package canvas

import "time"

const (
	// DefaultZoomLevel is the container scale while zoomed in.
	DefaultZoomLevel = 6.0

	// ZoomDuration is the length of a zoom transition.
	ZoomDuration = 500 * time.Millisecond
)

// ViewController owns the camera's pan/zoom state and animates the
// transitions between the zoomed-out (scale 1) and zoomed-in (scale
// zoomLevel) states.
type ViewController struct {
	cam       *Camera
	anim      *Animator
	zoomLevel float64
	zoomed    bool
	now       func() time.Time
}

// NewViewController wraps cam. now supplies frame timestamps; nil means
// time.Now.
func NewViewController(cam *Camera, zoomLevel float64, now func() time.Time) *ViewController {
	if zoomLevel <= 0 {
		zoomLevel = DefaultZoomLevel
	}
	if now == nil {
		now = time.Now
	}
	return &ViewController{
		cam:       cam,
		anim:      NewAnimator(),
		zoomLevel: zoomLevel,
		now:       now,
	}
}

// Camera returns the controlled camera.
func (v *ViewController) Camera() *Camera { return v.cam }

// Zoomed reports the zoom target.
func (v *ViewController) Zoomed() bool { return v.zoomed }

// ZoomLevel returns the zoomed-in scale.
func (v *ViewController) ZoomLevel() float64 { return v.zoomLevel }

// Scale returns the scale the view is settling on. Drag distances are divided
// by this rather than by the live, possibly mid-animation, camera scale.
func (v *ViewController) Scale() float64 {
	if v.zoomed {
		return v.zoomLevel
	}
	return 1
}

// State returns the live view state.
func (v *ViewController) State() ViewState {
	return v.cam.View(v.zoomed)
}

// ToggleZoom flips between zoomed in and out around the focal point.
func (v *ViewController) ToggleZoom(focal Vec2) {
	v.SetZoom(focal, !v.zoomed)
}

// ZoomIn zooms in on the middle of the screen.
func (v *ViewController) ZoomIn() { v.SetZoom(v.cam.Center(), true) }

// ZoomOut zooms out from the middle of the screen.
func (v *ViewController) ZoomOut() { v.SetZoom(v.cam.Center(), false) }

// SetZoom starts a transition to the given zoom state.
//
// The surface is shifted by the focal point's distance from the screen
// center: toward the center when zooming in, back out when zooming out. The
// shift is applied to where the surface is heading, not to where a running
// animation has currently carried it, so a transition interrupted by another
// one lands exactly where the newest call says.
//
// Calling SetZoom with the state the view is already in is a no-op.
func (v *ViewController) SetZoom(focal Vec2, zoomed bool) {
	if zoomed == v.zoomed {
		return
	}
	v.zoomed = zoomed

	cam := v.cam
	delta := focal.Sub(cam.Center())
	pos := Vec2{X: v.anim.Target(&cam.Position.X), Y: v.anim.Target(&cam.Position.Y)}
	if zoomed {
		pos = pos.Sub(delta)
	} else {
		pos = pos.Add(delta)
	}

	alpha := 0.0
	if zoomed {
		alpha = 1
	}

	now := v.now()
	v.anim.To(now, &cam.Scale, v.Scale(), ZoomDuration, EaseInOutQuart)
	v.anim.To(now, &cam.Position.X, pos.X, ZoomDuration, EaseInOutQuart)
	v.anim.To(now, &cam.Position.Y, pos.Y, ZoomDuration, EaseInOutQuart)
	v.anim.To(now, &cam.OverlayAlpha, alpha, ZoomDuration, EaseInOutQuart)
}

// PanTo places the surface at pos immediately. Any position tween is
// cancelled so the next frame does not drag the surface back; scale and
// overlay tweens keep running.
func (v *ViewController) PanTo(pos Vec2) {
	v.anim.Cancel(&v.cam.Position.X, &v.cam.Position.Y)
	v.cam.Position = pos
}

// Position returns the live surface position.
func (v *ViewController) Position() Vec2 { return v.cam.Position }

// Resize re-centers the container for a new screen size. Pan and zoom are
// preserved.
func (v *ViewController) Resize(width, height int) {
	v.cam.UpdateScreenSize(width, height)
}

// Tick advances running transitions to the current time and reports whether
// another frame is needed.
func (v *ViewController) Tick() bool {
	return v.anim.Tick(v.now())
}

// Finish completes running transitions immediately.
func (v *ViewController) Finish() {
	v.anim.Finish()
}

// Animating reports whether a transition is in flight.
func (v *ViewController) Animating() bool {
	return v.anim.Active()
}
