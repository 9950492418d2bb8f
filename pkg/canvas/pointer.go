package canvas

import "math"

const (
	// DragThreshold is how far, in screen pixels along either axis, the
	// pointer has to travel from the press point before a press becomes a drag.
	DragThreshold = 5.0

	// PaletteStripHeight is the band at the bottom of the screen reserved for
	// the palette. Presses that start there are not canvas gestures.
	PaletteStripHeight = 60.0
)

// GestureState is the interaction state.
type GestureState int

const (
	StateIdle GestureState = iota
	StatePressed
	StateDragging
)

func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	}
	return "unknown"
}

// Outcome is what a pointer release turned out to be.
type Outcome int

const (
	// OutcomeIgnored: no gesture was in progress.
	OutcomeIgnored Outcome = iota
	// OutcomePan: the gesture was a drag.
	OutcomePan
	// OutcomeZoom: a tap that toggled the zoom.
	OutcomeZoom
	// OutcomePaint: a tap that painted a cell.
	OutcomePaint
	// OutcomeRejected: a tap that tried to paint outside the grid.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomePan:
		return "pan"
	case OutcomeZoom:
		return "zoom"
	case OutcomePaint:
		return "paint"
	case OutcomeRejected:
		return "rejected"
	}
	return "unknown"
}

// Gesture is the transient record of one pointer contact.
type Gesture struct {
	// Start is the press point in screen pixels.
	Start Vec2

	// Origin is the surface position when the press happened.
	Origin Vec2

	// Dragging is set once the pointer has left the threshold box.
	Dragging bool
}

// Painter paints the cell under a screen point.
type Painter interface {
	PaintAt(screen Vec2, c Color) error
}

// Interaction classifies pointer input into pans, zoom toggles and paints.
type Interaction struct {
	view      *ViewController
	palette   *Palette
	painter   Painter
	threshold float64
	reserved  float64

	gesture *Gesture
}

// NewInteraction wires the state machine to its collaborators.
func NewInteraction(view *ViewController, palette *Palette, painter Painter) *Interaction {
	return &Interaction{
		view:      view,
		palette:   palette,
		painter:   painter,
		threshold: DragThreshold,
		reserved:  PaletteStripHeight,
	}
}

// State returns the current interaction state.
func (in *Interaction) State() GestureState {
	switch {
	case in.gesture == nil:
		return StateIdle
	case in.gesture.Dragging:
		return StateDragging
	default:
		return StatePressed
	}
}

// Gesture returns the gesture in progress, or nil.
func (in *Interaction) Gesture() *Gesture {
	return in.gesture
}

// Active reports whether p is inside the canvas region (above the palette
// strip).
func (in *Interaction) Active(p Vec2) bool {
	h := float64(in.view.Camera().ScreenHeight)
	return p.Y < h-in.reserved
}

// Down starts a gesture at p. It reports whether the press was accepted;
// presses on the palette strip are not.
func (in *Interaction) Down(p Vec2) bool {
	if !in.Active(p) {
		return false
	}
	in.gesture = &Gesture{
		Start:  p,
		Origin: in.view.Position(),
	}
	return true
}

// Move tracks the pointer. Movement is always measured from the press point,
// never from the previous move, so jitter inside the threshold box cannot add
// up to a drag. Once dragging, the surface follows the pointer at the current
// zoom rate.
func (in *Interaction) Move(p Vec2) {
	g := in.gesture
	if g == nil {
		return
	}
	d := p.Sub(g.Start)
	if !g.Dragging {
		if math.Abs(d.X) > in.threshold || math.Abs(d.Y) > in.threshold {
			g.Dragging = true
		}
	}
	if g.Dragging {
		in.view.PanTo(g.Origin.Add(d.Div(in.view.Scale())))
	}
}

// Up ends the gesture at p and reports what it was.
func (in *Interaction) Up(p Vec2) Outcome {
	g := in.gesture
	if g == nil {
		return OutcomeIgnored
	}
	in.gesture = nil
	if g.Dragging {
		return OutcomePan
	}

	if c, ok := in.palette.Selected(); ok && in.view.Zoomed() {
		if err := in.painter.PaintAt(p, c); err != nil {
			return OutcomeRejected
		}
		return OutcomePaint
	}
	in.view.ToggleZoom(p)
	return OutcomeZoom
}

// Cancel drops the gesture in progress without acting on it.
func (in *Interaction) Cancel() {
	in.gesture = nil
}
