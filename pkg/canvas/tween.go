package canvas

import (
	"math"
	"time"
)

// Easing maps linear progress t in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOutQuart accelerates over the first half and decelerates over the
// second (GSAP's Power3.easeInOut).
func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

type tween struct {
	from, to float64
	start    time.Time
	duration time.Duration
	ease     Easing
}

func (tw *tween) valueAt(now time.Time) (float64, bool) {
	elapsed := now.Sub(tw.start)
	if tw.duration <= 0 || elapsed >= tw.duration {
		return tw.to, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(tw.duration)
	return tw.from + (tw.to-tw.from)*tw.ease(t), false
}

// Animator drives float properties toward targets over time. A property is
// identified by its address. Starting a new tween on a property replaces the
// running one, starting from the property's current value, so the newest call
// always wins and nothing queues.
//
// Animator is advanced explicitly with Tick, once per frame.
type Animator struct {
	tweens map[*float64]*tween
}

// NewAnimator returns an idle animator.
func NewAnimator() *Animator {
	return &Animator{tweens: make(map[*float64]*tween)}
}

// To starts animating *prop toward target.
func (a *Animator) To(now time.Time, prop *float64, target float64, d time.Duration, ease Easing) {
	if ease == nil {
		ease = Linear
	}
	a.tweens[prop] = &tween{
		from:     *prop,
		to:       target,
		start:    now,
		duration: d,
		ease:     ease,
	}
}

// Tick writes the current value of every running tween and drops the ones
// that have finished. It reports whether any tween is still running.
func (a *Animator) Tick(now time.Time) bool {
	for prop, tw := range a.tweens {
		v, done := tw.valueAt(now)
		*prop = v
		if done {
			delete(a.tweens, prop)
		}
	}
	return len(a.tweens) > 0
}

// Cancel stops the tweens on the given properties, leaving their current
// values in place.
func (a *Animator) Cancel(props ...*float64) {
	for _, p := range props {
		delete(a.tweens, p)
	}
}

// Finish jumps every running tween to its end value.
func (a *Animator) Finish() {
	for prop, tw := range a.tweens {
		*prop = tw.to
		delete(a.tweens, prop)
	}
}

// Animating reports whether prop has a running tween.
func (a *Animator) Animating(prop *float64) bool {
	_, ok := a.tweens[prop]
	return ok
}

// Target returns the value prop is heading to, or its current value when idle.
func (a *Animator) Target(prop *float64) float64 {
	if tw, ok := a.tweens[prop]; ok {
		return tw.to
	}
	return *prop
}

// Active reports whether any tween is running.
func (a *Animator) Active() bool {
	return len(a.tweens) > 0
}
