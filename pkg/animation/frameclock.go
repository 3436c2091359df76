// Package animation provides a tick-driven property tween engine for
// host-rendered UI elements.
//
// # Core Components
//
// The engine consists of a few small pieces:
//
//   - [FrameClock]: owns the set of active tweens and advances them once per
//     host tick, in the order they were started.
//
//   - [Tween]: the state machine for one scalar animation, interpolating a
//     [Property] from its current value to a target over a duration.
//
//   - [Curve]: easing functions shaping the interpolation. Includes the CSS
//     bezier presets ([Ease], [EaseIn], [EaseOut], [EaseInOut]), custom
//     [CubicBezier] curves, and the gween catalogue via [FromEase].
//
//   - [Handle]: the caller-facing reference returned by Animate, used to
//     observe completion and cancellation. A nil handle means the call was a
//     no-op; all handle methods are nil-safe.
//
// # Basic Usage
//
// Create one FrameClock per UI surface and tick it from the host's frame
// callback:
//
//	clock := animation.NewFrameClock()
//
//	// In the host frame loop, with dt since the previous frame:
//	clock.Tick(dt)
//
//	// Anywhere on the same goroutine:
//	h, err := clock.Animate(key, prop, 200, 300*time.Millisecond, animation.EaseOut)
//	if err != nil {
//	    return err
//	}
//	h.OnComplete(func() { ... })
//
// The engine is single-threaded and cooperative: all tweens advance within
// one pass per tick on the goroutine that calls Tick, and Animate must be
// called from that same goroutine. Hosts without a frame loop of their own
// can use [Driver] to tick from a timer.
package animation

import (
	"time"

	motionerrors "github.com/go-motion/motion/pkg/errors"
)

// FrameClock dispatches frame ticks to active tweens and enforces the
// replace policy: at most one tween per registry key is live at a time.
// It is purely a time source and dispatch loop; animation semantics live in
// [Tween].
type FrameClock struct {
	// active holds live tweens in the order they were started.
	active []*Tween
	// byKey maps a caller-supplied key to the tween currently owning it.
	byKey map[any]*Tween
}

// NewFrameClock creates an empty frame clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{
		byKey: make(map[any]*Tween),
	}
}

// Animate starts a tween that moves prop from its current value to target
// over duration, shaped by curve (nil means [Linear]).
//
// key identifies the (element, attribute) pair for the replace policy: if
// another tween is registered under the same key it is cancelled, and its
// cancellation observers fire, before the new tween is registered. key must
// be a comparable value.
//
// If target exactly equals the property's current value the call is a no-op:
// nothing is registered, nothing is ever written, and the returned handle is
// nil (absent). A negative duration is rejected with a KindInvalidArgument
// error.
//
// Animate itself never writes the property; the first write happens on the
// first Tick after registration. A tween started while a Tick pass is in
// progress is not advanced by that pass.
func (c *FrameClock) Animate(key any, prop Property, target float64, duration time.Duration, curve Curve) (*Handle, error) {
	const op = "animation.Animate"

	if prop == nil {
		return nil, motionerrors.New(op, motionerrors.KindInvalidArgument, "nil property")
	}
	if duration < 0 {
		return nil, motionerrors.New(op, motionerrors.KindInvalidArgument, "negative duration %v", duration)
	}

	current := prop.Read()
	if target == current {
		return nil, nil
	}

	if prev, ok := c.byKey[key]; ok {
		c.cancelTween(prev)
	}

	if curve == nil {
		curve = Linear
	}
	tw := &Tween{
		start:    current,
		end:      target,
		duration: duration,
		curve:    curve,
		prop:     prop,
		key:      key,
		clock:    c,
		status:   StatusPending,
	}
	c.byKey[key] = tw
	c.active = append(c.active, tw)
	return &Handle{tw: tw}, nil
}

// AnimateBy starts a tween to the property's current value plus delta.
// It resolves the absolute target and delegates to [FrameClock.Animate],
// so a zero delta is a no-op returning an absent handle.
func (c *FrameClock) AnimateBy(key any, prop Property, delta float64, duration time.Duration, curve Curve) (*Handle, error) {
	if prop == nil {
		return nil, motionerrors.New("animation.AnimateBy", motionerrors.KindInvalidArgument, "nil property")
	}
	return c.Animate(key, prop, prop.Read()+delta, duration, curve)
}

// Tick advances every running tween once by dt, in the order the tweens were
// started. Tweens that reach their duration during this pass write their end
// value, fire completion observers, and are discarded. Tweens started during
// the pass (including replacements made from observers) first advance on the
// next Tick.
//
// The host must call Tick from a single goroutine with non-negative dt.
func (c *FrameClock) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	snapshot := c.active[:len(c.active):len(c.active)]
	for _, tw := range snapshot {
		if tw.status == StatusPending {
			tw.status = StatusRunning
		}
		if tw.advance(dt) {
			c.unregister(tw)
			tw.notifyComplete()
		}
	}

	// Drop terminal tweens; they are not ticked again and hold no resources.
	kept := c.active[:0]
	for _, tw := range c.active {
		if tw.status == StatusPending || tw.status == StatusRunning {
			kept = append(kept, tw)
		}
	}
	c.active = kept
}

// HasActive reports whether any tween is pending or running. Hosts can use
// this to pause their frame source when nothing is animating.
func (c *FrameClock) HasActive() bool {
	return len(c.byKey) > 0
}

// cancelTween moves tw to StatusCancelled, releases its registry key, and
// fires its cancellation observers. Terminal tweens are left untouched. The
// property keeps its last written value.
func (c *FrameClock) cancelTween(tw *Tween) {
	if tw == nil || tw.status == StatusCompleted || tw.status == StatusCancelled {
		return
	}
	tw.status = StatusCancelled
	c.unregister(tw)
	tw.notifyCancel()
}

// unregister releases tw's registry key. The key may already belong to a
// replacement tween, in which case it is left alone.
func (c *FrameClock) unregister(tw *Tween) {
	if cur, ok := c.byKey[tw.key]; ok && cur == tw {
		delete(c.byKey, tw.key)
	}
}
