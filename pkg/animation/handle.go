package animation

// Handle is the caller-facing reference to a tween started by
// [FrameClock.Animate]. A nil *Handle is the absent handle returned when an
// animation was elided as a no-op: every method is safe to call on it and
// does nothing, so call sites can chain configuration unconditionally:
//
//	h, err := clock.Animate(key, prop, 200, time.Second, animation.EaseOut)
//	if err != nil {
//	    return err
//	}
//	h.OnComplete(done).OnCancel(cleanup)
//
// The handle does not own the tween; the frame clock does.
type Handle struct {
	tw *Tween
}

// OnComplete registers an observer invoked when the tween finishes naturally.
// If the tween has already completed, fn is invoked immediately. Returns the
// handle for chaining.
func (h *Handle) OnComplete(fn func()) *Handle {
	if h == nil || fn == nil {
		return h
	}
	if h.tw.status == StatusCompleted {
		notify("animation.onComplete", []func(){fn})
		return h
	}
	h.tw.completeFns = append(h.tw.completeFns, fn)
	return h
}

// OnCancel registers an observer invoked when the tween is cancelled,
// including cancellation by replacement. If the tween is already cancelled,
// fn is invoked immediately. Returns the handle for chaining.
func (h *Handle) OnCancel(fn func()) *Handle {
	if h == nil || fn == nil {
		return h
	}
	if h.tw.status == StatusCancelled {
		notify("animation.onCancel", []func(){fn})
		return h
	}
	h.tw.cancelFns = append(h.tw.cancelFns, fn)
	return h
}

// Cancel stops the tween immediately. The animated property keeps whatever
// value was last written; nothing snaps back. Cancelling an absent or already
// terminal handle is a no-op. No tick is delivered after Cancel returns.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.tw.clock.cancelTween(h.tw)
}

// Active reports whether the tween is still pending or running.
// An absent handle is never active.
func (h *Handle) Active() bool {
	if h == nil {
		return false
	}
	return h.tw.status == StatusPending || h.tw.status == StatusRunning
}
