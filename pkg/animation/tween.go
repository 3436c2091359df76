package animation

import (
	"fmt"
	"time"

	motionerrors "github.com/go-motion/motion/pkg/errors"
)

// Status represents the lifecycle state of a [Tween].
//
// A tween moves through this state machine:
//
//	Pending ──► Running ──► Completed
//	               │
//	               └──────► Cancelled
//
// Completed and Cancelled are terminal; a terminal tween never receives
// another tick and never writes again.
type Status int

const (
	// StatusPending means the tween is registered but has not received a tick.
	StatusPending Status = iota
	// StatusRunning means the tween is advancing on each frame clock tick.
	StatusRunning
	// StatusCompleted means elapsed time reached the duration.
	StatusCompleted
	// StatusCancelled means the tween was cancelled or replaced.
	StatusCancelled
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Tween interpolates one scalar property from a start value to an end value
// over a fixed duration, shaped by a [Curve]. Tweens are created by
// [FrameClock.Animate] and owned by the clock until they reach a terminal
// state; callers interact with them through a [Handle].
type Tween struct {
	start    float64
	end      float64
	duration time.Duration
	curve    Curve
	prop     Property
	key      any
	clock    *FrameClock

	elapsed     time.Duration
	status      Status
	completeFns []func()
	cancelFns   []func()
}

// Status returns the tween's current lifecycle state.
func (tw *Tween) Status() Status {
	return tw.status
}

// advance moves the tween forward by dt, writes the interpolated value, and
// reports whether the tween just completed. Interpolation is linear in the
// curve's output space; eased progress outside [0, 1] is written verbatim.
func (tw *Tween) advance(dt time.Duration) bool {
	if tw.status != StatusRunning {
		return false
	}

	tw.elapsed += dt
	if tw.elapsed > tw.duration {
		tw.elapsed = tw.duration
	}

	t := 1.0
	if tw.duration > 0 {
		t = float64(tw.elapsed) / float64(tw.duration)
	}
	progress := tw.curve(t)
	tw.prop.Write(tw.start + (tw.end-tw.start)*progress)

	if tw.elapsed >= tw.duration {
		tw.status = StatusCompleted
		return true
	}
	return false
}

func (tw *Tween) notifyComplete() {
	notify("animation.onComplete", tw.completeFns)
}

func (tw *Tween) notifyCancel() {
	notify("animation.onCancel", tw.cancelFns)
}

// notify invokes observer callbacks, containing panics so one misbehaving
// observer cannot stall the frame clock's dispatch pass.
func notify(op string, fns []func()) {
	for _, fn := range fns {
		func() {
			defer motionerrors.Recover(op)
			fn()
		}()
	}
}
