package animation

import (
	"context"
	"time"
)

// DefaultFrameInterval is the tick interval Driver uses when none is given,
// approximating a 60 Hz display.
const DefaultFrameInterval = time.Second / 60

// Driver ticks a [FrameClock] from a timer, for hosts that have no
// display-synchronized frame callback of their own. Hosts that do (a render
// loop, a TUI program's tick message) should call [FrameClock.Tick] from
// there instead.
type Driver struct {
	clock    *FrameClock
	interval time.Duration
}

// NewDriver creates a driver that ticks fc every interval.
// A non-positive interval selects [DefaultFrameInterval].
func NewDriver(fc *FrameClock, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Driver{clock: fc, interval: interval}
}

// Run ticks the frame clock until ctx is cancelled, measuring dt between
// ticks with the package clock. It blocks, keeping all tween dispatch on the
// caller's goroutine, and returns ctx.Err.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	last := Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := Now()
			d.clock.Tick(now.Sub(last))
			last = now
		}
	}
}
