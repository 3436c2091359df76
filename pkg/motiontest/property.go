package motiontest

import (
	"time"

	"github.com/go-motion/motion/pkg/animation"
)

// RecordingProperty is an [animation.Property] that captures every write, so
// tests can assert on the exact sequence of interpolated values.
type RecordingProperty struct {
	// Value is the property's current value.
	Value float64
	// Writes holds every value written, in order.
	Writes []float64
}

// NewRecordingProperty returns a property starting at value.
func NewRecordingProperty(value float64) *RecordingProperty {
	return &RecordingProperty{Value: value}
}

// Read returns the current value.
func (p *RecordingProperty) Read() float64 {
	return p.Value
}

// Write records and applies value.
func (p *RecordingProperty) Write(value float64) {
	p.Value = value
	p.Writes = append(p.Writes, value)
}

// LastWrite returns the most recent write, or the initial value when nothing
// was written.
func (p *RecordingProperty) LastWrite() float64 {
	if len(p.Writes) == 0 {
		return p.Value
	}
	return p.Writes[len(p.Writes)-1]
}

// Pump ticks fc in fixed steps until total elapsed time is delivered. The
// final tick is truncated so exactly total is delivered. A non-positive step
// delivers total in a single tick.
func Pump(fc *animation.FrameClock, total, step time.Duration) {
	if step <= 0 || step > total {
		fc.Tick(total)
		return
	}
	for delivered := time.Duration(0); delivered < total; {
		dt := step
		if remaining := total - delivered; dt > remaining {
			dt = remaining
		}
		fc.Tick(dt)
		delivered += dt
	}
}
