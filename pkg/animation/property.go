package animation

// Property is the accessor for one animatable scalar attribute of one UI
// element. The engine reads the current value once when an animation starts
// and writes interpolated values back on each tick.
//
// Implementations must tolerate repeated identical writes and must not panic
// for any value inside the attribute's valid domain. The host owns the
// attribute; while a tween is running the engine assumes it is the only
// writer (see the replace policy on [FrameClock.Animate]).
type Property interface {
	// Read returns the attribute's current value.
	Read() float64
	// Write sets the attribute to value.
	Write(value float64)
}

// PropertyOf adapts a read/write function pair into a Property.
func PropertyOf(read func() float64, write func(float64)) Property {
	return funcProperty{read: read, write: write}
}

type funcProperty struct {
	read  func() float64
	write func(float64)
}

func (p funcProperty) Read() float64       { return p.read() }
func (p funcProperty) Write(value float64) { p.write(value) }
