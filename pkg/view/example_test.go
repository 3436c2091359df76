package view_test

import (
	"fmt"
	"time"

	"github.com/go-motion/motion/pkg/animation"
	"github.com/go-motion/motion/pkg/geometry"
	"github.com/go-motion/motion/pkg/view"
)

// This example lays out a view, animates its width, and ticks the frame
// clock the way a host frame loop would.
func ExampleView_AnimateWidth() {
	clock := animation.NewFrameClock()

	box := view.New()
	box.Attach(clock)
	box.SetFrame(geometry.Rect{X: 0, Y: 0, Width: 100, Height: 40})

	h, err := box.AnimateWidth(200, time.Second, animation.Linear)
	if err != nil {
		fmt.Println(err)
		return
	}
	h.OnComplete(func() { fmt.Println("expanded") })

	clock.Tick(500 * time.Millisecond)
	fmt.Printf("width: %.0f\n", box.Width())

	clock.Tick(500 * time.Millisecond)
	fmt.Printf("width: %.0f\n", box.Width())

	// Output:
	// width: 150
	// expanded
	// width: 200
}

// Relative variants resolve their target against the current value, so a zero
// delta is elided just like an absolute no-op.
func ExampleView_AnimateXBy() {
	clock := animation.NewFrameClock()

	box := view.New()
	box.Attach(clock)
	box.SetFrame(geometry.Rect{X: 10, Y: 0, Width: 40, Height: 40})

	h, _ := box.AnimateXBy(-30, 500*time.Millisecond, animation.Linear)
	fmt.Println("handle absent:", h == nil)

	clock.Tick(500 * time.Millisecond)
	fmt.Printf("x: %.0f\n", box.X())

	// Output:
	// handle absent: false
	// x: -20
}
