// Package view provides the UI element the motion engine animates, together
// with the small catalogue of convenience helpers hosts call on it:
// visibility toggles, padding setters, frame accessors, and the
// width/height/x/y animation facade.
//
// A View carries no rendering of its own. The host lays it out with SetFrame,
// attaches it to an [animation.FrameClock], reads the frame back each time it
// draws, and everything in between is plain state.
package view

import (
	"fmt"

	"github.com/go-motion/motion/pkg/animation"
	"github.com/go-motion/motion/pkg/geometry"
)

// Attribute identifies one animatable scalar attribute of a View.
type Attribute int

const (
	// AttrWidth is the view's frame width. Size attributes reject negative
	// targets.
	AttrWidth Attribute = iota
	// AttrHeight is the view's frame height.
	AttrHeight
	// AttrX is the view's horizontal offset.
	AttrX
	// AttrY is the view's vertical offset.
	AttrY
)

// String returns a human-readable representation of the attribute.
func (a Attribute) String() string {
	switch a {
	case AttrWidth:
		return "width"
	case AttrHeight:
		return "height"
	case AttrX:
		return "x"
	case AttrY:
		return "y"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// isSize reports whether the attribute is a dimension, which must stay
// non-negative, as opposed to an offset, which may be any value.
func (a Attribute) isSize() bool {
	return a == AttrWidth || a == AttrHeight
}

// Visibility controls whether a view is drawn and whether it takes up space.
type Visibility int

const (
	// Visible means the view is drawn normally.
	Visible Visibility = iota
	// Invisible means the view is not drawn but still occupies its frame.
	Invisible
	// Gone means the view is neither drawn nor occupies space.
	Gone
)

// String returns a human-readable representation of the visibility.
func (vis Visibility) String() string {
	switch vis {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return fmt.Sprintf("Visibility(%d)", int(vis))
	}
}

// View is one host-rendered UI element: a frame, padding, a visibility flag,
// and an optional binding to the frame clock that animates it.
//
// Views follow the engine's single-threaded model: all mutation happens on
// the goroutine that ticks the clock.
type View struct {
	frame      geometry.Rect
	padding    geometry.EdgeInsets
	visibility Visibility
	clock      *animation.FrameClock
	measured   bool
}

// New creates a detached, unmeasured view. Animation calls on it are inert
// until the host attaches it to a clock and lays it out with SetFrame.
func New() *View {
	return &View{}
}

// Attach binds the view to the frame clock that will drive its animations.
func (v *View) Attach(clock *animation.FrameClock) {
	v.clock = clock
}

// Detach unbinds the view from its frame clock. Tweens already running keep
// their captured accessor and finish normally; new animation calls become
// inert.
func (v *View) Detach() {
	v.clock = nil
}

// Attached reports whether the view is bound to a frame clock.
func (v *View) Attached() bool {
	return v.clock != nil
}

// SetFrame lays the view out at r and marks it measured.
func (v *View) SetFrame(r geometry.Rect) {
	v.frame = r
	v.measured = true
}

// Frame returns the view's current frame.
func (v *View) Frame() geometry.Rect {
	return v.frame
}

// Measured reports whether the view has layout state to animate against.
func (v *View) Measured() bool {
	return v.measured
}

// Width returns the frame width.
func (v *View) Width() float64 { return v.frame.Width }

// Height returns the frame height.
func (v *View) Height() float64 { return v.frame.Height }

// X returns the frame's horizontal offset.
func (v *View) X() float64 { return v.frame.X }

// Y returns the frame's vertical offset.
func (v *View) Y() float64 { return v.frame.Y }

// Resize sets the frame size immediately, without animating.
func (v *View) Resize(width, height float64) {
	v.frame.Width = width
	v.frame.Height = height
	v.measured = true
}

// MoveTo sets the frame origin immediately, without animating.
func (v *View) MoveTo(x, y float64) {
	v.frame.X = x
	v.frame.Y = y
}

// Show makes the view visible.
func (v *View) Show() {
	v.visibility = Visible
}

// Hide makes the view invisible while keeping its frame.
func (v *View) Hide() {
	v.visibility = Invisible
}

// Remove makes the view gone: neither drawn nor occupying space.
func (v *View) Remove() {
	v.visibility = Gone
}

// ToggleVisibility flips between Visible and Invisible. A Gone view becomes
// Visible.
func (v *View) ToggleVisibility() {
	if v.visibility == Visible {
		v.visibility = Invisible
	} else {
		v.visibility = Visible
	}
}

// Visibility returns the view's visibility state.
func (v *View) Visibility() Visibility {
	return v.visibility
}

// IsVisible reports whether the view is drawn.
func (v *View) IsVisible() bool {
	return v.visibility == Visible
}

// SetPadding sets the view's padding.
func (v *View) SetPadding(p geometry.EdgeInsets) {
	v.padding = p
}

// SetPaddingAll sets the same padding on every side.
func (v *View) SetPaddingAll(value float64) {
	v.padding = geometry.EdgeInsetsAll(value)
}

// SetHorizontalPadding sets the left and right padding, keeping top/bottom.
func (v *View) SetHorizontalPadding(value float64) {
	v.padding.Left = value
	v.padding.Right = value
}

// SetVerticalPadding sets the top and bottom padding, keeping left/right.
func (v *View) SetVerticalPadding(value float64) {
	v.padding.Top = value
	v.padding.Bottom = value
}

// Padding returns the view's padding.
func (v *View) Padding() geometry.EdgeInsets {
	return v.padding
}

// ContentFrame returns the frame inset by the view's padding. The size never
// goes below zero.
func (v *View) ContentFrame() geometry.Rect {
	r := geometry.Rect{
		X:      v.frame.X + v.padding.Left,
		Y:      v.frame.Y + v.padding.Top,
		Width:  v.frame.Width - v.padding.Horizontal(),
		Height: v.frame.Height - v.padding.Vertical(),
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}
