package view

import (
	"time"

	"github.com/go-motion/motion/pkg/animation"
	motionerrors "github.com/go-motion/motion/pkg/errors"
)

// propertyKey identifies one attribute of one view instance in the frame
// clock's replace registry, so a new animation on the same pair cancels the
// previous one.
type propertyKey struct {
	view *View
	attr Attribute
}

// AnimateWidth animates the view's width from its current value to target.
// It returns an absent (nil) handle when the call is a no-op: target equals
// the current width, or the view is detached or unmeasured. A negative
// duration or negative target is rejected with a KindInvalidArgument error.
//
// AnimateWidth never writes synchronously; the first write lands on the next
// frame clock tick.
func (v *View) AnimateWidth(target float64, duration time.Duration, curve animation.Curve) (*animation.Handle, error) {
	return v.animate("view.AnimateWidth", AttrWidth, target, duration, curve)
}

// AnimateHeight animates the view's height to target. Semantics match
// [View.AnimateWidth].
func (v *View) AnimateHeight(target float64, duration time.Duration, curve animation.Curve) (*animation.Handle, error) {
	return v.animate("view.AnimateHeight", AttrHeight, target, duration, curve)
}

// AnimateX animates the view's horizontal offset to target. Offsets may be
// negative. Other semantics match [View.AnimateWidth].
func (v *View) AnimateX(target float64, duration time.Duration, curve animation.Curve) (*animation.Handle, error) {
	return v.animate("view.AnimateX", AttrX, target, duration, curve)
}

// AnimateY animates the view's vertical offset to target. Offsets may be
// negative. Other semantics match [View.AnimateWidth].
func (v *View) AnimateY(target float64, duration time.Duration, curve animation.Curve) (*animation.Handle, error) {
	return v.animate("view.AnimateY", AttrY, target, duration, curve)
}

// AnimateWidthBy animates the width by a relative delta. The absolute target
// is resolved against the current width at call time; a resolved negative
// width is rejected, and a zero delta is a no-op returning an absent handle.
func (v *View) AnimateWidthBy(delta float64, duration time.Duration, curve animation.Curve) (*animation.Handle, error) {
	return v.animate("view.AnimateWidthBy", AttrWidth, v.frame.Width+delta, duration, curve)
}

// AnimateHeightBy animates the height by a relative delta. Semantics match
// [View.AnimateWidthBy].
func (v *View) AnimateHeightBy(delta float64, duration time.Duration, curve animation.Curve) (*animation.Handle, error) {
	return v.animate("view.AnimateHeightBy", AttrHeight, v.frame.Height+delta, duration, curve)
}

// AnimateXBy animates the horizontal offset by a relative delta.
func (v *View) AnimateXBy(delta float64, duration time.Duration, curve animation.Curve) (*animation.Handle, error) {
	return v.animate("view.AnimateXBy", AttrX, v.frame.X+delta, duration, curve)
}

// AnimateYBy animates the vertical offset by a relative delta.
func (v *View) AnimateYBy(delta float64, duration time.Duration, curve animation.Curve) (*animation.Handle, error) {
	return v.animate("view.AnimateYBy", AttrY, v.frame.Y+delta, duration, curve)
}

// animate validates the call, applies the no-op short circuits, and hands the
// tween to the frame clock. Argument errors are reported before the inert
// short circuits so programming errors never pass silently.
func (v *View) animate(op string, attr Attribute, target float64, duration time.Duration, curve animation.Curve) (*animation.Handle, error) {
	if duration < 0 {
		return nil, motionerrors.New(op, motionerrors.KindInvalidArgument, "negative duration %v", duration)
	}
	if attr.isSize() && target < 0 {
		return nil, motionerrors.New(op, motionerrors.KindInvalidArgument, "negative %s %v", attr, target)
	}
	if v.clock == nil || !v.measured {
		return nil, nil
	}
	return v.clock.Animate(propertyKey{view: v, attr: attr}, v.property(attr), target, duration, curve)
}

// property returns the accessor for one attribute of this view.
func (v *View) property(attr Attribute) animation.Property {
	switch attr {
	case AttrWidth:
		return animation.PropertyOf(
			func() float64 { return v.frame.Width },
			func(value float64) { v.frame.Width = value },
		)
	case AttrHeight:
		return animation.PropertyOf(
			func() float64 { return v.frame.Height },
			func(value float64) { v.frame.Height = value },
		)
	case AttrX:
		return animation.PropertyOf(
			func() float64 { return v.frame.X },
			func(value float64) { v.frame.X = value },
		)
	default:
		return animation.PropertyOf(
			func() float64 { return v.frame.Y },
			func(value float64) { v.frame.Y = value },
		)
	}
}
