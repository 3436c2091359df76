package animation

import "github.com/tanema/gween/ease"

// FromEase adapts a Penner-style easing function from gween/ease into a
// [Curve]. The gween catalogue (ease.OutBounce, ease.InOutElastic, and so on)
// covers the families the built-in bezier presets do not.
//
// Penner functions take (elapsed, begin, change, duration); evaluating with
// begin=0, change=1, duration=1 yields the normalized progress a Curve returns.
func FromEase(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}
