package animation_test

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/go-motion/motion/pkg/animation"
	motionerrors "github.com/go-motion/motion/pkg/errors"
)

func TestLinear(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := animation.Linear(v); got != v {
			t.Errorf("Linear(%v) = %v, want %v", v, got, v)
		}
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curves := map[string]animation.Curve{
		"ease":        animation.Ease,
		"ease-in":     animation.EaseIn,
		"ease-out":    animation.EaseOut,
		"ease-in-out": animation.EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestCubicBezierIdentity(t *testing.T) {
	// Control points on the diagonal produce the identity curve.
	curve := animation.CubicBezier(0.25, 0.25, 0.75, 0.75)
	for _, v := range []float64{0.1, 0.3, 0.5, 0.9} {
		if got := curve(v); math.Abs(got-v) > 1e-5 {
			t.Errorf("identity bezier at %v = %v", v, got)
		}
	}
}

func TestCubicBezierClampsInput(t *testing.T) {
	curve := animation.EaseInOut
	if got := curve(-0.5); got != 0 {
		t.Errorf("expected 0 for t below range, got %v", got)
	}
	if got := curve(1.5); got != 1 {
		t.Errorf("expected 1 for t above range, got %v", got)
	}
}

func TestFromEase(t *testing.T) {
	linear := animation.FromEase(ease.Linear)
	for _, v := range []float64{0, 0.5, 1} {
		if got := linear(v); math.Abs(got-v) > 1e-6 {
			t.Errorf("FromEase(Linear)(%v) = %v", v, got)
		}
	}

	// Penner back easing dips below zero early on.
	back := animation.FromEase(ease.InBack)
	if got := back(0.2); got >= 0 {
		t.Errorf("expected InBack to undershoot at 0.2, got %v", got)
	}
	if got := back(1); math.Abs(got-1) > 1e-6 {
		t.Errorf("FromEase(InBack)(1) = %v, want 1", got)
	}
}

func TestParseCurveNamed(t *testing.T) {
	for _, name := range []string{
		"linear", "ease", "ease-in", "ease-out", "ease-in-out",
		"out-bounce", "in-elastic", "OUT-BACK", " ease-in ",
	} {
		curve, err := animation.ParseCurve(name)
		if err != nil {
			t.Errorf("ParseCurve(%q) failed: %v", name, err)
			continue
		}
		if curve == nil {
			t.Errorf("ParseCurve(%q) returned nil curve", name)
		}
	}
}

func TestParseCurveCubicBezier(t *testing.T) {
	curve, err := animation.ParseCurve("cubic-bezier(0.25, 0.25, 0.75, 0.75)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := curve(0.5); math.Abs(got-0.5) > 1e-5 {
		t.Errorf("parsed identity bezier at 0.5 = %v", got)
	}
}

func TestParseCurveErrors(t *testing.T) {
	for _, s := range []string{
		"", "wobble", "cubic-bezier(1,2,3)", "cubic-bezier(a,b,c,d)", "cubic-bezier(1,2,3,4",
	} {
		_, err := animation.ParseCurve(s)
		if err == nil {
			t.Errorf("ParseCurve(%q) succeeded, want error", s)
			continue
		}
		if !motionerrors.IsKind(err, motionerrors.KindParsing) {
			t.Errorf("ParseCurve(%q) error kind = %v, want parsing", s, err)
		}
	}
}

func TestCurveSpecYAML(t *testing.T) {
	var cfg struct {
		Curve animation.CurveSpec `yaml:"curve"`
	}
	if err := yaml.Unmarshal([]byte("curve: ease-out\n"), &cfg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if cfg.Curve.Name != "ease-out" {
		t.Errorf("expected name ease-out, got %q", cfg.Curve.Name)
	}
	if got := cfg.Curve.Resolve()(1); got != 1 {
		t.Errorf("resolved curve at 1 = %v, want 1", got)
	}

	if err := yaml.Unmarshal([]byte("curve: wobble\n"), &cfg); err == nil {
		t.Error("expected unmarshal error for unknown curve")
	}
}

func TestCurveSpecZeroResolvesLinear(t *testing.T) {
	var spec animation.CurveSpec
	if got := spec.Resolve()(0.3); got != 0.3 {
		t.Errorf("zero spec should resolve to linear, got %v at 0.3", got)
	}
}
