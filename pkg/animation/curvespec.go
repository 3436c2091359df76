package animation

import (
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	motionerrors "github.com/go-motion/motion/pkg/errors"
)

// namedCurves maps the curve names accepted by ParseCurve. The CSS names map
// to the bezier presets; the remaining families come from the gween catalogue.
var namedCurves = map[string]Curve{
	"linear":         Linear,
	"ease":           Ease,
	"ease-in":        EaseIn,
	"ease-out":       EaseOut,
	"ease-in-out":    EaseInOut,
	"in-back":        FromEase(ease.InBack),
	"out-back":       FromEase(ease.OutBack),
	"in-bounce":      FromEase(ease.InBounce),
	"out-bounce":     FromEase(ease.OutBounce),
	"in-elastic":     FromEase(ease.InElastic),
	"out-elastic":    FromEase(ease.OutElastic),
	"in-out-elastic": FromEase(ease.InOutElastic),
}

// ParseCurve resolves a curve from its textual form: a named curve such as
// "ease-in-out" or "out-bounce", or "cubic-bezier(x1, y1, x2, y2)" with the
// CSS control-point syntax.
func ParseCurve(s string) (Curve, error) {
	const op = "animation.ParseCurve"

	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedCurves[name]; ok {
		return c, nil
	}

	if args, ok := strings.CutPrefix(name, "cubic-bezier("); ok {
		args, ok = strings.CutSuffix(args, ")")
		if !ok {
			return nil, motionerrors.New(op, motionerrors.KindParsing, "missing closing parenthesis in %q", s)
		}
		parts := strings.Split(args, ",")
		if len(parts) != 4 {
			return nil, motionerrors.New(op, motionerrors.KindParsing, "cubic-bezier wants 4 control values, got %d", len(parts))
		}
		var p [4]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, motionerrors.New(op, motionerrors.KindParsing, "bad control value %q", part)
			}
			p[i] = v
		}
		return CubicBezier(p[0], p[1], p[2], p[3]), nil
	}

	return nil, motionerrors.New(op, motionerrors.KindParsing, "unknown curve %q", s)
}

// CurveSpec is a Curve together with the text it was parsed from, so hosts
// can declare curves in configuration files:
//
//	curve: cubic-bezier(0.22, 1.0, 0.36, 1.0)
//
// The zero CurveSpec resolves to [Linear].
type CurveSpec struct {
	Name  string
	Curve Curve
}

// Resolve returns the parsed curve, or Linear when the spec is empty.
func (s CurveSpec) Resolve() Curve {
	if s.Curve == nil {
		return Linear
	}
	return s.Curve
}

// UnmarshalYAML parses a scalar curve name via ParseCurve.
func (s *CurveSpec) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	curve, err := ParseCurve(name)
	if err != nil {
		return err
	}
	s.Name = name
	s.Curve = curve
	return nil
}

// MarshalYAML writes the curve back as its textual name.
func (s CurveSpec) MarshalYAML() (any, error) {
	return s.Name, nil
}
