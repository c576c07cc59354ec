package keyframe

import (
	"fmt"
	"strings"
	"time"

	"github.com/tphakala/go-keyframe/internal/fixed"
)

// CurveKind selects how a segment blends from its start point to the next.
type CurveKind int

const (
	// CurveStep holds the start value until the next point.
	CurveStep CurveKind = iota

	// CurveLinear blends at constant speed.
	CurveLinear

	// CurveSlow eases in: a³.
	CurveSlow

	// CurveFast eases out: 1 - (1-a)³.
	CurveFast

	// CurveSmooth eases in and out with zero slope at both ends: -2a³ + 3a².
	CurveSmooth

	// CurveBezier follows a per-channel cubic Bezier defined by tangent
	// handles, parameterised by time.
	CurveBezier
)

var curveKindNames = [...]string{
	CurveStep:   "step",
	CurveLinear: "linear",
	CurveSlow:   "slow",
	CurveFast:   "fast",
	CurveSmooth: "smooth",
	CurveBezier: "bezier",
}

// String returns the lower-case curve name.
func (k CurveKind) String() string {
	if k < 0 || int(k) >= len(curveKindNames) {
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
	return curveKindNames[k]
}

// ParseCurveKind parses a curve name as produced by CurveKind.String.
// Matching is case-insensitive.
func ParseCurveKind(s string) (CurveKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range curveKindNames {
		if n == name {
			return CurveKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown curve %q", ErrInvalidTrack, s)
}

// Handle is a Bezier tangent handle, relative to the point it belongs to.
type Handle struct {
	Time  time.Duration
	Value Fixed
}

// Tangent holds the handles of one channel.
//
// Out is added to the segment start point. In is stored pointing backwards
// from the segment end point: its time is subtracted and its value added.
type Tangent struct {
	Out Handle
	In  Handle
}

// Curve is the interpolation applied from a point to the next one.
// Tangents is only read when Kind is CurveBezier.
type Curve struct {
	Kind     CurveKind
	Tangents [MaxChannels]Tangent
}

// Step returns a step curve.
func Step() Curve { return Curve{Kind: CurveStep} }

// Linear returns a linear curve.
func Linear() Curve { return Curve{Kind: CurveLinear} }

// Slow returns an ease-in curve.
func Slow() Curve { return Curve{Kind: CurveSlow} }

// Fast returns an ease-out curve.
func Fast() Curve { return Curve{Kind: CurveFast} }

// Smooth returns an ease-in-out curve.
func Smooth() Curve { return Curve{Kind: CurveSmooth} }

// Bezier returns a Bezier curve with per-channel tangents.
// Channels beyond len(tangents) get zero handles; extra tangents are ignored.
func Bezier(tangents ...Tangent) Curve {
	c := Curve{Kind: CurveBezier}
	copy(c.Tangents[:], tangents)
	return c
}

// shape maps the linear segment progress a onto the curve's blend factor.
// Bezier curves are evaluated per channel and never reach this point.
func shape(kind CurveKind, a Fixed) Fixed {
	switch kind {
	case CurveStep:
		return 0
	case CurveSlow:
		return a.Mul(a).Mul(a)
	case CurveFast:
		r := fixed.One.Sub(a)
		return fixed.One.Sub(r.Mul(r).Mul(r))
	case CurveSmooth:
		cubic := fixed.FromInt(smoothCubicCoeff).Mul(a).Mul(a).Mul(a)
		return cubic.Add(fixed.FromInt(smoothSquareCoeff).Mul(a).Mul(a))
	default:
		return a
	}
}
