package keyframe

import (
	"errors"
	"fmt"
	"time"

	"github.com/tphakala/go-keyframe/internal/fixed"
)

// Fixed is the Q32.32 fixed-point scalar used for blend factors, Bezier
// control polygons and tangent handle values.
type Fixed = fixed.Q

// Scalar is the set of channel value types a track can hold.
// Values convert to Fixed for interpolation and back for the result.
type Scalar interface {
	fixed.Number
}

// Value is a fixed-size multi-channel value. Only the first Track.Channels
// entries are meaningful.
type Value[F Scalar] [MaxChannels]F

// Point is a keyframe: a value at a time and the curve leading to the next
// point.
type Point[F Scalar] struct {
	Time  time.Duration
	Value Value[F]
	Curve Curve
}

// Track is an ordered sequence of points animating one property.
// The evaluator never modifies Points.
type Track[F Scalar] struct {
	Points []Point[F]

	// Channels is the number of animated channels, 1..MaxChannels.
	Channels int
}

// Common errors returned by track validation and sampling.
var (
	// ErrInvalidTrack indicates a malformed track.
	ErrInvalidTrack = errors.New("invalid keyframe track")

	// ErrInvalidConfig indicates invalid sampling parameters.
	ErrInvalidConfig = errors.New("invalid sample configuration")

	// ErrInvalidChannel indicates a channel index outside the sampled range.
	ErrInvalidChannel = errors.New("invalid channel")
)

// At evaluates the track at the given time. See Eval.
func (t Track[F]) At(at time.Duration) Value[F] {
	return Eval(t.Points, at, t.Channels)
}

// Len returns the number of points.
func (t Track[F]) Len() int { return len(t.Points) }

// Span returns the time between the first and the last point, the period
// with which the track loops. Empty and single-point tracks have no span.
func (t Track[F]) Span() time.Duration {
	if len(t.Points) < 2 {
		return 0
	}
	return max(t.Points[len(t.Points)-1].Time-t.Points[0].Time, 0)
}

// Validate checks the invariants Eval relies on.
func (t *Track[F]) Validate() error {
	if t.Channels < 1 || t.Channels > MaxChannels {
		return fmt.Errorf("%w: channels must be 1-%d, got %d", ErrInvalidTrack, MaxChannels, t.Channels)
	}

	for i := range t.Points {
		p := &t.Points[i]
		if p.Time < 0 {
			return fmt.Errorf("%w: point %d has negative time %v", ErrInvalidTrack, i, p.Time)
		}
		if i > 0 && p.Time < t.Points[i-1].Time {
			return fmt.Errorf("%w: point %d at %v precedes point %d at %v",
				ErrInvalidTrack, i, p.Time, i-1, t.Points[i-1].Time)
		}
		if p.Curve.Kind < CurveStep || p.Curve.Kind > CurveBezier {
			return fmt.Errorf("%w: point %d has unknown curve %v", ErrInvalidTrack, i, p.Curve.Kind)
		}
		if p.Curve.Kind == CurveBezier {
			for c := range t.Channels {
				tan := p.Curve.Tangents[c]
				if tan.Out.Time < 0 || tan.In.Time < 0 {
					return fmt.Errorf("%w: point %d channel %d has a backwards tangent handle",
						ErrInvalidTrack, i, c)
				}
			}
		}
	}

	return nil
}
