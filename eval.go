package keyframe

import (
	"math"
	"sort"
	"time"

	"github.com/tphakala/go-keyframe/internal/fixed"
	"github.com/tphakala/go-keyframe/internal/mathutil"
)

// Eval returns the value of points at the given time.
//
// points must be sorted by time. Queries outside the track loop over the
// span between the first and last point: the query is reduced to
// first.Time + |at| mod span. An empty track yields the zero value and a
// single point yields its value for any time. Only the first channels
// entries of the result are written; channels is clamped to MaxChannels.
//
// Eval allocates nothing and has no side effects, so it may be called
// concurrently on shared points.
func Eval[F Scalar](points []Point[F], at time.Duration, channels int) Value[F] {
	var res Value[F]
	if len(points) == 0 {
		return res
	}
	if len(points) == 1 {
		return points[0].Value
	}

	channels = min(max(channels, 0), MaxChannels)

	t := normalizeTime(points, at)
	prev, next := locateSegment(points, t)
	p1, p2 := &points[prev], &points[next]

	if p1.Curve.Kind == CurveBezier {
		return evalBezier(p1, p2, t, channels)
	}

	delta := max(p2.Time-p1.Time, minSegmentDelta)
	a := shape(p1.Curve.Kind, fixed.Ratio(int64(t-p1.Time), int64(delta)))

	for c := range channels {
		v0 := fixed.ToFixed(p1.Value[c])
		v1 := fixed.ToFixed(p2.Value[c])
		res[c] = fixed.FromFixed[F](mathutil.Mix(v0, v1, a))
	}

	return res
}

// normalizeTime maps at into [first.Time, last.Time) by looping over the
// track span. Tracks ending at zero, and tracks whose points all share one
// time, collapse to that time.
func normalizeTime[F Scalar](points []Point[F], at time.Duration) time.Duration {
	first := points[0].Time
	last := points[len(points)-1].Time
	if last == 0 {
		return 0
	}

	span := max(last-first, 0)
	if span == 0 {
		return first
	}

	return first + time.Duration(absDuration(at)%uint64(span))
}

// absDuration returns |d| without overflowing on math.MinInt64.
func absDuration(d time.Duration) uint64 {
	if d == math.MinInt64 {
		return 1 << 63
	}
	if d < 0 {
		return uint64(-d)
	}
	return uint64(d)
}

// locateSegment returns the indices of the points bracketing t: next is the
// first point strictly after t, clamped to the last point, and prev the one
// before it. Both are equal when t is at or beyond the final point.
func locateSegment[F Scalar](points []Point[F], t time.Duration) (prev, next int) {
	idx := sort.Search(len(points), func(i int) bool {
		return t < points[i].Time
	})
	prev = max(idx-1, 0)
	next = min(idx, len(points)-1)
	return prev, next
}

// evalBezier evaluates a Bezier segment channel by channel.
//
// Each channel forms a control polygon in the (milliseconds, value) plane.
// The handle times are clamped into the segment so the time coordinate is
// monotonic in the curve parameter, which is then solved for the query time
// and used to evaluate the value coordinate.
func evalBezier[F Scalar](p1, p2 *Point[F], t time.Duration, channels int) Value[F] {
	var res Value[F]

	x0 := millis(p1.Time)
	x3 := millis(p2.Time)
	target := t.Seconds() * millisPerSecond

	for c := range channels {
		tan := &p1.Curve.Tangents[c]

		p0 := fixed.V2(x0, fixed.ToFixed(p1.Value[c]))
		p3 := fixed.V2(x3, fixed.ToFixed(p2.Value[c]))

		cp1 := p0.Add(fixed.V2(millis(tan.Out.Time), tan.Out.Value))
		cp2 := p3.Add(fixed.V2(millis(-tan.In.Time), tan.In.Value))

		cp1.X = cp1.X.Clamp(p0.X, p3.X)
		cp2.X = cp2.X.Clamp(p0.X, p3.X)

		u := mathutil.SolveBezier(target,
			p0.X.Float64(), cp1.X.Float64(), cp2.X.Float64(), p3.X.Float64())
		a := fixed.FromFloat(min(max(u, 0), 1))

		res[c] = fixed.FromFixed[F](mathutil.Bezier(p0.Y, cp1.Y, cp2.Y, p3.Y, a))
	}

	return res
}

// millis converts d to fixed-point milliseconds.
func millis(d time.Duration) Fixed {
	return fixed.FromFloat(d.Seconds() * millisPerSecond)
}
