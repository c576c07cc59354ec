// Package keyframe evaluates keyframe animation tracks in pure Go.
//
// A [Track] is an ordered list of [Point] values, each holding up to
// [MaxChannels] channel values and the [Curve] that leads to the next point.
// Evaluation is deterministic: blend factors, Bezier control polygons and
// tangent handles are computed in Q32.32 fixed point, so the same track gives
// the same result on every platform.
//
// # Features
//
//   - Step, linear, ease-in, ease-out, smoothstep and per-channel Bezier curves
//   - Channel values of type float32, float64, int32, int64, uint8 or [Fixed]
//   - Looping playback: queries outside the track wrap over its span
//   - Allocation-free [Eval], safe for concurrent use on shared points
//   - Fixed-rate baking with [SampleTrack], optionally split across goroutines
//   - SIMD-accelerated statistics and normalisation of baked samples via
//     github.com/tphakala/simd
//
// # Quick Start
//
//	track, err := keyframe.NewTrack(1,
//	    keyframe.Key(0, keyframe.Linear(), 0.0),
//	    keyframe.Key(time.Second, keyframe.Linear(), 10.0),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := track.At(500 * time.Millisecond) // v[0] == 5
//
// # Curves
//
// Every curve except Bezier computes one blend factor a in [0, 1] from the
// position of the query inside its segment and mixes the two point values:
//
//   - [Step]: a = 0, the start value holds until the next point
//   - [Linear]: a
//   - [Slow]: a³
//   - [Fast]: 1 - (1-a)³
//   - [Smooth]: -2a³ + 3a²
//
// A [Bezier] curve builds, per channel, a cubic whose control points are the
// segment end points in the (milliseconds, value) plane plus the tangent
// handles. The handle times are clamped into the segment, the cubic's time
// polynomial is solved for the query time and the value polynomial is
// evaluated at the resulting parameter.
//
// # Looping
//
// Queries are reduced to first.Time + |t| mod span, where span is the time
// between the first and last point. Negative times mirror positive ones and a
// query at exactly the last point's time yields the first point's value.
//
// # Sampling
//
// [SampleTrack] bakes a track at a fixed rate into planar float32 or float64
// buffers. [Samples] offers [Samples.Stats], [Samples.Normalize] and
// [Samples.Interleave] on the result. The cmd/curve-eval and cmd/bake-wav
// tools load tracks from TOML or YAML files and print or render them.
package keyframe
