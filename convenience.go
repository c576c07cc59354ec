package keyframe

import (
	"time"

	"github.com/tphakala/go-keyframe/internal/fixed"
)

// Common frame rates for sampling.
const (
	// RateFilm is the cinema frame rate.
	RateFilm = 24

	// RatePAL is the PAL video frame rate.
	RatePAL = 25

	// RateNTSC is the nominal NTSC video frame rate.
	RateNTSC = 30

	// RateDisplay is the common desktop refresh rate.
	RateDisplay = 60

	// RateHighRefresh is a typical gaming monitor refresh rate.
	RateHighRefresh = 144
)

// NewTrack builds a track and validates it.
func NewTrack[F Scalar](channels int, points ...Point[F]) (Track[F], error) {
	t := Track[F]{Points: points, Channels: channels}
	if err := t.Validate(); err != nil {
		return Track[F]{}, err
	}
	return t, nil
}

// Key builds a point from up to MaxChannels values.
func Key[F Scalar](at time.Duration, curve Curve, values ...F) Point[F] {
	p := Point[F]{Time: at, Curve: curve}
	copy(p.Value[:], values)
	return p
}

// FixedFromFloat converts f to Fixed, rounding half to even.
func FixedFromFloat(f float64) Fixed {
	return fixed.FromFloat(f)
}

// H builds a tangent handle from a time offset and a float value.
func H(at time.Duration, value float64) Handle {
	return Handle{Time: at, Value: fixed.FromFloat(value)}
}

// SampleFrames bakes one loop of track at the given frame rate.
func SampleFrames[V Scalar](track Track[V], fps float64) (*Samples[float64], error) {
	return SampleTrack[float64](track, SampleConfig{
		Rate:           fps,
		EnableParallel: true,
	})
}
