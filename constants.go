package keyframe

import "time"

// Channel limits
const (
	// MaxChannels is the largest channel count a track may animate
	// (RGBA colour, XY position plus rotation, ...).
	MaxChannels = 4

	stereoChannels = 2 // Channel count with a SIMD interleave fast path
)

// Segment evaluation constants
const (
	// minSegmentDelta floors the divisor of the blend factor so stacked
	// keyframes do not divide by zero.
	minSegmentDelta = 100 * time.Nanosecond

	// millisPerSecond converts durations to the millisecond plane in which
	// Bezier control polygons are solved.
	millisPerSecond = 1000.0
)

// Blend factor shaping coefficients
const (
	smoothCubicCoeff  = -2 // Hermite smoothstep: -2a³ + 3a²
	smoothSquareCoeff = 3
)

// Sampling limits
const (
	maxSampleRate    = 1_000_000 // Samples per second
	maxSampleCount   = 1 << 26   // Per channel
	minWorkerSamples = 4096      // Smallest chunk handed to a parallel worker
)
