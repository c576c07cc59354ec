package fixed

import "math"

// Number is the set of channel scalar types that convert to and from Q.
type Number interface {
	float32 | float64 | int32 | int64 | uint8 | Q
}

// ToFixed converts a channel scalar to Q.
// Floats round half to even; integers are exact (int64 saturates).
func ToFixed[F Number](v F) Q {
	switch x := any(v).(type) {
	case Q:
		return x
	case float64:
		return FromFloat(x)
	case float32:
		return FromFloat(float64(x))
	case int64:
		return FromInt(x)
	case int32:
		return FromInt(int64(x))
	case uint8:
		return FromInt(int64(x))
	default:
		panic("fixed: unsupported scalar type")
	}
}

// FromFixed converts q to a channel scalar.
// Integer targets take the floor of q and saturate to their range.
func FromFixed[F Number](q Q) F {
	var zero F
	switch any(zero).(type) {
	case Q:
		return F(q)
	case float64:
		return F(q.Float64())
	case float32:
		return F(float32(q.Float64()))
	case int64:
		return F(q.Int())
	case int32:
		return F(clampInt(q.Int(), minInt32, maxInt32))
	case uint8:
		return F(clampInt(q.Int(), 0, maxUint8))
	default:
		panic("fixed: unsupported scalar type")
	}
}

func clampInt(v, lo, hi int64) int64 {
	return min(max(v, lo), hi)
}

// IsFinite reports whether f converts to Q without saturating or collapsing.
func IsFinite(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	v := f * scaleF
	return v < maxRawF && v >= minRawF
}
