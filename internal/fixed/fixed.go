// Package fixed implements the Q32.32 fixed-point scalar used for keyframe
// channel values and blend factors.
//
// Arithmetic uses 128-bit intermediates from math/bits so products and
// quotients never lose the integer part. Results that do not fit saturate
// at the int64 range instead of wrapping.
package fixed

import (
	"math"
	"math/bits"
)

// Q is a signed Q32.32 fixed-point number.
type Q int64

// FromFloat converts f to Q, rounding half to even.
// NaN maps to 0; values outside the representable range saturate.
func FromFloat(f float64) Q {
	if math.IsNaN(f) {
		return 0
	}
	v := math.RoundToEven(f * scaleF)
	if v >= maxRawF {
		return math.MaxInt64
	}
	if v < minRawF {
		return math.MinInt64
	}
	return Q(v)
}

// FromInt converts an integer to Q, saturating outside ±2^31.
func FromInt(i int64) Q {
	if i > maxInt32 {
		return math.MaxInt64
	}
	if i < minInt32 {
		return math.MinInt64
	}
	return Q(i << Shift)
}

// Float64 returns q as a float64.
func (q Q) Float64() float64 { return float64(q) / scaleF }

// Int returns the integer part of q, rounded toward negative infinity.
func (q Q) Int() int64 { return int64(q >> Shift) }

// Raw returns the underlying Q32.32 bits.
func (q Q) Raw() int64 { return int64(q) }

// Add returns q + o, saturating on overflow.
func (q Q) Add(o Q) Q {
	s := q + o
	// Overflow iff both operands share a sign that the sum does not.
	if (q >= 0) == (o >= 0) && (s >= 0) != (q >= 0) {
		if q >= 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return s
}

// Sub returns q - o, saturating on overflow.
func (q Q) Sub(o Q) Q {
	if o == math.MinInt64 {
		if q >= 0 {
			return math.MaxInt64
		}
		return q - o
	}
	return q.Add(-o)
}

// Neg returns -q. The most negative value saturates to the most positive.
func (q Q) Neg() Q {
	if q == math.MinInt64 {
		return math.MaxInt64
	}
	return -q
}

// Mul returns q * o.
func (q Q) Mul(o Q) Q { return Mul(q, o) }

// Div returns q / o.
func (q Q) Div(o Q) Q { return Div(q, o) }

// Clamp limits q to [lo, hi].
func (q Q) Clamp(lo, hi Q) Q {
	if q < lo {
		return lo
	}
	if q > hi {
		return hi
	}
	return q
}

// Mul multiplies two Q32.32 values through a 128-bit product.
// The result truncates toward zero.
func Mul(a, b Q) Q {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := absU(a), absU(b)

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	if hi>>31 != 0 {
		return saturate(negative)
	}
	return signed((hi<<32)|(lo>>32), negative)
}

// Div divides two Q32.32 values. Division by zero yields 0; results that do
// not fit saturate. The quotient truncates toward zero.
func Div(a, b Q) Q {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := absU(a), absU(b)

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> Shift
	lo := ua << Shift

	// bits.Div64 panics when the quotient overflows 64 bits
	if hi >= ub {
		return saturate(negative)
	}

	quo, _ := bits.Div64(hi, lo, ub)
	return signed(quo, negative)
}

// Ratio returns num/den as Q32.32 for plain integers, e.g. elapsed
// nanoseconds over a segment length. The quotient is exact up to truncation.
func Ratio(num, den int64) Q {
	return Div(Q(num), Q(den))
}

func absU(v Q) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func signed(mag uint64, negative bool) Q {
	if negative {
		if mag > 1<<63 {
			return math.MinInt64
		}
		return Q(-int64(mag))
	}
	if mag > math.MaxInt64 {
		return math.MaxInt64
	}
	return Q(mag)
}

func saturate(negative bool) Q {
	if negative {
		return math.MinInt64
	}
	return math.MaxInt64
}
