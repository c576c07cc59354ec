package fixed

// Q32.32 layout
const (
	Shift = 32
	One   = Q(1) << Shift
	Half  = Q(1) << (Shift - 1)
	Mask  = One - 1

	// scaleF is One as float64 for float conversions.
	scaleF = float64(One)
)

// Saturation bounds for float conversion. float64(math.MaxInt64) rounds up
// to 2^63, so anything at or above it cannot be represented.
const (
	maxRawF = 9223372036854775808.0  // 2^63
	minRawF = -9223372036854775808.0 // -2^63
)

// Integer output ranges used by FromFixed.
const (
	maxUint8 = 255
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31
)
