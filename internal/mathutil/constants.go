package mathutil

// Bezier to power-basis expansion coefficients
//
//	x3 = -p0 + 3p1 - 3p2 + p3
//	x2 = 3p0 - 6p1 + 3p2
//	x1 = -3p0 + 3p1
const (
	bezierCoeff3 = 3.0
	bezierCoeff6 = 6.0
)

// Cardano's method constants for the depressed cubic y³ + py + q = 0
const (
	cardanoThird       = 3.0  // a/3 substitution and p = b/3 - a²/9
	cardanoNinth       = 9.0  // a²/9
	cardanoTwentySeven = 27.0 // 2a³/27
	cardanoTwo         = 2.0  // q halving, root doubling
	quadraticDiscFour  = 4.0  // b² - 4c
)

// Root acceptance window. Roots are accepted when 0 <= t <= rootUpperBound.
// The tolerance above 1 absorbs rounding from the fixed-point tangent
// construction at the segment end.
const (
	rootLowerBound = 0.0
	rootUpperBound = 1.0001
)
