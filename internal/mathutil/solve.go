// Package mathutil provides the polynomial and curve primitives used by
// keyframe evaluation.
package mathutil

import (
	"math"
)

// SolveBezier returns the parameter t for which the one-dimensional cubic
// Bezier with control values p0..p3 equals x.
//
// The curve is expanded to the power basis x3·t³ + x2·t² + x1·t + x0 = 0 and
// solved analytically. Degree detection compares the computed coefficients
// against zero exactly:
//   - x3 == 0 && x2 == 0: linear, 0 when x1 == 0
//   - x3 == 0: quadratic, 0 when the constant term is 0
//   - otherwise: cubic via Cardano's method, trigonometric form when the
//     discriminant is negative
//
// When several roots exist the first one inside [0, 1.0001] is returned.
// If none qualifies the last alternative is returned as is, without a range
// check, and the caller is expected to clamp. The single-root cubic branch
// never range checks either.
func SolveBezier(x, p0, p1, p2, p3 float64) float64 {
	x3 := -p0 + bezierCoeff3*p1 - bezierCoeff3*p2 + p3
	x2 := bezierCoeff3*p0 - bezierCoeff6*p1 + bezierCoeff3*p2
	x1 := -bezierCoeff3*p0 + bezierCoeff3*p1
	x0 := p0 - x

	switch {
	case x3 == 0 && x2 == 0:
		return solveLinear(x1, x0)
	case x3 == 0:
		return solveQuadratic(x1/x2, x0/x2)
	default:
		return solveCubic(x2/x3, x1/x3, x0/x3)
	}
}

// solveLinear solves a·t + b = 0.
func solveLinear(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	return -b / a
}

// solveQuadratic solves t² + b·t + c = 0.
func solveQuadratic(b, c float64) float64 {
	if c == 0 {
		return 0
	}

	sqrtD := math.Sqrt(b*b - quadraticDiscFour*c)

	t := (-b + sqrtD) / cardanoTwo
	if inRootRange(t) {
		return t
	}
	return (-b - sqrtD) / cardanoTwo
}

// solveCubic solves t³ + a·t² + b·t + c = 0.
func solveCubic(a, b, c float64) float64 {
	// substitute t = y - a/3
	sub := a / cardanoThird

	// depressed form y³ + p·y + q = 0
	p := b/cardanoThird - a*a/cardanoNinth
	q := (cardanoTwo*a*a*a/cardanoTwentySeven - a*b/cardanoThird + c) / cardanoTwo

	d := q*q + p*p*p

	switch {
	case d > 0:
		// one real root
		s := math.Sqrt(d)
		return math.Cbrt(s-q) - math.Cbrt(s+q) - sub

	case d == 0:
		// a single and a double root, or a triple root
		s := math.Cbrt(-q)
		t := cardanoTwo*s - sub
		if inRootRange(t) {
			return t
		}
		return -s - sub

	default:
		// casus irreducibilis: three distinct real roots
		phi := math.Acos(-q/math.Sqrt(-(p*p*p))) / cardanoThird
		s := cardanoTwo * math.Sqrt(-p)

		t1 := s*math.Cos(phi) - sub
		if inRootRange(t1) {
			return t1
		}

		t2 := -s*math.Cos(phi+math.Pi/cardanoThird) - sub
		if inRootRange(t2) {
			return t2
		}
		return -s*math.Cos(phi-math.Pi/cardanoThird) - sub
	}
}

func inRootRange(t float64) bool {
	return rootLowerBound <= t && t <= rootUpperBound
}
