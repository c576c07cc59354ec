package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roundTripTolerance = 1e-3

// solverBranch mirrors the case analysis of SolveBezier so tests can assert
// which branch a set of control points exercises.
func solverBranch(x, p0, p1, p2, p3 float64) string {
	x3 := -p0 + 3*p1 - 3*p2 + p3
	x2 := 3*p0 - 6*p1 + 3*p2
	x1 := -3*p0 + 3*p1
	x0 := p0 - x

	switch {
	case x3 == 0 && x2 == 0:
		return "linear"
	case x3 == 0:
		return "quadratic"
	}

	a, b, c := x2/x3, x1/x3, x0/x3
	p := b/3 - a*a/9
	q := (2*a*a*a/27 - a*b/3 + c) / 2
	d := q*q + p*p*p

	switch {
	case d > 0:
		return "cubic-single"
	case d == 0:
		return "cubic-double"
	default:
		return "cubic-three"
	}
}

// bezier1D evaluates the Bernstein form directly, independent of Bezier.
func bezier1D(t, p0, p1, p2, p3 float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}

func TestSolveBezier_RoundTrip(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, p2, p3 float64
		ts             []float64
		branch         string
	}{
		{
			name: "Linear evenly spaced",
			p0:   0, p1: 1, p2: 2, p3: 3,
			ts:     []float64{0.1, 0.4, 0.5, 0.9},
			branch: "linear",
		},
		{
			name: "Quadratic first root",
			p0:   0, p1: 0, p2: 1, p3: 3,
			ts:     []float64{0.2, 0.5, 0.8},
			branch: "quadratic",
		},
		{
			name: "Quadratic second root",
			p0:   0, p1: 1, p2: 1.5, p3: 1.5,
			ts:     []float64{0.25, 0.5, 0.75},
			branch: "quadratic",
		},
		{
			name: "Cubic one real root",
			p0:   0, p1: 400, p2: 600, p3: 1000,
			ts:     []float64{0.1, 0.25, 0.5, 0.75, 0.9},
			branch: "cubic-single",
		},
		{
			name: "Cubic steep start",
			p0:   0, p1: 0, p2: 0, p3: 1000,
			ts:     []float64{0.1, 0.5, 0.9},
			branch: "cubic-single",
		},
		{
			name: "Cubic three real roots",
			p0:   0, p1: 100, p2: 900, p3: 1000,
			ts:     []float64{0.1, 0.25, 0.5, 0.75, 0.9},
			branch: "cubic-three",
		},
		{
			name: "Cubic ease in out",
			p0:   0, p1: 0, p2: 1000, p3: 1000,
			ts:     []float64{0.1, 0.25, 0.5, 0.75, 0.9},
			branch: "cubic-three",
		},
		{
			name: "Cubic inflection triple root",
			p0:   0, p1: 250, p2: 0, p3: 250,
			ts:     []float64{0.5},
			branch: "cubic-double",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.ts {
				x := bezier1D(want, tt.p0, tt.p1, tt.p2, tt.p3)
				require.Equal(t, tt.branch, solverBranch(x, tt.p0, tt.p1, tt.p2, tt.p3),
					"unexpected branch at t=%v", want)

				got := SolveBezier(x, tt.p0, tt.p1, tt.p2, tt.p3)
				assert.InDelta(t, want, got, roundTripTolerance, "t=%v x=%v", want, x)
			}
		})
	}
}

func TestSolveBezier_Endpoints(t *testing.T) {
	curves := [][4]float64{
		{0, 400, 600, 1000},
		{0, 100, 900, 1000},
		{0, 0, 1000, 1000},
		{0, 1000, 1000, 1000},
		{1000, 1250, 1750, 2000},
	}

	for _, c := range curves {
		start := SolveBezier(c[0], c[0], c[1], c[2], c[3])
		end := SolveBezier(c[3], c[0], c[1], c[2], c[3])

		// The caller clamps, so only the clamped result has to be exact.
		assert.InDelta(t, 0.0, clamp01(start), 1e-9, "start of %v", c)
		assert.InDelta(t, 1.0, clamp01(end), 1e-9, "end of %v", c)
	}
}

func TestSolveBezier_Degenerate(t *testing.T) {
	t.Run("Flat curve has no solution", func(t *testing.T) {
		assert.Equal(t, 0.0, SolveBezier(7, 5, 5, 5, 5))
	})

	t.Run("Quadratic with zero constant term", func(t *testing.T) {
		assert.Equal(t, 0.0, SolveBezier(0, 0, 0, 1, 3))
	})

	t.Run("Zero length segment", func(t *testing.T) {
		got := SolveBezier(0, 0, 0, 0, 0)
		assert.Equal(t, 0.0, got)
	})
}

func TestSolveQuadratic_SecondRootUnchecked(t *testing.T) {
	// t² - 3t + 2 = 0 has roots 1 and 2; (3+1)/2 = 2 is rejected and
	// (3-1)/2 = 1 returned.
	assert.InDelta(t, 1.0, solveQuadratic(-3, 2), 1e-12)

	// t² - 5t + 6 = 0 has roots 2 and 3, neither in range. The second is
	// returned without a range check.
	assert.InDelta(t, 2.0, solveQuadratic(-5, 6), 1e-12)
}

func TestSolveCubic_DoubleRoot(t *testing.T) {
	// (t - 0.5)³: p = q = 0, triple root at 0.5
	assert.InDelta(t, 0.5, solveCubic(-1.5, 0.75, -0.125), 1e-12)

	// (t - 2)(t - 0.5)²: the single root 2 is rejected, the double root 0.5
	// is returned
	assert.InDelta(t, 0.5, solveCubic(-3, 2.25, -0.5), 1e-12)
}

func TestSolveCubic_ThreeRootsPolicy(t *testing.T) {
	tests := []struct {
		name  string
		roots [3]float64
		want  float64
	}{
		{"Largest in range", [3]float64{0.2, 0.5, 0.9}, 0.9},
		{"Middle in range", [3]float64{-0.5, 0.3, 2.0}, 0.3},
		{"Smallest returned unconditionally", [3]float64{0.5, 1.5, 2.0}, 0.5},
		{"None in range", [3]float64{-1, -0.5, 3}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.roots
			// expand (t-r0)(t-r1)(t-r2)
			a := -(r[0] + r[1] + r[2])
			b := r[0]*r[1] + r[0]*r[2] + r[1]*r[2]
			c := -r[0] * r[1] * r[2]

			assert.InDelta(t, tt.want, solveCubic(a, b, c), 1e-9)
		})
	}
}

func TestSolveCubic_SingleRootUnchecked(t *testing.T) {
	// t³ - 8 = 0: the only real root is 2 and is returned even though it is
	// outside [0, 1.0001]
	assert.InDelta(t, 2.0, solveCubic(0, 0, -8), 1e-12)
}

func TestSolveBezier_SingleRootAtEndpoint(t *testing.T) {
	// x = p0 is a double root of this curve but the discriminant is positive,
	// so the single-root branch returns the remaining real root unchecked.
	got := SolveBezier(0, 0, 0, 625, 1000)
	assert.InDelta(t, 15.0/7.0, got, 1e-9)
}

func TestSolveBezier_NoNaNOnMonotonicCurves(t *testing.T) {
	for p1 := 0.0; p1 <= 1000; p1 += 125 {
		for p2 := p1; p2 <= 1000; p2 += 125 {
			// interior targets only, see TestSolveBezier_SingleRootAtEndpoint
			for x := 50.0; x < 1000; x += 50 {
				got := SolveBezier(x, 0, p1, p2, 1000)
				require.False(t, math.IsNaN(got), "NaN for p1=%v p2=%v x=%v", p1, p2, x)

				// the clamped parameter maps back onto x
				back := bezier1D(clamp01(got), 0, p1, p2, 1000)
				assert.InDelta(t, x, back, 0.5, "p1=%v p2=%v x=%v", p1, p2, x)
			}
		}
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

func BenchmarkSolveBezier_Cubic(b *testing.B) {
	for b.Loop() {
		_ = SolveBezier(437.5, 0, 100, 900, 1000)
	}
}

func BenchmarkSolveBezier_Linear(b *testing.B) {
	for b.Loop() {
		_ = SolveBezier(1.2, 0, 1, 2, 3)
	}
}
