package mathutil

// Mixable is a value that can be linearly interpolated by an amount of type A.
// Channel scalars and 2-D control points both satisfy it.
type Mixable[T any, A any] interface {
	Add(T) T
	Sub(T) T
	Mul(A) T
}

// Mix returns a + (b - a)·amount.
func Mix[T Mixable[T, A], A any](a, b T, amount A) T {
	return a.Add(b.Sub(a).Mul(amount))
}

// Bezier evaluates the cubic Bezier curve p0..p3 at amount using the
// De Casteljau algorithm: three rounds of Mix collapse 4 -> 3 -> 2 -> 1 points.
func Bezier[T Mixable[T, A], A any](p0, p1, p2, p3 T, amount A) T {
	c10 := Mix(p0, p1, amount)
	c11 := Mix(p1, p2, amount)
	c12 := Mix(p2, p3, amount)

	c20 := Mix(c10, c11, amount)
	c21 := Mix(c11, c12, amount)

	return Mix(c20, c21, amount)
}
