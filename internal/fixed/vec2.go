package fixed

// Vec2 is a point in the (time, value) plane of a Bezier segment.
// X holds milliseconds, Y holds the channel value.
type Vec2 struct {
	X, Y Q
}

// V2 builds a Vec2.
func V2(x, y Q) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X.Add(o.X), Y: v.Y.Add(o.Y)} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y)} }

// Mul scales both components by s.
func (v Vec2) Mul(s Q) Vec2 { return Vec2{X: Mul(v.X, s), Y: Mul(v.Y, s)} }
