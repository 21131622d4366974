package geom

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for degenerate vector operations.
var (
	// ErrZeroDivision is returned by Div when the scalar is zero.
	ErrZeroDivision = errors.New("geom: division by zero")

	// ErrZeroVector is returned by Normalize and Angle when a zero-length
	// vector makes the operation undefined.
	ErrZeroVector = errors.New("geom: zero vector")
)

// Vec is an immutable 2-D vector (or point) with float64 coordinates.
// The zero value is the origin and is ready to use.
type Vec struct {
	X, Y float64
}

// V is a short constructor for literals in call sites and tests.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// String renders the vector as "(x, y)" for logs and test failures.
func (v Vec) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v − o.
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v multiplied by scalar s.
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Mul returns the component-wise product of v and o.
func (v Vec) Mul(o Vec) Vec { return Vec{X: v.X * o.X, Y: v.Y * o.Y} }

// Div returns v divided by scalar s, or ErrZeroDivision when s == 0.
func (v Vec) Div(s float64) (Vec, error) {
	if s == 0 {
		return Vec{}, ErrZeroDivision
	}

	return Vec{X: v.X / s, Y: v.Y / s}, nil
}

// Neg returns −v.
func (v Vec) Neg() Vec { return Vec{X: -v.X, Y: -v.Y} }

// Dot returns the dot product v·o.
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean magnitude |v|.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length, or ErrZeroVector for |v| == 0.
func (v Vec) Normalize() (Vec, error) {
	var m = v.Len()
	if m == 0 {
		return Vec{}, ErrZeroVector
	}

	return Vec{X: v.X / m, Y: v.Y / m}, nil
}

// Angle returns the angle between v and o in radians, in [0, π].
// The cosine is clamped to [−1, 1] to absorb floating-point noise before
// acos. Returns ErrZeroVector when either operand has zero length.
func (v Vec) Angle(o Vec) (float64, error) {
	var denom = v.Len() * o.Len()
	if denom == 0 {
		return 0, ErrZeroVector
	}

	var c = v.Dot(o) / denom
	if c > 1 {
		c = 1
	}
	if c < -1 {
		c = -1
	}

	return math.Acos(c), nil
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// ManhattanDist returns the L1 distance |dx| + |dy| between v and o.
func (v Vec) ManhattanDist(o Vec) float64 {
	return math.Abs(v.X-o.X) + math.Abs(v.Y-o.Y)
}

// Eq reports exact coordinate equality. Callers needing tolerance should
// compare Dist against their own epsilon.
func (v Vec) Eq(o Vec) bool { return v.X == o.X && v.Y == o.Y }

// IsFinite reports whether both coordinates are finite (no NaN, no ±Inf).
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
