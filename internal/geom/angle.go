// Package geom provides the trigonometric helpers and shape primitives the
// collision engine is built on. Angles are radians with 0 pointing east and
// growing clockwise, because screen y grows downward: π/2 is straight down
// and 3π/2 is straight up.
package geom

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Point is a position in field coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// ToCartesian converts a polar offset into (dx, dy).
func ToCartesian(length, angle float64) (dx, dy float64) {
	return length * math.Cos(angle), length * math.Sin(angle)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// LineAngle returns the direction from begin to end in [0, 2π).
func LineAngle(begin, end Point) float64 {
	return NormalizeAngle(math.Atan2(end.Y-begin.Y, end.X-begin.X))
}

// NormalizeAngle maps any finite angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// a+2π can round up to exactly 2π for tiny negative inputs.
	if a >= TwoPi {
		a -= TwoPi
	}
	return a
}

// AngleDiff returns the signed smallest rotation from b to a, in (-π, π].
func AngleDiff(a, b float64) float64 {
	d := NormalizeAngle(a - b)
	if d > math.Pi {
		d -= TwoPi
	}
	return d
}

// HorizontalBounce reflects a direction off a vertical wall (left or right).
func HorizontalBounce(angle float64) float64 {
	return NormalizeAngle(math.Pi - angle)
}

// VerticalBounce reflects a direction off a horizontal wall (top or bottom).
func VerticalBounce(angle float64) float64 {
	return NormalizeAngle(TwoPi - angle)
}

// Bounce reflects moveAngle off a surface whose outward normal points along
// surfaceAngle. Mirroring across the normal gives 2n-m; the extra half turn
// reverses the normal component so the body leaves the surface.
func Bounce(moveAngle, surfaceAngle float64) float64 {
	return NormalizeAngle(surfaceAngle - (moveAngle - surfaceAngle) + math.Pi)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
