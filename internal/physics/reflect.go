package physics

import (
	"math"

	"github.com/vovakirdan/tui-bounce/internal/geom"
)

// Cone bounds the directions a ball may leave the paddle with.
// Min and Max are radians in [0, 2π) with Min < Max.
type Cone struct {
	Min float64
	Max float64
}

// DefaultCone keeps paddle rebounds within 0.4π of straight up.
func DefaultCone() Cone {
	return Cone{Min: math.Pi * 1.1, Max: math.Pi * 1.9}
}

// Clamp returns the angle inside the cone closest to a. Angles outside the
// cone land exactly on the nearer bound, measured around the circle.
func (c Cone) Clamp(a float64) float64 {
	return c.fromOffset(geom.AngleDiff(a, c.mid()))
}

// Contains reports whether a lies within the cone.
func (c Cone) Contains(a float64) bool {
	return math.Abs(geom.AngleDiff(a, c.mid())) <= c.half()+1e-9
}

func (c Cone) mid() float64  { return (c.Min + c.Max) / 2 }
func (c Cone) half() float64 { return (c.Max - c.Min) / 2 }

// fromOffset turns a signed offset from the cone's middle into an angle,
// pinning offsets beyond the half-width to the bounds.
func (c Cone) fromOffset(off float64) float64 {
	switch {
	case off < -c.half():
		return c.Min
	case off > c.half():
		return c.Max
	}
	return geom.NormalizeAngle(c.mid() + off)
}

// Reflect returns the direction after bouncing off the given contact.
// Corner contacts reflect across the line from the contact point to the
// circle's center; side contacts use the axis-aligned bounces.
func Reflect(direction float64, c geom.Circle, contact Contact) float64 {
	switch contact.Kind {
	case CornerContact:
		return geom.Bounce(direction, geom.LineAngle(contact.Point, c.Center()))
	case SideContact:
		switch contact.Side {
		case SideLeft, SideRight:
			return geom.HorizontalBounce(direction)
		default:
			return geom.VerticalBounce(direction)
		}
	}
	return geom.NormalizeAngle(direction)
}

// PaddleSteer bends an already reflected direction by where the ball struck
// the paddle, then clamps it into the cone. Hits right of center push the
// ball right. A non-positive width skips the steering term.
func PaddleSteer(direction, contactX, paddleCenterX, paddleWidth float64, cone Cone) float64 {
	// Steer in offset space so a large term cannot wrap past a full turn.
	off := geom.AngleDiff(direction, cone.mid())
	if paddleWidth > 0 {
		off += (contactX - paddleCenterX) / paddleWidth
	}
	return cone.fromOffset(off)
}

// Approaching reports whether a body moving along direction is heading into
// the contact surface rather than away from it.
func Approaching(direction float64, c geom.Circle, contact Contact) bool {
	if !contact.Hit() {
		return false
	}
	return math.Cos(direction-contact.NormalAngle(c)) < 0
}
