// Package physics implements the circle/rectangle collision engine: contact
// classification, reflection and the sub-stepped motion integrator. It holds
// no state between calls.
package physics

import (
	"math"

	"github.com/vovakirdan/tui-bounce/internal/geom"
)

// ContactKind classifies how a circle touches an obstacle.
type ContactKind int

const (
	NoContact     ContactKind = iota
	CornerContact             // Touches a single point (rect corner or another ball's rim)
	SideContact               // Touches a flat side
)

// String returns the contact kind name.
func (k ContactKind) String() string {
	switch k {
	case NoContact:
		return "none"
	case CornerContact:
		return "corner"
	case SideContact:
		return "side"
	default:
		return "?"
	}
}

// Side indicates which side of a rectangle was touched.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Corner identifies one of a rectangle's corners.
type Corner int

const (
	CornerNone Corner = iota
	CornerLeftUp
	CornerRightUp
	CornerLeftDown
	CornerRightDown
)

// Contact is the result of a collision query.
// Point is the corner for corner contacts and the projection of the circle's
// center onto the touched side for side contacts.
type Contact struct {
	Kind   ContactKind
	Point  geom.Point
	Side   Side   // Set for SideContact
	Corner Corner // Set for rectangle CornerContact
}

// Hit reports whether the contact is a real touch.
func (c Contact) Hit() bool {
	return c.Kind != NoContact
}

// NormalAngle returns the direction of the outward contact normal, pointing
// from the obstacle toward the circle.
func (c Contact) NormalAngle(circle geom.Circle) float64 {
	if c.Kind == SideContact {
		switch c.Side {
		case SideLeft:
			return math.Pi
		case SideRight:
			return 0
		case SideTop:
			return math.Pi * 1.5
		case SideBottom:
			return math.Pi / 2
		}
	}
	return geom.LineAngle(c.Point, circle.Center())
}

type cornerZone struct {
	corner Corner
	point  geom.Point
}

type sideZone struct {
	side Side
	area geom.Rect
}

// Detect classifies the relationship between a circle and a rectangle.
//
// A broad-phase bounding-box test is followed by an 8-region narrow phase:
// four 2r squares centered on the corners, then four 2r strips laid outside
// each side. The first region holding the circle's center wins. Corner hits
// also need the corner within one radius of the center; edge hits do not.
// A center in none of the regions (deep overlap) yields NoContact.
func Detect(c geom.Circle, r geom.Rect) Contact {
	if !c.Bounds().Intersects(r) {
		return Contact{}
	}

	center := c.Center()
	size := 2 * c.Radius
	left, up := r.X, r.Y
	right, down := r.Right(), r.Bottom()

	corners := [4]cornerZone{
		{CornerLeftUp, geom.Pt(left, up)},
		{CornerRightUp, geom.Pt(right, up)},
		{CornerLeftDown, geom.Pt(left, down)},
		{CornerRightDown, geom.Pt(right, down)},
	}
	for _, z := range corners {
		if !geom.SquareAround(z.point, c.Radius).Contains(center) {
			continue
		}
		if geom.Distance(center, z.point) <= c.Radius {
			return Contact{Kind: CornerContact, Point: z.point, Corner: z.corner}
		}
		return Contact{}
	}

	sides := [4]sideZone{
		{SideLeft, geom.NewRect(left-size, up, size, r.H)},
		{SideRight, geom.NewRect(right, up, size, r.H)},
		{SideTop, geom.NewRect(left, up-size, r.W, size)},
		{SideBottom, geom.NewRect(left, down, r.W, size)},
	}
	for _, z := range sides {
		if !z.area.Contains(center) {
			continue
		}
		return Contact{Kind: SideContact, Point: projectOnSide(center, r, z.side), Side: z.side}
	}

	return Contact{}
}

// projectOnSide drops p perpendicularly onto the given side of r.
func projectOnSide(p geom.Point, r geom.Rect, side Side) geom.Point {
	switch side {
	case SideLeft:
		return geom.Pt(r.X, p.Y)
	case SideRight:
		return geom.Pt(r.Right(), p.Y)
	case SideTop:
		return geom.Pt(p.X, r.Y)
	default:
		return geom.Pt(p.X, r.Bottom())
	}
}

// DetectCircle classifies contact between a moving circle a and another
// circle b. The contact point lies on b's rim facing a, so the generic
// corner reflection applies. Coincident centers report NoContact.
func DetectCircle(a, b geom.Circle) Contact {
	if !a.Bounds().Intersects(b.Bounds()) {
		return Contact{}
	}
	d := geom.Distance(a.Center(), b.Center())
	if d == 0 || d > a.Radius+b.Radius {
		return Contact{}
	}
	k := b.Radius / d
	p := geom.Pt(b.X+(a.X-b.X)*k, b.Y+(a.Y-b.Y)*k)
	return Contact{Kind: CornerContact, Point: p}
}

// InscribedCircle returns the largest circle centered in r. It recovers a
// ball from the bounding box callers hand the engine.
func InscribedCircle(r geom.Rect) geom.Circle {
	c := r.Center()
	return geom.Circle{X: c.X, Y: c.Y, Radius: math.Min(r.W, r.H) / 2}
}
