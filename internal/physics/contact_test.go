package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/geom"
)

func angleEq(a, b float64) bool {
	return math.Abs(geom.AngleDiff(a, b)) < 1e-3
}

// block is the 100x40 block at (400, 400) used throughout these tests.
var block = geom.NewRect(400, 400, 100, 40)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		circle    geom.Circle
		rect      geom.Rect
		kind      ContactKind
		side      Side
		corner    Corner
		point     geom.Point
		checkPart bool
	}{
		{
			name:   "far away",
			circle: geom.Circle{X: 100, Y: 100, Radius: 10},
			rect:   block,
			kind:   NoContact,
		},
		{
			name:   "bounding box overlaps corner zone but circle misses corner",
			circle: geom.Circle{X: 410, Y: 400 - 10 + 1, Radius: 10},
			rect:   block,
			kind:   NoContact,
		},
		{
			name:   "below left corner, out of reach",
			circle: geom.Circle{X: 410, Y: 400 + 40 + 10 - 1, Radius: 10},
			rect:   block,
			kind:   NoContact,
		},
		{
			name:      "directly left at matching y",
			circle:    geom.Circle{X: 391, Y: 420, Radius: 10},
			rect:      block,
			kind:      SideContact,
			side:      SideLeft,
			point:     geom.Pt(400, 420),
			checkPart: true,
		},
		{
			name:      "directly right",
			circle:    geom.Circle{X: 509, Y: 420, Radius: 10},
			rect:      block,
			kind:      SideContact,
			side:      SideRight,
			point:     geom.Pt(500, 420),
			checkPart: true,
		},
		{
			name:      "resting on top",
			circle:    geom.Circle{X: 450, Y: 391, Radius: 10},
			rect:      block,
			kind:      SideContact,
			side:      SideTop,
			point:     geom.Pt(450, 400),
			checkPart: true,
		},
		{
			name:      "under the bottom",
			circle:    geom.Circle{X: 450, Y: 449, Radius: 10},
			rect:      block,
			kind:      SideContact,
			side:      SideBottom,
			point:     geom.Pt(450, 440),
			checkPart: true,
		},
		{
			name:      "touching the left-up corner",
			circle:    geom.Circle{X: 395, Y: 395, Radius: 10},
			rect:      block,
			kind:      CornerContact,
			corner:    CornerLeftUp,
			point:     geom.Pt(400, 400),
			checkPart: true,
		},
		{
			name:      "touching the right-down corner",
			circle:    geom.Circle{X: 506, Y: 446, Radius: 10},
			rect:      block,
			kind:      CornerContact,
			corner:    CornerRightDown,
			point:     geom.Pt(500, 440),
			checkPart: true,
		},
		{
			name:   "deep inside",
			circle: geom.Circle{X: 450, Y: 420, Radius: 10},
			rect:   block,
			kind:   NoContact,
		},
		{
			name:      "first matching corner wins on a tiny rect",
			circle:    geom.Circle{X: 102, Y: 95, Radius: 10},
			rect:      geom.NewRect(100, 100, 4, 4),
			kind:      CornerContact,
			corner:    CornerLeftUp,
			point:     geom.Pt(100, 100),
			checkPart: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Detect(tc.circle, tc.rect)
			if got.Kind != tc.kind {
				t.Fatalf("Detect() kind = %v, expected %v (contact %+v)", got.Kind, tc.kind, got)
			}
			if !tc.checkPart {
				return
			}
			if got.Side != tc.side {
				t.Errorf("Detect() side = %v, expected %v", got.Side, tc.side)
			}
			if got.Corner != tc.corner {
				t.Errorf("Detect() corner = %v, expected %v", got.Corner, tc.corner)
			}
			if got.Point != tc.point {
				t.Errorf("Detect() point = %v, expected %v", got.Point, tc.point)
			}
		})
	}
}

func TestDetectCircle(t *testing.T) {
	a := geom.Circle{X: 0, Y: 0, Radius: 5}

	got := DetectCircle(a, geom.Circle{X: 8, Y: 0, Radius: 5})
	if got.Kind != CornerContact {
		t.Fatalf("DetectCircle() kind = %v, expected corner", got.Kind)
	}
	if math.Abs(got.Point.X-3) > 1e-9 || math.Abs(got.Point.Y) > 1e-9 {
		t.Errorf("DetectCircle() point = %v, expected (3, 0)", got.Point)
	}

	if got := DetectCircle(a, geom.Circle{X: 20, Y: 0, Radius: 5}); got.Hit() {
		t.Errorf("DetectCircle() far apart = %+v, expected no contact", got)
	}
	if got := DetectCircle(a, a); got.Hit() {
		t.Errorf("DetectCircle() coincident = %+v, expected no contact", got)
	}
}

func TestInscribedCircle(t *testing.T) {
	c := InscribedCircle(geom.NewRect(530, 290, 20, 20))
	if c != (geom.Circle{X: 540, Y: 300, Radius: 10}) {
		t.Errorf("InscribedCircle() = %+v", c)
	}
}

func TestNormalAngle(t *testing.T) {
	c := geom.Circle{X: 450, Y: 391, Radius: 10}
	top := Detect(c, block)
	if !angleEq(top.NormalAngle(c), math.Pi*1.5) {
		t.Errorf("top NormalAngle() = %v, expected 3π/2", top.NormalAngle(c))
	}

	corner := Contact{Kind: CornerContact, Point: geom.Pt(500, 400)}
	above := geom.Circle{X: 507, Y: 393, Radius: 10}
	if !angleEq(corner.NormalAngle(above), math.Pi*7/4) {
		t.Errorf("corner NormalAngle() = %v, expected 7π/4", corner.NormalAngle(above))
	}
}
