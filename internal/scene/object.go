// Package scene implements the bounce game around the physics engine: the
// object arena, block layout, bonus lifecycle, lives and scoring. All state
// changes found while a ball is integrated are queued and applied once that
// ball's scan is complete.
package scene

import (
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/geom"
	"github.com/vovakirdan/tui-bounce/internal/physics"
)

// Kind identifies the variant held by an Object.
type Kind int

const (
	KindBlock  Kind = iota // Destructible block
	KindPaddle             // The player paddle, exactly one per scene
	KindBall               // A moving ball
	KindBonus              // Falling new-ball bonus
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindBonus:
		return "bonus"
	default:
		return "?"
	}
}

// Object is one entry in the scene arena. Which fields matter depends on
// Kind: blocks use Rect, HP, Points and Color; the paddle and bonuses use
// Rect; balls use Body only.
type Object struct {
	ID   int
	Kind Kind

	Rect geom.Rect
	Body physics.Body

	HP     int
	Points int
	Color  core.Color
}

// Bounds returns the object's axis-aligned bounding box.
func (o Object) Bounds() geom.Rect {
	if o.Kind == KindBall {
		return o.Body.Circle.Bounds()
	}
	return o.Rect
}

// obstacleKind maps a scene kind onto the physics obstacle it acts as.
// Bonuses are not obstacles.
func (o Object) obstacleKind() (physics.Kind, bool) {
	switch o.Kind {
	case KindBlock:
		return physics.KindBlock, true
	case KindPaddle:
		return physics.KindPaddle, true
	case KindBall:
		return physics.KindBall, true
	default:
		return 0, false
	}
}
