package physics

import (
	"math"

	"github.com/vovakirdan/tui-bounce/internal/geom"
)

// Kind tells the integrator how to treat an obstacle.
type Kind int

const (
	KindBlock  Kind = iota // Destructible; hit at most once per Advance call
	KindPaddle             // Applies paddle steering after the bounce
	KindBall               // Rect is the other ball's bounding box
)

// String returns the obstacle kind name.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	default:
		return "?"
	}
}

// Obstacle is a rectangle the moving ball may collide with.
type Obstacle struct {
	Kind Kind
	Rect geom.Rect
}

// Body is the kinematic state of a ball.
type Body struct {
	Circle    geom.Circle
	Direction float64 // Radians, see package geom for the convention
	Speed     int     // Unit sub-steps per tick
}

// Field is the playing area, anchored at the origin.
type Field struct {
	Width  float64
	Height float64
}

// Walls selects which field edges reflect the ball. The bottom edge never
// does: crossing it loses the ball.
type Walls struct {
	Left  bool
	Right bool
	Top   bool
}

// Options configures Advance.
type Options struct {
	Field Field
	Walls Walls
	Cone  Cone
}

// DefaultOptions returns options with all reflecting walls on and the
// default paddle cone.
func DefaultOptions(field Field) Options {
	return Options{
		Field: field,
		Walls: Walls{Left: true, Right: true, Top: true},
		Cone:  DefaultCone(),
	}
}

// EventKind classifies a side effect reported by Advance.
type EventKind int

const (
	EventBlockHit EventKind = iota
	EventPaddleHit
	EventBallHit
	EventWallBounce
	EventLost
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventBlockHit:
		return "block_hit"
	case EventPaddleHit:
		return "paddle_hit"
	case EventBallHit:
		return "ball_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventLost:
		return "lost"
	default:
		return "?"
	}
}

// Event is a contact the caller may turn into game effects.
type Event struct {
	Kind    EventKind
	Index   int     // Obstacle index, -1 for walls and loss
	Contact Contact // For walls, Side names the wall
	Step    int     // Sub-step the event happened in
}

// Result is the outcome of advancing a body by one tick.
type Result struct {
	Body   Body
	Events []Event
	Lost   bool
}

// BlocksHit returns the obstacle indices of every block hit, in hit order.
func (r Result) BlocksHit() []int {
	var idx []int
	for _, e := range r.Events {
		if e.Kind == EventBlockHit {
			idx = append(idx, e.Index)
		}
	}
	return idx
}

// Advance moves a body by Speed unit sub-steps. Each sub-step moves one
// unit, reflects off enabled walls, then scans obstacles in order and
// bounces off the first one the ball is approaching. The obstacle slice is
// never modified; blocks hit earlier in the call are skipped afterwards so
// the caller can apply removals once the call returns.
func Advance(b Body, obstacles []Obstacle, opts Options) Result {
	res := Result{Body: b}
	body := &res.Body
	body.Direction = geom.NormalizeAngle(body.Direction)

	var spent map[int]bool

	for step := 0; step < b.Speed; step++ {
		dx, dy := geom.ToCartesian(1, body.Direction)
		body.Circle = body.Circle.Moved(dx, dy)

		res.Events = bounceWalls(body, opts, step, res.Events)

		if fellOff(body.Circle, opts.Field) {
			res.Lost = true
			res.Events = append(res.Events, Event{Kind: EventLost, Index: -1, Step: step})
			break
		}

		for i, ob := range obstacles {
			if ob.Kind == KindBlock && spent[i] {
				continue
			}
			contact := detectObstacle(body.Circle, ob)
			if !Approaching(body.Direction, body.Circle, contact) {
				continue
			}

			dir := Reflect(body.Direction, body.Circle, contact)
			ev := Event{Index: i, Contact: contact, Step: step}
			switch ob.Kind {
			case KindBlock:
				ev.Kind = EventBlockHit
				if spent == nil {
					spent = make(map[int]bool)
				}
				spent[i] = true
			case KindPaddle:
				ev.Kind = EventPaddleHit
				dir = PaddleSteer(dir, body.Circle.X, ob.Rect.Center().X, ob.Rect.W, opts.Cone)
			case KindBall:
				ev.Kind = EventBallHit
			}
			body.Direction = dir
			res.Events = append(res.Events, ev)
			break
		}
	}

	return res
}

// detectObstacle runs the right narrow phase for the obstacle kind.
func detectObstacle(c geom.Circle, ob Obstacle) Contact {
	if ob.Kind == KindBall {
		if !c.Bounds().Intersects(ob.Rect) {
			return Contact{}
		}
		return DetectCircle(c, InscribedCircle(ob.Rect))
	}
	return Detect(c, ob.Rect)
}

// bounceWalls reflects the body off any enabled wall it has crossed while
// still heading outward, appending one event per wall.
func bounceWalls(body *Body, opts Options, step int, events []Event) []Event {
	c := body.Circle
	f := opts.Field
	cos, sin := math.Cos(body.Direction), math.Sin(body.Direction)

	wall := SideNone
	switch {
	case opts.Walls.Left && c.X < c.Radius && cos < 0:
		wall = SideLeft
	case opts.Walls.Right && c.X > f.Width-c.Radius && cos > 0:
		wall = SideRight
	}
	if wall != SideNone {
		body.Direction = geom.HorizontalBounce(body.Direction)
		events = append(events, wallEvent(wall, c, f, step))
	}

	if opts.Walls.Top && c.Y < c.Radius && sin < 0 {
		body.Direction = geom.VerticalBounce(body.Direction)
		events = append(events, wallEvent(SideTop, c, f, step))
	}

	return events
}

func wallEvent(wall Side, c geom.Circle, f Field, step int) Event {
	var p geom.Point
	switch wall {
	case SideLeft:
		p = geom.Pt(0, c.Y)
	case SideRight:
		p = geom.Pt(f.Width, c.Y)
	default:
		p = geom.Pt(c.X, 0)
	}
	return Event{
		Kind:    EventWallBounce,
		Index:   -1,
		Contact: Contact{Kind: SideContact, Point: p, Side: wall},
		Step:    step,
	}
}

// fellOff reports whether the ball has crossed the open bottom edge.
func fellOff(c geom.Circle, f Field) bool {
	return c.Y+c.Radius > f.Height
}
