package scene

import (
	"math"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/geom"
	"github.com/vovakirdan/tui-bounce/internal/physics"
)

// objectStride is the number of values stored per object in ObjectData.
const objectStride = 9

// Snapshot contains the complete scene state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Status     string
	Resume     string
	Score      int
	Lives      int
	ServeDelay int
	NextID     int
	PaddleID   int

	Stats Stats

	// Each object is 9 values: ID, Kind, X, Y, W, H, Direction, Speed, HP.
	// Balls store their center in X, Y and their radius in W.
	ObjectCount int
	ObjectData  []float64
	Points      []int
	Colors      []int
}

// Snapshot returns the current scene state as a Snapshot.
func (s *Scene) Snapshot() Snapshot {
	data := make([]float64, 0, len(s.objects)*objectStride)
	points := make([]int, len(s.objects))
	colors := make([]int, len(s.objects))

	for i, o := range s.objects {
		x, y, w, h := o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H
		if o.Kind == KindBall {
			x, y, w, h = o.Body.Circle.X, o.Body.Circle.Y, o.Body.Circle.Radius, 0
		}
		data = append(data,
			float64(o.ID), float64(o.Kind),
			x, y, w, h,
			o.Body.Direction, float64(o.Body.Speed),
			float64(o.HP),
		)
		points[i] = o.Points
		colors[i] = int(o.Color)
	}

	return Snapshot{
		Tick:        uint64(s.tick), //#nosec G115 -- tick count is always positive
		Status:      string(s.status),
		Resume:      string(s.resume),
		Score:       s.score,
		Lives:       s.lives,
		ServeDelay:  s.serveDelay,
		NextID:      s.nextID,
		PaddleID:    s.paddleID,
		Stats:       s.stats,
		ObjectCount: len(s.objects),
		ObjectData:  data,
		Points:      points,
		Colors:      colors,
	}
}

// ApplySnapshot restores scene state from a snapshot. The configuration is
// kept; a snapshot with inconsistent object data restores no objects.
func (s *Scene) ApplySnapshot(snap Snapshot) {
	s.tick = int(snap.Tick) //#nosec G115 -- tick count fits in int
	s.status = core.Status(snap.Status)
	s.resume = core.Status(snap.Resume)
	s.score = snap.Score
	s.lives = snap.Lives
	s.serveDelay = snap.ServeDelay
	s.nextID = snap.NextID
	s.paddleID = snap.PaddleID
	s.stats = snap.Stats
	s.pending = s.pending[:0]

	s.objects = s.objects[:0]
	n := snap.ObjectCount
	if len(snap.ObjectData) != n*objectStride || len(snap.Points) != n || len(snap.Colors) != n {
		return
	}
	for i := range n {
		v := snap.ObjectData[i*objectStride : (i+1)*objectStride]
		o := Object{
			ID:     int(v[0]),
			Kind:   Kind(v[1]),
			HP:     int(v[8]),
			Points: snap.Points[i],
			Color:  core.Color(snap.Colors[i]), //#nosec G115 -- stored from a Color
		}
		if o.Kind == KindBall {
			o.Body = physics.Body{
				Circle:    geom.Circle{X: v[2], Y: v[3], Radius: v[4]},
				Direction: v[6],
				Speed:     int(v[7]),
			}
		} else {
			o.Rect = geom.NewRect(v[2], v[3], v[4], v[5])
		}
		s.objects = append(s.objects, o)
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + hashString(snap.Status)
	h = h*31 + hashString(snap.Resume)
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ServeDelay)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextID)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObjectCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.Destroyed)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.PaddleHits) //#nosec G115 -- hash computation

	for _, v := range snap.ObjectData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.Points {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func hashString(str string) uint64 {
	var h uint64
	for _, r := range str {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	return h
}
