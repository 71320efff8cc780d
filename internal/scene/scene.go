package scene

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/geom"
	"github.com/vovakirdan/tui-bounce/internal/physics"
)

// Contact is a physics event attributed to scene objects.
type Contact struct {
	BallID   int
	TargetID int // -1 for walls and loss
	Event    physics.Event
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	core.StepResult
	Contacts       []Contact
	Destroyed      int // Blocks destroyed this tick
	BonusesSpawned int
	BonusesCaught  int
	BallsLost      int
	LifeLost       bool
}

// Stats accumulates counters over a whole game.
type Stats struct {
	Destroyed     int
	PaddleHits    int
	BonusesCaught int
	BallsLost     int
}

type editKind int

const (
	editDamage editKind = iota // Decrement a block's HP, destroying it at zero
	editRemove
	editAdd
)

type edit struct {
	kind editKind
	id   int
	obj  Object
}

// Scene owns every game object and advances them one tick at a time.
type Scene struct {
	cfg        config.BounceConfig
	opts       physics.Options
	difficulty *config.DifficultyManager

	objects  []Object // Arena in insertion order: blocks, paddle, then balls and bonuses
	nextID   int
	paddleID int
	pending  []edit

	status     core.Status
	resume     core.Status // Status restored when unpausing
	score      int
	lives      int
	tick       int
	serveDelay int
	stats      Stats
}

// New creates a scene from a validated configuration and resets it.
func New(cfg config.BounceConfig) *Scene {
	s := &Scene{cfg: cfg}
	s.Reset()
	return s
}

// Reset rebuilds the block grid and paddle and restores lives and score.
func (s *Scene) Reset() {
	cfg := s.cfg
	s.opts = physics.Options{
		Field: physics.Field{Width: cfg.Field.Width, Height: cfg.Field.Height},
		Walls: physics.Walls{Left: cfg.Walls.Left, Right: cfg.Walls.Right, Top: cfg.Walls.Top},
		Cone: physics.Cone{
			Min: cfg.Steering.ConeMin * math.Pi,
			Max: cfg.Steering.ConeMax * math.Pi,
		},
	}
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	s.objects = s.objects[:0]
	s.nextID = 0
	s.pending = s.pending[:0]
	for _, b := range blocksFromConfig(cfg.Blocks) {
		s.add(b)
	}
	s.paddleID = s.add(Object{
		Kind: KindPaddle,
		Rect: geom.NewRect(
			(cfg.Field.Width-cfg.Paddle.Width)/2,
			cfg.Field.Height-cfg.Paddle.Offset,
			cfg.Paddle.Width,
			cfg.Paddle.Height,
		),
	})

	s.status = core.StatusServing
	s.resume = core.StatusServing
	s.score = 0
	s.lives = cfg.Gameplay.Lives
	s.tick = 0
	s.serveDelay = cfg.Gameplay.ServeDelay
	s.stats = Stats{}
}

// Step advances the scene by one tick. A nil rng disables bonus drops.
//
// Phases run in a fixed order: pause and restart, paddle movement, serving,
// falling bonuses, then each ball in arena order. Block hits and ball
// losses found while a ball is integrated are applied after that ball's
// scan completes.
func (s *Scene) Step(in core.InputFrame, rng *rand.Rand) StepResult {
	var res StepResult

	if in.Has(core.ActionRestart) && s.status.Finished() {
		s.Reset()
		return s.finish(res)
	}

	if in.Has(core.ActionPause) {
		switch s.status {
		case core.StatusPaused:
			s.status = s.resume
		case core.StatusPlaying, core.StatusServing:
			s.resume = s.status
			s.status = core.StatusPaused
		}
	}

	if s.status == core.StatusPaused || s.status.Finished() {
		return s.finish(res)
	}

	s.tick++
	s.movePaddle(in.Horizontal())

	if s.status == core.StatusServing {
		s.updateServe(in.Has(core.ActionServe))
	}

	s.updateBonuses(&res)
	s.updateBalls(rng, &res)
	s.checkEnd(&res)

	return s.finish(res)
}

func (s *Scene) finish(res StepResult) StepResult {
	res.State = s.State()
	return res
}

// movePaddle shifts the paddle by one step in dir and keeps it on the field.
func (s *Scene) movePaddle(dir int) {
	p := s.object(s.paddleID)
	if p == nil || dir == 0 {
		return
	}
	x := p.Rect.X + float64(dir)*s.cfg.Paddle.Speed
	p.Rect.X = geom.Clamp(x, 0, s.cfg.Field.Width-p.Rect.W)
}

// updateServe counts down the serve delay and puts a new ball in play when
// it expires or the player serves early.
func (s *Scene) updateServe(now bool) {
	if s.serveDelay > 0 && !now {
		s.serveDelay--
		if s.serveDelay > 0 {
			return
		}
	}
	s.serveDelay = 0
	s.resizePaddle()
	s.add(s.newBall())
	s.status = core.StatusPlaying
}

// resizePaddle applies the difficulty-scaled width around the paddle center.
func (s *Scene) resizePaddle() {
	p := s.object(s.paddleID)
	if p == nil {
		return
	}
	w := s.difficulty.PaddleWidth(s.cfg.Paddle.Width, s.score, s.tick)
	cx := p.Rect.Center().X
	p.Rect.W = w
	p.Rect.X = geom.Clamp(cx-w/2, 0, s.cfg.Field.Width-w)
}

// newBall returns a ball at the field center heading in the serve direction.
func (s *Scene) newBall() Object {
	speed := s.difficulty.BallSpeed(s.cfg.Ball.Speed, s.cfg.Ball.MaxSpeed, s.score, s.tick)
	return Object{
		Kind: KindBall,
		Body: physics.Body{
			Circle: geom.Circle{
				X:      s.cfg.Field.Width / 2,
				Y:      s.cfg.Field.Height / 2,
				Radius: s.cfg.Ball.Radius,
			},
			Direction: geom.NormalizeAngle(s.cfg.Ball.Direction * math.Pi),
			Speed:     speed,
		},
	}
}

// newBonus returns a bonus centered on a destroyed block.
func (s *Scene) newBonus(block geom.Rect) Object {
	size := s.cfg.Bonus.Size
	if size <= 0 {
		size = math.Min(block.W, block.H)
	}
	c := block.Center()
	return Object{Kind: KindBonus, Rect: geom.NewRect(c.X-size/2, c.Y-size/2, size, size)}
}

// updateBonuses drops every bonus by the fall speed. A bonus touching the
// paddle is collected and queues a new ball; one below the field is dropped.
func (s *Scene) updateBonuses(res *StepResult) {
	p := s.object(s.paddleID)
	if p == nil {
		return
	}
	paddle := p.Rect

	for i := range s.objects {
		o := &s.objects[i]
		if o.Kind != KindBonus {
			continue
		}
		o.Rect.Y += s.cfg.Bonus.FallSpeed
		switch {
		case o.Rect.Intersects(paddle):
			s.queue(edit{kind: editRemove, id: o.ID})
			s.queue(edit{kind: editAdd, obj: s.newBall()})
			res.BonusesCaught++
			s.stats.BonusesCaught++
		case o.Rect.Y > s.cfg.Field.Height:
			s.queue(edit{kind: editRemove, id: o.ID})
		}
	}
	s.apply(nil, res)
}

// updateBalls integrates each ball in arena order.
func (s *Scene) updateBalls(rng *rand.Rand, res *StepResult) {
	for _, id := range s.ids(KindBall) {
		ball := s.object(id)
		if ball == nil {
			continue
		}

		obstacles, targets := s.obstaclesFor(id)
		out := physics.Advance(ball.Body, obstacles, s.opts)
		ball.Body = out.Body

		for _, ev := range out.Events {
			target := -1
			if ev.Index >= 0 {
				target = targets[ev.Index]
			}
			res.Contacts = append(res.Contacts, Contact{BallID: id, TargetID: target, Event: ev})

			switch ev.Kind {
			case physics.EventBlockHit:
				s.queue(edit{kind: editDamage, id: target})
			case physics.EventPaddleHit:
				s.stats.PaddleHits++
			}
		}
		if out.Lost {
			s.queue(edit{kind: editRemove, id: id})
			res.BallsLost++
			s.stats.BallsLost++
		}

		s.apply(rng, res)
	}
}

// obstaclesFor lists what the given ball can hit: live blocks, then the
// paddle, then every other ball. targets maps obstacle index to object ID.
func (s *Scene) obstaclesFor(ballID int) (obstacles []physics.Obstacle, targets []int) {
	for _, kind := range [...]Kind{KindBlock, KindPaddle, KindBall} {
		for _, o := range s.objects {
			if o.Kind != kind || o.ID == ballID {
				continue
			}
			pk, ok := o.obstacleKind()
			if !ok {
				continue
			}
			obstacles = append(obstacles, physics.Obstacle{Kind: pk, Rect: o.Bounds()})
			targets = append(targets, o.ID)
		}
	}
	return obstacles, targets
}

// checkEnd handles winning, losing a life and game over.
func (s *Scene) checkEnd(res *StepResult) {
	if s.count(KindBlock) == 0 {
		s.status = core.StatusWon
		return
	}
	if s.status != core.StatusPlaying || s.count(KindBall) > 0 {
		return
	}

	s.lives--
	res.LifeLost = true
	if s.lives <= 0 {
		s.lives = 0
		s.status = core.StatusGameOver
		return
	}
	s.status = core.StatusServing
	s.serveDelay = s.cfg.Gameplay.ServeDelay
}

func (s *Scene) queue(e edit) {
	s.pending = append(s.pending, e)
}

// apply runs every queued edit in order and clears the queue.
func (s *Scene) apply(rng *rand.Rand, res *StepResult) {
	for _, e := range s.pending {
		switch e.kind {
		case editDamage:
			s.damage(e.id, rng, res)
		case editRemove:
			s.remove(e.id)
		case editAdd:
			if e.obj.Kind == KindBall {
				if limit := s.cfg.Gameplay.MaxBalls; limit > 0 && s.count(KindBall) >= limit {
					continue
				}
				if s.status == core.StatusServing {
					// A collected bonus starts play without waiting.
					s.status = core.StatusPlaying
					s.serveDelay = 0
				}
			}
			s.add(e.obj)
		}
	}
	s.pending = s.pending[:0]
}

// damage takes one HP from a block. A destroyed block scores its points
// and may drop a bonus.
func (s *Scene) damage(id int, rng *rand.Rand, res *StepResult) {
	b := s.object(id)
	if b == nil || b.Kind != KindBlock {
		return
	}
	b.HP--
	if b.HP > 0 {
		return
	}

	block := *b
	s.remove(id)
	s.score += block.Points
	res.Destroyed++
	s.stats.Destroyed++

	if rng != nil && rng.Float64() < s.cfg.Bonus.Chance {
		s.add(s.newBonus(block.Rect))
		res.BonusesSpawned++
	}
}

// add appends an object to the arena under a fresh ID and returns the ID.
func (s *Scene) add(o Object) int {
	s.nextID++
	o.ID = s.nextID
	s.objects = append(s.objects, o)
	return o.ID
}

func (s *Scene) remove(id int) {
	if i := s.index(id); i >= 0 {
		s.objects = append(s.objects[:i], s.objects[i+1:]...)
	}
}

func (s *Scene) index(id int) int {
	for i := range s.objects {
		if s.objects[i].ID == id {
			return i
		}
	}
	return -1
}

// object returns a pointer into the arena, valid until the next add or remove.
func (s *Scene) object(id int) *Object {
	if i := s.index(id); i >= 0 {
		return &s.objects[i]
	}
	return nil
}

func (s *Scene) ids(kind Kind) []int {
	var ids []int
	for _, o := range s.objects {
		if o.Kind == kind {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

func (s *Scene) count(kind Kind) int {
	n := 0
	for _, o := range s.objects {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// State returns the status-line summary.
func (s *Scene) State() core.GameState {
	return core.GameState{
		Status: s.status,
		Score:  s.score,
		Lives:  s.lives,
		Balls:  s.count(KindBall),
		Blocks: s.count(KindBlock),
		Level:  s.difficulty.Level(s.score, s.tick),
		Tick:   s.tick,
	}
}

// Objects returns a copy of the arena.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Paddle returns the paddle object.
func (s *Scene) Paddle() Object {
	if p := s.object(s.paddleID); p != nil {
		return *p
	}
	return Object{Kind: KindPaddle}
}

// Stats returns counters accumulated since the last reset.
func (s *Scene) Stats() Stats {
	return s.stats
}

// Config returns the configuration the scene was built from.
func (s *Scene) Config() config.BounceConfig {
	return s.cfg
}
