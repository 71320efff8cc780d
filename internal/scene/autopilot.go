package scene

import (
	"math"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Autopilot returns an input frame that moves the paddle under the most
// urgent ball: the lowest one heading down, else the lowest ball. With no
// ball in play it chases the lowest bonus and serves at once.
func Autopilot(s *Scene) core.InputFrame {
	in := core.NewInputFrame()
	if s.status == core.StatusServing {
		in.Set(core.ActionServe)
	}

	target, ok := s.autopilotTarget()
	if !ok {
		return in
	}

	// Aim slightly off center so rebounds are not all vertical.
	paddle := s.Paddle().Rect
	aim := paddle.Center().X + paddle.W/8
	deadZone := s.cfg.Paddle.Speed / 2

	switch {
	case target < aim-deadZone:
		in.Set(core.ActionLeft)
	case target > aim+deadZone:
		in.Set(core.ActionRight)
	}
	return in
}

// autopilotTarget returns the x coordinate the paddle should chase.
func (s *Scene) autopilotTarget() (float64, bool) {
	var (
		fallingY, anyY, bonusY = math.Inf(-1), math.Inf(-1), math.Inf(-1)
		fallingX, anyX, bonusX float64
	)

	for _, o := range s.objects {
		switch o.Kind {
		case KindBall:
			c := o.Body.Circle
			if c.Y > anyY {
				anyY, anyX = c.Y, c.X
			}
			if math.Sin(o.Body.Direction) > 0 && c.Y > fallingY {
				fallingY, fallingX = c.Y, c.X
			}
		case KindBonus:
			if o.Rect.Y > bonusY {
				bonusY, bonusX = o.Rect.Y, o.Rect.Center().X
			}
		}
	}

	switch {
	case !math.IsInf(fallingY, -1):
		return fallingX, true
	case !math.IsInf(anyY, -1):
		return anyX, true
	case !math.IsInf(bonusY, -1):
		return bonusX, true
	}
	return 0, false
}
