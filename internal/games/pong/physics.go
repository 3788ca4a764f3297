package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Outcome describes what happened during one physics step.
type Outcome struct {
	WallBounce bool // ball reflected off the top or bottom edge
	Returned   Side // paddle that returned the ball, if any
	Scored     Side // side credited with a point, if any
}

// Update advances the ball by one frame: integrate, reflect off walls, credit a
// point when the ball leaves the field, then deflect off the paddle on the ball's
// half of the field.
func (s *State) Update() Outcome {
	var out Outcome
	b := &s.Ball

	b.X += b.VelocityX
	b.Y += b.VelocityY

	out.WallBounce = s.bounceWalls()

	switch {
	case b.X-b.Radius < 0:
		s.Right.Score++
		s.ResetBall()
		out.Scored = SideRight
		return out
	case b.X+b.Radius > s.Field.Width:
		s.Left.Score++
		s.ResetBall()
		out.Scored = SideLeft
		return out
	}

	side := s.SideAt(b.X)
	p := s.Paddle(side)
	if s.approaching(side) && Collides(*b, *p) {
		s.deflect(side, p)
		out.Returned = side
	}

	return out
}

// bounceWalls keeps the ball inside the top and bottom edges and inverts its
// vertical velocity when it was heading into the wall it crossed.
func (s *State) bounceWalls() bool {
	b := &s.Ball
	switch {
	case b.Y-b.Radius < 0:
		b.Y = b.Radius
		if b.VelocityY < 0 {
			b.VelocityY = -b.VelocityY
			return true
		}
	case b.Y+b.Radius > s.Field.Height:
		b.Y = s.Field.Height - b.Radius
		if b.VelocityY > 0 {
			b.VelocityY = -b.VelocityY
			return true
		}
	}
	return false
}

// approaching reports whether the ball is travelling toward side's paddle.
// A ball still overlapping the paddle after a return is moving away and is left alone.
func (s *State) approaching(side Side) bool {
	if side == SideLeft {
		return s.Ball.VelocityX < 0
	}
	return s.Ball.VelocityX > 0
}

// deflect sends the ball back from p at an angle proportional to how far from the
// paddle center it struck, up to MaxBounceAngle, and speeds it up.
func (s *State) deflect(side Side, p *Paddle) {
	b := &s.Ball

	collidePoint := core.ClampF((b.Y-p.CenterY())/(p.Height/2), -1, 1)
	angle := collidePoint * MaxBounceAngle

	direction := 1.0
	if side == SideRight {
		direction = -1
	}

	b.VelocityX = direction * b.Speed * math.Cos(angle)
	b.VelocityY = b.Speed * math.Sin(angle)
	b.Speed += SpeedIncrement
}

// ResetBall puts the ball back at the center of the field at the initial speed,
// serving toward the side that just conceded. The vertical direction is kept.
func (s *State) ResetBall() {
	b := &s.Ball
	b.X = s.Field.Width / 2
	b.Y = s.Field.Height / 2
	b.Speed = InitialSpeed
	b.VelocityX = -sign(b.VelocityX) * InitialSpeed
	b.VelocityY = sign(b.VelocityY) * InitialSpeed
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
