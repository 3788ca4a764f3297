// Package pong implements two-paddle Pong where both paddles follow the pointer.
// The left half of the field steers Player 1, the right half Player 2.
//
// The package holds pure simulation and drawing logic. Frontends reach it through
// a Driver, feeding it commands and providing a core.Scheduler and a Surface.
package pong

import (
	"math"
	"time"
)

// Playing field geometry, in field units.
const (
	FieldWidth   = 600
	FieldHeight  = 400
	PaddleWidth  = 10
	PaddleHeight = 100
	BallRadius   = 10
)

// Match rules.
const (
	InitialSpeed   = 5
	SpeedIncrement = 0.5
	WinningScore   = 5
	MaxBounceAngle = math.Pi / 4
	RestartDelay   = 3 * time.Second
)

// Side identifies one half of the field and the player who owns it.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns the player name shown on the end screen.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Player 1"
	case SideRight:
		return "Player 2"
	default:
		return "None"
	}
}

// Field is the rectangular playing area.
type Field struct {
	Width, Height float64
}

// MidX returns the x coordinate of the net.
func (f Field) MidX() float64 {
	return f.Width / 2
}

// Paddle is one player's bat. Y is its top edge and is not clamped to the field.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Score         int
}

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Ball is the puck in play. Speed is the scalar used to rebuild the velocity
// after each paddle return.
type Ball struct {
	X, Y      float64
	Radius    float64
	Speed     float64
	VelocityX float64
	VelocityY float64
}

// State is the complete match state. The Driver owns it and passes it by pointer
// to the physics and scoring steps.
type State struct {
	Field Field
	Left  Paddle
	Right Paddle
	Ball  Ball
	Over  bool
}

// NewState returns a match at kickoff: paddles centered on their edges, ball at the
// center of the field serving down and to the right.
func NewState() State {
	f := Field{Width: FieldWidth, Height: FieldHeight}
	paddleY := f.Height/2 - PaddleHeight/2

	return State{
		Field: f,
		Left:  Paddle{X: 0, Y: paddleY, Width: PaddleWidth, Height: PaddleHeight},
		Right: Paddle{X: f.Width - PaddleWidth, Y: paddleY, Width: PaddleWidth, Height: PaddleHeight},
		Ball: Ball{
			X:         f.Width / 2,
			Y:         f.Height / 2,
			Radius:    BallRadius,
			Speed:     InitialSpeed,
			VelocityX: InitialSpeed,
			VelocityY: InitialSpeed,
		},
	}
}

// Paddle returns the paddle owned by side, or nil for SideNone.
func (s *State) Paddle(side Side) *Paddle {
	switch side {
	case SideLeft:
		return &s.Left
	case SideRight:
		return &s.Right
	default:
		return nil
	}
}

// SideAt returns the half of the field containing x.
func (s *State) SideAt(x float64) Side {
	if x < s.Field.MidX() {
		return SideLeft
	}
	return SideRight
}

// Reset zeroes both scores, clears Over and re-serves the ball.
// Paddles stay where the pointer left them.
func (s *State) Reset() {
	s.Left.Score = 0
	s.Right.Score = 0
	s.Over = false
	s.ResetBall()
}
