package pong

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const eps = 1e-9

// recorder is a Surface that keeps every draw call.
type recorder struct {
	rects   []drawCall
	circles []drawCall
	texts   []drawCall
}

type drawCall struct {
	x, y, w, h float64
	text       string
	color      core.Color
}

func (r *recorder) FillRect(x, y, w, h float64, c core.Color) {
	r.rects = append(r.rects, drawCall{x: x, y: y, w: w, h: h, color: c})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c core.Color) {
	r.circles = append(r.circles, drawCall{x: cx, y: cy, w: rad, color: c})
}

func (r *recorder) FillText(text string, x, y, size float64, c core.Color) {
	r.texts = append(r.texts, drawCall{x: x, y: y, h: size, text: text, color: c})
}

func (r *recorder) reset() {
	r.rects, r.circles, r.texts = nil, nil, nil
}

// playFrames counts full-field fills in the play colors.
func (r *recorder) playFrames() int {
	n := 0
	for _, c := range r.rects {
		if c.x == 0 && c.y == 0 && c.w == FieldWidth && c.h == FieldHeight && c.color == Classic.Field {
			n++
		}
	}
	return n
}

func (r *recorder) count(text string) int {
	n := 0
	for _, c := range r.texts {
		if c.text == text {
			n++
		}
	}
	return n
}

func TestNewState(t *testing.T) {
	s := NewState()

	if s.Ball.X != FieldWidth/2 || s.Ball.Y != FieldHeight/2 {
		t.Errorf("ball at (%v, %v), expected field center", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.Speed != InitialSpeed || s.Ball.VelocityX != 5 || s.Ball.VelocityY != 5 {
		t.Errorf("ball = %+v, expected speed 5 and velocity (5, 5)", s.Ball)
	}
	if s.Left.X != 0 || s.Right.X != FieldWidth-PaddleWidth {
		t.Errorf("paddles at x=%v and x=%v, expected 0 and %v", s.Left.X, s.Right.X, FieldWidth-PaddleWidth)
	}
	if s.Left.CenterY() != FieldHeight/2 || s.Right.CenterY() != FieldHeight/2 {
		t.Error("paddles should start vertically centered")
	}
}

func TestSideString(t *testing.T) {
	tests := []struct {
		side     Side
		expected string
	}{
		{SideLeft, "Player 1"},
		{SideRight, "Player 2"},
		{SideNone, "None"},
	}

	for _, tc := range tests {
		if tc.side.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.side.String(), tc.expected)
		}
	}
}

func TestCollides(t *testing.T) {
	p := Paddle{X: 0, Y: 150, Width: 10, Height: 100}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"overlapping face", 15, 200, true},
		{"touching right edge", 20, 200, false},
		{"beyond right edge", 25, 200, false},
		{"overlapping top corner", 15, 141, true},
		{"touching top edge", 15, 140, false},
		{"touching bottom edge", 15, 260, false},
		{"overlapping bottom corner", 15, 259, true},
		{"behind the paddle", -5, 200, true},
		{"touching left edge", -10, 200, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{X: tc.x, Y: tc.y, Radius: BallRadius}
			result := Collides(b, p)
			if result != tc.expected {
				t.Errorf("Collides() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name   string
		y, vy  float64
		wantVY float64
	}{
		{"top wall", 12, -5, 5},
		{"bottom wall", 388, 5, -5},
		{"deep past top", 1, -7, 7},
		{"deep past bottom", 399, 7, -7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Ball.Y = tc.y
			s.Ball.VelocityY = tc.vy

			out := s.Update()

			if !out.WallBounce {
				t.Error("Update() should report a wall bounce")
			}
			if s.Ball.VelocityY != tc.wantVY {
				t.Errorf("VelocityY = %v, expected %v", s.Ball.VelocityY, tc.wantVY)
			}
			if s.Ball.Y-s.Ball.Radius < 0 || s.Ball.Y+s.Ball.Radius > s.Field.Height {
				t.Errorf("ball y = %v left the field", s.Ball.Y)
			}
		})
	}
}

func TestWallBounceKeepsBallInField(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		s := NewState()
		s.Ball.Y = rng.Float64() * FieldHeight
		s.Ball.VelocityY = (rng.Float64() - 0.5) * 30
		s.Ball.VelocityX = 0
		before := s.Ball.VelocityY
		nextY := s.Ball.Y + before

		s.Update()

		if s.Ball.Y < s.Ball.Radius || s.Ball.Y > FieldHeight-s.Ball.Radius {
			t.Fatalf("case %d: ball y = %v outside [%v, %v]", i, s.Ball.Y, s.Ball.Radius, FieldHeight-s.Ball.Radius)
		}
		crossedTop := nextY-BallRadius < 0 && before < 0
		crossedBottom := nextY+BallRadius > FieldHeight && before > 0
		if (crossedTop || crossedBottom) && s.Ball.VelocityY != -before {
			t.Fatalf("case %d: VelocityY = %v, expected %v", i, s.Ball.VelocityY, -before)
		}
	}
}

func TestDeadCenterReturn(t *testing.T) {
	tests := []struct {
		name  string
		side  Side
		x, vx float64
		dir   float64
	}{
		{"left paddle", SideLeft, 24, -5, 1},
		{"right paddle", SideRight, 576, 5, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Ball.X = tc.x
			s.Ball.Y = FieldHeight / 2
			s.Ball.VelocityX = tc.vx
			s.Ball.VelocityY = 0
			s.Ball.Speed = 7

			out := s.Update()

			if out.Returned != tc.side {
				t.Fatalf("Returned = %v, expected %v", out.Returned, tc.side)
			}
			if s.Ball.VelocityX != tc.dir*7 {
				t.Errorf("VelocityX = %v, expected %v", s.Ball.VelocityX, tc.dir*7)
			}
			if s.Ball.VelocityY != 0 {
				t.Errorf("VelocityY = %v, expected 0", s.Ball.VelocityY)
			}
			if s.Ball.Speed != 7.5 {
				t.Errorf("Speed = %v, expected 7.5", s.Ball.Speed)
			}
		})
	}
}

func TestReturnAngleIsClamped(t *testing.T) {
	s := NewState()
	s.Ball.X = 24
	s.Ball.Y = s.Left.Y + s.Left.Height + 5 // center below the paddle, edge still overlapping
	s.Ball.VelocityX = -5
	s.Ball.VelocityY = 0

	out := s.Update()
	if out.Returned != SideLeft {
		t.Fatalf("Returned = %v, expected %v", out.Returned, SideLeft)
	}

	angle := math.Atan2(s.Ball.VelocityY, s.Ball.VelocityX)
	if math.Abs(angle-MaxBounceAngle) > eps {
		t.Errorf("deflection angle = %v, expected %v", angle, MaxBounceAngle)
	}
}

func TestBallLeavingPaddleIsNotReturnedTwice(t *testing.T) {
	s := NewState()
	s.Ball.X = 14
	s.Ball.Y = FieldHeight / 2
	s.Ball.VelocityX = 5 // already heading away from the left paddle
	s.Ball.VelocityY = 0
	s.Ball.Speed = 6

	out := s.Update()

	if out.Returned != SideNone {
		t.Errorf("Returned = %v, expected none", out.Returned)
	}
	if s.Ball.Speed != 6 {
		t.Errorf("Speed = %v, expected 6", s.Ball.Speed)
	}
}

func TestScoring(t *testing.T) {
	tests := []struct {
		name      string
		x, vx     float64
		scorer    Side
		wantLeft  int
		wantRight int
	}{
		{"exit left credits right", 12, -5, SideRight, 0, 1},
		{"exit right credits left", 588, 5, SideLeft, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Left.Y, s.Right.Y = -500, -500 // out of the way
			s.Ball.X = tc.x
			s.Ball.VelocityX = tc.vx
			s.Ball.VelocityY = -3
			s.Ball.Speed = 9

			out := s.Update()

			if out.Scored != tc.scorer {
				t.Errorf("Scored = %v, expected %v", out.Scored, tc.scorer)
			}
			if s.Left.Score != tc.wantLeft || s.Right.Score != tc.wantRight {
				t.Errorf("score = %d-%d, expected %d-%d", s.Left.Score, s.Right.Score, tc.wantLeft, tc.wantRight)
			}
			if s.Ball.X != FieldWidth/2 || s.Ball.Y != FieldHeight/2 {
				t.Errorf("ball at (%v, %v), expected center", s.Ball.X, s.Ball.Y)
			}
			if s.Ball.Speed != InitialSpeed {
				t.Errorf("Speed = %v, expected %v", s.Ball.Speed, InitialSpeed)
			}
			if math.Signbit(s.Ball.VelocityX) == math.Signbit(tc.vx) {
				t.Errorf("VelocityX = %v, expected direction opposite to %v", s.Ball.VelocityX, tc.vx)
			}
		})
	}
}

func TestResetBall(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		wantVX float64
		wantVY float64
	}{
		{"fast ball heading right", Ball{X: 590, Y: 3, Radius: 10, Speed: 12, VelocityX: 11, VelocityY: 2}, -5, 5},
		{"ball heading left and up", Ball{X: 2, Y: 390, Radius: 10, Speed: 8.5, VelocityX: -6, VelocityY: -4}, 5, -5},
		{"stationary ball", Ball{Radius: 10}, -5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Ball = tc.ball

			s.ResetBall()

			if s.Ball.X != FieldWidth/2 || s.Ball.Y != FieldHeight/2 {
				t.Errorf("ball at (%v, %v), expected center", s.Ball.X, s.Ball.Y)
			}
			if s.Ball.Speed != InitialSpeed {
				t.Errorf("Speed = %v, expected %v", s.Ball.Speed, InitialSpeed)
			}
			if s.Ball.VelocityX != tc.wantVX || s.Ball.VelocityY != tc.wantVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", s.Ball.VelocityX, s.Ball.VelocityY, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestSpeedNeverDropsDuringRally(t *testing.T) {
	s := NewState()
	prev := s.Ball.Speed

	for i := 0; i < 3000; i++ {
		// both paddles track the ball
		s.Left.Y = s.Ball.Y - PaddleHeight/2
		s.Right.Y = s.Ball.Y - PaddleHeight/2

		out := s.Update()

		if out.Scored != SideNone {
			if s.Ball.Speed != InitialSpeed {
				t.Fatalf("frame %d: speed after point = %v, expected %v", i, s.Ball.Speed, InitialSpeed)
			}
		} else if s.Ball.Speed < prev {
			t.Fatalf("frame %d: speed dropped from %v to %v during a rally", i, prev, s.Ball.Speed)
		}
		prev = s.Ball.Speed
	}
}

func TestCheckGameOver(t *testing.T) {
	tests := []struct {
		name        string
		left, right int
		winner      Side
	}{
		{"kickoff", 0, 0, SideNone},
		{"match point both", 4, 4, SideNone},
		{"left ahead", 3, 1, SideNone},
		{"left wins", 5, 3, SideLeft},
		{"right wins", 2, 5, SideRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Left.Score, s.Right.Score = tc.left, tc.right
			before := s

			winner, over := s.CheckGameOver()

			if winner != tc.winner {
				t.Errorf("CheckGameOver() winner = %v, expected %v", winner, tc.winner)
			}
			if over != (tc.winner != SideNone) || s.Over != over {
				t.Errorf("CheckGameOver() over = %v, Over = %v", over, s.Over)
			}
			if tc.winner == SideNone {
				// below the threshold nothing changes, however often it is called
				s.CheckGameOver()
				if s != before {
					t.Errorf("state changed: %+v, expected %+v", s, before)
				}
			}
		})
	}
}

func TestStateReset(t *testing.T) {
	s := NewState()
	s.Left.Score, s.Right.Score = 5, 2
	s.Over = true
	s.Left.Y = 17
	s.Ball.Speed = 9

	s.Reset()

	if s.Left.Score != 0 || s.Right.Score != 0 || s.Over {
		t.Errorf("after Reset: score %d-%d, Over = %v", s.Left.Score, s.Right.Score, s.Over)
	}
	if s.Ball.Speed != InitialSpeed {
		t.Errorf("Speed = %v, expected %v", s.Ball.Speed, InitialSpeed)
	}
	if s.Left.Y != 17 {
		t.Errorf("Reset moved the paddle to %v", s.Left.Y)
	}
}

func TestStatsRecord(t *testing.T) {
	var st Stats
	st.record(Outcome{Returned: SideLeft}, 5.5)
	st.record(Outcome{WallBounce: true}, 5.5)
	st.record(Outcome{Returned: SideRight}, 6)
	st.record(Outcome{Scored: SideLeft}, 5)
	st.record(Outcome{Returned: SideLeft}, 5.5)

	if st.Ticks != 5 {
		t.Errorf("Ticks = %d, expected 5", st.Ticks)
	}
	if st.Returns != 3 || st.LongestRally != 2 || st.Rally != 1 {
		t.Errorf("Returns/LongestRally/Rally = %d/%d/%d, expected 3/2/1", st.Returns, st.LongestRally, st.Rally)
	}
	if st.WallBounces != 1 {
		t.Errorf("WallBounces = %d, expected 1", st.WallBounces)
	}
	if st.PeakSpeed != 6 {
		t.Errorf("PeakSpeed = %v, expected 6", st.PeakSpeed)
	}
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Command
		ok     bool
	}{
		{core.ActionStart, Start{}, true},
		{core.ActionPause, Pause{}, true},
		{core.ActionRestart, Restart{}, true},
		{core.ActionQuit, nil, false},
		{core.ActionHelp, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			cmd, ok := CommandFor(tc.action)
			if ok != tc.ok || cmd != tc.want {
				t.Errorf("CommandFor(%v) = %v, %v, expected %v, %v", tc.action, cmd, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestRender(t *testing.T) {
	rec := &recorder{}
	s := NewState()
	s.Left.Score, s.Right.Score = 3, 1

	Render(rec, &s, Classic)

	if len(rec.rects) == 0 || rec.rects[0] != (drawCall{w: FieldWidth, h: FieldHeight, color: Classic.Field}) {
		t.Fatalf("first draw should clear the field, got %+v", rec.rects)
	}
	if rec.count("3") != 1 || rec.count("1") != 1 {
		t.Errorf("scores not drawn, texts = %+v", rec.texts)
	}
	if len(rec.circles) != 1 || rec.circles[0].x != s.Ball.X || rec.circles[0].w != BallRadius {
		t.Errorf("ball not drawn, circles = %+v", rec.circles)
	}

	var dashes int
	var leftPaddle bool
	for _, r := range rec.rects {
		if r.w == NetDashWidth && r.h == NetDashHeight {
			dashes++
		}
		if r.color == Classic.LeftPaddle && r.x == 0 && r.h == PaddleHeight {
			leftPaddle = true
		}
	}
	if dashes != FieldHeight/NetDashSpacing+1 {
		t.Errorf("net dashes = %d, expected %d", dashes, FieldHeight/NetDashSpacing+1)
	}
	if !leftPaddle {
		t.Error("left paddle not drawn in its color")
	}
}

func TestRenderGameOver(t *testing.T) {
	rec := &recorder{}
	RenderGameOver(rec, SideRight, Classic)

	for _, text := range []string{"Player 2 Wins!", "Game Over", "Game will restart in 3 seconds"} {
		if rec.count(text) != 1 {
			t.Errorf("end screen should show %q once, texts = %+v", text, rec.texts)
		}
	}
	if rec.texts[0].color != Classic.Banner {
		t.Errorf("banner color = %v, expected %v", rec.texts[0].color, Classic.Banner)
	}
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
