package pong

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const frame = 16 * time.Millisecond

type harness struct {
	q      *core.FrameQueue
	rec    *recorder
	d      *Driver
	events []Event
	now    time.Time
}

func newHarness() *harness {
	h := &harness{
		q:   core.NewFrameQueue(epoch),
		rec: &recorder{},
		now: epoch,
	}
	h.d = NewDriver(h.q, h.rec, WithObserver(func(ev Event) {
		h.events = append(h.events, ev)
	}))
	return h
}

func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.now = h.now.Add(frame)
		h.q.Advance(h.now)
	}
}

func (h *harness) wait(d time.Duration) {
	h.now = h.now.Add(d)
	h.q.Advance(h.now)
}

func (h *harness) countEvents(kind EventKind) int {
	n := 0
	for _, ev := range h.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// setMatchPoint arranges for the left side to win on the next simulated frame.
func (h *harness) setMatchPoint() {
	h.d.state.Left.Score = WinningScore - 1
	h.d.state.Right.Y = -500
	h.d.state.Ball.X = 588
	h.d.state.Ball.VelocityX = 5
}

func TestNewDriverDrawsIdleFrame(t *testing.T) {
	h := newHarness()

	if h.d.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected %v", h.d.Phase(), PhaseIdle)
	}
	if h.rec.playFrames() != 1 {
		t.Errorf("initial frames = %d, expected 1", h.rec.playFrames())
	}
	if h.q.PendingFrames() != 0 {
		t.Errorf("PendingFrames() = %d, expected 0 before Start", h.q.PendingFrames())
	}
}

func TestDriverStartRunsLoop(t *testing.T) {
	h := newHarness()
	x0 := h.d.State().Ball.X

	h.d.Start()

	if h.d.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v, expected %v", h.d.Phase(), PhaseRunning)
	}
	if got := h.d.State().Ball.X; got != x0+5 {
		t.Errorf("ball x after Start = %v, expected %v", got, x0+5)
	}

	h.step(3)
	if got := h.d.State().Ball.X; got != x0+20 {
		t.Errorf("ball x after 3 frames = %v, expected %v", got, x0+20)
	}
	if h.q.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, expected 1", h.q.PendingFrames())
	}
	if h.d.Stats().Ticks != 4 {
		t.Errorf("Ticks = %d, expected 4", h.d.Stats().Ticks)
	}
}

func TestDriverStartIgnoredWhileRunning(t *testing.T) {
	h := newHarness()
	h.d.Start()
	x := h.d.State().Ball.X

	h.d.Start()
	h.d.Handle(Start{})

	if h.d.State().Ball.X != x {
		t.Error("Start while running should not simulate an extra frame")
	}
	if h.q.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, expected 1", h.q.PendingFrames())
	}
}

func TestDriverPauseAndResume(t *testing.T) {
	h := newHarness()
	h.d.Start()
	h.step(5)

	h.d.Pause()
	paused := h.d.State()

	if h.d.Phase() != PhasePaused {
		t.Fatalf("Phase() = %v, expected %v", h.d.Phase(), PhasePaused)
	}
	if h.q.PendingFrames() != 0 {
		t.Errorf("PendingFrames() = %d, expected 0 while paused", h.q.PendingFrames())
	}

	h.step(10)
	if h.d.State() != paused {
		t.Error("state changed while paused")
	}

	h.d.Start()
	if h.d.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v, expected %v", h.d.Phase(), PhaseRunning)
	}
	resumed := h.d.State()
	if resumed.Ball.X != paused.Ball.X+paused.Ball.VelocityX {
		t.Errorf("ball x = %v, expected to resume from %v", resumed.Ball.X, paused.Ball.X)
	}
	if resumed.Left.Score != paused.Left.Score || resumed.Right.Score != paused.Right.Score {
		t.Error("resume should keep the score")
	}
}

func TestDriverPauseIgnoredWhenNotRunning(t *testing.T) {
	h := newHarness()
	h.d.Pause()

	if h.d.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected %v", h.d.Phase(), PhaseIdle)
	}
}

func TestDriverGameOver(t *testing.T) {
	h := newHarness()
	h.setMatchPoint()
	h.rec.reset()

	h.d.Start()

	if h.d.Phase() != PhaseOver {
		t.Fatalf("Phase() = %v, expected %v", h.d.Phase(), PhaseOver)
	}
	if h.d.Winner() != SideLeft {
		t.Errorf("Winner() = %v, expected %v", h.d.Winner(), SideLeft)
	}
	if !h.d.State().Over {
		t.Error("State().Over = false, expected true")
	}
	if h.q.PendingFrames() != 0 {
		t.Errorf("PendingFrames() = %d, expected 0", h.q.PendingFrames())
	}
	if h.q.PendingTimers() != 1 {
		t.Errorf("PendingTimers() = %d, expected 1", h.q.PendingTimers())
	}

	final := h.d.State()
	h.step(60)
	h.d.Start()
	h.d.PointerMove(10, 10)

	if h.d.State() != final {
		t.Error("state changed after game over")
	}
	if h.rec.count("Player 1 Wins!") != 1 {
		t.Errorf("end screen drawn %d times, expected 1", h.rec.count("Player 1 Wins!"))
	}
	if h.rec.playFrames() != 0 {
		t.Errorf("play frames after game over = %d, expected 0", h.rec.playFrames())
	}
	if h.countEvents(EventGameOver) != 1 {
		t.Errorf("game-over events = %d, expected 1", h.countEvents(EventGameOver))
	}
}

func TestDriverRestartsAfterDelay(t *testing.T) {
	h := newHarness()
	h.setMatchPoint()
	h.d.Start()

	h.wait(RestartDelay - time.Millisecond)
	if h.d.Phase() != PhaseOver {
		t.Fatalf("Phase() = %v before the delay elapsed, expected %v", h.d.Phase(), PhaseOver)
	}

	h.rec.reset()
	h.wait(time.Millisecond)

	s := h.d.State()
	if h.d.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected %v", h.d.Phase(), PhaseIdle)
	}
	if s.Left.Score != 0 || s.Right.Score != 0 || s.Over {
		t.Errorf("after restart: score %d-%d, Over = %v", s.Left.Score, s.Right.Score, s.Over)
	}
	if h.rec.playFrames() != 1 {
		t.Errorf("frames drawn on restart = %d, expected 1", h.rec.playFrames())
	}
	if h.q.PendingFrames() != 0 || h.q.PendingTimers() != 0 {
		t.Errorf("pending frames/timers = %d/%d, expected 0/0", h.q.PendingFrames(), h.q.PendingTimers())
	}
}

func TestDriverRestartWhileOver(t *testing.T) {
	h := newHarness()
	h.setMatchPoint()
	h.d.Start()
	h.rec.reset()

	h.d.Handle(Restart{})

	s := h.d.State()
	if h.d.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v, expected %v", h.d.Phase(), PhaseIdle)
	}
	if s.Left.Score != 0 || s.Right.Score != 0 || s.Over {
		t.Errorf("after Restart: score %d-%d, Over = %v", s.Left.Score, s.Right.Score, s.Over)
	}
	if s.Ball.X != FieldWidth/2 || s.Ball.Y != FieldHeight/2 || s.Ball.Speed != InitialSpeed {
		t.Errorf("ball = %+v, expected reset", s.Ball)
	}
	if h.d.Winner() != SideNone {
		t.Errorf("Winner() = %v, expected none", h.d.Winner())
	}
	if h.rec.playFrames() != 1 {
		t.Errorf("frames drawn = %d, expected 1", h.rec.playFrames())
	}

	// the cancelled restart timer must not fire and nothing moves until Start
	h.wait(2 * RestartDelay)
	if h.d.State() != s {
		t.Error("state changed before Start")
	}
	if h.rec.playFrames() != 1 {
		t.Errorf("frames drawn = %d, expected 1", h.rec.playFrames())
	}

	h.d.Start()
	if h.d.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected %v", h.d.Phase(), PhaseRunning)
	}
}

func TestDriverRestartWhileRunning(t *testing.T) {
	h := newHarness()
	h.d.Start()
	h.step(3)

	h.d.Restart()

	if h.d.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected %v", h.d.Phase(), PhaseIdle)
	}
	if h.q.PendingFrames() != 0 {
		t.Errorf("PendingFrames() = %d, expected 0", h.q.PendingFrames())
	}
	if h.d.Stats() != (Stats{}) {
		t.Errorf("Stats() = %+v, expected zero", h.d.Stats())
	}
}

func TestDriverPointerMove(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		side      Side
		expectedY float64
	}{
		{"left half", 100, 200, SideLeft, 150},
		{"right half", 450, 80, SideRight, 30},
		{"net goes right", FieldWidth / 2, 300, SideRight, 250},
		{"off the top is kept", 10, -40, SideLeft, -90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness()
			h.rec.reset()

			h.d.Handle(PointerMove{X: tc.x, Y: tc.y})

			s := h.d.State()
			if got := s.Paddle(tc.side).Y; got != tc.expectedY {
				t.Errorf("paddle y = %v, expected %v", got, tc.expectedY)
			}
			if h.rec.playFrames() != 1 {
				t.Errorf("frames drawn = %d, expected 1 while idle", h.rec.playFrames())
			}
		})
	}
}

func TestDriverPointerMoveWhileRunningDoesNotDraw(t *testing.T) {
	h := newHarness()
	h.d.Start()
	h.rec.reset()

	h.d.PointerMove(100, 100)

	if h.rec.playFrames() != 0 {
		t.Errorf("frames drawn = %d, expected 0", h.rec.playFrames())
	}
	if h.d.State().Left.Y != 50 {
		t.Errorf("left paddle y = %v, expected 50", h.d.State().Left.Y)
	}
}

func TestDriverRedraw(t *testing.T) {
	h := newHarness()
	h.rec.reset()
	h.d.Redraw()
	if h.rec.playFrames() != 1 {
		t.Errorf("Redraw() while idle drew %d frames, expected 1", h.rec.playFrames())
	}

	h.setMatchPoint()
	h.d.Start()
	h.rec.reset()
	h.d.Redraw()
	if h.rec.count("Game Over") != 1 || h.rec.playFrames() != 0 {
		t.Error("Redraw() while over should draw the end screen")
	}
}

func TestDriverEvents(t *testing.T) {
	h := newHarness()
	h.d.state.Ball.Y = 12
	h.d.state.Ball.VelocityY = -5

	h.d.Start()

	if h.countEvents(EventPhase) != 1 {
		t.Errorf("phase events = %d, expected 1", h.countEvents(EventPhase))
	}
	if h.countEvents(EventWallBounce) != 1 {
		t.Errorf("wall events = %d, expected 1", h.countEvents(EventWallBounce))
	}
	if h.events[0].Phase != PhaseRunning {
		t.Errorf("first event phase = %v, expected %v", h.events[0].Phase, PhaseRunning)
	}

	h.d.Restart()
	h.setMatchPoint()
	h.d.Start()

	last := h.events[len(h.events)-1]
	if last.Kind != EventGameOver || last.Side != SideLeft || last.Score != [2]int{WinningScore, 0} {
		t.Errorf("last event = %+v, expected left game over at 5-0", last)
	}
}

func TestDriverSnapshot(t *testing.T) {
	h := newHarness()
	h.d.Start()

	snap := h.d.Snapshot()
	if snap.Phase != PhaseRunning || snap.Speed != InitialSpeed || snap.Winner != SideNone {
		t.Errorf("Snapshot() = %+v", snap)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseIdle, "idle"},
		{PhaseRunning, "running"},
		{PhasePaused, "paused"},
		{PhaseOver, "over"},
	}

	for _, tc := range tests {
		if tc.phase.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.phase.String(), tc.expected)
		}
	}
}
