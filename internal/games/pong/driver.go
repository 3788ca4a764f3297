package pong

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Phase is the Driver's lifecycle state. Exactly one phase holds at a time.
type Phase int

const (
	PhaseIdle    Phase = iota // not started, or reset after a restart
	PhaseRunning              // frames are being simulated
	PhasePaused               // frame loop suspended, match data kept
	PhaseOver                 // a side won; waiting for the delayed restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for phase transitions and results.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithPalette sets the colors used for drawing.
func WithPalette(p registry.Palette) Option {
	return func(d *Driver) {
		d.palette = p
	}
}

// WithObserver registers fn to receive Driver events.
func WithObserver(fn Observer) Option {
	return func(d *Driver) {
		if fn != nil {
			d.observers = append(d.observers, fn)
		}
	}
}

// Driver runs the game loop. It owns the match State, reacts to commands, and
// schedules its own frames through a core.Scheduler. At most one frame and one
// restart timer are pending at any time.
//
// A Driver is not safe for concurrent use; commands and scheduler callbacks must
// arrive on the same goroutine.
type Driver struct {
	state   State
	phase   Phase
	winner  Side
	stats   Stats
	sched   core.Scheduler
	surface Surface
	palette registry.Palette
	logger  *log.Logger

	observers []Observer

	frame   core.Token // pending tick
	restart core.Token // pending post-game restart
}

// NewDriver creates an idle Driver at kickoff and draws the first static frame.
func NewDriver(sched core.Scheduler, surface Surface, opts ...Option) *Driver {
	d := &Driver{
		state:   NewState(),
		sched:   sched,
		surface: surface,
		palette: Classic,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.render()
	return d
}

// Handle dispatches a command.
func (d *Driver) Handle(c Command) {
	switch c := c.(type) {
	case Start:
		d.Start()
	case Pause:
		d.Pause()
	case Restart:
		d.Restart()
	case PointerMove:
		d.PointerMove(c.X, c.Y)
	}
}

// Start begins the frame loop from Idle, or resumes it in place from Paused.
// It is ignored while running or after the match is over.
func (d *Driver) Start() {
	if d.phase == PhaseRunning || d.phase == PhaseOver {
		return
	}
	d.setPhase(PhaseRunning)
	d.tick()
}

// Pause suspends a running frame loop without touching the match.
func (d *Driver) Pause() {
	if d.phase != PhaseRunning {
		return
	}
	d.cancelFrame()
	d.setPhase(PhasePaused)
}

// Restart returns to Idle from any phase: scores go back to 0-0, the ball is
// re-served, pending frames and timers are dropped, and one static frame is drawn.
func (d *Driver) Restart() {
	d.cancelFrame()
	d.cancelRestart()

	d.state.Reset()
	d.stats = Stats{}
	d.winner = SideNone

	d.setPhase(PhaseIdle)
	d.render()
}

// PointerMove centers the paddle on the pointer's half of the field at y.
// Ignored once the match is over. Outside the running loop the frame is redrawn
// so the paddle's new position shows.
func (d *Driver) PointerMove(x, y float64) {
	if d.phase == PhaseOver {
		return
	}

	p := d.state.Paddle(d.state.SideAt(x))
	p.Y = y - p.Height/2

	if d.phase != PhaseRunning {
		d.render()
	}
}

// Redraw re-renders the presentation for the current phase. Frontends call it
// after their surface changes size.
func (d *Driver) Redraw() {
	if d.phase == PhaseOver {
		RenderGameOver(d.surface, d.winner, d.palette)
		return
	}
	d.render()
}

// Phase returns the current lifecycle phase.
func (d *Driver) Phase() Phase {
	return d.phase
}

// Winner returns the side that won the finished match, or SideNone.
func (d *Driver) Winner() Side {
	return d.winner
}

// State returns a copy of the match state.
func (d *Driver) State() State {
	return d.state
}

// Stats returns the totals of the current match.
func (d *Driver) Stats() Stats {
	return d.stats
}

// Palette returns the colors in use.
func (d *Driver) Palette() registry.Palette {
	return d.palette
}

// tick runs one frame: physics, game-over check, render, reschedule.
func (d *Driver) tick() {
	d.frame = 0
	if d.phase != PhaseRunning {
		return
	}

	out := d.state.Update()
	d.stats.record(out, d.state.Ball.Speed)
	d.report(out)

	if winner, over := d.state.CheckGameOver(); over {
		d.finish(winner)
		return
	}

	d.render()
	d.frame = d.sched.RequestFrame(d.tick)
}

// finish halts the loop, shows the end screen and arms the delayed restart.
func (d *Driver) finish(winner Side) {
	d.cancelFrame()
	d.winner = winner
	d.setPhase(PhaseOver)

	RenderGameOver(d.surface, winner, d.palette)

	d.logger.Info("game over",
		"winner", winner,
		"left", d.state.Left.Score,
		"right", d.state.Right.Score,
		"returns", d.stats.Returns,
		"longest_rally", d.stats.LongestRally,
	)
	d.emit(EventGameOver, winner)

	d.cancelRestart()
	d.restart = d.sched.After(RestartDelay, d.autoRestart)
}

func (d *Driver) autoRestart() {
	d.restart = 0
	if d.phase != PhaseOver {
		return
	}
	d.Restart()
}

// report turns a physics outcome into observer events.
func (d *Driver) report(out Outcome) {
	if out.WallBounce {
		d.emit(EventWallBounce, SideNone)
	}
	if out.Returned != SideNone {
		d.emit(EventPaddleHit, out.Returned)
	}
	if out.Scored != SideNone {
		d.logger.Debug("point",
			"side", out.Scored,
			"left", d.state.Left.Score,
			"right", d.state.Right.Score,
		)
		d.emit(EventPoint, out.Scored)
	}
}

func (d *Driver) setPhase(p Phase) {
	if d.phase == p {
		return
	}
	d.logger.Debug("phase", "from", d.phase, "to", p)
	d.phase = p
	d.emit(EventPhase, SideNone)
}

func (d *Driver) emit(kind EventKind, side Side) {
	if len(d.observers) == 0 {
		return
	}
	ev := Event{
		Kind:  kind,
		Phase: d.phase,
		Side:  side,
		Score: [2]int{d.state.Left.Score, d.state.Right.Score},
		Speed: d.state.Ball.Speed,
		Stats: d.stats,
	}
	for _, fn := range d.observers {
		fn(ev)
	}
}

func (d *Driver) render() {
	Render(d.surface, &d.state, d.palette)
}

func (d *Driver) cancelFrame() {
	d.sched.Cancel(d.frame)
	d.frame = 0
}

func (d *Driver) cancelRestart() {
	d.sched.Cancel(d.restart)
	d.restart = 0
}
