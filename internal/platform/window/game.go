// Package window runs pong in a desktop window with Ebitengine. The mouse
// cursor is the pointer and a button bar under the field offers Start, Pause
// and Restart.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Options configures a window game.
type Options struct {
	Palette   registry.Palette
	Scale     float64
	TickRate  int
	Logger    *log.Logger
	Observers []pong.Observer
}

// keyActions lists the keys polled each update, in priority order.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionStart},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

// Game implements ebiten.Game around a pong Driver.
type Game struct {
	driver  *pong.Driver
	queue   *core.FrameQueue
	surface *Surface
	buttons []Button
	logger  *log.Logger
	now     func() time.Time

	lastX, lastY int
}

// NewGame creates an idle match drawn into a fresh surface.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pal := opts.Palette
	if pal.ID == "" {
		pal = pong.Classic
	}

	g := &Game{
		queue:   core.NewFrameQueue(time.Now()),
		surface: NewSurface(),
		buttons: Buttons(),
		logger:  logger,
		now:     time.Now,
		lastX:   -1,
		lastY:   -1,
	}

	driverOpts := []pong.Option{
		pong.WithPalette(pal),
		pong.WithLogger(logger),
	}
	for _, obs := range opts.Observers {
		driverOpts = append(driverOpts, pong.WithObserver(obs))
	}
	g.driver = pong.NewDriver(g.queue, g.surface, driverOpts...)
	return g
}

// Driver returns the game loop.
func (g *Game) Driver() *pong.Driver {
	return g.driver
}

// Update polls input and advances the frame queue.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		if !inpututil.IsKeyJustPressed(ka.key) {
			continue
		}
		if ka.action == core.ActionQuit {
			return ebiten.Termination
		}
		if cmd, ok := pong.CommandFor(ka.action); ok {
			g.driver.Handle(cmd)
		}
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if cmd, ok := ButtonAt(g.buttons, x, y); ok {
			g.driver.Handle(cmd)
		}
	}
	if (x != g.lastX || y != g.lastY) && insideField(x, y) {
		g.driver.Handle(pong.PointerMove{X: float64(x), Y: float64(y)})
	}
	g.lastX, g.lastY = x, y

	g.queue.Advance(g.now())
	return nil
}

// insideField reports whether a logical pixel lies on the playing field.
func insideField(x, y int) bool {
	return x >= 0 && x < pong.FieldWidth && y >= 0 && y < pong.FieldHeight
}

// Draw blits the last rendered field and draws the button bar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)

	bar := RGBA(core.ColorGray)
	vector.FillRect(screen, 0, pong.FieldHeight, pong.FieldWidth, BarHeight, RGBA(core.ColorBlack), false)
	for _, b := range g.buttons {
		r := b.Bounds
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bar, false)
		text.Draw(screen, b.Label, basicfont.Face7x13, r.X+(r.W-7*len(b.Label))/2, r.Y+r.H/2+4, RGBA(core.ColorWhite))
	}

	snap := g.driver.Snapshot()
	status := fmt.Sprintf("%d : %d  %s", snap.LeftScore, snap.RightScore, snap.Phase)
	text.Draw(screen, status, basicfont.Face7x13, pong.FieldWidth-7*len(status)-buttonGap, pong.FieldHeight+BarHeight/2+4, RGBA(core.ColorWhite))
}

// Layout fixes the logical screen to the field plus the button bar.
func (g *Game) Layout(_, _ int) (int, int) {
	return pong.FieldWidth, pong.FieldHeight + BarHeight
}

// Run opens the window and blocks until it is closed or q is pressed.
func Run(opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowSize(int(pong.FieldWidth*scale), int((pong.FieldHeight+BarHeight)*scale))
	tps := opts.TickRate
	if tps <= 0 {
		tps = 60
	}
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		return fmt.Errorf("window: run: %w", err)
	}
	return nil
}
