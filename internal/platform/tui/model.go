package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Options configures a Model.
type Options struct {
	Palette   registry.Palette
	Logger    *log.Logger
	Observers []pong.Observer

	// Remote disables features that touch the host machine (screenshots and
	// clipboard). SSH sessions set it.
	Remote bool

	// Renderer styles the output. Nil uses the default renderer.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model that runs one pong match in the terminal.
// Tick messages advance the frame queue; the driver draws into the screen
// through the canvas whenever it renders.
type Model struct {
	driver  *pong.Driver
	queue   *core.FrameQueue
	screen  *core.Screen
	canvas  *Canvas
	painter *Painter
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	tickRate int
	width    int
	height   int
	remote   bool
	notice   string
	quitting bool
}

// NewModel creates a model sized to cfg with an idle match.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pal := opts.Palette
	if pal.ID == "" {
		pal = pong.Classic
	}

	m := Model{
		queue:    core.NewFrameQueue(time.Now()),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		painter:  NewPainter(opts.Renderer),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		tickRate: cfg.TickRate,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		remote:   opts.Remote,
	}
	m.help.Width = cfg.ScreenW
	m.canvas = NewCanvas(m.screen)

	driverOpts := []pong.Option{
		pong.WithPalette(pal),
		pong.WithLogger(logger),
	}
	for _, obs := range opts.Observers {
		driverOpts = append(driverOpts, pong.WithObserver(obs))
	}
	m.driver = pong.NewDriver(m.queue, m.canvas, driverOpts...)
	return m
}

// Driver returns the game loop driven by this model.
func (m Model) Driver() *pong.Driver {
	return m.driver
}

// Screen returns the cell buffer the match is drawn into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	case TickMsg:
		m.queue.Advance(time.Time(msg))
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case core.ActionScreenshot:
		m.notice = m.saveScreenshot()
	case core.ActionCopy:
		m.notice = m.copyFrame()
	default:
		if cmd, ok := pong.CommandFor(action); ok {
			m.driver.Handle(cmd)
		}
	}
	return m, nil
}

// handleMouse turns pointer motion over the field into paddle moves.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return
	}
	if msg.Y < 0 || msg.Y >= m.screen.Height() {
		return
	}
	x, y := m.canvas.ToField(msg.X, msg.Y)
	m.driver.Handle(pong.PointerMove{X: x, Y: y})
}

// layout sizes the field to the window minus the status line and, when shown,
// the full help, then redraws.
func (m Model) layout() {
	reserved := 1
	if m.help.ShowAll {
		reserved += lipgloss.Height(m.help.View(m.keys))
	}
	m.screen.Resize(m.width, max(m.height-reserved, 0))
	m.driver.Redraw()
}

// View renders the field and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.painter.Render(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	snap := m.driver.Snapshot()
	status := fmt.Sprintf("%d : %d  %s  speed %.1f  rally %d",
		snap.LeftScore, snap.RightScore, snap.Phase, snap.Speed, snap.Rally)
	if m.notice != "" {
		status = m.notice
	}

	dim := m.painter.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	if m.help.ShowAll {
		return dim.Render(status) + "\n" + m.help.View(m.keys)
	}
	return dim.Render(status+"  ") + m.help.View(m.keys)
}

// saveScreenshot writes the current frame as text to ~/.pong/screenshots.
func (m Model) saveScreenshot() string {
	if m.remote {
		return "screenshots are not available over SSH"
	}
	path, err := SaveScreenshot(m.screen, time.Now())
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

func (m Model) copyFrame() string {
	if m.remote {
		return "clipboard is not available over SSH"
	}
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("could not copy frame", "error", err)
		return "copy failed"
	}
	return "frame copied"
}

// SaveScreenshot writes screen as plain text under ~/.pong/screenshots and
// returns the file path.
func SaveScreenshot(screen *core.Screen, at time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: home directory: %w", err)
	}
	return writeScreenshot(filepath.Join(home, ".pong", "screenshots"), screen, at)
}

func writeScreenshot(dir string, screen *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", at.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(screen.String()+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// Run starts a match in the current terminal and blocks until the user quits.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run: %w", err)
	}
	return nil
}
