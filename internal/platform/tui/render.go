package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// colorPair is the cache key for a cell style.
type colorPair struct {
	fg, bg core.Color
}

// Painter converts Screen buffers to styled strings for one lipgloss renderer.
// SSH sessions each get their own renderer so colors match the client terminal.
type Painter struct {
	renderer *lipgloss.Renderer

	mu     sync.Mutex
	styles map[colorPair]lipgloss.Style
}

// NewPainter creates a painter for r, or for the default renderer when r is nil.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

// style returns the cached style for a color pair.
func (p *Painter) style(key colorPair) lipgloss.Style {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.styles[key]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if code := key.fg.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code := key.bg.ANSI(); code != "" {
		s = s.Background(lipgloss.Color(code))
	}
	p.styles[key] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := colorPair{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
