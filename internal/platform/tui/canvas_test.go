package tui

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// newTestCanvas returns a canvas where one cell covers 10x10 field units.
func newTestCanvas() (*Canvas, *core.Screen) {
	s := core.NewScreen(60, 40)
	return NewCanvas(s), s
}

func TestCanvasFillRect(t *testing.T) {
	c, s := newTestCanvas()
	c.FillRect(0, 150, 10, 100, core.ColorRed)

	for row := 15; row < 25; row++ {
		if got := s.GetCell(0, row).Bg; got != core.ColorRed {
			t.Errorf("cell (0,%d) bg = %v, expected %v", row, got, core.ColorRed)
		}
	}
	if got := s.GetCell(1, 20).Bg; got != core.ColorDefault {
		t.Errorf("cell (1,20) bg = %v, expected default", got)
	}
	if got := s.GetCell(0, 25).Bg; got != core.ColorDefault {
		t.Errorf("cell (0,25) bg = %v, expected default", got)
	}
}

func TestCanvasThinShapesCoverOneCell(t *testing.T) {
	c, s := newTestCanvas()
	c.FillRect(299, 0, 2, 4, core.ColorWhite)

	painted := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.GetCell(x, y).Bg == core.ColorWhite {
				painted++
			}
		}
	}
	if painted != 1 {
		t.Errorf("painted %d cells, expected 1", painted)
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c, s := newTestCanvas()
	c.FillCircle(300, 200, 10, core.ColorWhite)

	for _, p := range [][2]int{{29, 19}, {30, 19}, {29, 20}, {30, 20}} {
		if got := s.GetCell(p[0], p[1]).Bg; got != core.ColorWhite {
			t.Errorf("cell %v bg = %v, expected %v", p, got, core.ColorWhite)
		}
	}
	if got := s.GetCell(31, 20).Bg; got != core.ColorDefault {
		t.Errorf("cell (31,20) bg = %v, expected default", got)
	}
}

func TestCanvasFillTextKeepsBackground(t *testing.T) {
	c, s := newTestCanvas()
	c.FillRect(0, 0, 600, 400, core.ColorGreen)
	c.FillText("7", 150, 80, 45, core.ColorWhite)

	cell := s.GetCell(15, 6)
	if cell.Rune != '7' {
		t.Fatalf("rune at (15,6) = %q, expected '7'", cell.Rune)
	}
	if cell.Fg != core.ColorWhite || cell.Bg != core.ColorGreen {
		t.Errorf("cell colors = %v/%v, expected white on green", cell.Fg, cell.Bg)
	}
}

func TestCanvasFillTextClampsRow(t *testing.T) {
	c, s := newTestCanvas()
	c.FillText("top", 0, 0, 60, core.ColorWhite)

	if got := s.Row(0)[:3]; got != "top" {
		t.Errorf("Row(0) = %q, expected text on the first row", got)
	}
}

func TestCanvasToField(t *testing.T) {
	c, _ := newTestCanvas()

	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, 5, 5},
		{29, 19, 295, 195},
		{59, 39, 595, 395},
	}

	for _, tc := range tests {
		x, y := c.ToField(tc.col, tc.row)
		if math.Abs(x-tc.x) > 1e-9 || math.Abs(y-tc.y) > 1e-9 {
			t.Errorf("ToField(%d, %d) = (%v, %v), expected (%v, %v)", tc.col, tc.row, x, y, tc.x, tc.y)
		}
	}
}

func TestCanvasToFieldEmptyScreen(t *testing.T) {
	c := NewCanvas(core.NewScreen(0, 0))
	if x, y := c.ToField(3, 3); x != 0 || y != 0 {
		t.Errorf("ToField on empty screen = (%v, %v), expected (0, 0)", x, y)
	}
}
