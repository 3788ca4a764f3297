package tui

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Canvas draws the field onto a cell Screen, scaling field units to cells.
// Every shape covers at least one cell so thin lines and the ball stay visible.
type Canvas struct {
	screen *core.Screen
}

// NewCanvas wraps screen.
func NewCanvas(screen *core.Screen) *Canvas {
	return &Canvas{screen: screen}
}

func (c *Canvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / pong.FieldWidth, float64(c.screen.Height()) / pong.FieldHeight
}

// span converts a field interval to a half-open cell range of at least one cell.
func span(start, length, scale float64) (from, to int) {
	from = int(math.Round(start * scale))
	to = int(math.Round((start + length) * scale))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// FillRect paints the cells under the rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col core.Color) {
	sx, sy := c.scale()
	x0, x1 := span(x, w, sx)
	y0, y1 := span(y, h, sy)
	for row := y0; row < y1; row++ {
		for cell := x0; cell < x1; cell++ {
			c.screen.Paint(cell, row, col)
		}
	}
}

// FillCircle paints the cells under the circle's bounding square.
func (c *Canvas) FillCircle(cx, cy, r float64, col core.Color) {
	c.FillRect(cx-r, cy-r, 2*r, 2*r, col)
}

// FillText writes text on one row. Cells keep their background, so text sits on
// whatever was painted before it.
func (c *Canvas) FillText(text string, x, y, size float64, col core.Color) {
	sx, sy := c.scale()
	row := int(math.Floor((y - size*0.35) * sy))
	row = core.Clamp(row, 0, max(c.screen.Height()-1, 0))
	c.screen.DrawText(int(math.Round(x*sx)), row, text, col)
}

// ToField maps a cell to the field coordinates of its center.
func (c *Canvas) ToField(col, row int) (x, y float64) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) / sx, (float64(row) + 0.5) / sy
}
