package window

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Button bar geometry, in logical pixels below the field.
const (
	BarHeight    = 40
	buttonWidth  = 100
	buttonHeight = 28
	buttonGap    = 10
)

// Button is a clickable control in the bar under the field.
type Button struct {
	Label   string
	Bounds  core.Rect
	Command pong.Command
}

// Buttons returns the Start, Pause and Restart buttons laid out left to right.
func Buttons() []Button {
	top := pong.FieldHeight + (BarHeight-buttonHeight)/2
	labels := []struct {
		label string
		cmd   pong.Command
	}{
		{"Start", pong.Start{}},
		{"Pause", pong.Pause{}},
		{"Restart", pong.Restart{}},
	}

	buttons := make([]Button, len(labels))
	for i, l := range labels {
		x := buttonGap + i*(buttonWidth+buttonGap)
		buttons[i] = Button{
			Label:   l.label,
			Bounds:  core.NewRect(x, top, buttonWidth, buttonHeight),
			Command: l.cmd,
		}
	}
	return buttons
}

// ButtonAt returns the command of the button under (x, y).
func ButtonAt(buttons []Button, x, y int) (pong.Command, bool) {
	for _, b := range buttons {
		if b.Bounds.Contains(x, y) {
			return b.Command, true
		}
	}
	return nil, false
}
