package window

import (
	"image/color"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// rgba maps palette colors to window colors. Entries follow the xterm defaults
// of the matching ANSI codes so both frontends show the same theme.
var rgba = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0, G: 0, B: 0, A: 255},
	core.ColorBlack:         {R: 0, G: 0, B: 0, A: 255},
	core.ColorRed:           {R: 205, G: 0, B: 0, A: 255},
	core.ColorGreen:         {R: 0, G: 128, B: 0, A: 255},
	core.ColorYellow:        {R: 255, G: 215, B: 0, A: 255},
	core.ColorBlue:          {R: 0, G: 0, B: 238, A: 255},
	core.ColorMagenta:       {R: 205, G: 0, B: 205, A: 255},
	core.ColorCyan:          {R: 0, G: 205, B: 205, A: 255},
	core.ColorWhite:         {R: 255, G: 255, B: 255, A: 255},
	core.ColorBrightRed:     {R: 255, G: 85, B: 85, A: 255},
	core.ColorBrightGreen:   {R: 85, G: 255, B: 85, A: 255},
	core.ColorBrightYellow:  {R: 255, G: 255, B: 85, A: 255},
	core.ColorBrightBlue:    {R: 92, G: 92, B: 255, A: 255},
	core.ColorBrightMagenta: {R: 255, G: 85, B: 255, A: 255},
	core.ColorBrightCyan:    {R: 85, G: 255, B: 255, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 135, B: 0, A: 255},
	core.ColorGray:          {R: 128, G: 128, B: 128, A: 255},
	core.ColorNavy:          {R: 0, G: 0, B: 95, A: 255},
}

// RGBA returns the window color for c. Unknown colors render black.
func RGBA(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorDefault]
}
