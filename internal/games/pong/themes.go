package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Classic is the default look: green table, red and black paddles, white ball.
var Classic = registry.Palette{
	ID:          registry.DefaultTheme,
	Title:       "Classic",
	Field:       core.ColorGreen,
	Net:         core.ColorWhite,
	Score:       core.ColorWhite,
	LeftPaddle:  core.ColorRed,
	RightPaddle: core.ColorBlack,
	Ball:        core.ColorWhite,
	Backdrop:    core.ColorBlack,
	Banner:      core.ColorYellow,
	Caption:     core.ColorWhite,
}

// Midnight is a dark blue palette with neon paddles.
var Midnight = registry.Palette{
	ID:          "midnight",
	Title:       "Midnight",
	Field:       core.ColorNavy,
	Net:         core.ColorGray,
	Score:       core.ColorBrightCyan,
	LeftPaddle:  core.ColorBrightMagenta,
	RightPaddle: core.ColorBrightCyan,
	Ball:        core.ColorBrightWhite,
	Backdrop:    core.ColorNavy,
	Banner:      core.ColorBrightYellow,
	Caption:     core.ColorGray,
}

// Mono uses only black, gray and white.
var Mono = registry.Palette{
	ID:          "mono",
	Title:       "Monochrome",
	Field:       core.ColorBlack,
	Net:         core.ColorGray,
	Score:       core.ColorWhite,
	LeftPaddle:  core.ColorWhite,
	RightPaddle: core.ColorWhite,
	Ball:        core.ColorBrightWhite,
	Backdrop:    core.ColorBlack,
	Banner:      core.ColorBrightWhite,
	Caption:     core.ColorGray,
}

// Register the palettes with the registry
func init() {
	registry.Register(Classic)
	registry.Register(Midnight)
	registry.Register(Mono)
}
