package pong

import (
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Surface is the drawing port. Coordinates and sizes are in field units; text is
// anchored at the left end of its baseline and size is the glyph height.
type Surface interface {
	FillRect(x, y, w, h float64, c core.Color)
	FillCircle(cx, cy, r float64, c core.Color)
	FillText(text string, x, y, size float64, c core.Color)
}

// Net and text layout.
const (
	NetX           = FieldWidth/2 - 1
	NetDashWidth   = 4
	NetDashHeight  = 10
	NetDashSpacing = 15
	CenterLineW    = 2

	ScoreSize   = 45
	BannerSize  = 60
	CaptionSize = 50
	NoticeSize  = 30
)

// Render draws one frame of play: field, dashed net, both scores, both paddles,
// the ball and the center line.
func Render(dst Surface, s *State, pal registry.Palette) {
	f := s.Field

	dst.FillRect(0, 0, f.Width, f.Height, pal.Field)

	for y := 0.0; y <= f.Height; y += NetDashSpacing {
		dst.FillRect(NetX, y, NetDashWidth, NetDashHeight, pal.Net)
	}

	dst.FillText(strconv.Itoa(s.Left.Score), f.Width/4, f.Height/5, ScoreSize, pal.Score)
	dst.FillText(strconv.Itoa(s.Right.Score), 3*f.Width/4, f.Height/5, ScoreSize, pal.Score)

	dst.FillRect(s.Left.X, s.Left.Y, s.Left.Width, s.Left.Height, pal.LeftPaddle)
	dst.FillRect(s.Right.X, s.Right.Y, s.Right.Width, s.Right.Height, pal.RightPaddle)

	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, pal.Ball)

	dst.FillRect(NetX, 0, CenterLineW, f.Height, pal.Net)
}

// RenderGameOver draws the end screen announcing winner.
func RenderGameOver(dst Surface, winner Side, pal registry.Palette) {
	const w, h = FieldWidth, FieldHeight

	dst.FillRect(0, 0, w, h, pal.Backdrop)
	dst.FillText(winner.String()+" Wins!", w/6, h/2-50, BannerSize, pal.Banner)
	dst.FillText("Game Over", w/4, h/2+50, CaptionSize, pal.Caption)
	dst.FillText("Game will restart in 3 seconds", w/4, h/2+120, NoticeSize, pal.Caption)
}
