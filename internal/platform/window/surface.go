package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// glyphAscent is the ascent of basicfont.Face7x13 in pixels.
const glyphAscent = 11

// Surface draws the field onto an offscreen image, one pixel per field unit.
// The image keeps the last frame the driver rendered; Draw blits it every frame.
type Surface struct {
	img    *ebiten.Image
	labels map[string]*ebiten.Image
}

// NewSurface allocates a field-sized image.
func NewSurface() *Surface {
	return &Surface{
		img:    ebiten.NewImage(pong.FieldWidth, pong.FieldHeight),
		labels: make(map[string]*ebiten.Image),
	}
}

// Image returns the offscreen image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// FillRect fills a rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c core.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), RGBA(c), false)
}

// FillCircle fills a circle.
func (s *Surface) FillCircle(cx, cy, r float64, c core.Color) {
	vector.FillCircle(s.img, float32(cx), float32(cy), float32(r), RGBA(c), true)
}

// FillText draws text with its baseline at y. The bitmap font is scaled so the
// cap height is close to 0.7 of size.
func (s *Surface) FillText(str string, x, y, size float64, c core.Color) {
	label := s.label(str)
	if label == nil {
		return
	}
	scale := textScale(size)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-glyphAscent*scale)
	op.ColorScale.ScaleWithColor(RGBA(c))
	s.img.DrawImage(label, op)
}

// label returns a cached white rendering of str at the font's native size.
func (s *Surface) label(str string) *ebiten.Image {
	if img, ok := s.labels[str]; ok {
		return img
	}
	bounds := text.BoundString(basicfont.Face7x13, str)
	if bounds.Dx() <= 0 {
		return nil
	}
	img := ebiten.NewImage(bounds.Dx(), basicfont.Face7x13.Height)
	text.Draw(img, str, basicfont.Face7x13, -bounds.Min.X, glyphAscent, RGBA(core.ColorWhite))
	s.labels[str] = img
	return img
}

// textScale converts a nominal font size to a bitmap scale factor.
func textScale(size float64) float64 {
	return size * 0.7 / glyphAscent
}
