package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Bounds returns the ball's bounding square.
func (b Ball) Bounds() core.Box {
	return core.BoxAround(b.X, b.Y, b.Radius)
}

// Bounds returns the paddle rectangle.
func (p Paddle) Bounds() core.Box {
	return core.BoxAt(p.X, p.Y, p.Width, p.Height)
}

// Collides reports whether the ball's bounding square overlaps the paddle.
// Shapes that only touch do not collide.
func Collides(b Ball, p Paddle) bool {
	return b.Bounds().Overlaps(p.Bounds())
}
