// Package core provides fundamental types and utilities shared by the game and its
// frontends. It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Rect represents an integer axis-aligned rectangle in screen space (cells or pixels).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in continuous field units.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAt builds a box from its top-left corner and size.
func BoxAt(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// BoxAround builds the bounding square of a circle.
func BoxAround(cx, cy, r float64) Box {
	return Box{Left: cx - r, Top: cy - r, Right: cx + r, Bottom: cy + r}
}

// Overlaps reports whether the two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Right > o.Left && b.Bottom > o.Top && b.Left < o.Right && b.Top < o.Bottom
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
