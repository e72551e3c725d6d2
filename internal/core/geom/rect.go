package geom

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
// W and H are never negative.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle, clamping negative sizes to zero.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y-coordinate of the center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetCenter moves the rectangle so its center is at c.
func (r *Rect) SetCenter(c Vec2) {
	r.SetCenterX(c.X)
	r.SetCenterY(c.Y)
}

// SetCenterX moves the rectangle horizontally so its center is at x.
func (r *Rect) SetCenterX(x float64) {
	r.X = x - r.W/2
}

// SetCenterY moves the rectangle vertically so its center is at y.
func (r *Rect) SetCenterY(y float64) {
	r.Y = y - r.H/2
}

// Move returns a copy translated by d.
func (r Rect) Move(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point p is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}
