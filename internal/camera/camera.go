// Package camera keeps a scrolling viewport centered on a target without
// showing anything outside the map.
package camera

import "chosenoffset.com/sorceler/internal/core/geom"

// Camera tracks the viewport offset for scrolling large levels. The offset is
// added to world coordinates to get screen coordinates, so it is always <= 0.
type Camera struct {
	X, Y float64

	mapWidth, mapHeight       float64
	screenWidth, screenHeight float64
}

// New creates a camera for a map of the given pixel size.
func New(mapWidth, mapHeight, screenWidth, screenHeight float64) *Camera {
	return &Camera{
		mapWidth:     mapWidth,
		mapHeight:    mapHeight,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Resize changes the screen size used for clamping.
func (c *Camera) Resize(screenWidth, screenHeight float64) {
	c.screenWidth = screenWidth
	c.screenHeight = screenHeight
}

// Update centers the camera on target, then clamps each axis so the map edge
// never scrolls into view. A map narrower than the screen pins that axis at 0.
func (c *Camera) Update(target geom.Rect) {
	center := target.Center()
	c.X = clamp(c.screenWidth/2-center.X, c.mapWidth, c.screenWidth)
	c.Y = clamp(c.screenHeight/2-center.Y, c.mapHeight, c.screenHeight)
}

func clamp(offset, mapSize, screenSize float64) float64 {
	lower := -(mapSize - screenSize)
	if lower > 0 {
		lower = 0
	}
	if offset > 0 {
		offset = 0
	}
	if offset < lower {
		offset = lower
	}
	return offset
}

// Offset returns the current offset as a vector.
func (c *Camera) Offset() geom.Vec2 {
	return geom.Vec2{X: c.X, Y: c.Y}
}

// Apply translates a world-space rectangle into screen space.
func (c *Camera) Apply(r geom.Rect) geom.Rect {
	return r.Move(c.Offset())
}
