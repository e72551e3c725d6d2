package camera

import (
	"testing"

	"chosenoffset.com/sorceler/internal/core/geom"
)

func target(x, y float64) geom.Rect {
	r := geom.NewRect(0, 0, 64, 64)
	r.SetCenter(geom.V(x, y))
	return r
}

func TestCameraCentersOnTarget(t *testing.T) {
	c := New(2000, 2000, 800, 600)
	c.Update(target(1000, 1000))

	if c.X != -600 || c.Y != -700 {
		t.Errorf("Expected offset (-600, -700), got (%v, %v)", c.X, c.Y)
	}

	screen := c.Apply(target(1000, 1000))
	if screen.Center() != geom.V(400, 300) {
		t.Errorf("Expected target at screen center, got %v", screen.Center())
	}
}

func TestCameraClampsToMapEdges(t *testing.T) {
	c := New(2000, 2000, 800, 600)

	c.Update(target(10, 10))
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Expected offset (0, 0) at top-left, got (%v, %v)", c.X, c.Y)
	}

	c.Update(target(1990, 1990))
	if c.X != -1200 || c.Y != -1400 {
		t.Errorf("Expected offset (-1200, -1400) at bottom-right, got (%v, %v)", c.X, c.Y)
	}
}

func TestCameraSmallMap(t *testing.T) {
	// 640 wide fits inside 800, so x never moves; 640 tall is 40 taller than 600.
	c := New(640, 640, 800, 600)

	for _, p := range []geom.Vec2{{X: 0, Y: 0}, {X: 320, Y: 320}, {X: 640, Y: 640}, {X: -500, Y: 5000}} {
		c.Update(target(p.X, p.Y))
		if c.X != 0 {
			t.Errorf("target %v: expected x offset 0, got %v", p, c.X)
		}
		if c.Y > 0 || c.Y < -40 {
			t.Errorf("target %v: expected y offset in [-40, 0], got %v", p, c.Y)
		}
	}
}

func TestCameraMapEqualToScreen(t *testing.T) {
	c := New(800, 600, 800, 600)
	c.Update(target(700, 500))
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Expected offset (0, 0), got (%v, %v)", c.X, c.Y)
	}
}
