package entity

import "chosenoffset.com/sorceler/internal/core/geom"

// WallName is the Tiled object name for collision-only walls.
const WallName = "wall"

// Obstacle is an invisible, immovable collision rectangle.
type Obstacle struct {
	base
}

// NewObstacle creates an obstacle covering r
func NewObstacle(r geom.Rect) *Obstacle {
	return &Obstacle{base: newBase(WallName, KindObstacle, r)}
}
