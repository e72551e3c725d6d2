// Package physics moves bodies and resolves their collisions against sets of
// axis-aligned obstacles, one axis at a time.
package physics

import "chosenoffset.com/sorceler/internal/core/geom"

// Body is the movable part of an entity. Pos is authoritative; Hit is the
// collision box and is kept centered on Pos by Move and Resolve.
type Body struct {
	Pos geom.Vec2
	Vel geom.Vec2
	Hit geom.Rect
}

// NewBody creates a body at pos with a hit box of the given size.
func NewBody(pos geom.Vec2, hitW, hitH float64) Body {
	b := Body{Pos: pos, Hit: geom.NewRect(0, 0, hitW, hitH)}
	b.Hit.SetCenter(pos)
	return b
}

// Place teleports the body, stopping it and re-syncing the hit box.
func (b *Body) Place(pos geom.Vec2) {
	b.Pos = pos
	b.Vel = geom.Vec2{}
	b.Hit.SetCenter(pos)
}

// Collider is anything a body can run into.
type Collider interface {
	Rect() geom.Rect
}

// Passable is implemented by colliders that can stop blocking,
// e.g. a door once it has been opened.
type Passable interface {
	Passable() bool
}

// Set is an ordered collection of colliders. Resolve walks it by index so the
// first intersecting member is deterministic.
type Set interface {
	Len() int
	Collider(i int) Collider
}
