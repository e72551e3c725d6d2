package entity

import (
	"chosenoffset.com/sorceler/internal/core/geom"
	"chosenoffset.com/sorceler/internal/physics"
)

// Group is a named, insertion-ordered collection of objects. Iteration and
// collision queries always follow insertion order.
type Group[T Object] struct {
	name    string
	members []T
}

// NewGroup creates an empty group
func NewGroup[T Object](name string) *Group[T] {
	return &Group[T]{name: name}
}

// Name returns the group name
func (g *Group[T]) Name() string {
	return g.name
}

// Add appends objects that are not already members
func (g *Group[T]) Add(objs ...T) {
	for _, o := range objs {
		if !g.Has(o) {
			g.members = append(g.members, o)
		}
	}
}

// Remove deletes an object, keeping the order of the rest
func (g *Group[T]) Remove(o T) bool {
	for i, m := range g.members {
		if m.ID() == o.ID() {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether o is a member
func (g *Group[T]) Has(o T) bool {
	for _, m := range g.members {
		if m.ID() == o.ID() {
			return true
		}
	}
	return false
}

// Len returns the number of members
func (g *Group[T]) Len() int {
	return len(g.members)
}

// At returns the i-th member
func (g *Group[T]) At(i int) T {
	return g.members[i]
}

// All returns a copy of the members, safe to iterate while mutating the group
func (g *Group[T]) All() []T {
	out := make([]T, len(g.members))
	copy(out, g.members)
	return out
}

// Colliding returns the members whose rect intersects r, in group order
func (g *Group[T]) Colliding(r geom.Rect) []T {
	var hits []T
	for _, m := range g.members {
		if m.Rect().Intersects(r) {
			hits = append(hits, m)
		}
	}
	return hits
}

// Collider implements physics.Set
func (g *Group[T]) Collider(i int) physics.Collider {
	return g.members[i]
}
