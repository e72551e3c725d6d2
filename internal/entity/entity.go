// Package entity provides the game objects that live in a map view: the
// player, static obstacles, pickups, mobs, chests and doors, and the
// invisible triggers and passages. Objects are grouped in ordered Groups.
package entity

import (
	"github.com/google/uuid"

	"chosenoffset.com/sorceler/internal/core/geom"
)

// Kind identifies the variant of an object
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindItem
	KindMob
	KindInteractable
	KindTrigger
	KindPassage
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindItem:
		return "item"
	case KindMob:
		return "mob"
	case KindInteractable:
		return "entity"
	case KindTrigger:
		return "trigger"
	case KindPassage:
		return "passage"
	default:
		return "unknown"
	}
}

// Draw layers, lowest first.
const (
	LayerFloor = iota
	LayerObjects
	LayerMobs
	LayerPlayer
)

// Object is anything placed in a view. Rect is the visual bounds, which is
// also what other bodies collide with.
type Object interface {
	ID() uuid.UUID
	Name() string
	Kind() Kind
	Rect() geom.Rect
}

// Positioned objects have an authoritative position.
type Positioned interface {
	Position() geom.Vec2
}

// Drawable objects have a sprite. An empty sprite name draws nothing.
type Drawable interface {
	Object
	Sprite() string
	Layer() int
}

// Usable objects react to the interact key.
type Usable interface {
	Use(p *Player) bool
}

var (
	_ Drawable   = (*Player)(nil)
	_ Drawable   = (*Item)(nil)
	_ Drawable   = (*Mob)(nil)
	_ Drawable   = (*Interactable)(nil)
	_ Positioned = (*Player)(nil)
	_ Positioned = (*Item)(nil)
	_ Positioned = (*Mob)(nil)
	_ Positioned = (*Interactable)(nil)
	_ Usable     = (*Interactable)(nil)
)

// base carries the fields common to every object
type base struct {
	id   uuid.UUID
	name string
	kind Kind
	rect geom.Rect
}

func newBase(name string, kind Kind, rect geom.Rect) base {
	return base{id: uuid.New(), name: name, kind: kind, rect: rect}
}

func (b *base) ID() uuid.UUID   { return b.id }
func (b *base) Name() string    { return b.name }
func (b *base) Kind() Kind      { return b.kind }
func (b *base) Rect() geom.Rect { return b.rect }

// centeredRect returns a size x size square centered on pos
func centeredRect(pos geom.Vec2, size float64) geom.Rect {
	r := geom.NewRect(0, 0, size, size)
	r.SetCenter(pos)
	return r
}
