package entity

import "chosenoffset.com/sorceler/internal/core/geom"

// Mob is a creature placed on the map. Mobs have no behavior yet; they are
// drawn and block movement like an obstacle.
type Mob struct {
	base
	pos    geom.Vec2
	sprite string
}

// NewMob creates a mob centered at pos
func NewMob(name, sprite string, pos geom.Vec2, size float64) *Mob {
	return &Mob{
		base:   newBase(name, KindMob, centeredRect(pos, size)),
		pos:    pos,
		sprite: sprite,
	}
}

func (m *Mob) Position() geom.Vec2 { return m.pos }
func (m *Mob) Sprite() string      { return m.sprite }
func (m *Mob) Layer() int          { return LayerMobs }
