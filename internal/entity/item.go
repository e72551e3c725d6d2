package entity

import (
	"math"

	"chosenoffset.com/sorceler/internal/core/geom"
)

// Item is a pickup that bobs up and down in place.
type Item struct {
	base
	pos geom.Vec2

	step     float64 // Bob phase in [0, bobRange]
	dir      float64 // +1 or -1
	bobRange float64
	bobSpeed float64
}

// NewItem creates an item centered at pos
func NewItem(name string, pos geom.Vec2, size, bobRange, bobSpeed float64) *Item {
	return &Item{
		base:     newBase(name, KindItem, centeredRect(pos, size)),
		pos:      pos,
		dir:      1,
		bobRange: bobRange,
		bobSpeed: bobSpeed,
	}
}

func (it *Item) Position() geom.Vec2 { return it.pos }
func (it *Item) Sprite() string      { return it.name }
func (it *Item) Layer() int          { return LayerObjects }

// Step returns the bob phase
func (it *Item) Step() float64 { return it.step }

// Dir returns the bob direction, +1 or -1
func (it *Item) Dir() float64 { return it.dir }

// Update advances the bobbing animation by one frame
func (it *Item) Update() {
	offset := it.bobRange * (easeInOutSine(it.step/it.bobRange) - 0.5)
	it.rect.SetCenterY(it.pos.Y + offset*it.dir)
	it.step += it.bobSpeed
	if it.step > it.bobRange {
		it.step = 0
		it.dir = -it.dir
	}
}

func easeInOutSine(x float64) float64 {
	return -(math.Cos(math.Pi*x) - 1) / 2
}
