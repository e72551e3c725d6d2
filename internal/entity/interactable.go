package entity

import (
	"chosenoffset.com/sorceler/internal/core/geom"
	"chosenoffset.com/sorceler/internal/world/defs"
)

// Interactable is a chest or door. It starts closed, may require a key, and
// once used stays open for good.
type Interactable struct {
	base
	pos geom.Vec2

	Type      defs.EntityType
	Key       string
	Open      bool
	Inventory []string

	sprites [2]string
}

// NewInteractable creates an interactable with its top-left corner at pos
func NewInteractable(def defs.EntityDef, pos geom.Vec2, size float64) *Interactable {
	e := &Interactable{
		base:    newBase(def.Name, KindInteractable, geom.NewRect(pos.X, pos.Y, size, size)),
		pos:     pos,
		Type:    def.Type,
		Key:     def.Key,
		sprites: def.Sprites,
	}
	e.Inventory = append(e.Inventory, def.Inventory...)
	return e
}

func (e *Interactable) Position() geom.Vec2 { return e.pos }
func (e *Interactable) Layer() int          { return LayerObjects }

// Sprite returns the closed or open sprite
func (e *Interactable) Sprite() string {
	if e.Open {
		return e.sprites[1]
	}
	return e.sprites[0]
}

// Passable reports whether bodies may walk through it: only open doors.
func (e *Interactable) Passable() bool {
	return e.Type == defs.EntityDoor && e.Open
}

// Locked reports whether the player lacks the required key
func (e *Interactable) Locked(p *Player) bool {
	return e.Key != "" && !p.Inventory.Has(e.Key)
}

// Use opens the entity if the player holds the key. A chest hands its
// contents to the player and is left empty. Using an open entity or a locked
// one does nothing and returns false.
func (e *Interactable) Use(p *Player) bool {
	if e.Open || e.Locked(p) {
		return false
	}
	e.Open = true
	if e.Type == defs.EntityChest {
		p.Inventory.AddAll(e.Inventory)
		e.Inventory = nil
	}
	return true
}
