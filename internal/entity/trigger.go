package entity

import (
	"chosenoffset.com/sorceler/internal/core/geom"
	"chosenoffset.com/sorceler/internal/world/defs"
)

// Trigger is an invisible zone that fires when the player enters it.
type Trigger struct {
	base

	Action      defs.Action
	Destination string // Passage name for teleports
	Event       int    // Event index for events
	Called      bool   // Set once an event has fired
}

// NewTrigger creates a trigger covering r
func NewTrigger(def defs.TriggerDef, r geom.Rect) *Trigger {
	return &Trigger{
		base:        newBase(def.Name, KindTrigger, r),
		Action:      def.Action,
		Destination: def.Destination,
		Event:       def.Event,
	}
}

// Fire latches an event trigger. It returns false if it already fired.
func (t *Trigger) Fire() bool {
	if t.Called {
		return false
	}
	t.Called = true
	return true
}

// Passage is a named landing point for teleports.
type Passage struct {
	base
	Map string
}

// NewPassage creates a passage covering r on map mapID
func NewPassage(name, mapID string, r geom.Rect) *Passage {
	return &Passage{base: newBase(name, KindPassage, r), Map: mapID}
}

// Anchor returns the landing point as a definitions anchor
func (p *Passage) Anchor() defs.Anchor {
	return defs.Anchor{Map: p.Map, X: p.rect.X, Y: p.rect.Y}
}
