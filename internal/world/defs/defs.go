// Package defs holds the static world definition tables: which Tiled object
// names become items, mobs, interactable entities, triggers and passages.
// Definitions are immutable after loading; passage anchors resolved at map
// build time live in a separate ResolvedPassages table owned by the caller.
package defs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ErrInvalidDefinition is wrapped by every validation failure.
var ErrInvalidDefinition = errors.New("invalid world definition")

// EntityType is the kind of an interactable entity.
type EntityType string

const (
	EntityChest EntityType = "chest"
	EntityDoor  EntityType = "door"
)

// Action is what a trigger does when the player walks into it.
type Action string

const (
	ActionTeleport Action = "teleport"
	ActionEvent    Action = "event"
)

// MobDef maps a mob object name to its sprite.
type MobDef struct {
	Name   string
	Sprite string
}

// EntityDef describes a chest or door.
type EntityDef struct {
	Name      string
	Type      EntityType
	Key       string    // Item required to use it; empty means unlocked
	Sprites   [2]string // Closed and open sprite names
	Inventory []string  // Chest contents
}

// TriggerDef describes an invisible trigger zone.
type TriggerDef struct {
	Name        string
	Action      Action
	Destination string // Passage name, teleport only
	Event       int    // Event index, event only
}

// PassageDef is a named landing point on a map.
type PassageDef struct {
	Name     string
	Location string // Map id
	X, Y     float64
}

// EventDef is the presentation payload of a numbered event.
type EventDef struct {
	Index int
	Text  string
}

// Anchor is a resolved teleport landing point.
type Anchor struct {
	Map  string
	X, Y float64
}

// ResolvedPassages records the anchor each passage was placed at when its
// map was built. Entries override the static PassageDef coordinates.
type ResolvedPassages map[string]Anchor

// Merge copies every anchor of other into r.
func (r ResolvedPassages) Merge(other ResolvedPassages) {
	for name, a := range other {
		r[name] = a
	}
}

// Definitions holds all world tables for a game
type Definitions struct {
	Items    mapset.Set[string]
	Mobs     map[string]MobDef
	Entities map[string]EntityDef
	Triggers map[string]TriggerDef
	Passages map[string]PassageDef
	Events   map[int]EventDef
}

// New creates empty definitions
func New() *Definitions {
	return &Definitions{
		Items:    mapset.New[string](),
		Mobs:     make(map[string]MobDef),
		Entities: make(map[string]EntityDef),
		Triggers: make(map[string]TriggerDef),
		Passages: make(map[string]PassageDef),
		Events:   make(map[int]EventDef),
	}
}

// IsItem reports whether name is a pickup item
func (d *Definitions) IsItem(name string) bool {
	return d.Items.Has(name)
}

// Validate checks cross references between tables
func (d *Definitions) Validate() error {
	for _, name := range sortedKeys(d.Entities) {
		def := d.Entities[name]
		switch def.Type {
		case EntityChest, EntityDoor:
		default:
			return fmt.Errorf("%w: entity %q has unknown type %q", ErrInvalidDefinition, name, def.Type)
		}
		if def.Sprites[0] == "" || def.Sprites[1] == "" {
			return fmt.Errorf("%w: entity %q needs a closed and an open sprite", ErrInvalidDefinition, name)
		}
		if def.Type == EntityDoor && len(def.Inventory) > 0 {
			return fmt.Errorf("%w: door %q cannot have an inventory", ErrInvalidDefinition, name)
		}
	}

	for _, name := range sortedKeys(d.Triggers) {
		def := d.Triggers[name]
		switch def.Action {
		case ActionTeleport:
			if _, ok := d.Passages[def.Destination]; !ok {
				return fmt.Errorf("%w: trigger %q teleports to undefined passage %q", ErrInvalidDefinition, name, def.Destination)
			}
		case ActionEvent:
			if _, ok := d.Events[def.Event]; !ok {
				return fmt.Errorf("%w: trigger %q fires undefined event %d", ErrInvalidDefinition, name, def.Event)
			}
		default:
			return fmt.Errorf("%w: trigger %q has unknown action %q", ErrInvalidDefinition, name, def.Action)
		}
	}

	for _, name := range sortedKeys(d.Passages) {
		if d.Passages[name].Location == "" {
			return fmt.Errorf("%w: passage %q has no location", ErrInvalidDefinition, name)
		}
	}

	for _, name := range sortedKeys(d.Mobs) {
		if d.Mobs[name].Sprite == "" {
			return fmt.Errorf("%w: mob %q has no sprite", ErrInvalidDefinition, name)
		}
	}

	return nil
}

// Anchor returns where a teleport into passage lands. Anchors resolved by
// building the passage's map win over the static coordinates.
func (d *Definitions) Anchor(passage string, resolved ResolvedPassages) (Anchor, error) {
	def, ok := d.Passages[passage]
	if !ok {
		return Anchor{}, fmt.Errorf("%w: undefined passage %q", ErrInvalidDefinition, passage)
	}
	if a, ok := resolved[passage]; ok {
		return a, nil
	}
	return Anchor{Map: def.Location, X: def.X, Y: def.Y}, nil
}

// ItemNames returns the item names sorted
func (d *Definitions) ItemNames() []string {
	names := make([]string, 0, d.Items.Size())
	d.Items.Each(func(name string) {
		names = append(names, name)
	})
	sort.Strings(names)
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
