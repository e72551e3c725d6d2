// Package inventory provides the player's item inventory.
// Items are stored by name in pickup order; duplicates are kept.
package inventory

import (
	"fmt"
	"strings"
)

// Inventory holds all items for a player
type Inventory struct {
	items []string

	// OnChange callback when inventory changes (for UI updates)
	OnChange func()
}

// New creates a new empty inventory
func New(items ...string) *Inventory {
	inv := &Inventory{}
	inv.items = append(inv.items, items...)
	return inv
}

// Has checks if the inventory contains at least one of the named item
func (inv *Inventory) Has(itemName string) bool {
	for _, it := range inv.items {
		if it == itemName {
			return true
		}
	}
	return false
}

// Count returns the quantity of an item (0 if not present)
func (inv *Inventory) Count(itemName string) int {
	n := 0
	for _, it := range inv.items {
		if it == itemName {
			n++
		}
	}
	return n
}

// Add appends an item
func (inv *Inventory) Add(itemName string) {
	inv.items = append(inv.items, itemName)
	inv.notifyChange()
}

// AddAll appends items in order
func (inv *Inventory) AddAll(itemNames []string) {
	if len(itemNames) == 0 {
		return
	}
	inv.items = append(inv.items, itemNames...)
	inv.notifyChange()
}

// Remove removes the first occurrence of an item, returns true if one was found
func (inv *Inventory) Remove(itemName string) bool {
	for i, it := range inv.items {
		if it == itemName {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			inv.notifyChange()
			return true
		}
	}
	return false
}

// Clear removes all items from the inventory
func (inv *Inventory) Clear() {
	inv.items = nil
	inv.notifyChange()
}

// Items returns a copy of the items in pickup order
func (inv *Inventory) Items() []string {
	out := make([]string, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the total number of items
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// IsEmpty returns true if the inventory has no items
func (inv *Inventory) IsEmpty() bool {
	return len(inv.items) == 0
}

// notifyChange calls the OnChange callback if set
func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}

// String returns a representation for the inventory dump key
func (inv *Inventory) String() string {
	return fmt.Sprintf("Inventory{%d items: [%s]}", len(inv.items), strings.Join(inv.items, ", "))
}
