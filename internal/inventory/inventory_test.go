package inventory

import (
	"reflect"
	"testing"
)

func TestInventoryKeepsOrderAndDuplicates(t *testing.T) {
	inv := New()
	inv.Add("iron_key")
	inv.AddAll([]string{"potion", "iron_key"})

	want := []string{"iron_key", "potion", "iron_key"}
	if got := inv.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if inv.Count("iron_key") != 2 {
		t.Errorf("Expected 2 iron_key, got %d", inv.Count("iron_key"))
	}
	if inv.Len() != 3 {
		t.Errorf("Expected len 3, got %d", inv.Len())
	}
}

func TestInventoryRemove(t *testing.T) {
	inv := New("a", "b", "a")

	if !inv.Remove("a") {
		t.Fatal("Expected remove to succeed")
	}
	if got := inv.Items(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("Expected first occurrence removed, got %v", got)
	}
	if inv.Remove("missing") {
		t.Error("Expected remove of missing item to fail")
	}
}

func TestInventoryItemsIsCopy(t *testing.T) {
	inv := New("sword")
	items := inv.Items()
	items[0] = "changed"
	if !inv.Has("sword") {
		t.Error("Mutating Items() result changed the inventory")
	}
}

func TestInventoryOnChange(t *testing.T) {
	inv := New()
	calls := 0
	inv.OnChange = func() { calls++ }

	inv.Add("x")
	inv.AddAll(nil)
	inv.AddAll([]string{"y"})
	inv.Remove("x")
	inv.Clear()

	if calls != 4 {
		t.Errorf("Expected 4 change notifications, got %d", calls)
	}
	if !inv.IsEmpty() {
		t.Error("Expected empty inventory after Clear")
	}
}
