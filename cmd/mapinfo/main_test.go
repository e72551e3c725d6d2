package main

import (
	"slices"
	"strings"
	"testing"

	"chosenoffset.com/sorceler/internal/world/defs"
	"chosenoffset.com/sorceler/internal/world/tilemap"
)

const worldLua = `
Item "gem" {}
Entity "lever" { type = "door", sprites = { "lever", "lever_down" } }
Trigger "lever" { action = "event", event = 1 }
Passage "gate" { location = "town" }
Event(1) { text = "Click." }
`

func TestCategories(t *testing.T) {
	d, err := defs.LoadString(worldLua)
	if err != nil {
		t.Fatalf("Failed to load definitions: %v", err)
	}

	cases := map[string][]string{
		"player_start": {"player"},
		"gem":          {"item"},
		"lever":        {"door", "trigger:event"},
		"gate":         {"passage"},
		"wall":         {"wall"},
		"mystery":      nil,
	}
	for name, want := range cases {
		if got := categories(name, d); !slices.Equal(got, want) {
			t.Errorf("%s: expected %v, got %v", name, want, got)
		}
	}
}

func TestReportListsPlacements(t *testing.T) {
	d, err := defs.LoadString(worldLua)
	if err != nil {
		t.Fatalf("Failed to load definitions: %v", err)
	}
	m := &tilemap.Map{
		Path: "town.tmx", Width: 4, Height: 4, TileWidth: 16, TileHeight: 16,
		Objects: []tilemap.Object{
			{Name: "gem", X: 16, Y: 16, Width: 16, Height: 16},
			{Name: "mystery", X: 32, Y: 0, Width: 16, Height: 16},
		},
	}
	out := report(m, d)
	for _, want := range []string{"town.tmx", "2 placements", "gem", "item", "mystery", "unknown"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected report to contain %q:\n%s", want, out)
		}
	}
}
