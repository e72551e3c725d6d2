package placeholders

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/sorceler/internal/world/atlas"
	"chosenoffset.com/sorceler/internal/world/defs"
)

const world = `
Item "iron_key" {}
Item "gem" {}
Mob "skeleton" {}
Mob "bones" { sprite = "skeleton" }
Entity "chest_1" { type = "chest", sprites = { "chest", "chest_open" } }
Entity "chest_2" { type = "chest", sprites = { "chest", "chest_open" } }
Entity "door_1" { type = "door", key = "iron_key", sprites = { "door", "door_open" } }
`

func loadWorld(t *testing.T) *defs.Definitions {
	t.Helper()
	d, err := defs.LoadString(world)
	if err != nil {
		t.Fatalf("Failed to load definitions: %v", err)
	}
	return d
}

func TestSpritesAreUnique(t *testing.T) {
	sprites := Sprites(loadWorld(t), "player")

	want := []string{"player", "gem", "iron_key", "skeleton", "chest", "chest_open", "door", "door_open"}
	if len(sprites) != len(want) {
		t.Fatalf("Expected %d sprites, got %d", len(want), len(sprites))
	}
	for i, name := range want {
		if sprites[i].Name != name {
			t.Errorf("Sprite %d: expected %s, got %s", i, name, sprites[i].Name)
		}
		if sprites[i].Image.Bounds().Dx() != CellSize {
			t.Errorf("Sprite %s: expected %dpx cell", name, CellSize)
		}
	}
}

func TestGenerateLayout(t *testing.T) {
	sprites := Sprites(loadWorld(t), "player")
	sprites = append(sprites, Sprite{Name: "extra", Image: CreateCircle(Palette.Mob, Palette.Outline)})

	sheet, config := Generate(sprites)

	// 9 sprites on 8 columns wrap to a second row
	last := config.Sprites[8]
	if last.X != 0 || last.Y != 1 {
		t.Errorf("Expected ninth sprite at (0, 1), got (%d, %d)", last.X, last.Y)
	}
	wantW := Columns*(CellSize+Gap) - Gap
	wantH := 2*(CellSize+Gap) - Gap
	if sheet.Bounds().Dx() != wantW || sheet.Bounds().Dy() != wantH {
		t.Errorf("Expected %dx%d sheet, got %v", wantW, wantH, sheet.Bounds())
	}

	// The gap column stays transparent
	if _, _, _, a := sheet.At(CellSize, 4).RGBA(); a != 0 {
		t.Errorf("Expected transparent gap, got alpha %d", a)
	}
}

func TestSaveWritesSheet(t *testing.T) {
	dir := t.TempDir()
	sheet, config := Generate(Sprites(loadWorld(t), "player"))
	if err := Save(dir, sheet, config); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ConfigName))
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	parsed, err := atlas.ParseConfig(data)
	if err != nil {
		t.Fatalf("Saved config does not parse: %v", err)
	}
	if parsed.Gap != Gap || len(parsed.Sprites) != len(config.Sprites) {
		t.Errorf("Unexpected saved config %+v", parsed)
	}

	f, err := os.Open(filepath.Join(dir, ImageName))
	if err != nil {
		t.Fatalf("Failed to open sheet: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode sheet: %v", err)
	}
	if img.Bounds() != sheet.Bounds() {
		t.Errorf("Expected %v, got %v", sheet.Bounds(), img.Bounds())
	}
}
