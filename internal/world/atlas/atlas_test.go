package atlas

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/sorceler/internal/core/geom"
	"chosenoffset.com/sorceler/internal/render"
)

const sheetJSON = `{
	"name": "sorceler",
	"image_path": "sheet.png",
	"tile_width": 16,
	"tile_height": 16,
	"gap": 1,
	"sprites": [
		{"name": "player", "x": 0, "y": 0},
		{"name": "chest", "x": 2, "y": 1},
		{"name": "chest_open", "x": 3, "y": 1}
	]
}`

type fakeImage struct {
	rect   image.Rectangle
	subs   int
	drawn  []*render.DrawImageOptions
	parent *fakeImage
}

func (f *fakeImage) Bounds() image.Rectangle { return f.rect }
func (f *fakeImage) Size() (int, int)        { return f.rect.Dx(), f.rect.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	f.subs++
	return &fakeImage{rect: r, parent: f}
}
func (f *fakeImage) Fill(color.Color) {}
func (f *fakeImage) Clear()           {}
func (f *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	f.drawn = append(f.drawn, opts)
}
func (f *fakeImage) Dispose() {}

type fakeLoader struct {
	paths []string
}

func (l *fakeLoader) LoadImage(path string) (render.Image, error) {
	l.paths = append(l.paths, path)
	return &fakeImage{rect: image.Rect(0, 0, 68, 34)}, nil
}

type fakeGeoM struct {
	sx, sy, tx, ty float64
}

func (g *fakeGeoM) Translate(tx, ty float64) { g.tx += tx; g.ty += ty }
func (g *fakeGeoM) Scale(sx, sy float64)     { g.sx, g.sy = sx, sy }
func (g *fakeGeoM) Reset()                   { *g = fakeGeoM{} }

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(sheetJSON))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if config.Gap != 1 {
		t.Errorf("Expected gap 1, got %d", config.Gap)
	}
	if len(config.Sprites) != 3 {
		t.Errorf("Expected 3 sprites, got %d", len(config.Sprites))
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero size": `{"image_path": "a.png", "tile_width": 0, "tile_height": 16}`,
		"no image":  `{"tile_width": 16, "tile_height": 16}`,
		"bad gap":   `{"image_path": "a.png", "tile_width": 16, "tile_height": 16, "gap": -1}`,
		"not json":  `{`,
	}
	for name, data := range cases {
		if _, err := ParseConfig([]byte(data)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestSourceRectSkipsGap(t *testing.T) {
	config, _ := ParseConfig([]byte(sheetJSON))
	a := New(config, &fakeImage{})

	got := a.SourceRect(a.byName["chest"])
	want := image.Rect(34, 17, 50, 33)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSpriteIsCached(t *testing.T) {
	config, _ := ParseConfig([]byte(sheetJSON))
	sheet := &fakeImage{}
	a := New(config, sheet)

	first, err := a.Sprite("chest_open")
	if err != nil {
		t.Fatalf("Sprite failed: %v", err)
	}
	second, _ := a.Sprite("chest_open")
	if first != second || sheet.subs != 1 {
		t.Errorf("Expected one cached sub-image, got %d cuts", sheet.subs)
	}
	if _, err := a.Sprite("dragon"); err == nil {
		t.Error("Expected an error for an unknown sprite")
	}
	if !a.Has("player") || a.Has("dragon") {
		t.Error("Unexpected Has result")
	}
}

func TestDrawScalesToRect(t *testing.T) {
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{} }

	config, _ := ParseConfig([]byte(sheetJSON))
	a := New(config, &fakeImage{})
	screen := &fakeImage{}

	if err := a.Draw(screen, "player", geom.NewRect(10, 20, 64, 64)); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if len(screen.drawn) != 1 {
		t.Fatalf("Expected 1 draw, got %d", len(screen.drawn))
	}
	g := screen.drawn[0].GeoM.(*fakeGeoM)
	if g.sx != 4 || g.sy != 4 || g.tx != 10 || g.ty != 20 {
		t.Errorf("Unexpected transform %+v", *g)
	}
}

func TestLoadAtlasResolvesImagePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprites.json")
	if err := os.WriteFile(path, []byte(sheetJSON), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loader := &fakeLoader{}
	a, err := LoadAtlas(path, loader)
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}
	if len(loader.paths) != 1 || loader.paths[0] != filepath.Join(dir, "sheet.png") {
		t.Errorf("Expected image loaded next to the config, got %v", loader.paths)
	}
	if a.Config.Name != "sorceler" {
		t.Errorf("Expected name sorceler, got %s", a.Config.Name)
	}

	if _, err := LoadAtlas(filepath.Join(dir, "missing.json"), loader); err == nil {
		t.Error("Expected an error for a missing config")
	}
}
