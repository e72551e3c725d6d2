// Package placeholders draws a stand-in sprite sheet for every sprite the
// world definitions name, so a world can run before real art exists.
package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"slices"

	"chosenoffset.com/sorceler/internal/world/atlas"
	"chosenoffset.com/sorceler/internal/world/defs"
)

const (
	// CellSize is the side of one sprite cell on the sheet
	CellSize = 16
	// Gap is the padding between cells
	Gap = 1
	// Columns per sheet row
	Columns = 8

	ImageName  = "sheet.png"
	ConfigName = "sprites.json"
)

// Palette for each sprite role
var Palette = struct {
	Player      color.RGBA
	Item        color.RGBA
	Mob         color.RGBA
	ChestClosed color.RGBA
	DoorClosed  color.RGBA
	Outline     color.RGBA
}{
	Player:      color.RGBA{0, 255, 100, 255},
	Item:        color.RGBA{255, 215, 0, 255},
	Mob:         color.RGBA{255, 50, 50, 255},
	ChestClosed: color.RGBA{140, 100, 60, 255},
	DoorClosed:  color.RGBA{110, 100, 90, 255},
	Outline:     color.RGBA{30, 28, 25, 255},
}

// Sprite is one generated cell
type Sprite struct {
	Name  string
	Image *image.RGBA
}

// Sprites returns a placeholder for every sprite named by d, plus the
// player sprite, in a stable order. Names are deduplicated.
func Sprites(d *defs.Definitions, playerSprite string) []Sprite {
	var sprites []Sprite
	seen := make(map[string]bool)
	add := func(name string, img *image.RGBA) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		sprites = append(sprites, Sprite{Name: name, Image: img})
	}

	add(playerSprite, CreateCircle(Palette.Player, Palette.Outline))
	for _, name := range d.ItemNames() {
		add(name, CreateDiamond(Palette.Item, Palette.Outline))
	}
	for _, name := range sortedNames(d.Mobs) {
		add(d.Mobs[name].Sprite, CreateCircle(Palette.Mob, Palette.Outline))
	}
	for _, name := range sortedNames(d.Entities) {
		def := d.Entities[name]
		fill := Palette.ChestClosed
		if def.Type == defs.EntityDoor {
			fill = Palette.DoorClosed
		}
		add(def.Sprites[0], CreateBorderedTile(fill, Palette.Outline, 1))
		add(def.Sprites[1], CreateBorderedTile(Darken(fill, 0.5), Palette.Outline, 1))
	}
	return sprites
}

// Generate lays sprites out on a sheet and returns it with its config
func Generate(sprites []Sprite) (*image.RGBA, *atlas.SheetConfig) {
	config := &atlas.SheetConfig{
		Name:       "placeholders",
		ImagePath:  ImageName,
		TileWidth:  CellSize,
		TileHeight: CellSize,
		Gap:        Gap,
	}

	tiles := make([]*image.RGBA, len(sprites))
	for i, s := range sprites {
		tiles[i] = s.Image
		config.Sprites = append(config.Sprites, atlas.SpriteDefinition{
			Name: s.Name,
			X:    i % Columns,
			Y:    i / Columns,
		})
	}
	return CreateSheet(tiles, Columns), config
}

// Save writes the sheet image and its config into dir
func Save(dir string, sheet image.Image, config *atlas.SheetConfig) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := SavePNG(sheet, filepath.Join(dir, config.ImagePath)); err != nil {
		return fmt.Errorf("failed to save sheet: %w", err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sheet config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigName), data, 0o644); err != nil {
		return fmt.Errorf("failed to save sheet config: %w", err)
	}
	return nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CreateBorderedTile creates a cell with a border
func CreateBorderedTile(fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CellSize, CellSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{fillColor}, image.Point{}, draw.Src)

	for i := 0; i < borderWidth; i++ {
		for x := 0; x < CellSize; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, CellSize-1-i, borderColor)
		}
		for y := 0; y < CellSize; y++ {
			img.Set(i, y, borderColor)
			img.Set(CellSize-1-i, y, borderColor)
		}
	}
	return img
}

// CreateCircle creates a round sprite on a transparent cell
func CreateCircle(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CellSize, CellSize))

	center := CellSize / 2
	radius := CellSize/2 - 2
	for y := 0; y < CellSize; y++ {
		for x := 0; x < CellSize; x++ {
			dx, dy := x-center, y-center
			distSq := dx*dx + dy*dy
			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}
	return img
}

// CreateDiamond creates a small gem shape for pickups
func CreateDiamond(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CellSize, CellSize))

	center := CellSize / 2
	radius := CellSize/2 - 3
	for y := 0; y < CellSize; y++ {
		for x := 0; x < CellSize; x++ {
			d := abs(x-center) + abs(y-center)
			if d < radius {
				img.Set(x, y, fillColor)
			} else if d == radius {
				img.Set(x, y, outlineColor)
			}
		}
	}
	return img
}

// CreateSheet copies cells onto one transparent image, row by row
func CreateSheet(tiles []*image.RGBA, columns int) *image.RGBA {
	rows := max(1, (len(tiles)+columns-1)/columns)
	stride := CellSize + Gap

	sheet := image.NewRGBA(image.Rect(0, 0, columns*stride-Gap, rows*stride-Gap))
	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * stride
		y := (i / columns) * stride
		draw.Draw(sheet, image.Rect(x, y, x+CellSize, y+CellSize), tile, image.Point{}, draw.Src)
	}
	return sheet
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
