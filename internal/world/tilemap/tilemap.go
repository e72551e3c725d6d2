// Package tilemap loads Tiled TMX maps: the tile layers become one composed
// background image and the object layers become placement objects.
package tilemap

import (
	"fmt"
	"image"

	"github.com/lafriks/go-tiled"
	tiledrender "github.com/lafriks/go-tiled/render"
)

// Object is a named placement from an object layer, in native map pixels.
// X and Y are always the top-left corner, tile objects included.
type Object struct {
	Name   string
	X, Y   float64
	Width  float64
	Height float64
}

// Map represents a loaded TMX map
type Map struct {
	Path       string
	Width      int // In tiles
	Height     int // In tiles
	TileWidth  int // Native tile width in pixels
	TileHeight int // Native tile height in pixels
	Objects    []Object

	tmx *tiled.Map
}

// Load parses a TMX file. A missing or corrupt file yields an error and no map.
func Load(path string) (*Map, error) {
	tm, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", path, err)
	}

	m := &Map{
		Path:       path,
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
		tmx:        tm,
	}
	if err := validate(m); err != nil {
		return nil, fmt.Errorf("invalid map %s: %w", path, err)
	}

	for _, group := range tm.ObjectGroups {
		for _, obj := range group.Objects {
			y := obj.Y
			// Tile objects are anchored at their bottom-left corner
			if obj.GID != 0 {
				y -= obj.Height
			}
			m.Objects = append(m.Objects, Object{
				Name:   obj.Name,
				X:      obj.X,
				Y:      y,
				Width:  obj.Width,
				Height: obj.Height,
			})
		}
	}

	return m, nil
}

func validate(m *Map) error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", m.Width, m.Height)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return fmt.Errorf("invalid tile size: %dx%d", m.TileWidth, m.TileHeight)
	}
	return nil
}

// NativeTileSize returns the tile size the map was authored at.
func (m *Map) NativeTileSize() int {
	return m.TileHeight
}

// Scale returns the factor from native map pixels to game pixels.
func (m *Map) Scale(tileSize int) float64 {
	return float64(tileSize) / float64(m.NativeTileSize())
}

// PixelSize returns the map size in game pixels.
func (m *Map) PixelSize(tileSize int) (width, height float64) {
	return float64(m.Width * tileSize), float64(m.Height * tileSize)
}

// Compose renders all visible tile layers into one image at native scale.
func (m *Map) Compose() (image.Image, error) {
	if m.tmx == nil {
		return nil, fmt.Errorf("map %s has no tile data", m.Path)
	}
	r, err := tiledrender.NewRenderer(m.tmx)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer for %s: %w", m.Path, err)
	}
	if err := r.RenderVisibleLayers(); err != nil {
		return nil, fmt.Errorf("failed to render layers of %s: %w", m.Path, err)
	}
	return r.Result, nil
}
