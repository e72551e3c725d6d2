// Package atlas draws named sprites cut from a sprite sheet image.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/sorceler/internal/core/geom"
	"chosenoffset.com/sorceler/internal/render"
)

// SpriteDefinition places a named sprite on the sheet
type SpriteDefinition struct {
	Name string `json:"name"`
	X    int    `json:"x"` // Column, in cells
	Y    int    `json:"y"` // Row, in cells
}

// SheetConfig defines the JSON configuration for a sprite sheet
type SheetConfig struct {
	Name       string             `json:"name"`
	ImagePath  string             `json:"image_path"` // Relative to the config file
	TileWidth  int                `json:"tile_width"`
	TileHeight int                `json:"tile_height"`
	Gap        int                `json:"gap"` // Pixels between cells
	Sprites    []SpriteDefinition `json:"sprites"`
}

// Atlas is a loaded sprite sheet
type Atlas struct {
	Config *SheetConfig
	Image  render.Image

	byName map[string]*SpriteDefinition
	cache  map[string]render.Image
}

// ParseConfig decodes and validates a sheet configuration
func ParseConfig(data []byte) (*SheetConfig, error) {
	var config SheetConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse sheet config: %w", err)
	}
	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}
	if config.Gap < 0 {
		return nil, fmt.Errorf("invalid gap: %d", config.Gap)
	}
	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in sheet config")
	}
	return &config, nil
}

// LoadAtlas loads a sprite sheet from a JSON configuration file
func LoadAtlas(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet config %s: %w", configPath, err)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
	}

	imagePath := config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet image %s: %w", imagePath, err)
	}
	return New(config, img), nil
}

// New creates an atlas over an already loaded sheet image
func New(config *SheetConfig, img render.Image) *Atlas {
	a := &Atlas{
		Config: config,
		Image:  img,
		byName: make(map[string]*SpriteDefinition),
		cache:  make(map[string]render.Image),
	}
	for i := range config.Sprites {
		s := &config.Sprites[i]
		if s.Name != "" {
			a.byName[s.Name] = s
		}
	}
	return a
}

// Has reports whether the sheet defines name
func (a *Atlas) Has(name string) bool {
	_, ok := a.byName[name]
	return ok
}

// SourceRect returns the pixel rectangle of a sprite on the sheet
func (a *Atlas) SourceRect(s *SpriteDefinition) image.Rectangle {
	c := a.Config
	x := s.X * (c.TileWidth + c.Gap)
	y := s.Y * (c.TileHeight + c.Gap)
	return image.Rect(x, y, x+c.TileWidth, y+c.TileHeight)
}

// Sprite returns the sub-image of a named sprite
func (a *Atlas) Sprite(name string) (render.Image, error) {
	if img, ok := a.cache[name]; ok {
		return img, nil
	}
	s, ok := a.byName[name]
	if !ok {
		return nil, fmt.Errorf("sprite not found: %s", name)
	}
	img := a.Image.SubImage(a.SourceRect(s))
	a.cache[name] = img
	return img, nil
}

// Draw draws a named sprite stretched over dst, in screen coordinates
func (a *Atlas) Draw(screen render.Image, name string, dst geom.Rect) error {
	img, err := a.Sprite(name)
	if err != nil {
		return err
	}
	geoM := render.NewGeoM()
	geoM.Scale(dst.W/float64(a.Config.TileWidth), dst.H/float64(a.Config.TileHeight))
	geoM.Translate(dst.X, dst.Y)
	screen.DrawImage(img, &render.DrawImageOptions{GeoM: geoM})
	return nil
}
