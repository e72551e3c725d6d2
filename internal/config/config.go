// Package config provides the game settings.
// Settings are loaded from a JSON data file on top of built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all game settings
type Config struct {
	Title string `json:"title"`

	// Display
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`
	FPS          int `json:"fps"`
	TileSize     int `json:"tile_size"` // Rendered tile size in pixels (e.g., 64)

	// Player
	PlayerSpeed    float64 `json:"player_speed"`    // Pixels per second
	PlayerHitSize  float64 `json:"player_hit_size"` // Side of the square collision box
	PlayerSprite   string  `json:"player_sprite"`   // Sprite name in the sheet
	DiagonalFactor float64 `json:"diagonal_factor"` // Velocity multiplier when moving diagonally
	InteractRadius float64 `json:"interact_radius"` // Max distance for the interact key

	// Items
	BobRange float64 `json:"bob_range"` // Bobbing amplitude in pixels
	BobSpeed float64 `json:"bob_speed"` // Phase advance per frame

	// Tiled object positions are nudged by this many pixels when centered.
	ObjectOffset float64 `json:"object_offset"`

	// Data
	StartMap        string `json:"start_map"`
	MapDir          string `json:"map_dir"`
	DefinitionsPath string `json:"definitions"`
	SpriteSheet     string `json:"sprite_sheet"` // Atlas JSON for all sprites

	// Logging
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// DefaultConfig returns the stock settings
func DefaultConfig() *Config {
	return &Config{
		Title:           "Rise Of The Sorceler",
		ScreenWidth:     12*64 + 1,
		ScreenHeight:    9*64 + 1,
		FPS:             60,
		TileSize:        64,
		PlayerSpeed:     300,
		PlayerHitSize:   35,
		PlayerSprite:    "player",
		DiagonalFactor:  0.7071,
		InteractRadius:  96,
		BobRange:        20,
		BobSpeed:        0.3,
		ObjectOffset:    12,
		StartMap:        "overworld",
		MapDir:          "data/maps",
		DefinitionsPath: "data/world.lua",
		SpriteSheet:     "data/sprites.json",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// LoadConfig loads settings from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that sizes and rates are usable
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps: %d", c.FPS)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", c.TileSize)
	}
	if c.PlayerHitSize <= 0 || c.PlayerHitSize > float64(c.TileSize) {
		return fmt.Errorf("player hit size %v must be in (0, %d]", c.PlayerHitSize, c.TileSize)
	}
	if c.BobRange <= 0 || c.BobSpeed <= 0 {
		return fmt.Errorf("bob range and speed must be positive")
	}
	if c.StartMap == "" {
		return fmt.Errorf("start_map is required")
	}
	return nil
}

// DeltaTime returns the fixed frame step in seconds
func (c *Config) DeltaTime() float64 {
	return 1.0 / float64(c.FPS)
}
