package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/sorceler/internal/config"
	"chosenoffset.com/sorceler/internal/logger"
	"chosenoffset.com/sorceler/internal/render"
	"chosenoffset.com/sorceler/internal/world"
	"chosenoffset.com/sorceler/internal/world/atlas"
	"chosenoffset.com/sorceler/internal/world/defs"
	"chosenoffset.com/sorceler/internal/world/mapscan"
)

// Load reads the world definitions and the sprite sheet, starts the world
// on the configured map and returns a game ready to run.
func Load(cfg *config.Config, r render.Renderer, input render.InputManager, res render.ResourceLoader) (*Game, error) {
	d, err := defs.LoadFile(cfg.DefinitionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load world definitions: %w", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"items":    d.Items.Size(),
		"entities": len(d.Entities),
		"passages": len(d.Passages),
	}).Info("World definitions loaded")

	maps, err := mapscan.Scan(cfg.MapDir)
	if err != nil {
		return nil, err
	}
	if !mapscan.Has(maps, cfg.StartMap) {
		return nil, fmt.Errorf("failed to find start map %q in %s", cfg.StartMap, cfg.MapDir)
	}
	for _, id := range mapscan.MissingLocations(maps, d) {
		logger.Log.WithField("map", id).Warn("Passage leads to a missing map")
	}

	a, err := atlas.LoadAtlas(cfg.SpriteSheet, res)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite sheet: %w", err)
	}

	w := world.NewManager(cfg, d, world.DirLoader{Dir: cfg.MapDir})
	if err := w.Start(cfg.StartMap); err != nil {
		return nil, fmt.Errorf("failed to start world: %w", err)
	}

	return New(cfg, w, a, r, input), nil
}
