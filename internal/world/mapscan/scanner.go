// Package mapscan finds the TMX maps available in a map directory.
package mapscan

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"chosenoffset.com/sorceler/internal/world/defs"
)

const mapExt = ".tmx"

// MapEntry is a map file found in the map directory
type MapEntry struct {
	ID   string // File name without extension, as used by passages
	Path string
}

// Scan lists the maps in dir, sorted by id. Subdirectories and hidden files
// are skipped. The extension must be exactly .tmx, the name the loader opens.
func Scan(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read map directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || filepath.Ext(name) != mapExt {
			continue
		}
		maps = append(maps, MapEntry{
			ID:   strings.TrimSuffix(name, mapExt),
			Path: filepath.Join(dir, name),
		})
	}
	slices.SortFunc(maps, func(a, b MapEntry) int {
		return strings.Compare(a.ID, b.ID)
	})
	return maps, nil
}

// MissingLocations returns the passage locations with no map in maps,
// sorted and without duplicates.
func MissingLocations(maps []MapEntry, d *defs.Definitions) []string {
	have := make(map[string]bool, len(maps))
	for _, m := range maps {
		have[m.ID] = true
	}

	var missing []string
	for _, p := range d.Passages {
		if !have[p.Location] && !slices.Contains(missing, p.Location) {
			missing = append(missing, p.Location)
		}
	}
	slices.Sort(missing)
	return missing
}

// Has reports whether a map with id was found
func Has(maps []MapEntry, id string) bool {
	return slices.ContainsFunc(maps, func(m MapEntry) bool { return m.ID == id })
}
