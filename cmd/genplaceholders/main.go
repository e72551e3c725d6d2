package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/sorceler/internal/config"
	"chosenoffset.com/sorceler/internal/placeholders"
	"chosenoffset.com/sorceler/internal/world/defs"
)

func main() {
	settings := flag.String("config", "data/settings.json", "settings file")
	out := flag.String("out", "data", "output directory for the sheet")
	flag.Parse()

	fmt.Println("Sorceler Placeholder Sprite Generator")
	fmt.Println("=====================================")
	fmt.Println()

	if err := run(*settings, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Done! Point sprite_sheet at %s/%s to use the placeholders.\n", *out, placeholders.ConfigName)
}

func run(settings, out string) error {
	cfg, err := config.LoadConfig(settings)
	if err != nil {
		return err
	}
	d, err := defs.LoadFile(cfg.DefinitionsPath)
	if err != nil {
		return fmt.Errorf("failed to load world definitions: %w", err)
	}

	sprites := placeholders.Sprites(d, cfg.PlayerSprite)
	for _, s := range sprites {
		fmt.Printf("  %s\n", s.Name)
	}
	sheet, sheetConfig := placeholders.Generate(sprites)
	return placeholders.Save(out, sheet, sheetConfig)
}
