package main

import (
	"flag"

	"chosenoffset.com/sorceler/internal/config"
	"chosenoffset.com/sorceler/internal/game"
	"chosenoffset.com/sorceler/internal/logger"
	ebitenrender "chosenoffset.com/sorceler/internal/render/ebiten"
)

func main() {
	settings := flag.String("config", "data/settings.json", "settings file")
	flag.Parse()

	cfg, err := config.LoadConfig(*settings)
	if err != nil {
		logger.Log.Fatalf("Failed to load settings: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	g, err := game.Load(cfg, renderer, inputMgr, loader)
	if err != nil {
		logger.Log.Fatalf("Failed to load game: %v", err)
	}

	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle(cfg.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.FPS)

	logger.Log.WithField("map", cfg.StartMap).Info("Starting game")
	if err := engine.RunGame(g); err != nil {
		logger.Log.Fatal(err)
	}
}
