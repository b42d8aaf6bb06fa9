package main

import (
	"flag"
	"log"

	"chosenoffset.com/pointplot/internal/canvas"
	"chosenoffset.com/pointplot/internal/config"
	ebitenrender "chosenoffset.com/pointplot/internal/render/ebiten"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "pointplot.yaml", "YAML config file (defaults are used if it doesn't exist)")
	debug := flag.Bool("debug", false, "Log pointer events")
	flag.Parse()

	log.Printf("Loading config: %s", *configPath)
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	c := canvas.New(renderer, inputMgr, cfg)
	c.Debug = *debug

	log.Printf("Surface %dx%d, grid step %d, %d points",
		cfg.Window.Width,
		cfg.Window.Height,
		cfg.Grid.Step,
		len(cfg.Points))

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting canvas...")
	if err := engine.RunGame(c); err != nil {
		log.Fatal(err)
	}
}
