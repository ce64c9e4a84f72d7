package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"rogue-builder/config"
	"rogue-builder/logger"
	"rogue-builder/systems"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the first level")
	depth := flag.Int("level", 0, "dungeon depth to start at")
	architect := flag.String("architect", "", "force an architect: drunkards_walk, rooms, cellular_automata, bsp or empty")
	configPath := flag.String("config", "", "JSON file overriding generation settings")
	tilesetPath := flag.String("tileset", "", "12x12 Code Page 437 sprite sheet (PNG); flat blocks when empty")
	term := flag.Bool("term", false, "preview in the terminal instead of a window")
	ascii := flag.Bool("ascii", false, "print the level to stdout and exit")
	flag.Parse()

	logger.Init()
	log := logger.WithComponent("main")

	cfg := config.DefaultGeneration()
	if *configPath != "" {
		loaded, err := config.LoadGeneration(*configPath)
		if err != nil {
			log.WithError(err).Fatal("Failed to load generation config")
		}
		cfg = loaded
	}

	switch {
	case *ascii:
		level, err := generateLevel(*seed, *depth, *architect, cfg)
		if err != nil {
			log.WithError(err).Fatal("Failed to generate level")
		}
		if err := writeASCII(os.Stdout, level); err != nil {
			log.WithError(err).Fatal("Failed to write level")
		}

	case *term:
		if err := runTerminal(*seed, *depth, *architect, cfg); err != nil {
			log.WithError(err).Fatal("Terminal preview failed")
		}

	default:
		var tileset *systems.Tileset
		if *tilesetPath != "" {
			ts, err := systems.NewTileset(*tilesetPath, config.TileSize)
			if err != nil {
				log.WithError(err).Warn("Falling back to flat tiles")
			} else {
				tileset = ts
			}
		}

		game, err := NewGame(*seed, *depth, *architect, cfg, tileset)
		if err != nil {
			log.WithError(err).Fatal("Failed to start viewer")
		}

		windowWidth, windowHeight := config.GetScreenDimensions(cfg.Width, cfg.Height)
		ebiten.SetWindowSize(windowWidth, windowHeight)
		ebiten.SetWindowTitle("Rogue Builder - Map Viewer")
		if err := ebiten.RunGame(game); err != nil {
			log.WithError(err).Fatal("Viewer exited with error")
		}
	}
}
