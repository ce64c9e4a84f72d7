package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rogue-builder/config"
	"rogue-builder/logger"
	"rogue-builder/systems"
)

// Game implements ebiten.Game and shows one generated level at a time.
//
//	R      regenerate with the next seed
//	N      descend to the next depth
//	T      toggle the flow map overlay
//	F      toggle fullscreen
//	Esc    quit
type Game struct {
	cfg          config.Generation
	level        *Level
	renderSystem *systems.RenderSystem
	messages     *systems.MessageLog
}

// NewGame creates the viewer and builds the first level
func NewGame(seed int64, depth int, architect string, cfg config.Generation, tileset *systems.Tileset) (*Game, error) {
	g := &Game{
		cfg:          cfg,
		renderSystem: systems.NewRenderSystem(tileset, config.TileSize),
		messages:     systems.NewMessageLog(20),
	}

	if err := g.load(seed, depth, architect); err != nil {
		return nil, err
	}
	g.messages.Add(systems.MessageTypeNormal, "R regenerate  N descend  T flow map  F fullscreen  Esc quit")

	return g, nil
}

// load replaces the current level
func (g *Game) load(seed int64, depth int, architect string) error {
	level, err := generateLevel(seed, depth, architect, g.cfg)
	if err != nil {
		return err
	}

	g.level = level
	g.renderSystem.SetLevel(level.Builder)
	g.messages.Add(systems.MessageTypeGeneration, "%s", level.Summary())
	return nil
}

// Update handles input
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.load(g.level.Seed+1, g.level.Depth, g.level.Architect)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if g.level.Transition.IsFinal() {
			g.messages.Add(systems.MessageTypeAlert, "Already at the final depth")
			return nil
		}
		return g.load(g.level.Seed+1, g.level.Depth+1, g.level.Architect)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.renderSystem.ToggleFlow()
		logger.WithComponent("viewer").WithField("overlay", g.renderSystem.ShowFlow).Debug("Toggled flow map")
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

// Draw draws the game screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, g.level.Builder, g.level.Field, g.messages)
}

// Layout implements ebiten.Game's Layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions(g.cfg.Width, g.cfg.Height)
}
