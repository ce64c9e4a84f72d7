package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"rogue-builder/components"
	"rogue-builder/config"
	"rogue-builder/generation"
	"rogue-builder/logger"
	"rogue-builder/navigation"
)

// Level is one generated depth ready to show
type Level struct {
	Seed       int64
	Depth      int
	Architect  string // Requested architect, empty for random
	Builder    *generation.MapBuilder
	Transition *components.MapTransitionComponent
	Field      *navigation.FlowMap // Distances from the player start
}

// generateLevel builds and prepares the level for depth from seed.
// An empty architect name picks one at random like the game does.
func generateLevel(seed int64, depth int, architect string, cfg config.Generation) (*Level, error) {
	rng := generation.NewRandom(seed)

	var (
		mb  *generation.MapBuilder
		err error
	)
	if architect == "" {
		mb, err = generation.Build(rng, cfg)
	} else {
		var arch generation.MapArchitect
		if arch, err = generation.ArchitectByName(architect, cfg); err != nil {
			return nil, err
		}
		mb, err = generation.BuildWith(arch, rng, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build level %d: %w", depth, err)
	}

	transition := mb.PrepareLevel(depth, cfg.FinalLevel)
	field := navigation.Compute(mb.Map, []components.Point{mb.PlayerStart}, cfg.MaxFlowDistance)

	logger.WithComponent("viewer").WithFields(logrus.Fields{
		"seed":    seed,
		"depth":   depth,
		"final":   transition.IsFinal(),
		"visited": field.Visited,
	}).Debug("Level prepared")

	return &Level{
		Seed:       seed,
		Depth:      depth,
		Architect:  architect,
		Builder:    mb,
		Transition: transition,
		Field:      field,
	}, nil
}

// Summary is a one-line description for status bars and dumps
func (l *Level) Summary() string {
	goal := "stairs down"
	if l.Transition.IsFinal() {
		goal = "amulet"
	}
	return fmt.Sprintf("seed %d  depth %d  %s/%s  %d spawns  %s at %d,%d",
		l.Seed, l.Depth, l.Builder.Architect, l.Builder.Theme.Name(),
		len(l.Builder.MonsterSpawns), goal, l.Transition.Destination.X, l.Transition.Destination.Y)
}

// writeASCII prints the summary followed by the glyph grid
func writeASCII(w io.Writer, l *Level) error {
	if _, err := fmt.Fprintln(w, l.Summary()); err != nil {
		return err
	}
	for _, row := range l.Builder.Render() {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
