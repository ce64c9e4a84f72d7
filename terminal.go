package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"rogue-builder/components"
	"rogue-builder/config"
	"rogue-builder/systems"
)

// cellWriter is the part of tcell.Screen the preview draws through
type cellWriter interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

func toTcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// drawTerminal writes the level glyphs and a status line to the screen
func drawTerminal(screen cellWriter, l *Level) {
	mb := l.Builder

	spawns := make(map[components.Point]bool, len(mb.MonsterSpawns))
	for _, p := range mb.MonsterSpawns {
		spawns[p] = true
	}

	for idx := range mb.Map.Tiles {
		p := mb.Map.IndexToPoint(idx)
		cell := systems.CellAt(mb, spawns, p)
		style := tcell.StyleDefault.Foreground(toTcellColor(cell.FG)).Background(toTcellColor(cell.BG))
		screen.SetContent(p.X, p.Y, cell.Glyph, nil, style)
	}

	status := l.Summary() + "  [r] regenerate  [n] descend  [q] quit"
	for i, r := range []rune(status) {
		screen.SetContent(i, mb.Map.Height, r, nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
}

// runTerminal previews levels in the terminal until the user quits
func runTerminal(seed int64, depth int, architect string, cfg config.Generation) error {
	level, err := generateLevel(seed, depth, architect, cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	for {
		screen.Clear()
		drawTerminal(screen, level)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'q':
				return nil
			case 'r':
				if level, err = generateLevel(level.Seed+1, level.Depth, level.Architect, cfg); err != nil {
					return err
				}
			case 'n':
				if !level.Transition.IsFinal() {
					if level, err = generateLevel(level.Seed+1, level.Depth+1, level.Architect, cfg); err != nil {
						return err
					}
				}
			}
		case nil:
			return nil
		}
	}
}
