package ui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	game_log "github.com/ingyamilmolinar/hexscape/internal/log"
	"github.com/ingyamilmolinar/hexscape/internal/sensor"
)

var ErrNoRegion = errors.New("no such region")

// debugPrint draws the HUD line. Tests replace it.
var debugPrint = ebitenutil.DebugPrintAt

// Game adapts an App to ebiten's game loop. The App starts on the first
// Update so every draw happens inside the running loop.
type Game struct {
	app    *App
	logger *game_log.Logger
	bg     color.Color
	demo   *demoRun
}

func New(app *App, logger *game_log.Logger) *Game {
	g := &Game{app: app, logger: logger, bg: colBackground}
	if app.cfg != nil {
		g.bg = app.cfg.Colors.Background.Color()
	}
	g.initJS()
	return g
}

func (g *Game) Update() error {
	if !g.app.Started() {
		if err := g.app.Start(); err != nil {
			g.logger.Errorf("[GAME] start failed: %v", err)
			return err
		}
	}
	if g.demo != nil {
		return g.stepDemo()
	}
	g.app.Update()
	return nil
}

// Draw blits the retained surface. Tiles are never repainted here; only
// Toggle changes their pixels.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	if img := g.app.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	debugPrint(screen, g.status(), 8, 8)
}

func (g *Game) Layout(w, h int) (int, int) {
	return g.app.surface.Size()
}

// hoverRegion delivers a host event named like "mouseover" or "onmouseout"
// to the region at index, in the srcElement shape older browsers used.
func (g *Game) hoverRegion(index int, name string) error {
	t, err := sensor.ParseType(name)
	if err != nil {
		return err
	}
	regions := g.app.container.Regions()
	if index < 0 || index >= len(regions) {
		return fmt.Errorf("region %d of %d: %w", index, len(regions), ErrNoRegion)
	}
	g.app.dispatcher.Observe(sensor.Event{Type: t, SrcElement: regions[index]})
	return nil
}

func (g *Game) status() string {
	hovered := "-"
	if r := g.app.pointer.Hovered(g.app.container); r != nil {
		hovered = fmt.Sprintf("(%.0f,%.0f)", r.Left, r.Top)
	}
	return fmt.Sprintf("tiles %d  sensors %d  active %d  hover %s",
		g.app.board.Len(), g.app.container.Len(), len(g.app.container.Active()), hovered)
}
