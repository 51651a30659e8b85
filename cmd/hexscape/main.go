package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/hexscape/internal/config"
	game_log "github.com/ingyamilmolinar/hexscape/internal/log"
	"github.com/ingyamilmolinar/hexscape/internal/ui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

// run returns once the game loop ends. Errors after the logger exists are
// logged and flushed before returning.
func run(args []string, out io.Writer) (err error) {
	fs := flag.NewFlagSet("hexscape", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML or TOML config file")
	size := fs.Int("size", 0, "grid size in rings (overrides config)")
	radius := fs.Float64("radius", 0, "tile radius in px (overrides config)")
	logLevel := fs.String("log-level", "", "debug, info, error or none (overrides config)")
	demo := fs.Bool("demo", false, "hover every tile in turn, then exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		cfg = loaded
	}
	if *size != 0 {
		cfg.Grid.Size = *size
	}
	if *radius != 0 {
		cfg.Grid.Radius = *radius
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger := game_log.NewWithFormat(out, game_log.LevelFromString(cfg.Logging.Level), cfg.Logging.Format)
	defer func() {
		if err != nil {
			logger.Errorf("[MAIN] %v", err)
		}
		logger.Sync()
	}()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	surface, err := ui.NewViewportSurface(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	app, err := ui.NewApp(cfg, surface, logger)
	if err != nil {
		return err
	}

	w, h := surface.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)

	g := ui.New(app, logger)
	if *demo {
		g.RunDemo()
	}

	// On WASM this creates the <canvas> in index.html.
	return ebiten.RunGame(g)
}
