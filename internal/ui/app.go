package ui

import (
	"errors"
	"fmt"

	"github.com/ingyamilmolinar/hexscape/internal/config"
	"github.com/ingyamilmolinar/hexscape/internal/hex"
	game_log "github.com/ingyamilmolinar/hexscape/internal/log"
	"github.com/ingyamilmolinar/hexscape/internal/sensor"
)

var ErrAlreadyStarted = errors.New("app already started")

// App is the application context: it owns the surface, the board, the
// overlay and the event plumbing, and is built once at startup.
type App struct {
	cfg    *config.Config
	logger *game_log.Logger

	surface    *Surface
	container  *sensor.Container
	overlay    *sensor.Overlay
	board      *hex.Board
	dispatcher *sensor.Dispatcher
	pointer    *Pointer

	started bool
}

// NewApp wires the components together. Any invalid setting is reported
// here so nothing renders partially.
func NewApp(cfg *config.Config, surface *Surface, logger *game_log.Logger) (*App, error) {
	if cfg == nil || logger == nil {
		return nil, errors.New("app needs a config and a logger")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if surface == nil || surface.Context() == nil {
		return nil, ErrNoContext
	}
	container := sensor.NewContainer()
	overlay := sensor.NewOverlay(container, logger)
	board, err := hex.NewBoard(hex.NewHex, cfg.Grid.Size, overlay, logger)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	return &App{
		cfg:        cfg,
		logger:     logger,
		surface:    surface,
		container:  container,
		overlay:    overlay,
		board:      board,
		dispatcher: sensor.NewDispatcher(logger),
		pointer:    NewPointer(),
	}, nil
}

// Start lays out the grid, draws it, flushes the sensors and subscribes
// the dispatcher to hover events.
func (a *App) Start() error {
	if a.started {
		return ErrAlreadyStarted
	}
	if err := a.board.Init(); err != nil {
		return fmt.Errorf("board init: %w", err)
	}

	left, top := a.surface.Center()
	a.surface.Add(a.board, hex.Params{
		Left:   left,
		Top:    top,
		Radius: a.cfg.Grid.Radius,
		Palette: hex.Palette{
			Neutral:   a.cfg.Colors.Neutral.Color(),
			Highlight: a.cfg.Colors.Highlight.Color(),
		},
	})
	flushed := a.overlay.Render()

	for _, t := range []sensor.Type{sensor.HoverEnter, sensor.HoverExit} {
		if err := a.pointer.Subscribe(t, a.container, a.dispatcher.Observe); err != nil {
			return fmt.Errorf("subscribe %s: %w", t, err)
		}
	}
	a.started = true
	a.logger.Infof("[APP] grid size=%d tiles=%d sensors=%d", a.board.Size(), a.board.Len(), flushed)
	return nil
}

// Started reports whether Start has completed.
func (a *App) Started() bool { return a.started }

// Update polls the pointer once.
func (a *App) Update() {
	a.pointer.Poll()
}

func (a *App) Board() *hex.Board              { return a.board }
func (a *App) Container() *sensor.Container   { return a.container }
func (a *App) Dispatcher() *sensor.Dispatcher { return a.dispatcher }
func (a *App) Pointer() *Pointer              { return a.pointer }
func (a *App) Surface() *Surface              { return a.surface }
