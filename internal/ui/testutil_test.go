package ui

import (
	"io"
	"testing"

	"github.com/ingyamilmolinar/hexscape/internal/canvas"
	"github.com/ingyamilmolinar/hexscape/internal/config"
	"github.com/ingyamilmolinar/hexscape/internal/hex"
	game_log "github.com/ingyamilmolinar/hexscape/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

// newTestSurface returns a surface that records instead of drawing.
func newTestSurface(w, h int) (*Surface, *canvas.Recorder) {
	rec := canvas.NewRecorder()
	return &Surface{ctx: rec, w: w, h: h}, rec
}

func newTestApp(t *testing.T, size int) (*App, *canvas.Recorder) {
	t.Helper()
	cfg := config.Defaults()
	cfg.Grid.Size = size
	surface, rec := newTestSurface(1280, 720)
	app, err := NewApp(cfg, surface, testLogger)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if err := app.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return app, rec
}

// cursorAt pins the cursor for the duration of a test.
func cursorAt(t *testing.T, x, y *int) {
	t.Helper()
	restore := SetInputForTest(
		func() (int, int) { return *x, *y },
		func() (int, int) { return 1920, 1080 },
	)
	t.Cleanup(restore)
}

func tileOf(t *testing.T, app *App, idx int) hex.Tile {
	t.Helper()
	r := app.Container().Regions()[idx]
	tile, ok := r.Receiver().(hex.Tile)
	if !ok {
		t.Fatalf("region %d receiver is %T", idx, r.Receiver())
	}
	return tile
}
