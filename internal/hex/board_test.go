package hex

import (
	"errors"
	"io"
	"math"
	"sort"
	"testing"

	"github.com/ingyamilmolinar/hexscape/internal/canvas"
	game_log "github.com/ingyamilmolinar/hexscape/internal/log"
	"github.com/ingyamilmolinar/hexscape/internal/sensor"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

func newTestBoard(t *testing.T, size int) (*Board, *sensor.Overlay, *sensor.Container) {
	t.Helper()
	container := sensor.NewContainer()
	overlay := sensor.NewOverlay(container, testLogger)
	b, err := NewBoard(NewHex, size, overlay, testLogger)
	if err != nil {
		t.Fatalf("NewBoard(%d): %v", size, err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init(%d): %v", size, err)
	}
	return b, overlay, container
}

func TestTileCount(t *testing.T) {
	want := map[int]int{1: 1, 2: 7, 3: 19, 4: 37}
	for size, n := range want {
		b, _, _ := newTestBoard(t, size)
		if b.Len() != n {
			t.Fatalf("size %d: %d tiles, want %d", size, b.Len(), n)
		}
	}
	for size := 5; size <= 12; size++ {
		b, _, _ := newTestBoard(t, size)
		seen := 0
		b.Each(func(Tile) { seen++ })
		if want := 3*size*size - 3*size + 1; seen != want {
			t.Fatalf("size %d: %d tiles, want %d", size, seen, want)
		}
	}
}

func TestRowWidths(t *testing.T) {
	b, _, _ := newTestBoard(t, 4)
	perRow := map[int]int{}
	b.Each(func(tl Tile) {
		_, dy := tl.(*Hex).Displacement()
		perRow[int(math.Round(dy*1000))]++
	})
	keys := make([]int, 0, len(perRow))
	for key := range perRow {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	want := []int{4, 5, 6, 7, 6, 5, 4}
	if len(keys) != len(want) {
		t.Fatalf("%d rows, want %d", len(keys), len(want))
	}
	for i, key := range keys {
		if perRow[key] != want[i] {
			t.Fatalf("row %d holds %d tiles, want %d", i, perRow[key], want[i])
		}
	}
}

func TestProjectIsBijection(t *testing.T) {
	for side := 1; side <= 16; side++ {
		project := Project(side)
		seen := map[[2]int]bool{}
		for i := 0; i < 2*side-1; i++ {
			n := side - 1 - i
			if n < 0 {
				n = -n
			}
			for j := 0; j < (2*side-1)-n; j++ {
				a, b := project(i, j, n)
				if a < 0 || a >= 2*side-1 || b < 0 || b >= 2*side-1 {
					t.Fatalf("side %d: (%d,%d) projects out of range to (%d,%d)", side, i, j, a, b)
				}
				key := [2]int{a, b}
				if seen[key] {
					t.Fatalf("side %d: collision at (%d,%d)", side, a, b)
				}
				seen[key] = true
			}
		}
		if want := 3*side*side - 3*side + 1; len(seen) != want {
			t.Fatalf("side %d: %d cells, want %d", side, len(seen), want)
		}
	}
}

func TestProjectKnownValues(t *testing.T) {
	project := Project(2)
	cases := []struct{ i, j, n, a, b int }{
		{0, 0, 1, 0, 1},
		{0, 1, 1, 0, 2},
		{1, 0, 0, 0, 0},
		{1, 1, 0, 1, 1},
		{1, 2, 0, 1, 2},
		{2, 0, 1, 1, 0},
		{2, 1, 1, 2, 1},
	}
	for _, c := range cases {
		a, b := project(c.i, c.j, c.n)
		if a != c.a || b != c.b {
			t.Fatalf("project(%d,%d,%d)=(%d,%d) want (%d,%d)", c.i, c.j, c.n, a, b, c.a, c.b)
		}
	}
}

func TestStoreMatchesProjection(t *testing.T) {
	b, _, _ := newTestBoard(t, 3)
	populated := 0
	for a := 0; a < 5; a++ {
		for c := 0; c < 5; c++ {
			if b.At(a, c) != nil {
				populated++
			}
		}
	}
	if populated != 19 {
		t.Fatalf("store holds %d tiles, want 19", populated)
	}
	if b.At(-1, 0) != nil || b.At(0, 5) != nil {
		t.Fatalf("out-of-range lookups must return nil")
	}
}

func TestInvalidSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		_, err := NewBoard(NewHex, size, sensor.NewOverlay(sensor.NewContainer(), testLogger), testLogger)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %d: err=%v want ErrInvalidSize", size, err)
		}
	}
	if _, err := NewBoard(nil, 2, sensor.NewOverlay(sensor.NewContainer(), testLogger), testLogger); err == nil {
		t.Fatalf("nil blueprint accepted")
	}
}

func TestDrawRegistersOneRegionPerTile(t *testing.T) {
	b, overlay, container := newTestBoard(t, 4)
	rec := canvas.NewRecorder()
	b.Draw(rec, Params{Left: 640, Top: 360, Radius: 30})

	if overlay.Pending() != 37 {
		t.Fatalf("pending=%d want 37", overlay.Pending())
	}
	if container.Len() != 0 {
		t.Fatalf("regions visible before render")
	}
	if n := overlay.Render(); n != 37 {
		t.Fatalf("rendered %d regions, want 37", n)
	}
	if rec.Count(canvas.OpStroke) != 37 {
		t.Fatalf("stroked %d tiles, want 37", rec.Count(canvas.OpStroke))
	}

	receivers := map[any]bool{}
	for _, r := range container.Regions() {
		tile, ok := r.Receiver().(Tile)
		if !ok {
			t.Fatalf("receiver %T is not a tile", r.Receiver())
		}
		if receivers[tile] {
			t.Fatalf("tile bound to two regions")
		}
		receivers[tile] = true
		c := tile.Coords()
		if r.Left != c.X || r.Top != c.Y {
			t.Fatalf("region at (%.1f,%.1f), tile at (%.1f,%.1f)", r.Left, r.Top, c.X, c.Y)
		}
		if r.Type() != sensor.DefaultType || !r.HasClass(sensor.ClassSensor) {
			t.Fatalf("region classes wrong: type=%q", r.Type())
		}
	}
	if len(receivers) != 37 {
		t.Fatalf("%d distinct receivers, want 37", len(receivers))
	}
}

func TestTilesDoNotOverlap(t *testing.T) {
	b, _, _ := newTestBoard(t, 4)
	const r = 30.0
	b.Draw(canvas.NewRecorder(), Params{Left: 500, Top: 500, Radius: r})
	var pts []Point
	b.Each(func(tl Tile) { pts = append(pts, tl.Coords()) })
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			d := math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y)
			if d < 2*r-0.01 {
				t.Fatalf("tiles %v and %v only %.2f apart", pts[i], pts[j], d)
			}
		}
	}
}

func TestRedrawRebindsTiles(t *testing.T) {
	b, _, _ := newTestBoard(t, 2)
	first := canvas.NewRecorder()
	b.Draw(first, Params{Left: 0, Top: 0, Radius: 10})
	second := canvas.NewRecorder()
	b.Draw(second, Params{Left: 100, Top: 100, Radius: 10})

	mark := len(first.Ops)
	b.Each(func(tl Tile) { tl.Toggle(true) })
	if len(first.Ops) != mark {
		t.Fatalf("toggle still drew to the old context")
	}
	if second.Count(canvas.OpArc) != 7 {
		t.Fatalf("erase discs=%d want 7", second.Count(canvas.OpArc))
	}
}
