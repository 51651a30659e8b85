package hex

import (
	"errors"
	"fmt"

	"github.com/ingyamilmolinar/hexscape/internal/canvas"
	game_log "github.com/ingyamilmolinar/hexscape/internal/log"
	"github.com/ingyamilmolinar/hexscape/internal/sensor"
	"github.com/ingyamilmolinar/hexscape/internal/utils"
)

var (
	ErrInvalidSize     = errors.New("grid size must be at least 1")
	ErrIndexOutOfRange = errors.New("projected index out of range")
	ErrCellOccupied    = errors.New("projected cell already occupied")
)

// Sensors receives one hit region per drawn tile.
type Sensors interface {
	Add(b sensor.Binding, p sensor.Params)
}

// Board is a centered hexagon of tiles, size rings across from the center.
// Tiles live in a dense (2·size−1)² store addressed by projected indices;
// cells that no tile projects onto stay nil.
type Board struct {
	blueprint Blueprint
	size      int
	sensors   Sensors
	logger    *game_log.Logger

	tiles [][]Tile
	count int
}

func NewBoard(blueprint Blueprint, size int, sensors Sensors, logger *game_log.Logger) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("size=%d: %w", size, ErrInvalidSize)
	}
	if blueprint == nil || sensors == nil || logger == nil {
		return nil, errors.New("board needs a blueprint, sensors and a logger")
	}
	return &Board{blueprint: blueprint, size: size, sensors: sensors, logger: logger}, nil
}

// Size is the configured ring count.
func (b *Board) Size() int { return b.size }

// Len is the number of populated tiles.
func (b *Board) Len() int { return b.count }

// Init populates the store row by row. Row i sits n = |size−1−i| rows from
// the center and holds (2·size−1)−n tiles spaced two radii apart; rows are
// √3 radii apart vertically.
func (b *Board) Init() error {
	side := b.size
	gx := float64(side * 2)
	gy := gx * k
	project := Project(side)

	b.prepareTiles(side)
	b.count = 0

	for i := 0; i < side*2-1; i++ {
		n := utils.Abs(side - 1 - i)
		width := (side*2 - 1) - n

		dx := float64(n) - gx
		dy := 2*k*float64(i) - gy

		for j := 0; j < width; j++ {
			dx += 2

			a, c := project(i, j, n)
			if err := b.put(a, c, b.blueprint(dx, dy)); err != nil {
				return fmt.Errorf("row %d col %d: %w", i, j, err)
			}
		}
	}
	if want := utils.CenteredHexNumber(side); b.count != want {
		return fmt.Errorf("populated %d tiles, want %d", b.count, want)
	}
	b.logger.Debugf("[BOARD] size=%d tiles=%d", side, b.count)
	return nil
}

func (b *Board) put(a, c int, t Tile) error {
	if a < 0 || a >= len(b.tiles) || c < 0 || c >= len(b.tiles[a]) {
		return fmt.Errorf("(%d,%d): %w", a, c, ErrIndexOutOfRange)
	}
	if b.tiles[a][c] != nil {
		return fmt.Errorf("(%d,%d): %w", a, c, ErrCellOccupied)
	}
	b.tiles[a][c] = t
	b.count++
	return nil
}

// prepareTiles allocates 2·side−1 empty rows.
func (b *Board) prepareTiles(side int) {
	rows := side*2 - 1
	b.tiles = make([][]Tile, rows)
	for i := range b.tiles {
		b.tiles[i] = make([]Tile, rows)
	}
}

// Project maps generation indices (row i, column j, distance k from the
// center row) to storage indices. The parity branch keeps the row index
// integral across staggered rows; together with the column shift it makes
// the mapping a bijection onto the populated cells.
func Project(side int) func(i, j, k int) (a, b int) {
	return func(i, j, k int) (int, int) {
		b := j + k
		if side-i <= 0 {
			b -= k
		}
		a := i + (b-side)/2
		if (b+side)%2 != 0 {
			a = i + (b-side+1)/2
		}
		return a, b
	}
}

// At returns the tile stored at (a, b), or nil.
func (b *Board) At(a, c int) Tile {
	if a < 0 || a >= len(b.tiles) || c < 0 || c >= len(b.tiles[a]) {
		return nil
	}
	return b.tiles[a][c]
}

// Each calls fn for every stored tile, last row first, columns ascending.
func (b *Board) Each(fn func(t Tile)) {
	for i := len(b.tiles) - 1; i >= 0; i-- {
		for _, t := range b.tiles[i] {
			if t != nil {
				fn(t)
			}
		}
	}
}

// Draw renders every tile with the shared context and registers a sensor
// region at each tile's center bound to its Toggle.
func (b *Board) Draw(ctx canvas.Context, p Params) {
	p.Context = ctx
	side := 2 * k * p.Radius
	b.Each(func(t Tile) {
		t.Init(p)
		t.Draw(nil)
		at := t.Coords()
		b.sensors.Add(sensor.Bind(Tile.Toggle, t), sensor.Params{
			Left:   at.X,
			Top:    at.Y,
			Width:  side,
			Height: side,
		})
	})
	b.logger.Debugf("[BOARD] drew %d tiles radius=%.1f origin=(%.1f,%.1f)", b.count, p.Radius, p.Left, p.Top)
}
