// Package hex lays out a centered hexagonal grid of tiles and draws them.
package hex

import (
	"image/color"
	"math"

	"github.com/ingyamilmolinar/hexscape/internal/canvas"
)

// k is the horizontal offset of a slanted vertex in radius units (√3/2).
const k = 0.8660

// State is a tile's display state.
type State int

const (
	Neutral State = iota
	Highlighted
)

func (s State) String() string {
	if s == Highlighted {
		return "highlighted"
	}
	return "neutral"
}

// Palette holds the stroke colors for both display states.
type Palette struct {
	Neutral   color.Color
	Highlight color.Color
}

var DefaultPalette = Palette{
	Neutral:   color.RGBA{200, 200, 200, 255},
	Highlight: color.RGBA{100, 100, 255, 255},
}

// Params carry the per-pass values shared by every tile: the grid origin,
// the tile radius and the drawing context.
type Params struct {
	Left, Top float64
	Radius    float64
	Context   canvas.Context
	Palette   Palette
}

type Point struct{ X, Y float64 }

// Tile is one drawable, toggleable cell of the grid.
type Tile interface {
	Init(p Params)
	Draw(c color.Color)
	Coords() Point
	Toggle(highlighted bool)
	State() State
}

// Blueprint creates a tile displaced (dx, dy) radii from the grid origin.
type Blueprint func(dx, dy float64) Tile

// Hex is a pointy-top hexagon stroked as a closed outline.
type Hex struct {
	dx, dy  float64
	x, y    float64
	radius  float64
	ctx     canvas.Context
	palette Palette
	state   State
}

// NewHex is the default Blueprint.
func NewHex(dx, dy float64) Tile { return &Hex{dx: dx, dy: dy} }

// Displacement returns the fixed offset from the origin in radius units.
func (h *Hex) Displacement() (dx, dy float64) { return h.dx, h.dy }

// Init binds the tile to a context and origin. Calling it again fully
// replaces the previous binding and resets the display state.
func (h *Hex) Init(p Params) {
	h.x = p.Left + p.Radius*h.dx
	h.y = p.Top + p.Radius*h.dy
	h.radius = p.Radius
	h.ctx = p.Context
	h.palette = p.Palette
	if h.palette.Neutral == nil {
		h.palette.Neutral = DefaultPalette.Neutral
	}
	if h.palette.Highlight == nil {
		h.palette.Highlight = DefaultPalette.Highlight
	}
	h.state = Neutral
}

// Draw strokes the outline starting at the top vertex and going clockwise.
// A nil color means the neutral stroke.
func (h *Hex) Draw(c color.Color) {
	if h.ctx == nil {
		return
	}
	if c == nil {
		c = h.palette.Neutral
	}
	x, y, r := h.x, h.y, h.radius
	h.ctx.SetStrokeColor(c)
	h.ctx.BeginPath()
	h.ctx.MoveTo(x, y-r)
	h.ctx.LineTo(x+k*r, y-0.5*r)
	h.ctx.LineTo(x+k*r, y+0.5*r)
	h.ctx.LineTo(x, y+r)
	h.ctx.LineTo(x-k*r, y+0.5*r)
	h.ctx.LineTo(x-k*r, y-0.5*r)
	h.ctx.LineTo(x, y-r)
	h.ctx.Stroke()
}

func (h *Hex) Coords() Point { return Point{X: h.x, Y: h.y} }

func (h *Hex) State() State { return h.state }

// Toggle clears the tile's own footprint and redraws it in the color for
// the requested state. Neighbors are untouched: the cleared disc has
// radius r+1 and tiles are spaced 2r apart.
func (h *Hex) Toggle(highlighted bool) {
	if h.ctx == nil {
		return
	}
	h.ctx.SetComposite(canvas.DestinationOut)
	h.ctx.SetFillColor(color.RGBA{32, 32, 32, 255})
	h.ctx.BeginPath()
	h.ctx.Arc(h.x, h.y, h.radius+1, 0, 2*math.Pi, true)
	h.ctx.Fill()
	h.ctx.SetComposite(canvas.SourceOver)

	var c color.Color
	h.state = Neutral
	if highlighted {
		c = h.palette.Highlight
		h.state = Highlighted
	}
	h.Draw(c)
}
