package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ingyamilmolinar/hexscape/internal/canvas"
)

const strokeWidth = 1

// whiteImage is the 1×1 source every path is tinted from. It is created on
// first use so nothing touches the GPU at package init.
var whiteImage *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// drawPath tessellates p and draws it onto dst. It is defined as a variable
// so tests can override it to capture draw calls.
var drawPath = func(dst *ebiten.Image, p *vector.Path, c color.Color, width float32, blend ebiten.Blend, stroke bool) {
	var vs []ebiten.Vertex
	var is []uint16
	if stroke {
		vs, is = p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:      width,
			LineJoin:   vector.LineJoinMiter,
			MiterLimit: 10,
		})
	} else {
		vs, is = p.AppendVerticesAndIndicesForFilling(nil, nil)
	}
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, Blend: blend}
	dst.DrawTriangles(vs, is, whiteSubImage(), op)
}

func blendFor(op canvas.Composite) ebiten.Blend {
	if op == canvas.DestinationOut {
		return ebiten.BlendDestinationOut
	}
	return ebiten.BlendSourceOver
}

// imageContext implements canvas.Context on top of a retained ebiten image.
type imageContext struct {
	dst       *ebiten.Image
	path      vector.Path
	stroke    color.Color
	fill      color.Color
	composite canvas.Composite
}

func newImageContext(dst *ebiten.Image) *imageContext {
	return &imageContext{dst: dst, stroke: color.Black, fill: color.Black}
}

func (c *imageContext) SetStrokeColor(col color.Color) { c.stroke = col }

func (c *imageContext) SetFillColor(col color.Color) { c.fill = col }

func (c *imageContext) SetComposite(op canvas.Composite) { c.composite = op }

func (c *imageContext) BeginPath() { c.path = vector.Path{} }

func (c *imageContext) MoveTo(x, y float64) { c.path.MoveTo(float32(x), float32(y)) }
func (c *imageContext) LineTo(x, y float64) { c.path.LineTo(float32(x), float32(y)) }

// Arc follows canvas semantics: a sweep of 2π or more in either direction
// is a full circle. vector.Path.Arc collapses a counter-clockwise 0..2π
// sweep to nothing, so full circles are always traced clockwise.
func (c *imageContext) Arc(x, y, radius, start, end float64, counterClockwise bool) {
	if math.Abs(end-start) >= 2*math.Pi {
		c.path.Arc(float32(x), float32(y), float32(radius), float32(start), float32(start+2*math.Pi), vector.Clockwise)
		return
	}
	dir := vector.Clockwise
	if counterClockwise {
		dir = vector.CounterClockwise
	}
	c.path.Arc(float32(x), float32(y), float32(radius), float32(start), float32(end), dir)
}

func (c *imageContext) Stroke() {
	drawPath(c.dst, &c.path, c.stroke, strokeWidth, blendFor(c.composite), true)
}

func (c *imageContext) Fill() {
	drawPath(c.dst, &c.path, c.fill, 0, blendFor(c.composite), false)
}
