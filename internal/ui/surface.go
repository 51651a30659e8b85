package ui

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/hexscape/internal/canvas"
	"github.com/ingyamilmolinar/hexscape/internal/hex"
)

var ErrNoContext = errors.New("no usable drawing context")

// newImage allocates the retained surface image. Tests replace it.
var newImage = ebiten.NewImage

// Drawable is anything a Surface can render with its context.
type Drawable interface {
	Draw(ctx canvas.Context, p hex.Params)
}

// Surface owns the one drawing context. Its image is retained between
// frames; drawables change it in place and nothing repaints it wholesale.
type Surface struct {
	img  *ebiten.Image
	ctx  canvas.Context
	w, h int
}

// NewSurface allocates a w×h surface.
func NewSurface(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("surface %dx%d: %w", w, h, ErrNoContext)
	}
	img := newImage(w, h)
	return &Surface{img: img, ctx: newImageContext(img), w: w, h: h}, nil
}

// Add hands the surface's context to d.
func (s *Surface) Add(d Drawable, p hex.Params) {
	d.Draw(s.ctx, p)
}

func (s *Surface) Context() canvas.Context { return s.ctx }

// Image is nil for surfaces not backed by ebiten.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Size() (w, h int) { return s.w, s.h }

// Center returns the middle of the surface, the grid origin.
func (s *Surface) Center() (x, y float64) {
	return float64(s.w) / 2, float64(s.h) / 2
}

// viewport picks the surface size: the configured window, or the monitor
// size when either dimension is zero.
func viewport(w, h int) (int, int) {
	if w > 0 && h > 0 {
		return w, h
	}
	return screenSize()
}

// NewViewportSurface sizes a surface from the configured window, falling
// back to the monitor size.
func NewViewportSurface(w, h int) (*Surface, error) {
	return NewSurface(viewport(w, h))
}
