// Package canvas describes the immediate-mode drawing API tiles paint with.
package canvas

import "image/color"

// Composite selects how new paint combines with what is already drawn.
type Composite int

const (
	// SourceOver paints on top of existing pixels.
	SourceOver Composite = iota
	// DestinationOut clears existing pixels wherever the new shape covers.
	DestinationOut
)

func (c Composite) String() string {
	switch c {
	case SourceOver:
		return "source-over"
	case DestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// Context is a 2D path-based drawing target. Paths are built with
// BeginPath/MoveTo/LineTo/Arc and committed with Stroke or Fill using the
// current colors and composite mode.
type Context interface {
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetComposite(op Composite)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centered on (x, y). Angles are in radians.
	Arc(x, y, radius, start, end float64, counterClockwise bool)
	Stroke()
	Fill()
}
