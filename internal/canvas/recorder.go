package canvas

import (
	"fmt"
	"image/color"
)

type OpKind int

const (
	OpStrokeColor OpKind = iota
	OpFillColor
	OpComposite
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpStroke
	OpFill
)

func (k OpKind) String() string {
	switch k {
	case OpStrokeColor:
		return "strokeColor"
	case OpFillColor:
		return "fillColor"
	case OpComposite:
		return "composite"
	case OpBeginPath:
		return "beginPath"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpArc:
		return "arc"
	case OpStroke:
		return "stroke"
	case OpFill:
		return "fill"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind      OpKind
	X, Y      float64
	Radius    float64
	Color     color.Color
	Composite Composite
}

func (o Op) String() string {
	switch o.Kind {
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s(%.2f,%.2f)", o.Kind, o.X, o.Y)
	case OpArc:
		return fmt.Sprintf("arc(%.2f,%.2f r=%.2f)", o.X, o.Y, o.Radius)
	case OpComposite:
		return fmt.Sprintf("composite(%s)", o.Composite)
	case OpStrokeColor, OpFillColor:
		return fmt.Sprintf("%s(%v)", o.Kind, o.Color)
	default:
		return o.Kind.String()
	}
}

// Recorder is a Context that keeps every call instead of drawing it.
type Recorder struct {
	Ops []Op
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeColor, Color: c})
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillColor, Color: c})
}

func (r *Recorder) SetComposite(op Composite) {
	r.Ops = append(r.Ops, Op{Kind: OpComposite, Composite: op})
}

func (r *Recorder) BeginPath() { r.Ops = append(r.Ops, Op{Kind: OpBeginPath}) }

func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpMoveTo, X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineTo, X: x, Y: y})
}

func (r *Recorder) Arc(x, y, radius, start, end float64, counterClockwise bool) {
	r.Ops = append(r.Ops, Op{Kind: OpArc, X: x, Y: y, Radius: radius})
}

func (r *Recorder) Stroke() { r.Ops = append(r.Ops, Op{Kind: OpStroke}) }

func (r *Recorder) Fill() { r.Ops = append(r.Ops, Op{Kind: OpFill}) }

// Reset drops everything recorded so far.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Since returns the ops recorded after the first n.
func (r *Recorder) Since(n int) []Op {
	if n >= len(r.Ops) {
		return nil
	}
	return r.Ops[n:]
}
