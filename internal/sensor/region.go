// Package sensor keeps invisible hit-test regions over drawn tiles and
// routes hover notifications to the callbacks bound to them.
package sensor

const (
	ClassSensor = "sensor"
	ClassActive = "active"
	DefaultType = "area"
)

// Binding pairs a receiver with the signal to call on it.
type Binding struct {
	receiver any
	call     func(on bool)
}

// Bind captures signal and receiver so that Invoke calls signal(receiver, on).
// Method expressions fit naturally: Bind((*T).Toggle, t).
func Bind[R any](signal func(R, bool), receiver R) Binding {
	return Binding{
		receiver: receiver,
		call:     func(on bool) { signal(receiver, on) },
	}
}

// Receiver returns the value the signal is invoked on.
func (b Binding) Receiver() any { return b.receiver }

// Invoke calls the bound signal. A zero Binding does nothing.
func (b Binding) Invoke(on bool) {
	if b.call != nil {
		b.call(on)
	}
}

// Params position a new region. Left/Top is the region's center.
type Params struct {
	Left, Top     float64
	Width, Height float64
	Type          string
}

// Region is one hit-test zone in an overlay.
type Region struct {
	Left, Top     float64
	Width, Height float64
	kind          string
	classes       []string
	binding       Binding
}

func newRegion(b Binding, p Params) *Region {
	if p.Type == "" {
		p.Type = DefaultType
	}
	return &Region{
		Left:    p.Left,
		Top:     p.Top,
		Width:   p.Width,
		Height:  p.Height,
		kind:    p.Type,
		classes: []string{ClassSensor, p.Type},
		binding: b,
	}
}

// Type returns the region's type tag.
func (r *Region) Type() string { return r.kind }

func (r *Region) HasClass(name string) bool {
	for _, c := range r.classes {
		if c == name {
			return true
		}
	}
	return false
}

// ToggleClass adds name when missing and removes it otherwise. It reports
// whether name is present afterwards.
func (r *Region) ToggleClass(name string) bool {
	for i, c := range r.classes {
		if c == name {
			r.classes = append(r.classes[:i], r.classes[i+1:]...)
			return false
		}
	}
	r.classes = append(r.classes, name)
	return true
}

// Active reports whether the region is currently highlighted.
func (r *Region) Active() bool { return r.HasClass(ClassActive) }

// Receiver returns the value the region's signal is invoked on.
func (r *Region) Receiver() any { return r.binding.Receiver() }

// Contains reports whether (x, y) lies inside the hit box.
func (r *Region) Contains(x, y float64) bool {
	hw, hh := r.Width/2, r.Height/2
	return x >= r.Left-hw && x < r.Left+hw && y >= r.Top-hh && y < r.Top+hh
}
