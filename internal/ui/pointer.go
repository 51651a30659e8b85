package ui

import (
	"errors"
	"fmt"

	"github.com/ingyamilmolinar/hexscape/internal/sensor"
)

type subscription struct {
	typ sensor.Type
	el  *sensor.Container
	h   sensor.Handler
}

// Pointer turns cursor polling into hover enter/exit events, the way a
// browser reports mouseover and mouseout on overlay elements.
type Pointer struct {
	subs  []subscription
	hover map[*sensor.Container]*sensor.Region
}

func NewPointer() *Pointer {
	return &Pointer{hover: map[*sensor.Container]*sensor.Region{}}
}

// Subscribe implements sensor.Subscriber.
func (p *Pointer) Subscribe(t sensor.Type, el *sensor.Container, h sensor.Handler) error {
	if t != sensor.HoverEnter && t != sensor.HoverExit {
		return fmt.Errorf("type %d: %w", t, sensor.ErrUnsupportedEvent)
	}
	if el == nil || h == nil {
		return errors.New("subscribe needs a container and a handler")
	}
	p.subs = append(p.subs, subscription{typ: t, el: el, h: h})
	return nil
}

// Poll reads the cursor and emits events for any hover change.
func (p *Pointer) Poll() {
	x, y := cursorPosition()
	p.MoveTo(float64(x), float64(y))
}

// MoveTo emits an exit for the region the cursor left, then an enter for
// the region it reached.
func (p *Pointer) MoveTo(x, y float64) {
	for _, el := range p.containers() {
		cur := el.HitTest(x, y)
		prev := p.hover[el]
		if cur == prev {
			continue
		}
		p.hover[el] = cur
		if prev != nil {
			p.emit(el, sensor.Event{Type: sensor.HoverExit, Target: prev})
		}
		if cur != nil {
			p.emit(el, sensor.Event{Type: sensor.HoverEnter, Target: cur})
		}
	}
}

// Hovered returns the region under the cursor in el, if any.
func (p *Pointer) Hovered(el *sensor.Container) *sensor.Region { return p.hover[el] }

func (p *Pointer) containers() []*sensor.Container {
	var out []*sensor.Container
	seen := map[*sensor.Container]bool{}
	for _, s := range p.subs {
		if !seen[s.el] {
			seen[s.el] = true
			out = append(out, s.el)
		}
	}
	return out
}

func (p *Pointer) emit(el *sensor.Container, e sensor.Event) {
	for _, s := range p.subs {
		if s.el == el && s.typ == e.Type {
			s.h(e)
		}
	}
}
