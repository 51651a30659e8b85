package sensor

import (
	"errors"
	"fmt"
	"strings"

	game_log "github.com/ingyamilmolinar/hexscape/internal/log"
)

type Type int

const (
	HoverEnter Type = iota
	HoverExit
)

func (t Type) String() string {
	switch t {
	case HoverEnter:
		return "mouseover"
	case HoverExit:
		return "mouseout"
	default:
		return "unknown"
	}
}

var ErrUnsupportedEvent = errors.New("unsupported event type")

// ParseType accepts "mouseover"/"mouseout" and their "on"-prefixed forms.
func ParseType(s string) (Type, error) {
	switch strings.TrimPrefix(strings.ToLower(s), "on") {
	case "mouseover", "mouseenter":
		return HoverEnter, nil
	case "mouseout", "mouseleave":
		return HoverExit, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedEvent)
}

// Event is a hover notification. Sources fill either Target or, in the
// older shape, SrcElement.
type Event struct {
	Type       Type
	Target     *Region
	SrcElement *Region
}

// Resolve returns the region the event refers to, or nil.
func (e Event) Resolve() *Region {
	if e.Target != nil {
		return e.Target
	}
	return e.SrcElement
}

type Handler func(Event)

// Subscriber delivers events of one type that occur inside el to h.
type Subscriber interface {
	Subscribe(t Type, el *Container, h Handler) error
}

// Dispatcher turns hover events into calls on the bound receivers.
type Dispatcher struct {
	logger *game_log.Logger
}

func NewDispatcher(logger *game_log.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Observe flips the target's active class and passes the new membership
// to its bound signal. Events without a sensor target are ignored.
func (d *Dispatcher) Observe(e Event) {
	target := e.Resolve()
	if target == nil || !target.HasClass(ClassSensor) {
		return
	}
	on := target.ToggleClass(ClassActive)
	d.logger.Debugf("[SENSOR] %s at (%.1f,%.1f) active=%t", e.Type, target.Left, target.Top, on)
	target.binding.Invoke(on)
}
