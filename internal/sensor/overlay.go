package sensor

import game_log "github.com/ingyamilmolinar/hexscape/internal/log"

// Container holds the regions that are live, i.e. visible to hit tests.
type Container struct {
	regions []*Region
	flushes int
}

func NewContainer() *Container { return &Container{} }

// Append inserts a batch of regions in one operation.
func (c *Container) Append(batch ...*Region) {
	c.regions = append(c.regions, batch...)
	c.flushes++
}

// Len is the number of live regions.
func (c *Container) Len() int { return len(c.regions) }

// Flushes counts the Append operations performed so far.
func (c *Container) Flushes() int { return c.flushes }

// Regions returns the live regions in insertion order.
func (c *Container) Regions() []*Region { return c.regions }

// HitTest returns the region under (x, y). Later regions sit on top of
// earlier ones.
func (c *Container) HitTest(x, y float64) *Region {
	for i := len(c.regions) - 1; i >= 0; i-- {
		if c.regions[i].Contains(x, y) {
			return c.regions[i]
		}
	}
	return nil
}

// Active returns the regions currently carrying the active class.
func (c *Container) Active() []*Region {
	var out []*Region
	for _, r := range c.regions {
		if r.Active() {
			out = append(out, r)
		}
	}
	return out
}

// Overlay batches new regions off-container and commits them in one flush.
type Overlay struct {
	container *Container
	batch     []*Region
	logger    *game_log.Logger
}

func NewOverlay(container *Container, logger *game_log.Logger) *Overlay {
	return &Overlay{container: container, logger: logger}
}

// Add queues a region bound to b. It stays invisible until Render.
func (o *Overlay) Add(b Binding, p Params) {
	o.batch = append(o.batch, newRegion(b, p))
}

// Pending is the size of the current batch.
func (o *Overlay) Pending() int { return len(o.batch) }

// Render flushes the pending batch into the container and starts a fresh
// one. An empty batch inserts nothing. It returns the number of regions
// flushed.
func (o *Overlay) Render() int {
	n := len(o.batch)
	if n == 0 {
		return 0
	}
	o.container.Append(o.batch...)
	o.batch = nil
	o.logger.Debugf("[SENSOR] flushed %d regions (live=%d)", n, o.container.Len())
	return n
}
