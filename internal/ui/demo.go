package ui

import "github.com/hajimehoshi/ebiten/v2"

const demoHoldTicks = 6 // ticks spent on each region

type demoRun struct {
	next int
	held int
}

// RunDemo replaces cursor input with a sweep that hovers every sensor in
// turn, then ends the game once the last one has been left.
func (g *Game) RunDemo() {
	g.demo = &demoRun{}
}

func (g *Game) stepDemo() error {
	regions := g.app.container.Regions()
	if g.demo.next >= len(regions) {
		g.app.pointer.MoveTo(-1, -1)
		g.logger.Infof("[DEMO] Finished demo run: %d regions visited", len(regions))
		return ebiten.Termination
	}
	r := regions[g.demo.next]
	g.app.pointer.MoveTo(r.Left, r.Top)
	g.demo.held++
	if g.demo.held >= demoHoldTicks {
		g.demo.held = 0
		g.demo.next++
	}
	return nil
}
