//go:build js

package ui

import "syscall/js"

// initJS exposes helper functions for browser-based tests.
// hoverRegion(index, "mouseover"|"onmouseout"|...) reports whether the
// event was delivered.
func (g *Game) initJS() {
	js.Global().Set("hoverRegion", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 2 {
			return false
		}
		if err := g.hoverRegion(args[0].Int(), args[1].String()); err != nil {
			g.logger.Debugf("[JS] hoverRegion: %v", err)
			return false
		}
		return true
	}))
	js.Global().Set("activeRegions", js.FuncOf(func(js.Value, []js.Value) any {
		return js.ValueOf(len(g.app.container.Active()))
	}))
}
