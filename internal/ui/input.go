package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition = ebiten.CursorPosition
	screenSize     = ebiten.ScreenSizeInFullscreen
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	screen func() (int, int),
) func() {
	oldCursor := cursorPosition
	oldScreen := screenSize
	cursorPosition = cursor
	screenSize = screen
	return func() {
		cursorPosition = oldCursor
		screenSize = oldScreen
	}
}
