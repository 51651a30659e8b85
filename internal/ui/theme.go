package ui

import "image/color"

var (
	colBackground = color.RGBA{32, 32, 32, 255}
)
