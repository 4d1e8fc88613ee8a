package main

import "image/color"

// Color constants
var (
	colorBackground = color.NRGBA{A: 255}
	colorText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// UI constants
const (
	hudScoreX    = 10
	hudScoreY    = 5
	hudLevelX    = 10
	hudLevelY    = 29
	hudTextScale = 1.5
)
