package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"squaresships/game"
)

// keyboardInput reads the keyboard and window state through ebiten
type keyboardInput struct{}

// Poll samples the keys for this frame
func (keyboardInput) Poll() game.Controls {
	in := game.Controls{
		Quit:  ebiten.IsWindowBeingClosed(),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}

	// Fire on key press (not while held)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Fire = 1
	}
	return in
}
