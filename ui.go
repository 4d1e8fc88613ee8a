package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"squaresships/game"
)

// hud draws the score and level readout
type hud struct {
	face text.Face
}

func newHUD() *hud {
	return &hud{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *hud) draw(screen *ebiten.Image, s *game.Session) {
	batch, speed := s.Level()
	h.label(screen, fmt.Sprintf("Score: %d", s.Score), hudScoreX, hudScoreY)
	h.label(screen, fmt.Sprintf("Level: %d-%d", batch, speed), hudLevelX, hudLevelY)
}

func (h *hud) label(screen *ebiten.Image, msg string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, msg, h.face, op)
}
