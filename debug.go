package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"squaresships/game"
)

var (
	colorHitboxShip   = color.RGBA{0, 255, 0, 255}
	colorHitboxBullet = color.RGBA{255, 255, 0, 255}
	colorHitboxEnemy  = color.RGBA{255, 0, 0, 255}
)

// handleDebugKeys toggles the overlays (F1 hitboxes, F2 stats)
func handleDebugKeys() {
	debugState := game.GetDebugState()
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState.ShowHitboxes = !debugState.ShowHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		debugState.ShowStats = !debugState.ShowStats
	}
}

func strokeRect(screen *ebiten.Image, r game.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}

// drawDebug draws whichever overlays are enabled
func (g *Game) drawDebug(screen *ebiten.Image) {
	debugState := game.GetDebugState()
	world := g.session.World()

	if debugState.ShowHitboxes && (g.session.Phase() == game.PhasePlaying || g.session.Phase() == game.PhaseCrashed) {
		strokeRect(screen, g.session.Ship.Rect, colorHitboxShip)
		for _, b := range world.Bullets {
			strokeRect(screen, b.Rect, colorHitboxBullet)
		}
		for _, e := range world.Enemies {
			strokeRect(screen, e.Rect, colorHitboxEnemy)
		}
	}

	if debugState.ShowStats {
		stats := fmt.Sprintf("TPS: %.1f\nSession: %d (%s)\nBullets: %d  Enemies: %d  Explosions: %d",
			ebiten.ActualTPS(), g.sessions, g.session.Phase(),
			len(world.Bullets), len(world.Enemies), len(world.Explosions))
		ebitenutil.DebugPrintAt(screen, stats, g.config.ScreenWidth-260, 10)
	}
}
