package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// drawSprite blits img with its top-left corner at x, y
func drawSprite(dst, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

// frameAt returns frames[i], or nil when i is out of range
func frameAt(frames []*ebiten.Image, i int) *ebiten.Image {
	if i < 0 || i >= len(frames) {
		return nil
	}
	return frames[i]
}

// drawWorld draws the ship and every live entity
func (g *Game) drawWorld(screen *ebiten.Image) {
	world := g.session.World()
	ship := g.session.Ship

	drawSprite(screen, g.sprites.ship, ship.X, ship.Y)

	for _, b := range world.Bullets {
		drawSprite(screen, g.sprites.bullet, b.X, b.Y)
	}

	for _, e := range world.Enemies {
		drawSprite(screen, frameAt(g.sprites.enemies, e.Variant), e.X, e.Y)
	}

	for _, e := range world.Explosions {
		drawSprite(screen, frameAt(g.sprites.enemyExplosion, e.SpriteIndex()), e.X, e.Y)
	}
}

// drawPlayerExplosion draws the current frame of the death animation
func (g *Game) drawPlayerExplosion(screen *ebiten.Image) {
	frame, ok := g.session.PlayerExplosionFrame()
	if !ok {
		return
	}
	at := g.session.PlayerExplosionRect()
	drawSprite(screen, frameAt(g.sprites.playerExplosion, frame), at.X, at.Y)
}
