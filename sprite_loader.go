package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"squaresships/assets"
)

// sprites holds the GPU copies of the asset bundle's images
type sprites struct {
	ship            *ebiten.Image
	bullet          *ebiten.Image
	enemies         []*ebiten.Image
	enemyExplosion  []*ebiten.Image
	playerExplosion []*ebiten.Image
}

// newSprites converts the decoded images to ebiten images
func newSprites(b *assets.Bundle) *sprites {
	return &sprites{
		ship:            ebiten.NewImageFromImage(b.Ship),
		bullet:          ebiten.NewImageFromImage(b.Bullet),
		enemies:         toEbitenImages(b.Enemies),
		enemyExplosion:  toEbitenImages(b.EnemyExplosion),
		playerExplosion: toEbitenImages(b.PlayerExplosion),
	}
}

func toEbitenImages(images []image.Image) []*ebiten.Image {
	out := make([]*ebiten.Image, len(images))
	for i, img := range images {
		out[i] = ebiten.NewImageFromImage(img)
	}
	return out
}

// windowIcon returns the icon shown in the window title bar
func windowIcon(b *assets.Bundle) []image.Image {
	return []image.Image{b.Ship}
}
