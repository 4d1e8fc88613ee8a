package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"squaresships/assets"
	"squaresships/game"
)

func main() {
	config := game.ConfigFromEnv()
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	bundle, err := assets.Load(config.AssetDir, assets.SampleRate)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	g, err := NewGame(config, bundle)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowIcon(windowIcon(bundle))
	ebiten.SetTPS(config.FrameRate)
	ebiten.SetWindowClosingHandled(true)

	// Closing the window ends RunGame with ebiten.Termination, which is reported as nil
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	log.Printf("Exited after %d sessions", g.sessions)
}
