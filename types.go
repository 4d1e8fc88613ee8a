package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"squaresships/assets"
	"squaresships/game"
)

// Game adapts the session state machine to ebiten and runs the restart loop:
// whenever a session finishes its death sequence a fresh one starts.
type Game struct {
	config  game.Config
	rng     *rand.Rand
	input   game.InputSource
	sound   game.SoundPlayer
	sprites *sprites
	hud     *hud

	session  *game.Session
	sessions int

	// Optional frame-rate drop profiling
	profiler *game.Profiler
	drops    *game.DropDetector
}

// NewGame creates the game and starts the first session
func NewGame(config game.Config, bundle *assets.Bundle) (*Game, error) {
	g := &Game{
		config:  config,
		rng:     rand.New(rand.NewSource(config.Seed)),
		input:   keyboardInput{},
		sound:   game.Silent{},
		sprites: newSprites(bundle),
		hud:     newHUD(),
	}

	if !config.Mute {
		g.sound = newAudioPlayer(bundle)
	}

	if config.ProfileDir != "" {
		profiler, err := game.NewProfiler(config.ProfileDir)
		if err != nil {
			return nil, fmt.Errorf("profiler: %w", err)
		}
		g.profiler = profiler
		g.drops = game.NewDropDetector(config.FrameRate)
	}

	g.newSession()
	return g, nil
}

func (g *Game) newSession() {
	if g.session != nil {
		log.Printf("Session %d over: score %d after %d frames", g.sessions, g.session.Score, g.session.Frames())
	}
	g.sessions++
	g.session = game.NewSession(g.config, g.rng, g.sound)
}

// Update advances the game by one frame
func (g *Game) Update() error {
	in := g.input.Poll()

	// Quit before any of this frame's work takes effect
	if in.Quit {
		return ebiten.Termination
	}

	handleDebugKeys()

	g.session.Step(in)
	if g.session.Done() {
		g.newSession()
	}

	g.watchFrameRate()
	return nil
}

func (g *Game) watchFrameRate() {
	if g.profiler == nil {
		return
	}
	tps := ebiten.ActualTPS()
	if !g.drops.Observe(tps) {
		return
	}

	reason := fmt.Sprintf("tps%.0f-entities%d", tps, g.session.World().Count())
	log.Printf("Frame rate drop detected (%.0f TPS), capturing profile", tps)
	if err := g.profiler.CaptureProfile(reason); err != nil {
		log.Printf("Failed to capture profile: %v", err)
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	switch g.session.Phase() {
	case game.PhasePlaying, game.PhaseCrashed:
		g.drawWorld(screen)
		g.hud.draw(screen, g.session)
	case game.PhaseExploding:
		g.drawPlayerExplosion(screen)
	}
	g.drawDebug(screen)
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
