// Package assets loads the sprites and sound effects used by the game.
//
// Assets come either from a directory laid out like the classic release
// (sprites/*.bmp and audio/*.wav) or, when no directory is given, are
// generated procedurally. Sprites are returned as plain image.Image values
// and sounds as 16-bit little-endian stereo PCM, so nothing here touches
// the graphics or audio device.
package assets

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
)

// Sequence lengths expected by the game
const (
	EnemyVariants         = 5
	EnemyExplosionFrames  = 5
	PlayerExplosionFrames = 4
)

// SampleRate is the default PCM sample rate
const SampleRate = 44100

// Bundle is the immutable set of assets loaded once at startup
type Bundle struct {
	Ship            image.Image
	Bullet          image.Image
	Enemies         []image.Image
	EnemyExplosion  []image.Image
	PlayerExplosion []image.Image

	// PCM sound effects (16-bit little-endian, stereo, at SampleRate)
	FireSound        []byte
	EnemyDeathSound  []byte
	PlayerDeathSound []byte

	// SampleRate of the PCM data
	SampleRate int
}

// Load reads assets from dir. An empty dir returns generated assets.
func Load(dir string, sampleRate int) (*Bundle, error) {
	if dir == "" {
		log.Printf("assets: generating sprites and sounds")
		return Generate(sampleRate)
	}

	log.Printf("assets: loading from %s", dir)
	sprites := filepath.Join(dir, "sprites")
	audio := filepath.Join(dir, "audio")

	b := &Bundle{SampleRate: sampleRate}
	var err error

	if b.Ship, err = loadImage(sprites, "ship"); err != nil {
		return nil, err
	}
	if b.Bullet, err = loadImage(sprites, "bullet"); err != nil {
		return nil, err
	}
	if b.Enemies, err = loadImages(sprites, "enemy", EnemyVariants); err != nil {
		return nil, err
	}
	if b.EnemyExplosion, err = loadImages(sprites, "enemy_explosion", EnemyExplosionFrames); err != nil {
		return nil, err
	}
	if b.PlayerExplosion, err = loadImages(sprites, "player_explosion", PlayerExplosionFrames); err != nil {
		return nil, err
	}

	if b.FireSound, err = loadWAV(filepath.Join(audio, "bullet.wav"), sampleRate); err != nil {
		return nil, err
	}
	if b.EnemyDeathSound, err = loadWAV(filepath.Join(audio, "enemy_death.wav"), sampleRate); err != nil {
		return nil, err
	}
	if b.PlayerDeathSound, err = loadWAV(filepath.Join(audio, "player_death.wav"), sampleRate); err != nil {
		return nil, err
	}

	return b, nil
}

// Generate builds every asset procedurally
func Generate(sampleRate int) (*Bundle, error) {
	b := &Bundle{
		Ship:            shipSprite(32, 32),
		Bullet:          bulletSprite(6, 16),
		Enemies:         make([]image.Image, EnemyVariants),
		EnemyExplosion:  burstFrames(EnemyExplosionFrames, 64, 64, enemyBurstPalette),
		PlayerExplosion: burstFrames(PlayerExplosionFrames, 62, 60, playerBurstPalette),
		SampleRate:      sampleRate,
	}
	for i := range b.Enemies {
		b.Enemies[i] = enemySprite(26, 20, enemyColors[i%len(enemyColors)])
	}

	var err error
	if b.FireSound, err = Render(FireEffect(sampleRate)); err != nil {
		return nil, fmt.Errorf("synthesize fire sound: %w", err)
	}
	if b.EnemyDeathSound, err = Render(EnemyDeathEffect(sampleRate)); err != nil {
		return nil, fmt.Errorf("synthesize enemy death sound: %w", err)
	}
	if b.PlayerDeathSound, err = Render(PlayerDeathEffect(sampleRate)); err != nil {
		return nil, fmt.Errorf("synthesize player death sound: %w", err)
	}
	return b, nil
}
