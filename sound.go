package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"squaresships/assets"
	"squaresships/game"
)

// audioPlayer plays PCM clips through ebiten's audio context.
// Each Play starts an independent player so overlapping effects mix.
type audioPlayer struct {
	ctx   *audio.Context
	clips map[game.Sound][]byte
}

func newAudioPlayer(b *assets.Bundle) *audioPlayer {
	return &audioPlayer{
		ctx: audio.NewContext(b.SampleRate),
		clips: map[game.Sound][]byte{
			game.SoundFire:        b.FireSound,
			game.SoundEnemyDeath:  b.EnemyDeathSound,
			game.SoundPlayerDeath: b.PlayerDeathSound,
		},
	}
}

// Play starts s and returns immediately
func (p *audioPlayer) Play(s game.Sound) {
	pcm := p.clips[s]
	if len(pcm) == 0 {
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}
