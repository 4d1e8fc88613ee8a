package game

// Sound identifies a sound effect
type Sound int

const (
	SoundFire Sound = iota
	SoundEnemyDeath
	SoundPlayerDeath
)

func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundEnemyDeath:
		return "enemy_death"
	case SoundPlayerDeath:
		return "player_death"
	default:
		return "unknown"
	}
}

// SoundPlayer starts sound effects. Play must not block; there is no completion tracking.
type SoundPlayer interface {
	Play(s Sound)
}

// Silent is a SoundPlayer that discards everything
type Silent struct{}

// Play does nothing
func (Silent) Play(Sound) {}
