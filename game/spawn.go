package game

// Rand is the random source used for spawning and enemy drift.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// EnemySpeed returns the enemy fall speed for a score: it climbs from 1 to 10
// across each hundred points and then starts over.
func EnemySpeed(score int) int {
	return 1 + (score%100)/10
}

// BatchSize returns how many enemies appear per spawn
func BatchSize(score int) int {
	return 1 + score/100
}

// Spawner decides when enemy batches appear
type Spawner struct {
	// Counter is the number of frames since the session started
	Counter int

	InitialWait int
	Frequency   int
}

// NewSpawner creates a spawner from the config
func NewSpawner(cfg Config) *Spawner {
	return &Spawner{
		InitialWait: cfg.InitialWait,
		Frequency:   cfg.SpawnFrequency,
	}
}

// Due reports whether the current frame is a spawn frame
func (s *Spawner) Due() bool {
	if s.Counter < s.InitialWait {
		return false
	}
	return (s.Counter-s.InitialWait)%s.Frequency == 0
}

// Tick advances the frame counter
func (s *Spawner) Tick() {
	s.Counter++
}

// SpawnBatch creates count enemies just above the screen at random horizontal
// positions, each with a random sprite variant.
func SpawnBatch(cfg Config, rng Rand, count int) []*Enemy {
	enemies := make([]*Enemy, 0, count)
	maxX := cfg.ScreenWidth - int(cfg.EnemyWidth)
	for i := 0; i < count; i++ {
		x := rng.Intn(maxX + 1)
		variant := rng.Intn(cfg.EnemyVariants)
		enemies = append(enemies, NewEnemy(cfg, float64(x), -cfg.EnemyHeight, variant))
	}
	return enemies
}
