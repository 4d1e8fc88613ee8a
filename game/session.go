package game

// Phase is the state of a session
type Phase int

const (
	// PhasePlaying runs the normal per-frame simulation
	PhasePlaying Phase = iota

	// PhaseCrashed is the frame the ship was hit: the world is kept so it can be drawn once more
	PhaseCrashed

	// PhaseExploding shows the player explosion after the ship was hit
	PhaseExploding

	// PhaseCooldown is the blank pause before the next session
	PhaseCooldown

	// PhaseOver means the session is finished and a new one should start
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseCrashed:
		return "crashed"
	case PhaseExploding:
		return "exploding"
	case PhaseCooldown:
		return "cooldown"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Session is one play-through, from ship reset to the end of the death sequence
type Session struct {
	config     Config
	rng        Rand
	sound      SoundPlayer
	world      *World
	collisions *CollisionSystem
	spawner    *Spawner

	// Ship is the player's ship
	Ship Ship

	// Score is the number of enemies shot this session
	Score int

	// GameOver is set on the frame the ship is hit
	GameOver bool

	phase      Phase
	phaseFrame int
	frames     int

	// Frame counts of the death sequence, derived from the configured durations
	deathFrameTicks int
	pauseTicks      int
}

// NewSession creates a fresh session: ship at its start position, empty world, zero score
func NewSession(config Config, rng Rand, sound SoundPlayer) *Session {
	if sound == nil {
		sound = Silent{}
	}
	world := NewWorld()
	return &Session{
		config:          config,
		rng:             rng,
		sound:           sound,
		world:           world,
		collisions:      NewCollisionSystem(config, world),
		spawner:         NewSpawner(config),
		Ship:            NewShip(config),
		deathFrameTicks: max(1, config.FramesFor(config.DeathFrameDelay)),
		pauseTicks:      config.FramesFor(config.DeathPause),
	}
}

// World returns the session's entity registry
func (s *Session) World() *World { return s.world }

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// Done reports whether the session has finished its death sequence
func (s *Session) Done() bool { return s.phase == PhaseOver }

// Frames returns the number of frames stepped so far
func (s *Session) Frames() int { return s.frames }

// Level returns the current spawn batch size and enemy speed
func (s *Session) Level() (batch, speed int) {
	return BatchSize(s.Score), EnemySpeed(s.Score)
}

// PlayerExplosionFrame returns the death animation frame to display.
// ok is false outside the exploding phase.
func (s *Session) PlayerExplosionFrame() (frame int, ok bool) {
	if s.phase != PhaseExploding {
		return 0, false
	}
	return s.phaseFrame / s.deathFrameTicks, true
}

// PlayerExplosionRect returns where the death animation is drawn
func (s *Session) PlayerExplosionRect() Rect {
	return Rect{
		X: s.Ship.X - s.config.PlayerExplosionOffsetX,
		Y: s.Ship.Y - s.config.PlayerExplosionOffsetY,
	}
}

// Step advances the session by one frame.
// Controls are ignored outside the playing phase.
func (s *Session) Step(in Controls) {
	s.frames++

	switch s.phase {
	case PhasePlaying:
		s.stepPlaying(in)
	case PhaseCrashed:
		s.world.Clear()
		s.sound.Play(SoundPlayerDeath)
		s.setPhase(PhaseExploding)
	case PhaseExploding:
		s.phaseFrame++
		if s.phaseFrame >= s.deathFrameTicks*s.config.PlayerExplosionFrames {
			s.setPhase(PhaseCooldown)
		}
	case PhaseCooldown:
		s.phaseFrame++
		if s.phaseFrame >= s.pauseTicks {
			s.setPhase(PhaseOver)
		}
	case PhaseOver:
	}
}

func (s *Session) stepPlaying(in Controls) {
	for i := 0; i < in.Fire; i++ {
		s.world.AddBullet(NewBullet(s.config, s.Ship))
		s.sound.Play(SoundFire)
	}
	steerShip(s.config, &s.Ship, in)

	// Explosions created during this frame keep frame 0 until they have been drawn once
	shown := len(s.world.Explosions)

	moveBullets(s.config, s.world.Bullets)
	moveEnemies(s.config, s.world.Enemies, EnemySpeed(s.Score), s.rng)

	result := s.collisions.Resolve(s.Ship)
	for i := 0; i < result.Kills; i++ {
		s.Score++
		s.sound.Play(SoundEnemyDeath)
	}
	if result.ShipHit {
		s.GameOver = true
	}

	if s.spawner.Due() {
		for _, e := range SpawnBatch(s.config, s.rng, BatchSize(s.Score)) {
			s.world.AddEnemy(e)
		}
	}
	s.spawner.Tick()

	animateExplosions(s.world.Explosions[:shown], s.config.ExplosionStep, s.config.ExplosionFrames)
	s.world.Sweep()

	if s.GameOver {
		s.setPhase(PhaseCrashed)
	}
}

func (s *Session) setPhase(p Phase) {
	s.phase = p
	s.phaseFrame = 0
	if p == PhaseCooldown && s.pauseTicks == 0 {
		s.phase = PhaseOver
	}
}
