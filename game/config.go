package game

import "time"

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// FrameRate is the target number of updates per second
	FrameRate int

	// PlayerSpeed is how far the ship moves per frame while a direction key is held
	PlayerSpeed float64

	// BulletSpeed is how far a bullet climbs per frame
	BulletSpeed float64

	// Entity sizes in pixels
	ShipWidth, ShipHeight           float64
	BulletWidth, BulletHeight       float64
	EnemyWidth, EnemyHeight         float64
	ExplosionWidth, ExplosionHeight float64

	// ExplosionOffset shifts an enemy explosion up and left of the enemy it replaces
	ExplosionOffset float64

	// ExplosionStep is the per-frame advance of an explosion's frame counter
	ExplosionStep float64

	// Sprite sequence lengths
	EnemyVariants         int
	ExplosionFrames       int
	PlayerExplosionFrames int

	// PlayerExplosionOffsetX/Y place the death animation relative to the ship
	PlayerExplosionOffsetX float64
	PlayerExplosionOffsetY float64

	// InitialWait is the number of frames before the first spawn
	InitialWait int

	// SpawnFrequency is the number of frames between spawns
	SpawnFrequency int

	// DeathFrameDelay is how long each player explosion frame stays on screen
	DeathFrameDelay time.Duration

	// DeathPause is the blank pause between the death animation and the next session
	DeathPause time.Duration

	// Title is the window title
	Title string

	// AssetDir points to a directory holding sprites/ and audio/. Empty means generated assets.
	AssetDir string

	// Seed for the session random source. Zero means seed from the clock.
	Seed int64

	// Mute disables sound output
	Mute bool

	// ProfileDir enables CPU profile capture on frame rate drops when set
	ProfileDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	frameRate := 60
	return Config{
		ScreenWidth:            600,
		ScreenHeight:           800,
		FrameRate:              frameRate,
		PlayerSpeed:            5,
		BulletSpeed:            5,
		ShipWidth:              32,
		ShipHeight:             32,
		BulletWidth:            6,
		BulletHeight:           16,
		EnemyWidth:             26,
		EnemyHeight:            20,
		ExplosionWidth:         64,
		ExplosionHeight:        64,
		ExplosionOffset:        18,
		ExplosionStep:          0.25,
		EnemyVariants:          5,
		ExplosionFrames:        5,
		PlayerExplosionFrames:  4,
		PlayerExplosionOffsetX: 15,
		PlayerExplosionOffsetY: 14,
		InitialWait:            2 * frameRate, // measured in frames
		SpawnFrequency:         10,
		DeathFrameDelay:        100 * time.Millisecond,
		DeathPause:             time.Second,
		Title:                  "Squares and Ships",
	}
}

// FramesFor converts a wall-clock duration into a whole number of frames,
// rounding up so that short delays still last at least one frame.
func (c Config) FramesFor(d time.Duration) int {
	if d <= 0 || c.FrameRate <= 0 {
		return 0
	}
	n := d * time.Duration(c.FrameRate)
	frames := int(n / time.Second)
	if n%time.Second != 0 {
		frames++
	}
	return frames
}

// Bounds returns the screen rectangle
func (c Config) Bounds() Rect {
	return Rect{W: float64(c.ScreenWidth), H: float64(c.ScreenHeight)}
}
