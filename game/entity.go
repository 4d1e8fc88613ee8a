package game

// Ship is the player's ship. Exactly one exists per session.
type Ship struct {
	Rect
}

// Bullet is a single player shot travelling up the screen
type Bullet struct {
	Rect

	// Whether this bullet is still in play (cleared entities are swept at end of frame)
	Active bool
}

// Enemy is a descending square
type Enemy struct {
	Rect

	// Variant selects one of the enemy sprites; it never changes after creation
	Variant int

	Active bool
}

// Explosion is the transient effect left behind by a destroyed enemy
type Explosion struct {
	Rect

	// Frame is the fractional animation progress; the displayed sprite is int(Frame)
	Frame float64

	Active bool
}

// NewShip creates the ship at its starting position: centered horizontally at 80% of screen height
func NewShip(cfg Config) Ship {
	return Ship{Rect: Rect{
		X: 0.5*float64(cfg.ScreenWidth) - 0.5*cfg.ShipWidth,
		Y: 0.8 * float64(cfg.ScreenHeight),
		W: cfg.ShipWidth,
		H: cfg.ShipHeight,
	}}
}

// NewBullet creates a bullet centered on and just above the ship
func NewBullet(cfg Config, ship Ship) *Bullet {
	return &Bullet{
		Rect: Rect{
			X: ship.X + 0.5*ship.W - cfg.BulletWidth/2,
			Y: ship.Y - cfg.BulletHeight,
			W: cfg.BulletWidth,
			H: cfg.BulletHeight,
		},
		Active: true,
	}
}

// NewEnemy creates an enemy with its top-left corner at x, y
func NewEnemy(cfg Config, x, y float64, variant int) *Enemy {
	return &Enemy{
		Rect:    Rect{X: x, Y: y, W: cfg.EnemyWidth, H: cfg.EnemyHeight},
		Variant: variant,
		Active:  true,
	}
}

// NewExplosion creates an explosion over the enemy's last position
func NewExplosion(cfg Config, enemy *Enemy) *Explosion {
	return &Explosion{
		Rect: Rect{
			X: enemy.X - cfg.ExplosionOffset,
			Y: enemy.Y - cfg.ExplosionOffset,
			W: cfg.ExplosionWidth,
			H: cfg.ExplosionHeight,
		},
		Active: true,
	}
}

// SpriteIndex returns the animation frame to display
func (e *Explosion) SpriteIndex() int {
	return int(e.Frame)
}
