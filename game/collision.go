package game

// CollisionResult summarizes what happened during one collision pass
type CollisionResult struct {
	// ShipHit is set when any enemy touched the ship
	ShipHit bool

	// Kills is the number of enemies destroyed by bullets
	Kills int
}

// CollisionSystem resolves ship/enemy and bullet/enemy overlaps
type CollisionSystem struct {
	config Config
	world  *World
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(config Config, world *World) *CollisionSystem {
	return &CollisionSystem{
		config: config,
		world:  world,
	}
}

// Resolve checks every live enemy against the ship and the live bullets.
//
// A ship hit does not stop the pass, so the remaining enemies and bullets
// still resolve this frame. When several bullets overlap one enemy, the
// first bullet in registry order destroys it and the rest fly on; a bullet
// spent on one enemy is skipped by the following ones.
func (c *CollisionSystem) Resolve(ship Ship) CollisionResult {
	var result CollisionResult

	for _, enemy := range c.world.Enemies {
		if !enemy.Active {
			continue
		}

		if enemy.Overlaps(ship.Rect) {
			result.ShipHit = true
		}

		for _, bullet := range c.world.Bullets {
			if !bullet.Active || !enemy.Overlaps(bullet.Rect) {
				continue
			}

			bullet.Active = false
			enemy.Active = false
			c.world.AddExplosion(NewExplosion(c.config, enemy))
			result.Kills++
			break
		}
	}

	return result
}
