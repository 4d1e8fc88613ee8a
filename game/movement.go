package game

// moveBullets advances bullets up the screen and retires the ones that left it
func moveBullets(cfg Config, bullets []*Bullet) {
	height := float64(cfg.ScreenHeight)
	for _, b := range bullets {
		if !b.Active {
			continue
		}
		b.Y -= cfg.BulletSpeed

		// Fully above the top edge, or (should never happen) below the bottom
		if b.Bottom() <= 0 || b.Y > height {
			b.Active = false
		}
	}
}

// moveEnemies drops every enemy by speed and jitters it sideways by -speed, 0 or +speed
func moveEnemies(cfg Config, enemies []*Enemy, speed int, rng Rand) {
	height := float64(cfg.ScreenHeight)
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		e.Y += float64(speed)
		e.X += float64((rng.Intn(3) - 1) * speed)

		if e.Y >= height {
			e.Active = false
		}
	}
}
