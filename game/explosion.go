package game

// animateExplosions advances explosion frame counters. frames is the length
// of the sprite sequence; an explosion showing the last sprite is retired
// instead of advanced, so that sprite is displayed exactly once.
func animateExplosions(explosions []*Explosion, step float64, frames int) {
	for _, e := range explosions {
		if !e.Active {
			continue
		}
		if e.SpriteIndex() >= frames-1 {
			e.Active = false
			continue
		}
		e.Frame += step
	}
}
