package game

// World holds the entity collections of one session.
// Entities are never removed mid-iteration: steps clear the Active flag
// and Sweep compacts the slices once per frame.
type World struct {
	Bullets    []*Bullet
	Enemies    []*Enemy
	Explosions []*Explosion
}

// NewWorld creates an empty world with preallocated storage
func NewWorld() *World {
	return &World{
		Bullets:    make([]*Bullet, 0, 64),
		Enemies:    make([]*Enemy, 0, 64),
		Explosions: make([]*Explosion, 0, 16),
	}
}

// AddBullet registers a bullet
func (w *World) AddBullet(b *Bullet) {
	w.Bullets = append(w.Bullets, b)
}

// AddEnemy registers an enemy
func (w *World) AddEnemy(e *Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// AddExplosion registers an explosion
func (w *World) AddExplosion(e *Explosion) {
	w.Explosions = append(w.Explosions, e)
}

// Sweep drops every inactive entity. Survivors keep their relative order.
func (w *World) Sweep() {
	w.Bullets = sweep(w.Bullets, func(b *Bullet) bool { return b.Active })
	w.Enemies = sweep(w.Enemies, func(e *Enemy) bool { return e.Active })
	w.Explosions = sweep(w.Explosions, func(e *Explosion) bool { return e.Active })
}

// Clear removes all bullets, enemies and explosions but keeps capacity
func (w *World) Clear() {
	clear(w.Bullets)
	clear(w.Enemies)
	clear(w.Explosions)
	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Explosions = w.Explosions[:0]
}

// Count returns the total number of registered entities
func (w *World) Count() int {
	return len(w.Bullets) + len(w.Enemies) + len(w.Explosions)
}

func sweep[T any](items []*T, keep func(*T) bool) []*T {
	n := 0
	for _, item := range items {
		if keep(item) {
			items[n] = item
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
