package game

import "testing"

func TestBulletLeavesScreen(t *testing.T) {
	cfg := DefaultConfig()
	b := &Bullet{Rect: Rect{X: 297, Y: 752, W: cfg.BulletWidth, H: cfg.BulletHeight}, Active: true}
	bullets := []*Bullet{b}

	frames := 0
	for b.Active && frames < 1000 {
		moveBullets(cfg, bullets)
		frames++
	}

	// ceil((752 + 16) / 5)
	if frames != 154 {
		t.Errorf("Expected bullet to leave after 154 frames, got %d", frames)
	}
	if b.Bottom() > 0 {
		t.Errorf("Expected bullet fully above the top edge, bottom at %v", b.Bottom())
	}
}

func TestBulletStillVisibleWhilePartlyOnScreen(t *testing.T) {
	cfg := DefaultConfig()
	b := &Bullet{Rect: Rect{X: 10, Y: 4, W: cfg.BulletWidth, H: cfg.BulletHeight}, Active: true}

	moveBullets(cfg, []*Bullet{b})
	if !b.Active || b.Y != -1 {
		t.Fatalf("Expected bullet at y=-1 and active, got y=%v active=%v", b.Y, b.Active)
	}
}

func TestMoveBulletsSkipsInactive(t *testing.T) {
	cfg := DefaultConfig()
	b := &Bullet{Rect: Rect{X: 10, Y: 400, W: 6, H: 16}}

	moveBullets(cfg, []*Bullet{b})
	if b.Y != 400 {
		t.Errorf("Inactive bullet moved to %v", b.Y)
	}
}

func TestEnemyDrift(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		roll  int
		speed int
		wantX float64
	}{
		{"left", 0, 3, 97},
		{"straight", 1, 3, 100},
		{"right", 2, 3, 103},
		{"fast right", 2, 10, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(cfg, 100, 50, 0)
			moveEnemies(cfg, []*Enemy{e}, tt.speed, fixedRand{v: tt.roll})

			if e.X != tt.wantX {
				t.Errorf("Expected x=%v, got %v", tt.wantX, e.X)
			}
			if e.Y != 50+float64(tt.speed) {
				t.Errorf("Expected y=%v, got %v", 50+float64(tt.speed), e.Y)
			}
		})
	}
}

func TestEnemyRemovedAtBottom(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEnemy(cfg, 100, 798, 0)

	moveEnemies(cfg, []*Enemy{e}, 1, noDrift)
	if !e.Active {
		t.Fatalf("Enemy at y=799 should still be active")
	}

	moveEnemies(cfg, []*Enemy{e}, 1, noDrift)
	if e.Active {
		t.Errorf("Enemy at y=%v should have been removed", e.Y)
	}
}

func TestEnemyDriftIsNotClamped(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEnemy(cfg, 0, 0, 0)

	moveEnemies(cfg, []*Enemy{e}, 4, fixedRand{v: 0})
	if e.X != -4 {
		t.Errorf("Expected enemy to drift past the left edge to -4, got %v", e.X)
	}
}
