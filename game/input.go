package game

// Controls is the input sampled for a single frame
type Controls struct {
	// Fire is the number of fire key-down events since the last frame
	Fire int

	// Left and Right report whether the movement keys are currently held
	Left, Right bool

	// Quit is set when the window is being closed
	Quit bool
}

// InputSource provides the controls for each frame
type InputSource interface {
	Poll() Controls
}

// InputFunc adapts a function to InputSource
type InputFunc func() Controls

// Poll calls f
func (f InputFunc) Poll() Controls { return f() }

// steerShip applies held movement keys to the ship, clamping at the screen edges
func steerShip(cfg Config, ship *Ship, in Controls) {
	width := float64(cfg.ScreenWidth)
	speed := cfg.PlayerSpeed

	if in.Right {
		if ship.X+ship.W+speed < width {
			ship.X += speed
		} else {
			ship.X = width - ship.W
		}
	}

	if in.Left {
		if ship.X-speed > 0 {
			ship.X -= speed
		} else {
			ship.X = 0
		}
	}
}
