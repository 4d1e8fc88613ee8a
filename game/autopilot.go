package game

import "math"

// Autopilot is an InputSource that plays the game on its own.
// It steers under the lowest enemy and fires when lined up.
type Autopilot struct {
	session *Session

	// FireInterval is the minimum number of frames between shots
	FireInterval int

	// Tolerance is how far (in pixels) the ship center may be from the target center to fire
	Tolerance float64

	sinceShot int
}

// NewAutopilot creates an autopilot that fires at most every fireInterval frames
func NewAutopilot(fireInterval int) *Autopilot {
	return &Autopilot{
		FireInterval: fireInterval,
		Tolerance:    8,
		sinceShot:    fireInterval,
	}
}

// Attach points the autopilot at a session. Call it whenever a new session starts.
func (a *Autopilot) Attach(s *Session) {
	a.session = s
	a.sinceShot = a.FireInterval
}

// Poll returns the controls for the current frame
func (a *Autopilot) Poll() Controls {
	var in Controls
	a.sinceShot++

	if a.session == nil || a.session.Phase() != PhasePlaying {
		return in
	}

	target := a.lowestEnemy()
	if target == nil {
		return in
	}

	dx := target.CenterX() - a.session.Ship.CenterX()
	switch {
	case dx > a.Tolerance:
		in.Right = true
	case dx < -a.Tolerance:
		in.Left = true
	}

	if math.Abs(dx) <= a.Tolerance && a.sinceShot >= a.FireInterval {
		in.Fire = 1
		a.sinceShot = 0
	}
	return in
}

// lowestEnemy returns the live enemy closest to the bottom of the screen that is still above the ship
func (a *Autopilot) lowestEnemy() *Enemy {
	var best *Enemy
	shipTop := a.session.Ship.Y
	for _, e := range a.session.World().Enemies {
		if !e.Active || e.Y > shipTop {
			continue
		}
		if best == nil || e.Y > best.Y {
			best = e
		}
	}
	return best
}
