package game

import "testing"

func TestAutopilotWithoutSession(t *testing.T) {
	a := NewAutopilot(8)
	if in := a.Poll(); in != (Controls{}) {
		t.Errorf("Expected no controls without a session, got %+v", in)
	}
}

func TestAutopilotSteersTowardLowestEnemy(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg, noDrift, nil)
	a := NewAutopilot(8)
	a.Attach(s)

	s.World().AddEnemy(NewEnemy(cfg, 500, 50, 0))
	s.World().AddEnemy(NewEnemy(cfg, 50, 300, 0))

	in := a.Poll()
	if !in.Left || in.Right || in.Fire != 0 {
		t.Errorf("Expected to steer left toward the lower enemy, got %+v", in)
	}
}

func TestAutopilotIgnoresEnemiesBelowShip(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg, noDrift, nil)
	a := NewAutopilot(8)
	a.Attach(s)

	s.World().AddEnemy(NewEnemy(cfg, 500, 700, 0))

	if in := a.Poll(); in != (Controls{}) {
		t.Errorf("Expected no controls, got %+v", in)
	}
}

func TestAutopilotFireInterval(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg, noDrift, nil)
	a := NewAutopilot(3)
	a.Attach(s)

	// Centered over the ship
	s.World().AddEnemy(NewEnemy(cfg, s.Ship.CenterX()-cfg.EnemyWidth/2, 100, 0))

	var shots []int
	for frame := 0; frame < 7; frame++ {
		in := a.Poll()
		if in.Left || in.Right {
			t.Fatalf("frame %d: should hold position, got %+v", frame, in)
		}
		if in.Fire > 0 {
			shots = append(shots, frame)
		}
	}

	want := []int{0, 3, 6}
	if len(shots) != len(want) {
		t.Fatalf("Expected shots on frames %v, got %v", want, shots)
	}
	for i := range want {
		if shots[i] != want[i] {
			t.Errorf("Expected shots on frames %v, got %v", want, shots)
			break
		}
	}
}

func TestAutopilotIdleAfterCrash(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg, noDrift, nil)
	a := NewAutopilot(1)
	a.Attach(s)
	killAndCrash(s)
	s.Step(Controls{})

	if in := a.Poll(); in != (Controls{}) {
		t.Errorf("Expected no controls after the crash, got %+v", in)
	}
}
