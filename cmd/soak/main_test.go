package main

import (
	"testing"

	"squaresships/game"
)

func TestRunIsDeterministic(t *testing.T) {
	config := game.DefaultConfig()
	config.Seed = 7

	first := Run(config, 3000, 8)
	second := Run(config, 3000, 8)

	if first != second {
		t.Errorf("Expected identical runs for one seed, got %+v and %+v", first, second)
	}
	if first.Sessions < 1 {
		t.Errorf("Expected at least one session, got %d", first.Sessions)
	}
	if first.BestScore > first.TotalScore {
		t.Errorf("Best score %d exceeds total %d", first.BestScore, first.TotalScore)
	}
}

func TestRunScores(t *testing.T) {
	config := game.DefaultConfig()
	config.Seed = 1

	stats := Run(config, 2000, 4)
	if stats.TotalScore == 0 {
		t.Errorf("Expected the autopilot to shoot something in 2000 frames, got %+v", stats)
	}
	if stats.PeakEntities == 0 {
		t.Error("Expected entities to appear")
	}
}
