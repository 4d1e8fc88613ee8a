// Command soak runs game sessions headlessly with the autopilot at the helm.
// It exercises the same restart loop as the windowed game without a display
// or audio device, which makes it useful for profiling the simulation.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"squaresships/game"
)

func main() {
	frames := flag.Int("frames", 60*60*10, "number of frames to simulate")
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	fireInterval := flag.Int("fire-interval", 8, "minimum frames between autopilot shots")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	config := game.ConfigFromEnv()
	if *seed != 0 {
		config.Seed = *seed
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("Failed to create profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("Failed to start profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("Soaking %d frames with seed %d", *frames, config.Seed)

	stats := Run(config, *frames, *fireInterval)

	log.Printf("Sessions: %d, best score: %d, total kills: %d, peak entities: %d",
		stats.Sessions, stats.BestScore, stats.TotalScore, stats.PeakEntities)
}

// Stats summarizes a soak run
type Stats struct {
	Sessions     int
	BestScore    int
	TotalScore   int
	PeakEntities int
}

// Run steps sessions back to back for the given number of frames
func Run(config game.Config, frames, fireInterval int) Stats {
	rng := rand.New(rand.NewSource(config.Seed))
	pilot := game.NewAutopilot(fireInterval)

	var stats Stats
	start := func() *game.Session {
		stats.Sessions++
		s := game.NewSession(config, rng, game.Silent{})
		pilot.Attach(s)
		return s
	}
	finish := func(s *game.Session) {
		stats.TotalScore += s.Score
		stats.BestScore = max(stats.BestScore, s.Score)
		log.Printf("Session %d: score %d in %d frames", stats.Sessions, s.Score, s.Frames())
	}

	session := start()
	for i := 0; i < frames; i++ {
		session.Step(pilot.Poll())
		stats.PeakEntities = max(stats.PeakEntities, session.World().Count())

		if session.Done() {
			finish(session)
			session = start()
		}
	}
	if session.Frames() > 0 && !session.Done() {
		// The session in progress counts toward the totals
		stats.TotalScore += session.Score
		stats.BestScore = max(stats.BestScore, session.Score)
	}
	return stats
}
