package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// ErrProfileCooldown is returned when a capture was requested too soon after the previous one
	ErrProfileCooldown = errors.New("profile capture on cooldown")

	// ErrProfileBusy is returned when a capture is already running
	ErrProfileBusy = errors.New("already profiling")
)

// Profiler captures CPU profiles when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string

	now func() time.Time
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}

	return &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		now:             time.Now,
	}, nil
}

// CaptureProfile starts a CPU profile capture in the background.
// The game loop keeps running while the profile is recorded.
func (p *Profiler) CaptureProfile(reason string) error {
	path, err := p.begin(reason)
	if err != nil {
		return err
	}

	go func() {
		defer p.finish()
		if err := WriteCPUProfile(path, p.captureDuration); err != nil {
			log.Printf("profiler: %v", err)
			return
		}
		logMemStats(path)
	}()
	return nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) begin(reason string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.isProfiling {
		return "", ErrProfileBusy
	}
	if !p.lastCaptureTime.IsZero() && now.Sub(p.lastCaptureTime) < p.captureCooldown {
		return "", ErrProfileCooldown
	}

	p.isProfiling = true
	p.lastCaptureTime = now

	timestamp := now.Format("20060102-150405")
	name := fmt.Sprintf("tps-drop-%s-%s.cpu.prof", timestamp, reason)
	return filepath.Join(p.profilesDir, name), nil
}

func (p *Profiler) finish() {
	p.mu.Lock()
	p.isProfiling = false
	p.mu.Unlock()
}

// WriteCPUProfile records a CPU profile into path for the given duration
func WriteCPUProfile(path string, duration time.Duration) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start CPU profile: %w", err)
	}
	time.Sleep(duration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to %s", path)
	return nil
}

func logMemStats(path string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profile %s: alloc=%d KB numGC=%d heapObjects=%d",
		filepath.Base(path), m.Alloc/1024, m.NumGC, m.HeapObjects)
}

// DropDetector watches the measured tick rate and reports sustained drops
type DropDetector struct {
	// Threshold is the tick rate below which a frame counts as slow
	Threshold float64

	// Window is how many consecutive slow samples make a drop
	Window int

	// Warmup is the number of samples ignored at startup
	Warmup int

	samples int
	slow    int
}

// NewDropDetector creates a detector for a target frame rate
func NewDropDetector(frameRate int) *DropDetector {
	return &DropDetector{
		Threshold: float64(frameRate) - 5,
		Window:    frameRate,
		Warmup:    3 * frameRate,
	}
}

// Observe records one tick rate sample and reports whether a drop was detected.
// The slow-sample streak resets after a detection.
func (d *DropDetector) Observe(tps float64) bool {
	d.samples++
	if d.samples <= d.Warmup {
		return false
	}

	if tps >= d.Threshold {
		d.slow = 0
		return false
	}

	d.slow++
	if d.slow >= d.Window {
		d.slow = 0
		return true
	}
	return false
}
