package assets

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave of fixed length
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		// Fixed seed so generated sounds are identical on every run
		noise: rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear fade in over attack and fade out over release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so 0 is mapped to silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 2*time.Millisecond, d/2, rate)
}

// FireEffect is a short falling blip
func FireEffect(sampleRate int) beep.Streamer {
	rate := beep.SampleRate(sampleRate)
	seq := beep.Seq(
		tone(1320, 25*time.Millisecond, WaveSquare, rate),
		tone(990, 35*time.Millisecond, WaveSquare, rate),
		tone(660, 40*time.Millisecond, WaveSquare, rate),
	)
	return newVolume(seq, 0.25)
}

// EnemyDeathEffect is a burst of noise over a low square thump
func EnemyDeathEffect(sampleRate int) beep.Streamer {
	rate := beep.SampleRate(sampleRate)
	d := 220 * time.Millisecond

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, d*3/4, rate)
	thump := tone(110, d, WaveSquare, rate)

	mixed := beep.Take(rate.N(d), beep.Mix(
		newVolume(noise, 0.6),
		newVolume(thump, 0.3),
	))
	return newVolume(mixed, 0.5)
}

// PlayerDeathEffect is a descending saw run with a long noise tail
func PlayerDeathEffect(sampleRate int) beep.Streamer {
	rate := beep.SampleRate(sampleRate)
	step := 150 * time.Millisecond
	total := 4 * step

	run := beep.Seq(
		tone(220, step, WaveSaw, rate),
		tone(165, step, WaveSaw, rate),
		tone(110, step, WaveSaw, rate),
		tone(82, step, WaveSaw, rate),
	)
	tail := NewEnvelope(NewOscillator(0, total, WaveNoise, rate), total, 5*time.Millisecond, total/2, rate)

	mixed := beep.Take(rate.N(total), beep.Mix(
		newVolume(run, 0.5),
		newVolume(tail, 0.35),
	))
	return newVolume(mixed, 0.6)
}

// Render drains a finite streamer into 16-bit little-endian stereo PCM
func Render(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 64*1024)

	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			out = appendSample(out, sample[0])
			out = appendSample(out, sample[1])
		}
		if !ok {
			break
		}
	}
	return out, s.Err()
}

func appendSample(out []byte, v float64) []byte {
	v = math.Max(-1, math.Min(1, v))
	return binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
}
