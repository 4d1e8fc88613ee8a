package game

// fixedRand always returns v, clamped into [0, n)
type fixedRand struct {
	v int
}

func (r fixedRand) Intn(n int) int {
	return min(r.v, n-1)
}

// seqRand replays values in order, clamped into [0, n), then returns 0
type seqRand struct {
	values []int
	calls  []int // n of every call
}

func (r *seqRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return min(v, n-1)
}

// noDrift keeps enemies falling straight down
var noDrift = fixedRand{v: 1}

// recordedSounds captures every sound played
type recordedSounds struct {
	played []Sound
}

func (r *recordedSounds) Play(s Sound) {
	r.played = append(r.played, s)
}

func (r *recordedSounds) count(s Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}
