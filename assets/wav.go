package assets

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is passed to beep.Resample; 4 is beep's usual default
const resampleQuality = 4

// loadWAV decodes a WAV file and converts it to PCM at sampleRate
func loadWAV(path string, sampleRate int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound %s: %w", path, err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	target := beep.SampleRate(sampleRate)
	if format.SampleRate != target {
		s = beep.Resample(resampleQuality, format.SampleRate, target, stream)
	}

	pcm, err := Render(s)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", path, err)
	}
	return pcm, nil
}
