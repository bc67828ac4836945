// wav_render.go - Offline rendering of the engine output to a WAV file

package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavChunkFrames = 4096

// RenderWAV pulls the given number of seconds from a sample source and writes
// it to path as a 16-bit stereo WAV file at the engine sample rate.
func RenderWAV(src SampleSource, path string, seconds float64) error {
	if seconds <= 0 {
		return fmt.Errorf("render duration must be positive, got %v", seconds)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := wav.NewEncoder(f, SAMPLE_RATE, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: SAMPLE_RATE},
		SourceBitDepth: 16,
	}

	total := int(seconds * SAMPLE_RATE)
	data := make([]int, 0, wavChunkFrames*2)
	for rendered := 0; rendered < total; {
		frames := min(wavChunkFrames, total-rendered)
		data = data[:0]
		for i := 0; i < frames; i++ {
			l, r := src.NextSample()
			data = append(data, int(l), int(r))
		}
		buf.Data = data
		if err := enc.Write(buf); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		rendered += frames
	}

	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return f.Close()
}
