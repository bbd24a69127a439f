// Package wavfile writes sample buffers to 16-bit PCM WAV files.
package wavfile

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// Write serializes a mono float buffer (values in [-1, 1]) to a 16-bit PCM
// WAV file at path. With channels == 2 the buffer is duplicated onto both
// channels, matching how the trigger device expects stereo content that
// was authored mono.
func Write(path string, samples []float64, sampleRate, channels int) error {
	if channels != 1 && channels != 2 {
		return fmt.Errorf("unsupported channel count %d", channels)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(samples)*channels),
	}
	for i, s := range samples {
		v := pcm16(s)
		for ch := 0; ch < channels; ch++ {
			buf.Data[i*channels+ch] = v
		}
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return f.Close()
}

// pcm16 clamps a float sample to [-1, 1] and scales it to a signed 16-bit
// value.
func pcm16(s float64) int {
	if s > 1.0 {
		s = 1.0
	} else if s < -1.0 {
		s = -1.0
	}
	return int(s * 32767)
}
