// Package synth renders the basic periodic waveforms used to build the
// sample library: sine, triangle, sawtooth, and square. All generators are
// pure functions of phase, matching the classic naive (non-band-limited)
// shapes, plus the fade/gain stage applied before a buffer is written out.
package synth

import (
	"fmt"
	"math"
)

// Waveform identifies one of the four supported waveform kinds. The set is
// closed: every Waveform value constructed through ParseWaveform is valid,
// so sample generation has no unknown-kind failure path.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Sawtooth
	Square
)

// String returns the lowercase waveform name used in config files.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("waveform(%d)", int(w))
	}
}

// Label returns the capitalized waveform name used in filenames.
func (w Waveform) Label() string {
	switch w {
	case Sine:
		return "Sine"
	case Triangle:
		return "Triangle"
	case Sawtooth:
		return "Sawtooth"
	case Square:
		return "Square"
	default:
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
}

// ParseWaveform converts a config name into a Waveform. "saw" is accepted
// as a legacy spelling of "sawtooth".
func ParseWaveform(name string) (Waveform, error) {
	switch name {
	case "sine":
		return Sine, nil
	case "triangle":
		return Triangle, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	case "square":
		return Square, nil
	default:
		return 0, fmt.Errorf("unknown waveform %q (want sine, triangle, sawtooth, or square)", name)
	}
}

// Sample evaluates the waveform at the given phase in radians. Output is
// always in [-1, 1].
func (w Waveform) Sample(phase float64) float64 {
	// Position within the current cycle, 0 <= x < 1.
	x := phase / (2 * math.Pi)
	x -= math.Floor(x)

	switch w {
	case Sine:
		return math.Sin(phase)
	case Triangle:
		// Rise -1..1 over the first half cycle, fall back over the second.
		if x < 0.5 {
			return 4*x - 1
		}
		return 3 - 4*x
	case Sawtooth:
		// Rising ramp -1..1 across the full cycle.
		return 2*x - 1
	case Square:
		if x < 0.5 {
			return 1
		}
		return -1
	default:
		return 0
	}
}

// Render produces floor(sampleRate*duration) samples of the waveform at
// the given frequency. The buffer is raw: no envelope or gain applied.
func Render(w Waveform, freq float64, sampleRate int, duration float64) []float64 {
	n := int(float64(sampleRate) * duration)
	buf := make([]float64, n)
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		buf[i] = w.Sample(2 * math.Pi * freq * t)
	}
	return buf
}
