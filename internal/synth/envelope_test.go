package synth

import (
	"math"
	"testing"
)

func TestFadeEnvelopeShape(t *testing.T) {
	env := FadeEnvelope(44100, 0.01)
	if len(env) != 44100 {
		t.Fatalf("expected 44100 values, got %d", len(env))
	}
	if env[0] != 0 {
		t.Errorf("first value = %v, want 0", env[0])
	}
	if env[len(env)-1] != 0 {
		t.Errorf("last value = %v, want 0", env[len(env)-1])
	}
	if env[len(env)/2] != 1 {
		t.Errorf("midpoint value = %v, want 1", env[len(env)/2])
	}

	// Fade length is 441 samples, so the sample just past the fade-in
	// must be at full amplitude.
	if env[441] != 1 {
		t.Errorf("value after fade-in = %v, want 1", env[441])
	}
}

func TestFadeEnvelopeMonotonicRamps(t *testing.T) {
	env := FadeEnvelope(1000, 0.05)
	fadeLen := 50
	for i := 1; i < fadeLen; i++ {
		if env[i] < env[i-1] {
			t.Fatalf("fade-in not monotonic at %d", i)
		}
	}
	for i := len(env) - fadeLen + 1; i < len(env); i++ {
		if env[i] > env[i-1] {
			t.Fatalf("fade-out not monotonic at %d", i)
		}
	}
}

func TestFadeEnvelopeMinimumLength(t *testing.T) {
	// A tiny buffer still gets a one-sample fade rather than none.
	env := FadeEnvelope(10, 0.01)
	if env[0] != 0 {
		t.Errorf("first value = %v, want 0", env[0])
	}
	for i := 1; i < 9; i++ {
		if env[i] != 1 {
			t.Errorf("interior value %d = %v, want 1", i, env[i])
		}
	}
}

func TestApplyEnvelope(t *testing.T) {
	buf := []float64{1, 1, 1, 1}
	env := []float64{0, 0.5, 1, 0}
	ApplyEnvelope(buf, env)
	want := []float64{0, 0.5, 1, 0}
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestApplyGainScalesAndClamps(t *testing.T) {
	buf := []float64{1, -1, 0.5, 5, -5}
	ApplyGain(buf, 0.3)
	want := []float64{0.3, -0.3, 0.15, 1.0, -1.0}
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestRenderedBufferPeakContract(t *testing.T) {
	const gain = 0.3
	for _, w := range []Waveform{Sine, Triangle, Sawtooth, Square} {
		buf := Render(w, 440, 44100, 1.0)
		env := FadeEnvelope(len(buf), 0.01)
		ApplyEnvelope(buf, env)
		ApplyGain(buf, gain)

		peak := 0.0
		for _, s := range buf {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		if peak > gain+1e-9 {
			t.Errorf("%v: peak %v exceeds gain %v", w, peak, gain)
		}
		if buf[0] != 0 || buf[len(buf)-1] != 0 {
			t.Errorf("%v: buffer edges not faded to 0: %v, %v", w, buf[0], buf[len(buf)-1])
		}
	}
}
