package synth

// FadeEnvelope returns a gain curve of length n with a linear fade-in and
// fade-out covering fraction of the buffer at each end and unity gain in
// between. The first sample is always 0, which removes the click a sample
// would otherwise produce when triggered.
func FadeEnvelope(n int, fraction float64) []float64 {
	env := make([]float64, n)
	for i := range env {
		env[i] = 1.0
	}

	fadeLen := int(float64(n) * fraction)
	if fadeLen < 1 {
		fadeLen = 1
	}
	if fadeLen > n {
		fadeLen = n
	}

	for i := 0; i < fadeLen; i++ {
		env[i] *= fadeRamp(i, fadeLen)
		env[n-fadeLen+i] *= 1 - fadeRamp(i, fadeLen)
	}
	return env
}

// fadeRamp returns the i-th of fadeLen evenly spaced values from 0 to 1
// inclusive.
func fadeRamp(i, fadeLen int) float64 {
	if fadeLen <= 1 {
		return 0
	}
	return float64(i) / float64(fadeLen-1)
}

// ApplyEnvelope multiplies buf by env in place. Both slices must have the
// same length.
func ApplyEnvelope(buf, env []float64) {
	for i := range buf {
		buf[i] *= env[i]
	}
}

// ApplyGain scales buf by gain in place and clamps every sample to
// [-1, 1] to guard against overshoot.
func ApplyGain(buf []float64, gain float64) {
	for i := range buf {
		s := buf[i] * gain
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		buf[i] = s
	}
}
