package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/starlock/parameter"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// durationToSamples converts duration to sample count
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// sine generates a sine wave of the given frequency
func sine(freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(parameter.AudioSampleRate)
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyDecay multiplies by a short linear attack followed by exp(-rate*t)
func applyDecay(buf floatBuffer, attack time.Duration, rate float64) {
	attackSamples := durationToSamples(attack)
	sr := float64(parameter.AudioSampleRate)
	for i := range buf {
		vol := math.Exp(-rate * float64(i) / sr)
		if i < attackSamples {
			vol *= float64(i) / float64(attackSamples)
		}
		buf[i] *= vol
	}
	// Release the last few ms to zero to avoid a click
	tail := min(durationToSamples(10*time.Millisecond), len(buf))
	for i := 0; i < tail; i++ {
		buf[len(buf)-1-i] *= float64(i) / float64(tail)
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// normalize scales the buffer so its peak is at most peak
func normalize(buf floatBuffer, peak float64) {
	m := 0.0
	for _, v := range buf {
		m = math.Max(m, math.Abs(v))
	}
	if m <= peak || m == 0 {
		return
	}
	k := peak / m
	for i := range buf {
		buf[i] *= k
	}
}

// generateChime is a bell-like tone: fundamental plus two decaying partials
func generateChime(freq float64) floatBuffer {
	samples := durationToSamples(parameter.ChimeDuration)
	out := sine(freq, samples)
	applyDecay(out, 5*time.Millisecond, parameter.ChimeDecay)

	partials := []struct{ mult, gain, decay float64 }{
		{2.0, 0.35, parameter.ChimeDecay * 1.6},
		{3.01, 0.15, parameter.ChimeDecay * 2.4},
	}
	for _, p := range partials {
		b := sine(freq*p.mult, samples)
		applyDecay(b, 5*time.Millisecond, p.decay)
		out = mixFloatBuffers(out, b, p.gain)
	}
	normalize(out, 0.8)
	return out
}

// generateShimmer layers an ascending arpeggio of chimes spaced by ShimmerNoteGap
func generateShimmer(freqs []float64) floatBuffer {
	gap := durationToSamples(parameter.ShimmerNoteGap)
	var out floatBuffer
	for i, f := range freqs {
		note := generateChime(f)
		offset := i * gap
		shifted := make(floatBuffer, offset+len(note))
		copy(shifted[offset:], note)
		out = mixFloatBuffers(out, shifted, 0.6)
	}
	normalize(out, 0.8)
	return out
}
