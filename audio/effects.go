package audio

import (
	"math"
	"sync"
)

// bufferStreamer plays a mono floatBuffer once on both channels
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func newBufferStreamer(buf floatBuffer) *bufferStreamer {
	return &bufferStreamer{buf: buf}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error { return nil }

// fader ramps a linear gain toward a target over a number of samples
// Safe to retarget from the frame loop while the speaker goroutine streams
type fader struct {
	mu     sync.Mutex
	gain   float64
	target float64
	step   float64
}

// set jumps to gain immediately
func (f *fader) set(gain float64) {
	f.mu.Lock()
	f.gain, f.target, f.step = gain, gain, 0
	f.mu.Unlock()
}

// rampTo moves toward target linearly over samples
func (f *fader) rampTo(target float64, samples int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.target = target
	if samples <= 0 {
		f.gain, f.step = target, 0
		return
	}
	f.step = (target - f.gain) / float64(samples)
}

func (f *fader) current() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gain
}

// apply scales samples in place, advancing the ramp per sample
func (f *fader) apply(samples [][2]float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range samples {
		if f.step != 0 {
			f.gain += f.step
			if (f.step > 0 && f.gain >= f.target) || (f.step < 0 && f.gain <= f.target) {
				f.gain, f.step = f.target, 0
			}
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
}

// volumeExponent converts a linear [0,1] volume to an effects.Volume base-2 exponent
// Returns silent=true at zero
func volumeExponent(v float64) (exp float64, silent bool) {
	if v <= 0 {
		return 0, true
	}
	if v > 1 {
		v = 1
	}
	return math.Log2(v), false
}
