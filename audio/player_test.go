package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/starlock/narrative"
)

// TestPlayerGracefulDegradation verifies operations don't panic when not initialized
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(nil, 0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()

	for _, s := range narrative.Stages() {
		p.OnStage(s)
	}
	p.OnCue(narrative.StageMessage, narrative.CueExplosion)
	p.PlayShimmer()
	p.FadeOut()
	p.SetVolume(0.2)
	p.Cleanup()

	if p.Initialized() {
		t.Error("Expected player to stay uninitialized")
	}
}

// TestPlayerInitialization may fail without an audio device; that is not a test failure
func TestPlayerInitialization(t *testing.T) {
	p := NewPlayer(nil, 0.5)
	if err := p.Initialize(); err != nil {
		t.Logf("Audio initialization failed (expected in test environment): %v", err)
		return
	}
	if err := p.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	p.OnStage(narrative.StageIntro)
	p.Cleanup()
}

func TestPlayerVolumeClamp(t *testing.T) {
	tests := []struct {
		in, want   float64
		wantSilent bool
	}{
		{-1, 0, true},
		{0, 0, true},
		{0.5, 0.5, false},
		{2, 1, false},
	}
	p := NewPlayer(nil, 1)
	for _, tt := range tests {
		p.SetVolume(tt.in)
		if got := p.Volume(); got != tt.want {
			t.Errorf("SetVolume(%v): expected %v, got %v", tt.in, tt.want, got)
		}
		if p.master.Silent != tt.wantSilent {
			t.Errorf("SetVolume(%v): expected silent=%v", tt.in, tt.wantSilent)
		}
		if !tt.wantSilent && math.Abs(math.Pow(2, p.master.Volume)-tt.want) > 1e-9 {
			t.Errorf("SetVolume(%v): exponent %v does not map back", tt.in, p.master.Volume)
		}
	}
}

func TestFaderRamp(t *testing.T) {
	f := &fader{}
	f.set(0)
	f.rampTo(1, 4)

	samples := make([][2]float64, 6)
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	f.apply(samples)

	want := []float64{0.25, 0.5, 0.75, 1, 1, 1}
	for i, w := range want {
		if math.Abs(samples[i][0]-w) > 1e-9 {
			t.Errorf("sample %d: expected gain %v, got %v", i, w, samples[i][0])
		}
	}
	if f.current() != 1 {
		t.Errorf("Expected ramp to settle at 1, got %v", f.current())
	}
}

func TestBufferStreamerDrains(t *testing.T) {
	s := newBufferStreamer(floatBuffer{0.1, 0.2, 0.3})
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	if n != 2 || !ok || out[1][1] != 0.2 {
		t.Fatalf("First read: n=%d ok=%v out=%v", n, ok, out)
	}
	n, ok = s.Stream(out)
	if n != 1 || !ok {
		t.Fatalf("Second read: expected partial 1, got n=%d ok=%v", n, ok)
	}
	if _, ok = s.Stream(out); ok {
		t.Error("Expected drained streamer to report !ok")
	}
}

// Every stage except the reveal, which plays the shimmer, has an entry chime
func TestStageChimesCoverStages(t *testing.T) {
	for _, s := range narrative.Stages() {
		freq, ok := stageChimes[s]
		if s == narrative.StageHeartReveal {
			if ok {
				t.Errorf("%v should play the shimmer, not a chime", s)
			}
			continue
		}
		if !ok || freq <= 0 {
			t.Errorf("%v has no entry chime", s)
		}
	}
}
