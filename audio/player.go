package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starlock/narrative"
	"github.com/lixenwraith/starlock/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// stageChimes maps each stage to the fundamental of its entry chime
var stageChimes = map[narrative.Stage]float64{
	narrative.StageIntro:               440.00, // A4
	narrative.StageMainMenu:            523.25, // C5
	narrative.StageUniverseExploration: 659.25, // E5
	narrative.StageMessage:             783.99, // G5
	narrative.StageFinal:               880.00, // A5
}

// shimmerNotes is the reveal arpeggio (C major, rising)
var shimmerNotes = []float64{523.25, 659.25, 783.99, 1046.50, 1318.51}

// explosionNote is the low bell under the message explosion
const explosionNote = 220.0

// Player renders narrative audio: stage chimes, the reveal shimmer and the master fade
// Every method is safe to call before Initialize or after a failed Initialize
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	fade        *fader
	volume      float64
	initialized bool
	logger      *slog.Logger

	// cache of generated buffers keyed by fundamental
	chimes map[float64]floatBuffer
}

// NewPlayer creates an uninitialized player with linear master volume in [0,1]
func NewPlayer(logger *slog.Logger, volume float64) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		fade:   &fader{},
		logger: logger,
		chimes: make(map[float64]floatBuffer),
	}
	p.master = &effects.Volume{
		Streamer: beep.StreamerFunc(p.streamMaster),
		Base:     2,
	}
	p.applyVolume(volume)
	return p
}

// streamMaster pulls from the mixer and applies the fade envelope
// The mixer never drains, so the speaker keeps the stream open between chimes
func (p *Player) streamMaster(samples [][2]float64) (int, bool) {
	n, _ := p.mixer.Stream(samples)
	p.fade.apply(samples[:n])
	return n, true
}

// Initialize opens the speaker and starts the fade-in
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	p.fade.set(0)
	p.fade.rampTo(1, sampleRate.N(parameter.AudioFadeIn))
	speaker.Play(p.master)
	p.initialized = true
	p.logger.Info("audio initialized", "sample_rate", int(sampleRate), "volume", p.volume)
	return nil
}

// Initialized reports whether the speaker is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Volume returns the linear master volume
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume changes the master volume, applied on hot reload
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Lock()
		p.applyVolume(v)
		speaker.Unlock()
		return
	}
	p.applyVolume(v)
}

func (p *Player) applyVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume = v
	p.master.Volume, p.master.Silent = volumeExponent(v)
}

// OnStage plays the entry sound for a stage; Final also starts the fade-out
func (p *Player) OnStage(stage narrative.Stage) {
	switch stage {
	case narrative.StageHeartReveal:
		p.PlayShimmer()
		return
	case narrative.StageFinal:
		p.playChime(stageChimes[stage])
		p.FadeOut()
		return
	}
	if freq, ok := stageChimes[stage]; ok {
		p.playChime(freq)
	}
}

// OnCue plays the sound bound to a timed stage cue
func (p *Player) OnCue(_ narrative.Stage, cue string) {
	if cue == narrative.CueExplosion {
		p.playChime(explosionNote)
	}
}

// PlayShimmer plays the reveal arpeggio
func (p *Player) PlayShimmer() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.addLocked(newBufferStreamer(generateShimmer(shimmerNotes)))
}

func (p *Player) playChime(freq float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || freq <= 0 {
		return
	}
	buf, ok := p.chimes[freq]
	if !ok {
		buf = generateChime(freq)
		p.chimes[freq] = buf
	}
	p.addLocked(newBufferStreamer(buf))
}

func (p *Player) addLocked(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// FadeOut ramps the master gain to silence over AudioFadeOut
func (p *Player) FadeOut() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.fade.rampTo(0, sampleRate.N(parameter.AudioFadeOut))
}

// Cleanup stops all sounds; the speaker itself stays open for the process lifetime
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}
