package engine

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/starlock/config"
	"github.com/lixenwraith/starlock/core"
	"github.com/lixenwraith/starlock/event"
	"github.com/lixenwraith/starlock/narrative"
	"github.com/lixenwraith/starlock/parameter"
	"github.com/lixenwraith/starlock/particle"
)

const frame = 33 * time.Millisecond

// recordingAudio captures sound cues in order
type recordingAudio struct {
	stages []narrative.Stage
	cues   []string
	volume float64
}

func (a *recordingAudio) OnStage(s narrative.Stage)           { a.stages = append(a.stages, s) }
func (a *recordingAudio) OnCue(_ narrative.Stage, cue string) { a.cues = append(a.cues, cue) }
func (a *recordingAudio) SetVolume(v float64)                 { a.volume = v }

type harness struct {
	ctx   *Context
	mock  *core.MockTimeProvider
	audio *recordingAudio
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg, err := config.Decode(config.New())
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	mock := core.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	audio := &recordingAudio{}
	ctx, err := NewContext(Options{
		Config:     cfg,
		TimeSource: mock,
		Audio:      audio,
		Rand:       rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	h := &harness{ctx: ctx, mock: mock, audio: audio}
	h.push(event.EventResize, &event.ResizePayload{Cols: 80, Rows: 24})
	h.step()
	return h
}

func (h *harness) push(t event.EventType, payload any) {
	h.ctx.Push(event.GameEvent{Type: t, Payload: payload})
}

// step advances the mock clock by one frame and runs a tick
func (h *harness) step() {
	h.mock.Advance(frame)
	h.ctx.Step(frame)
}

// wait advances the clock by d before ticking
func (h *harness) wait(d time.Duration) {
	h.mock.Advance(d)
	h.ctx.Step(frame)
}

func (h *harness) stage() narrative.Stage {
	return h.ctx.Sequencer.Stage()
}

func TestNewContextRejectsNilConfig(t *testing.T) {
	if _, err := NewContext(Options{}); err == nil {
		t.Fatal("Expected error for nil config")
	}
}

func TestResizeCentersCameraOnce(t *testing.T) {
	h := newHarness(t)
	c := h.ctx

	px, py := c.Camera.Pan()
	if px != 40 || py != 24 {
		t.Fatalf("Expected first resize to center pan at (40,24), got (%v,%v)", px, py)
	}
	if got := len(c.Field.Stars()); got != c.Config.Starfield.Count {
		t.Errorf("Expected %d stars after resize, got %d", c.Config.Starfield.Count, got)
	}

	c.Camera.SetTargetPan(5, -3)
	c.Camera.SetTargetScale(0.5, 10, 10)
	c.Camera.Snap()
	before := c.Camera.Target()
	firstStar := c.Field.Stars()[0]

	h.push(event.EventResize, &event.ResizePayload{Cols: 120, Rows: 40})
	h.step()

	if diff := cmp.Diff(before, c.Camera.Target()); diff != "" {
		t.Errorf("resize must not reset camera (-before +after):\n%s", diff)
	}
	if cols, rows := c.Size(); cols != 120 || rows != 40 {
		t.Errorf("Expected size 120x40, got %dx%d", cols, rows)
	}
	if c.Field.Stars()[0] == firstStar {
		t.Error("Expected stars regenerated on resize")
	}
	maxR := math.Min(120, 80) * parameter.StarSpread
	for _, s := range c.Field.Stars() {
		if d := math.Hypot(s.X-60, s.Y-40); d >= maxR {
			t.Fatalf("star at distance %.2f outside radius %.2f", d, maxR)
		}
	}
	t.Logf("✓ Resize regenerated %d stars without touching the camera", len(c.Field.Stars()))
}

func TestResizeIgnoresZeroViewport(t *testing.T) {
	h := newHarness(t)
	stars := len(h.ctx.Field.Stars())

	h.push(event.EventResize, &event.ResizePayload{Cols: 0, Rows: 24})
	h.step()

	if cols, _ := h.ctx.Size(); cols != 80 {
		t.Errorf("Expected zero resize ignored, got cols=%d", cols)
	}
	if got := len(h.ctx.Field.Stars()); got != stars {
		t.Errorf("Expected star field untouched, got %d stars", got)
	}
}

func TestFullSequence(t *testing.T) {
	h := newHarness(t)
	c := h.ctx
	timing := c.Sequencer.Script().Timing

	c.Start()
	h.step()
	if h.stage() != narrative.StageIntro || !c.Panels[narrative.StageIntro].IsVisible() {
		t.Fatalf("Expected visible Intro, got %v", h.stage())
	}

	// Gestures before exploration do nothing
	h.push(event.EventWheel, &event.WheelPayload{Delta: 1, X: 40, Y: 24})
	h.step()
	if c.Camera.Target().Scale != 1 {
		t.Errorf("Expected detached input to ignore wheel, target scale %v", c.Camera.Target().Scale)
	}

	h.push(event.EventUnlock, nil)
	h.push(event.EventUnlock, nil)
	h.step()
	if h.stage() != narrative.StageMainMenu {
		t.Fatalf("Expected MainMenu after unlock, got %v", h.stage())
	}
	if c.Panels[narrative.StageIntro].IsVisible() {
		t.Error("Expected Intro hidden after unlock")
	}

	// Confirm key emits proceed and tap together
	h.push(event.EventProceed, nil)
	h.push(event.EventTap, nil)
	h.step()
	if h.stage() != narrative.StageUniverseExploration {
		t.Fatalf("Expected exploration after proceed, got %v", h.stage())
	}
	if !c.Input.Attached() {
		t.Error("Expected input attached in exploration")
	}
	if got := c.Pool.Count(particle.KindDust); got != parameter.DustCount {
		t.Errorf("Expected %d dust particles, got %d", parameter.DustCount, got)
	}

	for i := 0; i < 600 && h.stage() == narrative.StageUniverseExploration; i++ {
		h.push(event.EventWheel, &event.WheelPayload{Delta: 1, X: 40, Y: 24})
		h.step()
	}
	if h.stage() != narrative.StageHeartReveal {
		t.Fatalf("Expected HeartReveal after zooming out, stuck at %v scale %.3f", h.stage(), c.Camera.Scale())
	}
	if c.Camera.Scale() >= c.Config.Narrative.RevealThreshold {
		t.Errorf("Expected scale below threshold at reveal, got %.3f", c.Camera.Scale())
	}
	if got := c.Pool.Count(particle.KindDust); got != 0 {
		t.Errorf("Expected dust cleared on leaving exploration, got %d", got)
	}
	if c.Pool.Count(particle.KindHeart) != parameter.HeartParticleCount || c.Pool.Count(particle.KindRing) != parameter.HeartRingCount {
		t.Errorf("Expected heart %d and ring %d, got %d and %d",
			parameter.HeartParticleCount, parameter.HeartRingCount,
			c.Pool.Count(particle.KindHeart), c.Pool.Count(particle.KindRing))
	}

	// Zooming back in cannot undo the reveal
	for i := 0; i < 50; i++ {
		h.push(event.EventWheel, &event.WheelPayload{Delta: -1, X: 40, Y: 24})
		h.step()
	}
	if h.stage() != narrative.StageHeartReveal {
		t.Fatalf("Expected reveal to stay latched, got %v", h.stage())
	}

	h.wait(timing.RevealAnimation.Std() + timing.RevealHold.Std())
	if h.stage() != narrative.StageMessage {
		t.Fatalf("Expected Message after reveal hold, got %v", h.stage())
	}
	if c.Pool.Count(particle.KindHeart) != 0 {
		t.Error("Expected heart particles cleared in Message")
	}

	h.wait(timing.ExplosionDelay.Std())
	if got := c.Pool.Count(particle.KindExplosion); got != parameter.ExplosionCount {
		t.Errorf("Expected %d explosion particles, got %d", parameter.ExplosionCount, got)
	}

	h.push(event.EventTap, nil)
	h.step()
	if h.stage() != narrative.StageFinal {
		t.Fatalf("Expected Final after tap, got %v", h.stage())
	}
	if c.Pool.Count(particle.KindExplosion) != 0 || c.Pool.Count(particle.KindFinalStar) != parameter.FinalStarCount {
		t.Errorf("Expected only final stars, got %d explosion %d final",
			c.Pool.Count(particle.KindExplosion), c.Pool.Count(particle.KindFinalStar))
	}

	// The message hold timer from the exited stage must not fire again
	h.wait(timing.MessageHold.Std())
	if h.stage() != narrative.StageFinal {
		t.Errorf("Expected Final to be terminal, got %v", h.stage())
	}

	wantStages := narrative.Stages()
	if diff := cmp.Diff(wantStages, h.audio.stages); diff != "" {
		t.Errorf("audio stage cues mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{narrative.CueRevealComplete, narrative.CueExplosion}, h.audio.cues); diff != "" {
		t.Errorf("audio cues mismatch (-want +got):\n%s", diff)
	}
	t.Logf("✓ Sequence completed in %d frames", c.FrameNumber.Load())
}

func TestFocusLossFreezesTimers(t *testing.T) {
	h := newHarness(t)
	c := h.ctx

	c.Start()
	h.push(event.EventUnlock, nil)
	h.push(event.EventProceed, nil)
	h.step()
	for i := 0; i < 600 && h.stage() == narrative.StageUniverseExploration; i++ {
		h.push(event.EventKeyZoom, &event.ZoomPayload{In: false})
		h.step()
	}
	if h.stage() != narrative.StageHeartReveal {
		t.Fatalf("Expected HeartReveal, got %v", h.stage())
	}

	h.push(event.EventFocus, &event.FocusPayload{Focused: false})
	h.step()
	if !c.Clock.IsPaused() {
		t.Fatal("Expected clock paused on focus loss")
	}
	scale := c.Camera.Scale()
	h.wait(time.Minute)
	if h.stage() != narrative.StageHeartReveal {
		t.Errorf("Expected stage frozen while paused, got %v", h.stage())
	}
	if c.Camera.Scale() != scale {
		t.Error("Expected camera smoothing frozen while paused")
	}

	h.push(event.EventFocus, &event.FocusPayload{Focused: true})
	h.step()
	timing := c.Sequencer.Script().Timing
	h.wait(timing.RevealAnimation.Std() + timing.RevealHold.Std())
	if h.stage() != narrative.StageMessage {
		t.Errorf("Expected Message once resumed, got %v", h.stage())
	}
}

func TestConfigReloadAppliesTunables(t *testing.T) {
	h := newHarness(t)
	c := h.ctx

	cfg := *c.Config
	cfg.Camera.Damping = 0.4
	cfg.Camera.ZoomIn = 1.2
	cfg.Render.FPS = 60
	cfg.Audio.Volume = 0.1
	h.push(event.EventConfigReload, cfg.ReloadPayload("test.toml", time.Now()))
	h.step()

	if c.Damping() != 0.4 {
		t.Errorf("Expected damping 0.4, got %v", c.Damping())
	}
	if c.Input.Settings().ZoomIn != 1.2 {
		t.Errorf("Expected zoom in 1.2, got %v", c.Input.Settings().ZoomIn)
	}
	if c.FrameInterval() != time.Second/60 {
		t.Errorf("Expected 60fps interval, got %v", c.FrameInterval())
	}
	if h.audio.volume != 0.1 {
		t.Errorf("Expected volume 0.1 forwarded to audio, got %v", h.audio.volume)
	}
}

// enterExploration drives the sequence from Intro to UniverseExploration
func (h *harness) enterExploration(t *testing.T) {
	t.Helper()
	h.ctx.Start()
	h.step()
	h.push(event.EventUnlock, nil)
	h.step()
	h.push(event.EventProceed, nil)
	h.step()
	if h.stage() != narrative.StageUniverseExploration {
		t.Fatalf("Expected exploration, got %v", h.stage())
	}
}

// zoomOut wheels out until the stage leaves exploration or ticks run out
func (h *harness) zoomOut(ticks int) {
	for i := 0; i < ticks && h.stage() == narrative.StageUniverseExploration; i++ {
		h.push(event.EventWheel, &event.WheelPayload{Delta: 1, X: 40, Y: 24})
		h.step()
	}
}

func TestConfigReloadWidensCameraRange(t *testing.T) {
	h := newHarness(t)
	c := h.ctx
	h.enterExploration(t)

	cfg := *c.Config
	cfg.Camera.MinScale = 0.05
	cfg.Narrative.RevealThreshold = 0.08
	if err := cfg.Validate(); err != nil {
		t.Fatalf("reload config should validate: %v", err)
	}
	h.push(event.EventConfigReload, cfg.ReloadPayload("test.toml", time.Now()))
	h.step()

	if got := c.Camera.Limits().MinScale; got != 0.05 {
		t.Fatalf("Expected camera floor 0.05 after reload, got %v", got)
	}
	if got := c.Sequencer.Threshold(); got != 0.08 {
		t.Fatalf("Expected threshold 0.08 after reload, got %v", got)
	}

	h.zoomOut(2000)
	if h.stage() != narrative.StageHeartReveal {
		t.Fatalf("reveal never fired: threshold=%v min=%v scale=%.4f stage=%v",
			c.Sequencer.Threshold(), c.Camera.Limits().MinScale, c.Camera.Scale(), h.stage())
	}
}

func TestConfigReloadKeepsReachableThreshold(t *testing.T) {
	h := newHarness(t)
	c := h.ctx
	h.enterExploration(t)
	before := c.Sequencer.Threshold()

	// Inverted range is rejected by the camera, so 0.08 sits below the live floor
	p := c.Config.ReloadPayload("test.toml", time.Now())
	p.MinScale, p.MaxScale = 0.05, 0.01
	p.RevealScale = 0.08
	h.push(event.EventConfigReload, p)
	h.step()

	if got := c.Camera.Limits().MinScale; got != parameter.CameraMinScale {
		t.Errorf("Expected camera floor unchanged, got %v", got)
	}
	if got := c.Sequencer.Threshold(); got != before {
		t.Errorf("Expected threshold kept at %v, got %v", before, got)
	}

	h.zoomOut(2000)
	if h.stage() != narrative.StageHeartReveal {
		t.Fatalf("Expected reveal with kept threshold, stuck at %v scale %.4f", h.stage(), c.Camera.Scale())
	}
}

func TestQuitEvent(t *testing.T) {
	h := newHarness(t)
	h.push(event.EventQuit, nil)
	h.step()
	if !h.ctx.QuitRequested() {
		t.Error("Expected quit requested")
	}
}

func TestStatusMetrics(t *testing.T) {
	h := newHarness(t)
	h.ctx.Start()
	h.step()

	reg := h.ctx.Status
	if got := reg.Labels.Get("stage").Get(); got != "Intro" {
		t.Errorf("Expected stage label Intro, got %q", got)
	}
	if got := reg.Ints.Get("stars").Load(); got != int64(h.ctx.Config.Starfield.Count) {
		t.Errorf("Expected stars metric %d, got %d", h.ctx.Config.Starfield.Count, got)
	}
	if got := reg.Floats.Get("scale").Get(); got != 1 {
		t.Errorf("Expected scale metric 1, got %v", got)
	}
}

func TestRenderToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(60, 20)

	cfg, err := config.Decode(config.New())
	if err != nil {
		t.Fatal(err)
	}
	mock := core.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c, err := NewContext(Options{Config: cfg, Screen: screen, TimeSource: mock})
	if err != nil {
		t.Fatal(err)
	}
	c.Start()
	c.Step(frame)

	if cols, rows := c.Size(); cols != 60 || rows != 20 {
		t.Fatalf("Expected size from screen 60x20, got %dx%d", cols, rows)
	}
	halfBlocks := 0
	for x := 0; x < 60; x++ {
		if r, _, _, _ := screen.GetContent(x, 0); r == parameter.HalfBlock {
			halfBlocks++
		}
	}
	if halfBlocks == 0 {
		t.Error("Expected background half-blocks on the first row")
	}
}
