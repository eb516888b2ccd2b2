package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlock/camera"
	"github.com/lixenwraith/starlock/config"
	"github.com/lixenwraith/starlock/core"
	"github.com/lixenwraith/starlock/event"
	"github.com/lixenwraith/starlock/input"
	"github.com/lixenwraith/starlock/narrative"
	"github.com/lixenwraith/starlock/parameter"
	"github.com/lixenwraith/starlock/particle"
	"github.com/lixenwraith/starlock/render"
	"github.com/lixenwraith/starlock/render/renderer"
	"github.com/lixenwraith/starlock/starfield"
	"github.com/lixenwraith/starlock/status"
)

// AudioSink receives narrative sound cues; *audio.Player implements it
type AudioSink interface {
	OnStage(stage narrative.Stage)
	OnCue(stage narrative.Stage, cue string)
	SetVolume(v float64)
}

// Options configures NewContext
type Options struct {
	Config *config.Config
	// Screen may be nil for headless runs and tests
	Screen tcell.Screen
	// TimeSource feeds the pausable scene clock, nil uses the system clock
	TimeSource core.TimeProvider
	// Script overrides the script named in Config
	Script *narrative.Script
	Audio  AudioSink
	Logger *slog.Logger
	// Rand seeds star and particle generation, nil uses an unseeded source
	Rand *rand.Rand
}

// Context holds the whole scene: one instance per run, no package state
type Context struct {
	// ===== Immutable After Init =====

	Config    *config.Config
	Clock     *core.PausableClock
	Camera    *camera.Camera
	Field     *starfield.Field
	Pool      *particle.Pool
	Spawner   *particle.Spawner
	Input     *input.Router
	Sequencer *narrative.Sequencer
	Render    *render.RenderOrchestrator
	Panels    map[narrative.Stage]*renderer.StagePanel
	Stars     *renderer.StarRenderer
	Status    *status.Registry

	queue  *event.EventQueue
	events *event.Router
	audio  AudioSink
	logger *slog.Logger
	probe  scaleProbe

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64
	quit        atomic.Bool

	// ===== Main-Loop Exclusive =====

	width, height int // terminal cells
	centered      bool
	damping       float64
	frameInterval time.Duration
	intervalDirty bool
	startTime     time.Time
	metrics       metrics
}

// scaleProbe feeds the sequencer the camera scale and the gesture that last zoomed
type scaleProbe struct {
	cam   *camera.Camera
	input *input.Router
}

func (p scaleProbe) Scale() float64                   { return p.cam.Scale() }
func (p scaleProbe) LastZoomSource() event.ZoomSource { return p.input.LastZoomSource() }

// NewContext wires every scene component, registers event handlers and renderers,
// and leaves the sequencer in StageNone until Start
func NewContext(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("engine: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	script := opts.Script
	if script == nil {
		s, err := narrative.LoadScript(cfg.Narrative.Script)
		if err != nil {
			return nil, fmt.Errorf("load narrative script: %w", err)
		}
		script = s
	}

	triggers, err := cfg.Narrative.Triggers()
	if err != nil {
		return nil, err
	}

	source := opts.TimeSource
	if source == nil {
		source = core.NewMonotonicTimeProvider()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	width, height := 0, 0
	if opts.Screen != nil {
		width, height = opts.Screen.Size()
	}

	c := &Context{
		Config:        cfg,
		Clock:         core.NewPausableClockFrom(source),
		Pool:          particle.NewPool(),
		Spawner:       particle.NewSpawner(rng),
		Status:        status.NewRegistry(),
		queue:         event.NewEventQueue(),
		audio:         opts.Audio,
		logger:        logger,
		damping:       cfg.Camera.Damping,
		frameInterval: cfg.FrameDuration(),
	}
	c.startTime = c.Clock.Now()

	c.Camera = camera.New(0, 0, parameter.CameraInitialScale, camera.Limits{
		MinScale: cfg.Camera.MinScale,
		MaxScale: cfg.Camera.MaxScale,
	})
	c.Field = starfield.NewField(starfield.NewGenerator(rng, cfg.Starfield.Spread), cfg.Starfield.Count)
	c.Input = input.NewRouter(c.Camera, input.Settings{
		ZoomIn:     cfg.Camera.ZoomIn,
		ZoomOut:    cfg.Camera.ZoomOut,
		KeyPanStep: cfg.Camera.KeyPanStep,
	})
	c.probe = scaleProbe{cam: c.Camera, input: c.Input}

	c.Panels = renderer.NewStagePanels(script)
	surfaces := make(map[narrative.Stage]narrative.Surface, len(c.Panels))
	for stage, p := range c.Panels {
		surfaces[stage] = p
	}
	c.Sequencer = narrative.New(narrative.Options{
		Clock:     c.Clock,
		Script:    script,
		Threshold: cfg.Narrative.RevealThreshold,
		Triggers:  triggers,
		Surfaces:  surfaces,
		Logger:    logger.With("component", "narrative"),
	})
	c.Sequencer.Subscribe(narrative.Hooks{
		OnEnter: c.onStageEnter,
		OnCue:   c.onStageCue,
	})

	c.Render = render.NewRenderOrchestrator(opts.Screen, width, height)
	c.Stars = renderer.NewStarRenderer(c.Field, cfg.Render.Glow)
	c.Render.RegisterLayer(renderer.NewBackgroundRenderer(), render.LayerBackground)
	c.Render.RegisterLayer(c.Stars, render.LayerStars)
	c.Render.RegisterLayer(renderer.NewParticleRenderer(c.Pool), render.LayerParticles)
	for _, stage := range narrative.Stages() {
		if p, ok := c.Panels[stage]; ok {
			c.Render.Register(p, render.PriorityUI)
		}
	}
	c.Render.Register(renderer.NewStatusRenderer(c.Status, cfg.Log.Debug), render.PriorityDebug)

	// Registration order is dispatch order: gestures reach the camera before narrative commands
	c.events = event.NewRouter(c.queue)
	c.events.Register(c.Input)
	c.events.Register(c.Sequencer)
	c.events.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventResize, event.EventFocus, event.EventConfigReload, event.EventQuit},
		Fn:    c.handleSceneEvent,
	})

	c.metrics = newMetrics(c.Status)

	if width > 0 && height > 0 {
		c.resize(width, height)
	}
	return c, nil
}

// Push enqueues an event from any goroutine; it is handled at the start of the next tick
func (c *Context) Push(ev event.GameEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	c.queue.Push(ev)
}

// Size returns the terminal size in cells
func (c *Context) Size() (int, int) {
	return c.width, c.height
}

// Damping returns the per-frame camera smoothing factor
func (c *Context) Damping() float64 {
	return c.damping
}

// FrameInterval returns the current tick interval
func (c *Context) FrameInterval() time.Duration {
	return c.frameInterval
}

// QuitRequested reports whether a quit event has been handled
func (c *Context) QuitRequested() bool {
	return c.quit.Load()
}

// Logger returns the scene logger
func (c *Context) Logger() *slog.Logger {
	return c.logger
}
