package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starlock/parameter"
	"github.com/lixenwraith/starlock/render"
	"github.com/lixenwraith/starlock/status"
)

// statsLogEvery is how many frames pass between debug telemetry log lines
const statsLogEvery = parameter.FrameRate * 5

func frameDuration(fps int) time.Duration {
	return time.Second / time.Duration(fps)
}

// metrics caches registry pointers written every frame
type metrics struct {
	stage       *status.Label
	scale       *status.Float
	targetScale *status.Float
	panX, panY  *status.Float
	frame       *atomic.Int64
	particles   *atomic.Int64
	stars       *atomic.Int64
	timers      *atomic.Int64
	dropped     *atomic.Int64
}

func newMetrics(reg *status.Registry) metrics {
	return metrics{
		stage:       reg.Labels.Get("stage"),
		scale:       reg.Floats.Get("scale"),
		targetScale: reg.Floats.Get("target"),
		panX:        reg.Floats.Get("pan_x"),
		panY:        reg.Floats.Get("pan_y"),
		frame:       reg.Ints.Get("frame"),
		particles:   reg.Ints.Get("particles"),
		stars:       reg.Ints.Get("stars"),
		timers:      reg.Ints.Get("timers"),
		dropped:     reg.Ints.Get("dropped"),
	}
}

// Start enters the first stage
func (c *Context) Start() {
	c.Sequencer.Start()
}

// Step runs one frame: drain events, smooth the camera, advance the narrative,
// move particles, render. While the clock is paused only events and rendering run.
func (c *Context) Step(dt time.Duration) {
	c.events.DispatchAll()

	paused := c.Clock.IsPaused()
	if paused {
		dt = 0
	} else {
		dt = min(max(dt, 0), parameter.MaxFrameDelta)
		c.Camera.Tick(c.damping)
		c.Sequencer.Update(c.probe)
		c.Pool.Update(dt)
	}

	frame := c.FrameNumber.Add(1)
	c.writeMetrics(frame)
	c.Render.RenderFrame(c.renderContext(dt, paused))

	if frame%statsLogEvery == 0 {
		c.logger.Debug("frame stats", c.Status.Attrs()...)
	}
}

// Run drives Step from a ticker until ctx is done or a quit event is handled
func (c *Context) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.frameInterval)
	defer ticker.Stop()

	last := c.Clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := c.Clock.Now()
			c.Step(now.Sub(last))
			last = now

			if c.quit.Load() {
				c.logger.Info("quit", "stage", c.Sequencer.Stage(), "frames", c.FrameNumber.Load())
				return nil
			}
			if c.intervalDirty {
				ticker.Reset(c.frameInterval)
				c.intervalDirty = false
			}
		}
	}
}

func (c *Context) writeMetrics(frame int64) {
	m := &c.metrics
	t := c.Camera.Target()
	px, py := c.Camera.Pan()
	m.stage.Set(c.Sequencer.Stage().String())
	m.scale.Set(c.Camera.Scale())
	m.targetScale.Set(t.Scale)
	m.panX.Set(px)
	m.panY.Set(py)
	m.frame.Store(frame)
	m.particles.Store(int64(c.Pool.Len()))
	m.stars.Store(int64(len(c.Field.Stars())))
	m.timers.Store(int64(len(c.Sequencer.PendingTimers())))
	m.dropped.Store(int64(c.queue.Dropped()))
}

func (c *Context) renderContext(dt time.Duration, paused bool) render.RenderContext {
	now := c.Clock.Now()
	return render.RenderContext{
		SceneTime:    now,
		Seconds:      now.Sub(c.startTime).Seconds(),
		DeltaTime:    dt.Seconds(),
		IsPaused:     paused,
		View:         c.Camera.View(),
		Stage:        c.Sequencer.Stage(),
		ScreenWidth:  c.width,
		ScreenHeight: c.height,
		PixelWidth:   c.width,
		PixelHeight:  c.height * parameter.PixelsPerRow,
	}
}
