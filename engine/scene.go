package engine

import (
	"github.com/lixenwraith/starlock/camera"
	"github.com/lixenwraith/starlock/event"
	"github.com/lixenwraith/starlock/input"
	"github.com/lixenwraith/starlock/narrative"
	"github.com/lixenwraith/starlock/parameter"
)

// viewport returns the pixel canvas size
func (c *Context) viewport() (float64, float64) {
	return float64(c.width), float64(c.height * parameter.PixelsPerRow)
}

// onStageEnter applies the side effects of a transition; particles never outlive their stage
func (c *Context) onStageEnter(tr narrative.Transition) {
	if n := c.Pool.ClearExcept(tr.To); n > 0 {
		c.logger.Debug("stage particles cleared", "stage", tr.From, "count", n)
	}

	w, h := c.viewport()
	switch tr.To {
	case narrative.StageUniverseExploration:
		c.Input.Attach()
		cx, cy := c.Camera.WorldAt(w/2, h/2)
		c.Pool.Add(c.Spawner.Dust(cx, cy, w/c.Camera.Scale(), h/c.Camera.Scale())...)

	case narrative.StageHeartReveal:
		scale := c.Camera.Scale()
		cx, cy := c.Camera.WorldAt(w/2, h/2)
		unit := parameter.HeartScreenFraction * min(w, h) / (2 * parameter.HeartCurveExtent) / scale
		assemble := c.Sequencer.Script().Timing.RevealAnimation.Std()
		c.Pool.Add(c.Spawner.Heart(cx, cy, unit, assemble)...)
		c.Pool.Add(c.Spawner.Ring(cx, cy, unit)...)
		c.logger.Info("heart revealed", "scale", scale, "world_x", cx, "world_y", cy)

	case narrative.StageFinal:
		c.Pool.Add(c.Spawner.FinalStars(w, h)...)
	}

	if c.audio != nil {
		c.audio.OnStage(tr.To)
	}
}

// onStageCue handles timed effects inside a stage
func (c *Context) onStageCue(stage narrative.Stage, cue string) {
	if cue == narrative.CueExplosion && stage == narrative.StageMessage {
		w, h := c.viewport()
		c.Pool.Add(c.Spawner.Explosion(w/2, h/2)...)
	}
	if c.audio != nil {
		c.audio.OnCue(stage, cue)
	}
}

// handleSceneEvent processes terminal and lifecycle events on the loop goroutine
func (c *Context) handleSceneEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventResize:
		if p, ok := ev.Payload.(*event.ResizePayload); ok {
			c.resize(p.Cols, p.Rows)
		}

	case event.EventFocus:
		p, ok := ev.Payload.(*event.FocusPayload)
		if !ok {
			return
		}
		if p.Focused {
			c.Clock.Resume()
			c.logger.Debug("focus regained, clock resumed", "paused_total", c.Clock.TotalPauseDuration())
		} else {
			c.Clock.Pause()
			c.Input.PointerUp()
			c.logger.Debug("focus lost, clock paused")
		}

	case event.EventConfigReload:
		if p, ok := ev.Payload.(*event.ConfigReloadPayload); ok {
			c.applyReload(p)
		}

	case event.EventQuit:
		c.quit.Store(true)
	}
}

// resize regenerates the star field and redraws the background; the camera is left alone
// except that the first usable size centers the pan on the viewport
func (c *Context) resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		c.logger.Debug("resize ignored", "cols", cols, "rows", rows)
		return
	}
	c.width, c.height = cols, rows
	w, h := c.viewport()

	c.Render.Resize(cols, rows)
	c.Input.SetViewport(w, h)
	regenerated := c.Field.Resize(w, h)

	if !c.centered {
		c.Camera.SetTargetPanTo(w/2, h/2)
		c.Camera.Snap()
		c.centered = true
	}

	c.logger.Info("resize", "cols", cols, "rows", rows, "stars", len(c.Field.Stars()), "regenerated", regenerated)
}

// applyReload installs the runtime-safe tunables from a config reload
func (c *Context) applyReload(p *event.ConfigReloadPayload) {
	if p.Damping > 0 && p.Damping < 1 {
		c.damping = p.Damping
	}
	c.Input.SetSettings(input.Settings{
		ZoomIn:     p.ZoomIn,
		ZoomOut:    p.ZoomOut,
		KeyPanStep: p.KeyPanStep,
	})
	c.Stars.SetGlow(p.Glow)
	c.Camera.SetLimits(camera.Limits{MinScale: p.MinScale, MaxScale: p.MaxScale})
	// The reveal needs a scale the camera can actually reach
	if lim := c.Camera.Limits(); p.RevealScale > lim.MinScale && p.RevealScale <= lim.MaxScale {
		c.Sequencer.SetThreshold(p.RevealScale)
	} else {
		c.logger.Warn("reveal threshold outside camera range, kept",
			"threshold", p.RevealScale,
			"min_scale", lim.MinScale,
			"max_scale", lim.MaxScale,
			"kept", c.Sequencer.Threshold(),
		)
	}
	if c.audio != nil {
		c.audio.SetVolume(p.Volume)
	}
	if p.FrameRate > 0 {
		if d := frameDuration(p.FrameRate); d != c.frameInterval {
			c.frameInterval = d
			c.intervalDirty = true
		}
	}
	c.logger.Info("config applied",
		"from", p.ReloadedFrom,
		"damping", c.damping,
		"zoom_in", p.ZoomIn,
		"zoom_out", p.ZoomOut,
		"glow", p.Glow,
		"volume", p.Volume,
		"fps", p.FrameRate,
		"min_scale", c.Camera.Limits().MinScale,
		"reveal_threshold", c.Sequencer.Threshold(),
	)
}
