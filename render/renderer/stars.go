package renderer

import (
	"github.com/lixenwraith/starlock/narrative"
	"github.com/lixenwraith/starlock/parameter"
	"github.com/lixenwraith/starlock/parameter/visual"
	"github.com/lixenwraith/starlock/render"
	"github.com/lixenwraith/starlock/starfield"
)

// StarRenderer draws every star as a core disc plus an optional glow, projected through the frame camera
type StarRenderer struct {
	field *starfield.Field
	glow  bool
}

func NewStarRenderer(field *starfield.Field, glow bool) *StarRenderer {
	return &StarRenderer{field: field, glow: glow}
}

// SetGlow toggles the halo pass
func (r *StarRenderer) SetGlow(on bool) {
	r.glow = on
}

// Render implements render.LayerRenderer
func (r *StarRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	if !starsVisible(ctx) {
		return
	}
	w, h := canvas.Bounds()
	scale := ctx.View.Scale

	stars := r.field.Stars()
	for i := range stars {
		s := &stars[i]
		b := s.BrightnessAt(ctx.Seconds)
		if b <= 0 {
			continue
		}
		sx, sy := ctx.ToScreen(s.X, s.Y)
		radius := s.Radius * scale
		reach := radius * parameter.GlowRadiusFactor

		if sx+reach < 0 || sy+reach < 0 || sx-reach > float64(w) || sy-reach > float64(h) {
			continue
		}

		if r.glow {
			canvas.AddGlow(sx, sy, reach, visual.Glow, b*parameter.GlowAlphaFactor)
		}
		canvas.AddDisc(sx, sy, radius, s.Color, b)
	}
}

// starsVisible reports whether the current stage shows the universe
func starsVisible(ctx render.RenderContext) bool {
	switch ctx.Stage {
	case narrative.StageUniverseExploration, narrative.StageHeartReveal, narrative.StageMessage:
		return true
	}
	return false
}
