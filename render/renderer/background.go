package renderer

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starlock/parameter/visual"
	"github.com/lixenwraith/starlock/render"
)

// BackgroundRenderer paints the static radial gradient; the orchestrator calls it once per resize
type BackgroundRenderer struct {
	stops []colorful.Color
}

func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{
		stops: []colorful.Color{visual.BackgroundInner, visual.BackgroundMid, visual.BackgroundOuter},
	}
}

// Render implements render.LayerRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	canvas.FillRadial(r.stops)
}
