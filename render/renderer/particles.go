package renderer

import (
	"github.com/lixenwraith/starlock/particle"
	"github.com/lixenwraith/starlock/render"
)

// ParticleRenderer draws the pool; world particles follow the camera, screen particles do not
// Read-only: the frame loop advances the pool before rendering
type ParticleRenderer struct {
	pool *particle.Pool
}

func NewParticleRenderer(pool *particle.Pool) *ParticleRenderer {
	return &ParticleRenderer{pool: pool}
}

// Render implements render.LayerRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	ps := r.pool.Particles()
	for i := range ps {
		p := &ps[i]
		if p.Alpha <= 0 {
			continue
		}

		x, y := p.X, p.Y
		size := p.DrawSize()
		if p.Space == particle.SpaceWorld {
			x, y = ctx.ToScreen(x, y)
			size *= ctx.View.Scale
		}

		switch p.Kind {
		case particle.KindHeart:
			canvas.AddGlow(x, y, size*3, p.Color, p.Alpha*0.3)
		case particle.KindExplosion:
			canvas.AddGlow(x, y, size*2, p.Color, p.Alpha*0.25)
		}
		canvas.AddDisc(x, y, size, p.Color, p.Alpha)
	}
}
