package particle

import (
	"math"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starlock/narrative"
	"github.com/lixenwraith/starlock/parameter"
	"github.com/lixenwraith/starlock/vmath"
)

// Spawner builds particle batches for stage effects
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner uses rng, or an unseeded source when nil
func NewSpawner(rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Spawner{rng: rng}
}

// Dust scatters drifting specks over DustAreaFactor times the world rect centered on (cx, cy)
func (s *Spawner) Dust(cx, cy, w, h float64) []Particle {
	if w <= 0 || h <= 0 {
		return nil
	}
	aw := w * parameter.DustAreaFactor
	ah := h * parameter.DustAreaFactor
	minX, minY := cx-aw/2, cy-ah/2

	out := make([]Particle, parameter.DustCount)
	for i := range out {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.rng.Float64() * parameter.DustSpeedMax
		alpha := vmath.Lerp(parameter.DustAlphaMin, parameter.DustAlphaMax, s.rng.Float64())
		out[i] = Particle{
			Kind:      KindDust,
			Space:     SpaceWorld,
			Stage:     narrative.StageUniverseExploration,
			X:         minX + s.rng.Float64()*aw,
			Y:         minY + s.rng.Float64()*ah,
			VX:        math.Cos(angle) * speed,
			VY:        math.Sin(angle) * speed,
			MinX:      minX,
			MinY:      minY,
			MaxX:      minX + aw,
			MaxY:      minY + ah,
			Size:      parameter.DustSizeMin + s.rng.Float64()*parameter.DustSizeRange,
			Alpha:     alpha,
			BaseAlpha: alpha,
			Color:     colorful.Hsl(260, 0.3, 0.85),
		}
	}
	return out
}

// Heart places particles on the parametric heart around (cx, cy)
// unit is world distance per curve unit; particles assemble from a scatter over assemble
func (s *Spawner) Heart(cx, cy, unit float64, assemble time.Duration) []Particle {
	if unit <= 0 {
		return nil
	}
	color := colorful.Hsl(parameter.HeartHue, 1, parameter.HeartLightness)
	scatter := parameter.HeartCurveExtent * 3 * unit

	out := make([]Particle, parameter.HeartParticleCount)
	for i := range out {
		t := float64(i) / float64(parameter.HeartParticleCount) * 2 * math.Pi
		hx, hy := vmath.HeartPoint(t)
		angle := s.rng.Float64() * 2 * math.Pi
		r := s.rng.Float64() * scatter
		ox, oy := cx+math.Cos(angle)*r, cy+math.Sin(angle)*r

		out[i] = Particle{
			Kind:       KindHeart,
			Space:      SpaceWorld,
			Stage:      narrative.StageHeartReveal,
			X:          ox,
			Y:          oy,
			OriginX:    ox,
			OriginY:    oy,
			HomeX:      cx + hx*unit,
			HomeY:      cy + hy*unit,
			Assemble:   assemble,
			Size:       (parameter.HeartSizeMin + s.rng.Float64()*parameter.HeartSizeRange) * unit,
			BaseAlpha:  1,
			Color:      color,
			PulseSpeed: parameter.HeartPulseSpeedMin + s.rng.Float64()*parameter.HeartPulseSpeedRange,
			Phase:      s.rng.Float64() * 2 * math.Pi,
		}
		if assemble <= 0 {
			out[i].X, out[i].Y = out[i].HomeX, out[i].HomeY
			out[i].Alpha = 1
		}
	}
	return out
}

// Ring scatters twinkling stars in an annulus around the heart
func (s *Spawner) Ring(cx, cy, unit float64) []Particle {
	if unit <= 0 {
		return nil
	}
	out := make([]Particle, parameter.HeartRingCount)
	for i := range out {
		angle := s.rng.Float64() * 2 * math.Pi
		dist := (parameter.HeartRingDistMin + s.rng.Float64()*parameter.HeartRingDistRange) * unit
		alpha := 0.5 + 0.5*s.rng.Float64()
		out[i] = Particle{
			Kind:       KindRing,
			Space:      SpaceWorld,
			Stage:      narrative.StageHeartReveal,
			X:          cx + math.Cos(angle)*dist,
			Y:          cy + math.Sin(angle)*dist,
			Size:       (parameter.FinalStarSizeMin + s.rng.Float64()*parameter.FinalStarSizeRange) * unit,
			Alpha:      alpha,
			BaseAlpha:  alpha,
			Color:      colorful.Hsl(340, 0.8, 0.85),
			PulseSpeed: 1 + 2*s.rng.Float64(),
			Phase:      s.rng.Float64() * 2 * math.Pi,
		}
	}
	return out
}

// Explosion bursts radially from a screen point and fades over ExplosionLife
func (s *Spawner) Explosion(sx, sy float64) []Particle {
	out := make([]Particle, parameter.ExplosionCount)
	for i := range out {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := parameter.ExplosionSpeedMin + s.rng.Float64()*parameter.ExplosionSpeedRange
		hue := parameter.ExplosionHueMin + s.rng.Float64()*parameter.ExplosionHueRange
		out[i] = Particle{
			Kind:      KindExplosion,
			Space:     SpaceScreen,
			Stage:     narrative.StageMessage,
			X:         sx,
			Y:         sy,
			VX:        math.Cos(angle) * speed,
			VY:        math.Sin(angle) * speed,
			Size:      parameter.ExplosionSizeMin + s.rng.Float64()*parameter.ExplosionSizeRange,
			Alpha:     1,
			BaseAlpha: 1,
			Color:     colorful.Hsl(hue, 1, 0.6),
			Life:      parameter.ExplosionLife,
		}
	}
	return out
}

// FinalStars scatters twinkling stars across the screen behind the final text
func (s *Spawner) FinalStars(w, h float64) []Particle {
	if w <= 0 || h <= 0 {
		return nil
	}
	out := make([]Particle, parameter.FinalStarCount)
	for i := range out {
		alpha := 0.4 + 0.6*s.rng.Float64()
		out[i] = Particle{
			Kind:       KindFinalStar,
			Space:      SpaceScreen,
			Stage:      narrative.StageFinal,
			X:          s.rng.Float64() * w,
			Y:          s.rng.Float64() * h,
			Size:       parameter.FinalStarSizeMin + s.rng.Float64()*parameter.FinalStarSizeRange,
			Alpha:      alpha,
			BaseAlpha:  alpha,
			Color:      colorful.Hsl(50, 0.6, 0.9),
			PulseSpeed: 1 + 3*s.rng.Float64(),
			Phase:      s.rng.Float64() * 2 * math.Pi,
		}
	}
	return out
}
