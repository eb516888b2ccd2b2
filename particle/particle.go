package particle

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starlock/narrative"
	"github.com/lixenwraith/starlock/vmath"
)

// Kind selects per-particle motion
type Kind int

const (
	KindDust Kind = iota
	KindHeart
	KindRing
	KindExplosion
	KindFinalStar
)

// Space selects whether a particle is projected through the camera
type Space int

const (
	// SpaceWorld particles move with the universe under pan and zoom
	SpaceWorld Space = iota
	// SpaceScreen particles are drawn at fixed screen pixels
	SpaceScreen
)

// Particle is a transient visual owned by the stage that spawned it
type Particle struct {
	Kind  Kind
	Space Space
	Stage narrative.Stage

	X, Y   float64
	VX, VY float64

	// Heart assembly: lerp from origin to home over Assemble
	OriginX, OriginY float64
	HomeX, HomeY     float64
	Assemble         time.Duration

	// Wrap bounds for drifting dust, zero width disables wrapping
	MinX, MinY, MaxX, MaxY float64

	Size      float64
	Alpha     float64
	BaseAlpha float64
	Color     colorful.Color

	// Pulse/twinkle in radians per second
	PulseSpeed float64
	Phase      float64

	Age  time.Duration
	Life time.Duration // zero lives until the stage exits
}

// Alive reports whether the particle still has life left
func (p *Particle) Alive() bool {
	return p.Life <= 0 || p.Age < p.Life
}

// DrawSize returns the size modulated by the pulse
func (p *Particle) DrawSize() float64 {
	switch p.Kind {
	case KindHeart:
		return p.Size * (1 + 0.2*math.Sin(p.Age.Seconds()*p.PulseSpeed+p.Phase))
	default:
		return p.Size
	}
}

func (p *Particle) step(dt time.Duration) {
	p.Age += dt
	sec := dt.Seconds()

	switch p.Kind {
	case KindHeart:
		t := 1.0
		if p.Assemble > 0 {
			t = vmath.Clamp01(float64(p.Age) / float64(p.Assemble))
		}
		e := vmath.SmoothStep(t)
		p.X = vmath.Lerp(p.OriginX, p.HomeX, e)
		p.Y = vmath.Lerp(p.OriginY, p.HomeY, e)
		p.Alpha = p.BaseAlpha * e

	case KindRing, KindFinalStar:
		p.Alpha = p.BaseAlpha * (0.6 + 0.4*math.Sin(p.Age.Seconds()*p.PulseSpeed+p.Phase))

	case KindExplosion:
		p.X += p.VX * sec
		p.Y += p.VY * sec
		if p.Life > 0 {
			p.Alpha = p.BaseAlpha * vmath.Clamp01(1-float64(p.Age)/float64(p.Life))
		}

	case KindDust:
		p.X += p.VX * sec
		p.Y += p.VY * sec
		if p.MaxX > p.MinX {
			p.X = wrap(p.X, p.MinX, p.MaxX)
		}
		if p.MaxY > p.MinY {
			p.Y = wrap(p.Y, p.MinY, p.MaxY)
		}
	}
}

func wrap(v, lo, hi float64) float64 {
	span := hi - lo
	v = math.Mod(v-lo, span)
	if v < 0 {
		v += span
	}
	return v + lo
}
