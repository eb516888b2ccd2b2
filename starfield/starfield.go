// Package starfield generates the radial star population the camera looks at
package starfield

import (
	"math"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starlock/parameter"
)

// Star is a point light in world space
// Immutable after generation; brightness phase is derived from time at draw
type Star struct {
	X, Y       float64
	Radius     float64
	Brightness float64 // base, [0,1]
	BlinkSpeed float64 // radians per second
	BlinkPhase float64 // radians
	Hue        float64 // degrees
	Lightness  float64 // HSL lightness [0,1]
	Color      colorful.Color
}

// BrightnessAt returns base * (0.7 + 0.3*sin(t*speed + phase)) for t seconds
func (s *Star) BrightnessAt(t float64) float64 {
	return s.Brightness * (parameter.BlinkBase + parameter.BlinkAmplitude*math.Sin(t*s.BlinkSpeed+s.BlinkPhase))
}

// Generator scatters stars radially around the viewport center
type Generator struct {
	rng    *rand.Rand
	spread float64
}

// NewGenerator creates a generator over rng; nil rng uses a time-seeded source
// spread <= 0 uses parameter.StarSpread
func NewGenerator(rng *rand.Rand, spread float64) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if spread <= 0 {
		spread = parameter.StarSpread
	}
	return &Generator{rng: rng, spread: spread}
}

// Generate returns count stars for a width x height viewport
// Empty for count <= 0 or a zero-sized viewport
func (g *Generator) Generate(width, height float64, count int) []Star {
	if count <= 0 || !(width > 0) || !(height > 0) {
		return nil
	}

	cx, cy := width/2, height/2
	maxDist := math.Min(width, height) * g.spread

	stars := make([]Star, count)
	for i := range stars {
		angle := g.rng.Float64() * 2 * math.Pi
		dist := g.rng.Float64() * maxDist

		hue := parameter.StarHueMin + g.rng.Float64()*parameter.StarHueRange
		lightness := parameter.StarLightnessMin + g.rng.Float64()*parameter.StarLightnessRange

		stars[i] = Star{
			X:          cx + math.Cos(angle)*dist,
			Y:          cy + math.Sin(angle)*dist,
			Radius:     parameter.StarRadiusMin + g.rng.Float64()*parameter.StarRadiusRange,
			Brightness: parameter.StarBrightnessMin + g.rng.Float64()*parameter.StarBrightnessRange,
			BlinkSpeed: parameter.StarBlinkSpeedMin + g.rng.Float64()*parameter.StarBlinkSpeedRange,
			BlinkPhase: g.rng.Float64() * 2 * math.Pi,
			Hue:        hue,
			Lightness:  lightness,
			Color:      colorful.Hsl(hue, 1, lightness).Clamped(),
		}
	}
	return stars
}

// Generate scatters count stars with a time-seeded source
func Generate(width, height float64, count int) []Star {
	return NewGenerator(nil, 0).Generate(width, height, count)
}

// Field is the current star population and the viewport it was generated for
// Regenerated as a whole on resize; a zero-sized viewport leaves it empty until the next non-zero resize
type Field struct {
	gen    *Generator
	count  int
	width  float64
	height float64
	stars  []Star
}

// NewField creates an empty field; call Resize to populate
func NewField(gen *Generator, count int) *Field {
	if gen == nil {
		gen = NewGenerator(nil, 0)
	}
	return &Field{gen: gen, count: count}
}

// Resize regenerates the population for the new viewport
// Returns false when generation was skipped for invalid geometry
func (f *Field) Resize(width, height float64) bool {
	f.width, f.height = width, height
	f.stars = f.gen.Generate(width, height, f.count)
	return width > 0 && height > 0
}

// SetCount changes population size and regenerates at the current viewport
func (f *Field) SetCount(count int) {
	f.count = count
	f.stars = f.gen.Generate(f.width, f.height, count)
}

// Stars returns the current population; callers must not mutate it
func (f *Field) Stars() []Star {
	return f.stars
}

// Size returns the viewport the population was generated for
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Count returns the configured population size
func (f *Field) Count() int {
	return f.count
}
