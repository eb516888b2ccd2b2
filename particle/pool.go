package particle

import (
	"time"

	"github.com/lixenwraith/starlock/narrative"
)

// Pool holds every live particle; mutated only on the frame loop
type Pool struct {
	particles []Particle
}

func NewPool() *Pool {
	return &Pool{particles: make([]Particle, 0, 256)}
}

// Add appends particles
func (p *Pool) Add(ps ...Particle) {
	p.particles = append(p.particles, ps...)
}

// ClearStage removes every particle spawned by stage and returns the count removed
func (p *Pool) ClearStage(stage narrative.Stage) int {
	kept := p.particles[:0]
	removed := 0
	for _, pt := range p.particles {
		if pt.Stage == stage {
			removed++
			continue
		}
		kept = append(kept, pt)
	}
	p.particles = kept
	return removed
}

// ClearExcept removes every particle not owned by stage
func (p *Pool) ClearExcept(stage narrative.Stage) int {
	kept := p.particles[:0]
	removed := 0
	for _, pt := range p.particles {
		if pt.Stage != stage {
			removed++
			continue
		}
		kept = append(kept, pt)
	}
	p.particles = kept
	return removed
}

// Update advances all particles by dt and drops expired ones
func (p *Pool) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	kept := p.particles[:0]
	for i := range p.particles {
		pt := &p.particles[i]
		pt.step(dt)
		if pt.Alive() {
			kept = append(kept, *pt)
		}
	}
	p.particles = kept
}

// Particles returns the live slice, valid until the next mutation
func (p *Pool) Particles() []Particle {
	return p.particles
}

func (p *Pool) Len() int {
	return len(p.particles)
}

// Count returns how many particles of kind are alive
func (p *Pool) Count(kind Kind) int {
	n := 0
	for i := range p.particles {
		if p.particles[i].Kind == kind {
			n++
		}
	}
	return n
}
