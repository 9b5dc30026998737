package tabletennis

import (
	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

// ParticleShape selects how a particle is drawn.
type ParticleShape int

const (
	ShapeSpark ParticleShape = iota
	ShapeCircle
	particleShapeCount
)

var shapeGlyphs = [...]rune{
	ShapeSpark:  '*',
	ShapeCircle: '•',
}

var (
	_ [len(shapeGlyphs) - int(particleShapeCount)]struct{}
	_ [int(particleShapeCount) - len(shapeGlyphs)]struct{}
)

// Glyph returns the rune used to draw the shape.
func (s ParticleShape) Glyph() rune {
	if s < 0 || s >= particleShapeCount {
		return shapeGlyphs[ShapeSpark]
	}
	return shapeGlyphs[s]
}

// Particle is a short-lived cosmetic spark.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Color core.Color
	Life  float64 // 1 at birth, removed at 0
	Decay float64
	Size  float64
	Angle float64
	Spin  float64
	Shape ParticleShape
}

// ParticleSystem owns every live particle.
type ParticleSystem struct {
	cfg       config.ParticlesConfig
	particles []Particle
}

// NewParticleSystem creates an empty system.
func NewParticleSystem(cfg config.ParticlesConfig) *ParticleSystem {
	return &ParticleSystem{cfg: cfg}
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// All returns a copy of the live particles.
func (ps *ParticleSystem) All() []Particle {
	out := make([]Particle, len(ps.particles))
	copy(out, ps.particles)
	return out
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Burst spawns floor(BurstSize*intensity) particles of random shape at pos.
func (ps *ParticleSystem) Burst(rng Rand, pos core.Vec, color core.Color, intensity float64) {
	n := int(float64(ps.cfg.BurstSize) * intensity)
	for range n {
		shape := ShapeCircle
		if rng.Float64() > 0.5 {
			shape = ShapeSpark
		}
		ps.spawn(rng, pos, color, shape)
	}
}

// ScoreBurst spawns the fixed-size spark shower shown after a point.
func (ps *ParticleSystem) ScoreBurst(rng Rand, pos core.Vec, color core.Color) {
	for range ps.cfg.ScoreBurst {
		ps.spawn(rng, pos, color, ShapeSpark)
	}
}

func (ps *ParticleSystem) spawn(rng Rand, pos core.Vec, color core.Color, shape ParticleShape) {
	c := ps.cfg
	ps.particles = append(ps.particles, Particle{
		Pos:   pos,
		Vel:   core.Vec{X: randRange(rng, c.MaxVelocity), Y: randRange(rng, c.MaxVelocity)},
		Color: color,
		Life:  1,
		Decay: c.MinDecay + rng.Float64()*c.DecaySpread,
		Size:  c.MinSize + rng.Float64()*c.SizeSpread,
		Angle: randAngle(rng),
		Spin:  randRange(rng, c.MaxSpin),
		Shape: shape,
	})
}

// Update advances every particle by one tick and prunes the dead ones.
func (ps *ParticleSystem) Update() {
	drag := ps.cfg.Drag
	kept := ps.particles[:0]
	for _, p := range ps.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(drag)
		p.Life -= p.Decay
		p.Size *= drag
		p.Angle += p.Spin
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.particles = kept
}
