package tabletennis

import (
	"testing"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

func TestBurstSize(t *testing.T) {
	tests := []struct {
		intensity float64
		want      int
	}{
		{1.5, 18},
		{2, 24},
		{2.5, 30},
		{3, 36},
		{0.05, 0},
		{1.25, 15},
	}

	for _, tc := range tests {
		ps := NewParticleSystem(config.DefaultTableTennisConfig().Particles)
		ps.Burst(constRand(0.5), core.Vec{X: 10, Y: 10}, core.ColorBrightCyan, tc.intensity)
		if ps.Len() != tc.want {
			t.Errorf("Burst(%v) spawned %d, expected %d", tc.intensity, ps.Len(), tc.want)
		}
	}
}

func TestParticleRanges(t *testing.T) {
	cfg := config.DefaultTableTennisConfig().Particles
	ps := NewParticleSystem(cfg)
	ps.Burst(&scriptedRand{vals: []float64{0.2, 0.999, 0.001, 0.7, 0.3, 0.999, 0.5}}, core.Vec{}, core.ColorRed, 1)

	for _, p := range ps.All() {
		if p.Vel.X <= -cfg.MaxVelocity || p.Vel.X >= cfg.MaxVelocity ||
			p.Vel.Y <= -cfg.MaxVelocity || p.Vel.Y >= cfg.MaxVelocity {
			t.Errorf("velocity %v outside (-5, 5)", p.Vel)
		}
		if p.Decay < 0.01 || p.Decay >= 0.03 {
			t.Errorf("decay %f outside [0.01, 0.03)", p.Decay)
		}
		if p.Size < 3 || p.Size >= 9 {
			t.Errorf("size %f outside [3, 9)", p.Size)
		}
		if p.Spin <= -cfg.MaxSpin || p.Spin >= cfg.MaxSpin {
			t.Errorf("spin %f outside (-0.1, 0.1)", p.Spin)
		}
		if p.Life != 1 {
			t.Errorf("life %f, expected 1 at birth", p.Life)
		}
	}
}

func TestParticleUpdate(t *testing.T) {
	ps := NewParticleSystem(config.DefaultTableTennisConfig().Particles)
	ps.particles = append(ps.particles, Particle{
		Vel:   core.Vec{X: 2, Y: -1},
		Life:  1,
		Decay: 0.25,
		Size:  4,
		Spin:  0.1,
	})

	ps.Update()

	p := ps.All()[0]
	if p.Pos != (core.Vec{X: 2, Y: -1}) {
		t.Errorf("pos = %v, expected (2, -1)", p.Pos)
	}
	if !almostEqual(p.Vel.X, 1.94) || !almostEqual(p.Size, 3.88) || !almostEqual(p.Life, 0.75) {
		t.Errorf("vel=%v size=%f life=%f after one tick", p.Vel, p.Size, p.Life)
	}
	if !almostEqual(p.Angle, 0.1) {
		t.Errorf("angle = %f, expected 0.1", p.Angle)
	}

	for range 3 {
		ps.Update()
	}
	if ps.Len() != 0 {
		t.Errorf("Len() = %d, expected the particle pruned at zero life", ps.Len())
	}
}

func TestParticlesEventuallyDie(t *testing.T) {
	ps := NewParticleSystem(config.DefaultTableTennisConfig().Particles)
	ps.Burst(constRand(0.5), core.Vec{}, core.ColorRed, 3)
	ps.ScoreBurst(constRand(0.1), core.Vec{}, core.ColorRed)

	for range 101 {
		ps.Update()
	}
	if ps.Len() != 0 {
		t.Errorf("%d particles still alive after 101 ticks", ps.Len())
	}
}

func TestShapeGlyphs(t *testing.T) {
	if ShapeSpark.Glyph() == ShapeCircle.Glyph() {
		t.Error("shapes should draw differently")
	}
	if ParticleShape(9).Glyph() != ShapeSpark.Glyph() {
		t.Error("unknown shapes should draw as sparks")
	}
}
