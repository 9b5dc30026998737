package tabletennis

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// approachEpsilon is the smallest vertical speed the AI projects from.
// Slower balls are tracked directly.
const approachEpsilon = 1e-6

// PredictTarget returns the x the AI paddle should center on.
// A ball moving toward the AI is projected forward by gain; a projection
// that leaves the table is replaced by a damped mirror of it. The result is
// always finite and within the table span.
func PredictTarget(b Ball, paddle Paddle, table core.Box, gain float64) float64 {
	target := b.Pos.X
	if b.Vel.Y < -approachEpsilon {
		t := math.Abs(paddle.Y-b.Pos.Y) / math.Abs(b.Vel.Y)
		projected := b.Pos.X + b.Vel.X*t*gain
		if projected < table.X || projected > table.Right() {
			projected = b.Pos.X - b.Vel.X*t*0.5
		}
		if core.Finite(projected) {
			target = projected
		}
	}
	if !core.Finite(target) {
		target = table.Center().X
	}
	return core.ClampF(target, table.X, table.Right())
}

// updateAI moves the AI paddle toward its noisy prediction.
func (g *Game) updateAI() {
	p := &g.ai
	cfg := g.cfg.AI
	level := g.match.Level

	target := PredictTarget(g.ball, *p, g.table, g.difficulty.PredictionGain(level))
	accuracy := cfg.Skill * g.difficulty.AccuracyMultiplier(level)
	target += (g.rng.Float64() - 0.5) * (1 - accuracy) * cfg.ErrorRange
	target = core.ClampF(target, g.table.X, g.table.Right())
	g.aiTarget = target

	dx := target - p.CenterX()
	if math.Abs(dx) > cfg.DeadZone {
		step := core.Sign(dx) * p.Speed * g.difficulty.StepMultiplier(level)
		p.X = core.ClampF(p.X+step, g.table.X, g.table.Right()-p.Width)
	}
	if math.Abs(dx) > cfg.EnergyMoveThreshold {
		p.AddEnergy(cfg.EnergyGain)
	}
}

// updatePlayer eases the player paddle toward the pointer.
func (g *Game) updatePlayer() {
	p := &g.player
	cfg := g.cfg.Player

	target := core.ClampF(g.pointer.X-p.Width/2, g.table.X, g.table.Right()-p.Width)
	dx := target - p.X
	p.X = core.ClampF(p.X+dx*cfg.Smoothing, g.table.X, g.table.Right()-p.Width)
	if math.Abs(dx) > cfg.EnergyMoveThreshold {
		p.AddEnergy(cfg.EnergyGain)
	}
}
