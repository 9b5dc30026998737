package tabletennis

import "github.com/vovakirdan/neon-pong/internal/core"

// EffectKind classifies an emitted effect event.
type EffectKind int

const (
	EffectWall EffectKind = iota
	EffectNet
	EffectPlayerHit
	EffectPlayerPowerHit
	EffectAIHit
	EffectAIPowerHit
	EffectPowerUp
	EffectScore
)

// String returns the kind name used in logs.
func (k EffectKind) String() string {
	switch k {
	case EffectWall:
		return "wall"
	case EffectNet:
		return "net"
	case EffectPlayerHit:
		return "player-hit"
	case EffectPlayerPowerHit:
		return "player-power-hit"
	case EffectAIHit:
		return "ai-hit"
	case EffectAIPowerHit:
		return "ai-power-hit"
	case EffectPowerUp:
		return "powerup"
	case EffectScore:
		return "score"
	default:
		return "unknown"
	}
}

// Effect is a cosmetic event produced during a step. The host may shake the
// screen for it; the game has already spawned the matching particles.
type Effect struct {
	Kind      EffectKind
	Pos       core.Vec
	Color     core.Color
	Intensity float64
}

// Shakes reports whether the host should shake the screen for the effect.
func (e Effect) Shakes() bool {
	return e.Kind != EffectScore
}

// emit records an effect for this step and spawns its particles.
func (g *Game) emit(e Effect) {
	g.effects = append(g.effects, e)
	if e.Kind == EffectScore {
		g.particles.ScoreBurst(g.rng, e.Pos, e.Color)
		return
	}
	g.particles.Burst(g.rng, e.Pos, e.Color, e.Intensity)
}
