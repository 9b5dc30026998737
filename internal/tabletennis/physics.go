package tabletennis

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Effect intensities.
const (
	wallIntensity     = 1.5
	netIntensity      = 2.0
	hitIntensity      = 1.5
	powerHitIntensity = 3.0
	aiPowerIntensity  = 2.5
	powerUpIntensity  = 2.0
)

// updateBall advances the ball one tick: integrate, collide, score, clamp.
// Wall, net and paddle checks are independent and may all fire in one tick.
func (g *Game) updateBall(res *StepResult) {
	b := &g.ball
	cfg := g.cfg.Ball

	b.Pos = b.Pos.Add(b.Vel)
	b.Trail.Push(b.Pos)

	b.Vel.X += b.Spin * cfg.SpinCoupling
	b.Spin *= cfg.SpinDecay

	g.collideWalls()
	g.collideNet()
	g.collidePlayer()
	g.collideAI()

	if scorer := g.checkScore(); scorer != SideNone {
		res.Scored = scorer
		if winner := g.match.CheckWin(); winner != SideNone {
			res.Winner = winner
		}
	}

	b.ClampSpeed(cfg.MinSpeed, g.difficulty.MaxBallSpeed(g.match.Level))
}

func (g *Game) collideWalls() {
	b := &g.ball
	if b.Pos.X-b.Radius >= g.table.X && b.Pos.X+b.Radius <= g.table.Right() {
		return
	}
	b.Vel.X = -b.Vel.X * g.cfg.Ball.WallRestitution
	b.Spin = -b.Spin
	g.tableGlow = g.cfg.Table.GlowFrames
	g.emit(Effect{Kind: EffectWall, Pos: b.Pos, Color: WallColor, Intensity: wallIntensity})
}

func (g *Game) collideNet() {
	b := &g.ball
	netX := g.table.Center().X
	netH := g.cfg.Table.NetHeight
	if math.Abs(b.Pos.X-netX) >= b.Radius+g.cfg.Ball.NetClearance {
		return
	}
	if b.Pos.Y <= g.table.Y-netH || b.Pos.Y >= g.table.Bottom()+netH {
		return
	}
	b.Vel.X = -b.Vel.X * g.cfg.Ball.NetRestitution
	if b.Pos.Y < g.table.Center().Y {
		b.Vel.Y = -math.Abs(b.Vel.Y)
	} else {
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
	g.emit(Effect{Kind: EffectNet, Pos: b.Pos, Color: NetColor, Intensity: netIntensity})
}

// hitOffset returns where the ball struck the paddle, -1 at the left edge
// and 1 at the right edge.
func hitOffset(b *Ball, p *Paddle) float64 {
	return core.ClampF((b.Pos.X-p.CenterX())/(p.Width/2), -1, 1)
}

func (g *Game) collidePlayer() {
	b := &g.ball
	p := &g.player
	if b.Vel.Y <= 0 || !p.Box().OverlapsCircle(b.Pos, b.Radius) {
		return
	}
	cfg := g.cfg.Player

	b.Vel.Y = -math.Abs(b.Vel.Y) - g.cfg.Ball.PaddleRepulsion
	hit := hitOffset(b, p)
	paddleSpeed := (g.pointer.X - p.X - p.Width/2) * cfg.InputSpeedScale
	b.Vel.X += hit*cfg.HitOffsetKick + paddleSpeed*cfg.InputSpeedKick
	b.Spin = hit*cfg.HitOffsetSpin + paddleSpeed*cfg.InputSpeedSpin
	b.LastHit = SidePlayer

	if p.Energy > cfg.PowerHitThreshold {
		b.Vel = b.Vel.Scale(cfg.PowerHitBoost)
		p.AddEnergy(-cfg.PowerHitCost)
		g.emit(Effect{Kind: EffectPlayerPowerHit, Pos: b.Pos, Color: PlayerColor, Intensity: powerHitIntensity})
		return
	}
	g.emit(Effect{Kind: EffectPlayerHit, Pos: b.Pos, Color: PlayerColor, Intensity: hitIntensity})
}

func (g *Game) collideAI() {
	b := &g.ball
	p := &g.ai
	if b.Vel.Y >= 0 || !p.Box().OverlapsCircle(b.Pos, b.Radius) {
		return
	}
	cfg := g.cfg.AI

	b.Vel.Y = math.Abs(b.Vel.Y) + g.cfg.Ball.PaddleRepulsion
	hit := hitOffset(b, p)
	b.LastHit = SideAI

	s := g.rng.Float64()
	switch {
	case s < cfg.AggressiveChance:
		b.Vel.X += hit * cfg.AggressiveKick
		b.Spin = hit * cfg.AggressiveSpin
	case s < cfg.AggressiveChance+cfg.PlacementChance:
		b.Vel.X += randRange(g.rng, cfg.PlacementKick/2)
		b.Spin = randRange(g.rng, cfg.PlacementSpin/2)
	case p.Energy > cfg.PowerThreshold:
		b.Vel = b.Vel.Scale(cfg.PowerBoost)
		p.AddEnergy(-cfg.PowerCost)
		g.emit(Effect{Kind: EffectAIPowerHit, Pos: b.Pos, Color: AIColor, Intensity: aiPowerIntensity})
	}
	g.emit(Effect{Kind: EffectAIHit, Pos: b.Pos, Color: AIColor, Intensity: hitIntensity})
}

// checkScore awards a point once the ball leaves the arena vertically.
// At most one side scores per tick.
func (g *Game) checkScore() Side {
	b := &g.ball
	margin := g.cfg.Ball.ScoreMargin

	var scorer Side
	switch {
	case b.Pos.Y > g.arena.Bottom()+margin:
		scorer = SideAI
		g.match.Level = g.difficulty.AfterAIPoint(g.match.Level, b.LastHit == SidePlayer)
	case b.Pos.Y < g.arena.Y-margin:
		scorer = SidePlayer
		g.match.Level = g.difficulty.AfterPlayerPoint(g.match.Level)
	default:
		return SideNone
	}

	g.match.Award(scorer)
	g.emit(Effect{Kind: EffectScore, Pos: g.arena.Center(), Color: scorer.Color()})
	g.resetBall()
	return scorer
}
