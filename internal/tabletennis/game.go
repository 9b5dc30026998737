// Package tabletennis implements a neon table tennis match against an AI
// opponent. The player paddle follows a pointer below the table, the AI
// defends the far side, and power-ups spawn on the table.
//
// The package is a pure simulation: it never logs, never blocks and owns no
// goroutines. Hosts drive it with Step once per tick and with Apply for
// discrete actions, then draw a Snapshot.
package tabletennis

import (
	"math/rand"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

// GameState is the match summary hosts act on.
type GameState struct {
	PlayerScore int
	AIScore     int
	Level       float64
	Phase       Phase
	Winner      Side
	Tick        uint64
}

// StepResult reports what happened during one tick.
type StepResult struct {
	State     GameState
	Effects   []Effect      // Cosmetic events in emission order
	Scored    Side          // Side that won a point this tick, if any
	Winner    Side          // Set on the tick the match ends
	Collected []PowerUpKind // Power-ups picked up this tick
	Expired   PowerUpKind   // Active power-up that ran out this tick
}

// Game is the simulation context. All match state lives here.
type Game struct {
	cfg        config.TableTennisConfig
	difficulty config.Difficulty
	runtime    core.RuntimeConfig
	rng        Rand

	arena core.Box
	table core.Box

	player    Paddle
	ai        Paddle
	ball      Ball
	powerUps  *PowerUpField
	particles *ParticleSystem
	match     Match

	pointer   core.Vec
	aiTarget  float64
	tableGlow int
	tick      uint64
	effects   []Effect
}

// New creates a game from a validated configuration. Call Reset before the
// first Step.
func New(cfg config.TableTennisConfig) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficulty(cfg.Difficulty),
		arena:      core.Box{W: cfg.Arena.Width, H: cfg.Arena.Height},
		table:      core.Box{X: cfg.Table.X, Y: cfg.Table.Y, W: cfg.Table.Width, H: cfg.Table.Height},
		powerUps:   NewPowerUpField(cfg.PowerUps),
		particles:  NewParticleSystem(cfg.Particles),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "neonpong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Pong"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.TableTennisConfig {
	return g.cfg
}

// Arena returns the simulation surface.
func (g *Game) Arena() core.Box {
	return g.arena
}

// Reset starts a fresh match seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	pc := g.cfg.Paddles
	startX := g.table.Center().X - pc.Width/2
	g.player = Paddle{
		X: startX, Y: g.table.Bottom() + pc.PlayerOffset,
		Width: pc.Width, Height: pc.Height,
		Speed: g.cfg.Player.Speed, BaseSpeed: g.cfg.Player.Speed,
		Energy: pc.MaxEnergy, MaxEnergy: pc.MaxEnergy,
		Color: PlayerColor,
	}
	g.ai = Paddle{
		X: startX, Y: g.table.Y - pc.AIOffset,
		Width: pc.Width, Height: pc.Height,
		Speed: g.cfg.AI.Speed, BaseSpeed: g.cfg.AI.Speed,
		Energy: pc.MaxEnergy, MaxEnergy: pc.MaxEnergy,
		Color: AIColor,
	}
	g.ball = Ball{
		Radius:     g.cfg.Ball.Radius,
		BaseRadius: g.cfg.Ball.Radius,
		Trail:      NewTrail(g.cfg.Ball.TrailLength),
		Glow:       BallColor,
	}

	g.match = NewMatch(g.cfg.Match.TargetScore, g.cfg.Match.WinMargin, g.difficulty.InitialLevel())
	g.pointer = g.arena.Center()
	g.aiTarget = g.ai.CenterX()
	g.tableGlow = 0
	g.tick = 0
	g.powerUps.Reset()
	g.particles.Clear()
	g.resetBall()
}

// SetRand replaces the random source. Tests use it to script draws.
func (g *Game) SetRand(r Rand) {
	g.rng = r
}

// resetBall serves a new ball from the arena center in a random diagonal
// and reverts any active power-up.
func (g *Game) resetBall() {
	g.deactivatePowerUp()

	b := &g.ball
	sx, sy := g.cfg.Ball.ServeSpeedX, g.cfg.Ball.ServeSpeedY
	b.Pos = g.arena.Center()
	b.Vel.X = randSign(g.rng) * (sx.Min + g.rng.Float64()*sx.Spread)
	b.Vel.Y = randSign(g.rng) * (sy.Min + g.rng.Float64()*sy.Spread)
	b.Spin = 0
	b.LastHit = SideNone
	b.Trail.Clear()
}

// Step advances the simulation by one tick.
// Paused matches do not change. Ended matches keep the paddles and particles
// moving while the ball and power-ups stay frozen.
func (g *Game) Step(in core.InputFrame) StepResult {
	if in.HasPointer && core.Finite(in.Pointer.X) && core.Finite(in.Pointer.Y) {
		g.pointer = in.Pointer
	}
	if g.match.Paused() {
		return StepResult{State: g.State()}
	}

	g.effects = nil
	res := StepResult{}
	g.tick++

	g.updatePlayer()
	g.updateAI()
	if g.match.Playing() {
		g.updateBall(&res)
	}
	g.particles.Update()
	if g.match.Playing() {
		g.updatePowerUps(&res)
	}
	if g.tableGlow > 0 {
		g.tableGlow--
	}

	res.Effects = g.effects
	res.State = g.State()
	return res
}

// updatePowerUps runs expiry, spawning and collection for one tick.
func (g *Game) updatePowerUps(res *StepResult) {
	res.Expired = g.tickPowerUpTimer()
	g.powerUps.TrySpawn(g.rng, g.table)
	g.powerUps.Age()

	for _, p := range g.powerUps.Collect(&g.ball) {
		res.Collected = append(res.Collected, p.Kind)
		g.emit(Effect{Kind: EffectPowerUp, Pos: p.Pos, Color: p.Kind.Color(), Intensity: powerUpIntensity})
		g.activatePowerUp(p.Kind, g.ball.LastHit)
	}
	if len(res.Collected) > 0 {
		g.ball.ClampSpeed(g.cfg.Ball.MinSpeed, g.difficulty.MaxBallSpeed(g.match.Level))
	}
}

// Apply performs a discrete action and reports whether it changed anything.
// Pointer nudges and quitting are handled by the host.
func (g *Game) Apply(a core.Action) bool {
	switch a {
	case core.ActionNewGame:
		g.NewGame()
		return true
	case core.ActionPause:
		return g.TogglePause()
	case core.ActionResetScore:
		g.ResetScore()
		return true
	default:
		return false
	}
}

// TogglePause pauses or resumes play. It has no effect once a side has won.
func (g *Game) TogglePause() bool {
	return g.match.TogglePause()
}

// NewGame serves a fresh ball and clears power-ups and particles. Scores and
// level carry over.
func (g *Game) NewGame() {
	g.resetBall()
	g.powerUps.Reset()
	g.particles.Clear()
	g.match.Restart()
}

// ResetScore zeroes both scores, restores the starting level and begins a
// new game.
func (g *Game) ResetScore() {
	g.match.ResetScore(g.difficulty.InitialLevel())
	g.NewGame()
}

// State returns the current match summary.
func (g *Game) State() GameState {
	return GameState{
		PlayerScore: g.match.PlayerScore,
		AIScore:     g.match.AIScore,
		Level:       g.match.Level,
		Phase:       g.match.Phase(),
		Winner:      g.match.Winner(),
		Tick:        g.tick,
	}
}
