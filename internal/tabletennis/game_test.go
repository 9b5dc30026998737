package tabletennis

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

// constRand always returns the same draw.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// scriptedRand replays vals, then repeats the last one.
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultTableTennisConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// sweep returns a pointer that drifts across the table and back.
func sweep(tick int) core.InputFrame {
	return core.NewInputFrame(400+330*math.Sin(float64(tick)/37), 500)
}

func TestNewGameStartsCentered(t *testing.T) {
	g := newTestGame(t, 1)

	if g.ID() != "neonpong" {
		t.Errorf("ID() = %q, expected neonpong", g.ID())
	}
	s := g.Snapshot()
	if s.Player.X != 355 || s.AI.X != 355 {
		t.Errorf("paddles should start centered at x=355, got player=%f ai=%f", s.Player.X, s.AI.X)
	}
	if s.Player.Y != 430 || s.AI.Y != 156 {
		t.Errorf("paddle rows = (%f, %f), expected (430, 156)", s.Player.Y, s.AI.Y)
	}
	if s.Player.Energy != 100 || s.AI.Energy != 100 {
		t.Errorf("paddles should start with full energy")
	}
	if s.Phase != PhasePlaying || s.Winner != SideNone {
		t.Errorf("phase = %v winner = %v, expected playing/none", s.Phase, s.Winner)
	}
	if s.Level != 1 {
		t.Errorf("Level = %f, expected 1", s.Level)
	}
}

func TestInvariantsHoldOverLongPlay(t *testing.T) {
	cfg := config.DefaultTableTennisConfig()
	d := config.NewDifficulty(cfg.Difficulty)
	minX := cfg.Table.X
	maxX := cfg.Table.X + cfg.Table.Width - cfg.Paddles.Width

	for seed := int64(1); seed <= 4; seed++ {
		g := newTestGame(t, seed)
		for i := range 6000 {
			g.Step(sweep(i))
			s := g.Snapshot()

			for _, p := range []PaddleState{s.Player, s.AI} {
				if p.X < minX || p.X > maxX {
					t.Fatalf("seed %d tick %d: paddle x %f outside [%f, %f]", seed, i, p.X, minX, maxX)
				}
				if p.Energy < 0 || p.Energy > 100 {
					t.Fatalf("seed %d tick %d: energy %f outside [0, 100]", seed, i, p.Energy)
				}
			}

			if s.Phase != PhaseEnded {
				speed := s.Ball.Vel.Len()
				if speed < cfg.Ball.MinSpeed-1e-9 || speed > d.MaxBallSpeed(s.Level)+1e-9 {
					t.Fatalf("seed %d tick %d: ball speed %f outside [%f, %f]",
						seed, i, speed, cfg.Ball.MinSpeed, d.MaxBallSpeed(s.Level))
				}
			}

			if (s.Winner != SideNone) != (s.Phase == PhaseEnded) {
				t.Fatalf("seed %d tick %d: winner %v with phase %v", seed, i, s.Winner, s.Phase)
			}
			if len(s.Ball.Trail) > cfg.Ball.TrailLength {
				t.Fatalf("seed %d tick %d: trail length %d", seed, i, len(s.Ball.Trail))
			}
			if len(s.PowerUps) > cfg.PowerUps.MaxAlive {
				t.Fatalf("seed %d tick %d: %d power-ups alive", seed, i, len(s.PowerUps))
			}

			if s.Phase == PhaseEnded {
				g.ResetScore()
			}
		}
	}
}

func TestSameSeedSameHashes(t *testing.T) {
	a := newTestGame(t, 99)
	b := newTestGame(t, 99)

	for i := range 3000 {
		a.Step(sweep(i))
		b.Step(sweep(i))
		sa, sb := a.Snapshot(), b.Snapshot()
		if sa.Hash() != sb.Hash() {
			t.Fatalf("tick %d: hashes diverged", i)
		}
		if i == 1500 {
			a.Apply(core.ActionNewGame)
			b.Apply(core.ActionNewGame)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := newTestGame(t, 1)
	b := newTestGame(t, 2)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("different seeds should serve different balls")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 3)
	for i := range 20 {
		g.Step(sweep(i))
	}

	s := g.Snapshot()
	if len(s.Ball.Trail) == 0 {
		t.Fatal("expected a trail after 20 ticks")
	}
	before := s.Hash()
	s.Ball.Trail[0] = core.Vec{X: -1, Y: -1}

	again := g.Snapshot()
	if again.Hash() != before {
		t.Error("mutating a snapshot slice changed the game")
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g := newTestGame(t, 5)
	for i := range 10 {
		g.Step(sweep(i))
	}

	if !g.Apply(core.ActionPause) {
		t.Fatal("Apply(Pause) should change a playing match")
	}
	snap := g.Snapshot()
	before := snap.Hash()
	for i := range 30 {
		res := g.Step(sweep(i))
		if len(res.Effects) != 0 {
			t.Fatal("paused step emitted effects")
		}
	}
	snap = g.Snapshot()
	if snap.Hash() != before {
		t.Error("state changed while paused")
	}

	g.Apply(core.ActionPause)
	if g.State().Phase != PhasePlaying {
		t.Errorf("phase = %v after second toggle, expected playing", g.State().Phase)
	}
}

// winPoint puts the ball past the AI so the player scores on the next step.
func winPoint(g *Game) {
	g.ball.Pos = core.Vec{X: 400, Y: -60}
	g.ball.Vel = core.Vec{X: 0, Y: -5}
}

func TestEndedMatchFreezesBallButNotPaddles(t *testing.T) {
	g := newTestGame(t, 6)
	g.SetRand(constRand(0.9))
	g.match.PlayerScore = 10

	winPoint(g)
	res := g.Step(core.NewInputFrame(400, 500))
	if res.Scored != SidePlayer || res.Winner != SidePlayer {
		t.Fatalf("Scored = %v Winner = %v, expected player/player", res.Scored, res.Winner)
	}
	if g.State().Phase != PhaseEnded {
		t.Fatalf("phase = %v, expected ended", g.State().Phase)
	}

	if g.Apply(core.ActionPause) {
		t.Error("TogglePause should be ignored once ended")
	}

	g.powerUps.live = append(g.powerUps.live,
		&PowerUp{ID: 3, Kind: PowerUpFreeze, Pos: core.Vec{X: 150, Y: 250}, Radius: 15, Life: 2})
	ballBefore := g.ball.Pos
	playerBefore := g.player.X
	for range 5 {
		g.Step(core.NewInputFrame(700, 500))
	}
	if g.ball.Pos != ballBefore {
		t.Error("ball moved after the match ended")
	}
	if ups := g.powerUps.All(); len(ups) != 1 || ups[0].Life != 2 {
		t.Errorf("power-ups = %+v, expected them frozen after the match ended", ups)
	}
	if g.player.X == playerBefore {
		t.Error("player paddle should keep following the pointer after the match ended")
	}

	g.Apply(core.ActionNewGame)
	st := g.State()
	if st.Phase != PhasePlaying || st.Winner != SideNone {
		t.Errorf("after NewGame phase = %v winner = %v", st.Phase, st.Winner)
	}
	if st.PlayerScore != 11 {
		t.Errorf("NewGame should keep the score, got %d", st.PlayerScore)
	}

	g.Apply(core.ActionResetScore)
	st = g.State()
	if st.PlayerScore != 0 || st.AIScore != 0 || st.Level != 1 {
		t.Errorf("after ResetScore got %d-%d level %f", st.PlayerScore, st.AIScore, st.Level)
	}
}

func TestNewGameClearsPowerUpsAndParticles(t *testing.T) {
	g := newTestGame(t, 7)
	g.powerUps.live = append(g.powerUps.live, &PowerUp{Kind: PowerUpSize, Pos: core.Vec{X: 100, Y: 300}, Radius: 15, Life: 300})
	g.particles.Burst(constRand(0.5), core.Vec{X: 100, Y: 300}, core.ColorBrightRed, 1)
	g.activatePowerUp(PowerUpFreeze, SidePlayer)

	g.NewGame()

	if g.powerUps.Len() != 0 || g.particles.Len() != 0 {
		t.Errorf("NewGame left %d power-ups and %d particles", g.powerUps.Len(), g.particles.Len())
	}
	if g.ai.Speed != g.ai.BaseSpeed || g.player.PowerUp != PowerUpNone || g.ball.PowerUp != PowerUpNone {
		t.Error("NewGame should clear power-up tags and restore AI speed")
	}
}

func TestApplyIgnoresHostActions(t *testing.T) {
	g := newTestGame(t, 8)
	for _, a := range []core.Action{core.ActionNone, core.ActionLeft, core.ActionRight, core.ActionQuit} {
		if g.Apply(a) {
			t.Errorf("Apply(%v) = true, expected false", a)
		}
	}
}

func TestNonFinitePointerIgnored(t *testing.T) {
	g := newTestGame(t, 9)
	g.Step(core.NewInputFrame(math.NaN(), 0))
	g.Step(core.NewInputFrame(math.Inf(1), 0))

	if !core.Finite(g.player.X) {
		t.Fatalf("player x = %f after non-finite pointer", g.player.X)
	}
	if g.pointer != g.arena.Center() {
		t.Errorf("pointer = %v, expected the untouched default", g.pointer)
	}
}
