package tabletennis

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// PaddleState is a paddle as seen by a renderer.
type PaddleState struct {
	X, Y          float64
	Width, Height float64
	Energy        float64
	MaxEnergy     float64
	PowerUp       PowerUpKind
	Color         core.Color
}

// BallState is the ball as seen by a renderer.
type BallState struct {
	Pos           core.Vec
	Vel           core.Vec
	Radius        float64
	BaseRadius    float64
	Spin          float64
	Trail         []core.Vec
	LastHit       Side
	PowerUp       PowerUpKind
	PowerUpFrames int
	Glow          core.Color
}

// Snapshot is a read-only copy of everything needed to draw one frame.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	Tick      uint64
	Arena     core.Box
	Table     core.Box
	NetHeight float64

	Player PaddleState
	AI     PaddleState
	Ball   BallState

	PowerUps  []PowerUp
	Particles []Particle

	PlayerScore int
	AIScore     int
	Level       float64
	TargetScore int
	Phase       Phase
	Winner      Side

	TableGlow int
	AITarget  float64
}

func paddleState(p *Paddle) PaddleState {
	return PaddleState{
		X: p.X, Y: p.Y,
		Width: p.Width, Height: p.Height,
		Energy: p.Energy, MaxEnergy: p.MaxEnergy,
		PowerUp: p.PowerUp,
		Color:   p.Color,
	}
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	b := &g.ball
	return Snapshot{
		Tick:      g.tick,
		Arena:     g.arena,
		Table:     g.table,
		NetHeight: g.cfg.Table.NetHeight,
		Player:    paddleState(&g.player),
		AI:        paddleState(&g.ai),
		Ball: BallState{
			Pos:           b.Pos,
			Vel:           b.Vel,
			Radius:        b.Radius,
			BaseRadius:    b.BaseRadius,
			Spin:          b.Spin,
			Trail:         b.Trail.Points(),
			LastHit:       b.LastHit,
			PowerUp:       b.PowerUp,
			PowerUpFrames: b.PowerUpFrames,
			Glow:          b.Glow,
		},
		PowerUps:    g.powerUps.All(),
		Particles:   g.particles.All(),
		PlayerScore: g.match.PlayerScore,
		AIScore:     g.match.AIScore,
		Level:       g.match.Level,
		TargetScore: g.match.TargetScore,
		Phase:       g.match.Phase(),
		Winner:      g.match.Winner(),
		TableGlow:   g.tableGlow,
		AITarget:    g.aiTarget,
	}
}

// Hash returns a digest of the simulation-relevant fields. Two games fed the
// same seed and inputs produce equal hashes on every tick.
func (s *Snapshot) Hash() uint64 {
	h := snapshotHasher{d: xxhash.New()}

	h.putUint(s.Tick)
	h.putPaddle(s.Player)
	h.putPaddle(s.AI)

	h.putVec(s.Ball.Pos)
	h.putVec(s.Ball.Vel)
	h.putFloat(s.Ball.Radius)
	h.putFloat(s.Ball.Spin)
	h.putInt(int(s.Ball.LastHit))
	h.putInt(int(s.Ball.PowerUp))
	h.putInt(s.Ball.PowerUpFrames)
	h.putInt(len(s.Ball.Trail))
	for _, p := range s.Ball.Trail {
		h.putVec(p)
	}

	h.putInt(len(s.PowerUps))
	for _, p := range s.PowerUps {
		h.putInt(p.ID)
		h.putInt(int(p.Kind))
		h.putVec(p.Pos)
		h.putInt(p.Life)
	}
	h.putInt(len(s.Particles))
	for _, p := range s.Particles {
		h.putVec(p.Pos)
		h.putFloat(p.Life)
	}

	h.putInt(s.PlayerScore)
	h.putInt(s.AIScore)
	h.putFloat(s.Level)
	h.putInt(int(s.Phase))
	h.putInt(int(s.Winner))
	h.putInt(s.TableGlow)
	h.putFloat(s.AITarget)

	return h.d.Sum64()
}

type snapshotHasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *snapshotHasher) putUint(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *snapshotHasher) putInt(v int) {
	h.putUint(uint64(int64(v))) //nolint:gosec // bit pattern only
}

func (h *snapshotHasher) putFloat(v float64) {
	h.putUint(math.Float64bits(v))
}

func (h *snapshotHasher) putVec(v core.Vec) {
	h.putFloat(v.X)
	h.putFloat(v.Y)
}

func (h *snapshotHasher) putPaddle(p PaddleState) {
	h.putFloat(p.X)
	h.putFloat(p.Y)
	h.putFloat(p.Energy)
	h.putInt(int(p.PowerUp))
}
