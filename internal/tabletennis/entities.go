package tabletennis

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Palette for the two sides and the table.
const (
	PlayerColor = core.ColorBrightCyan
	AIColor     = core.ColorBrightMagenta
	WallColor   = core.ColorBrightWhite
	NetColor    = core.ColorBrightMagenta
	BallColor   = core.ColorBrightWhite
)

// Side identifies who touched the ball, scored, or won.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

// String returns the side name used in logs and storage.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// Color returns the side's palette color.
func (s Side) Color() core.Color {
	switch s {
	case SidePlayer:
		return PlayerColor
	case SideAI:
		return AIColor
	default:
		return core.ColorDefault
	}
}

// Paddle is one of the two bats. X and Y are the top-left corner.
type Paddle struct {
	X, Y      float64
	Width     float64
	Height    float64
	Speed     float64 // Current speed, may be scaled by a power-up
	BaseSpeed float64
	Energy    float64
	MaxEnergy float64
	PowerUp   PowerUpKind
	Color     core.Color
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// AddEnergy changes energy by delta, keeping it within [0, MaxEnergy].
func (p *Paddle) AddEnergy(delta float64) {
	p.Energy = core.ClampF(p.Energy+delta, 0, p.MaxEnergy)
}

// Trail is a bounded history of ball positions, most recent last.
type Trail struct {
	points []core.Vec
	limit  int
}

// NewTrail creates a trail holding at most limit positions.
func NewTrail(limit int) Trail {
	return Trail{points: make([]core.Vec, 0, max(limit, 0)), limit: max(limit, 0)}
}

// Push appends a position, evicting the oldest once the trail is full.
func (t *Trail) Push(p core.Vec) {
	if t.limit == 0 {
		return
	}
	if len(t.points) == t.limit {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, p)
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy of the stored positions, oldest first.
func (t *Trail) Points() []core.Vec {
	out := make([]core.Vec, len(t.points))
	copy(out, t.points)
	return out
}

// Clear drops every stored position.
func (t *Trail) Clear() {
	t.points = t.points[:0]
}

// Ball is the single ball in play.
type Ball struct {
	Pos           core.Vec
	Vel           core.Vec
	Radius        float64
	BaseRadius    float64
	Spin          float64
	Trail         Trail
	LastHit       Side
	PowerUp       PowerUpKind
	PowerUpFrames int // Ticks left on the active power-up
	Glow          core.Color
}

// Speed returns the magnitude of the ball velocity.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// ClampSpeed rescales the velocity so its magnitude lies in [min, max].
// A ball at rest is served straight toward the player at min speed.
func (b *Ball) ClampSpeed(min, max float64) {
	speed := b.Speed()
	switch {
	case speed == 0 || !core.Finite(speed):
		b.Vel = core.Vec{X: 0, Y: min}
	case speed > max:
		b.Vel = b.Vel.Scale(max / speed)
	case speed < min:
		b.Vel = b.Vel.Scale(min / speed)
	}
}

// Rand is the random source the simulation draws from.
// *math/rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	Float64() float64
}

// randSign returns +1 or -1 with equal probability.
func randSign(rng Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// randRange returns a value uniformly drawn from (-half, half).
func randRange(rng Rand, half float64) float64 {
	return (rng.Float64() - 0.5) * 2 * half
}

// randAngle returns a rotation in [0, 2π).
func randAngle(rng Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}
