package tabletennis

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

// PowerUpKind identifies a collectible modifier.
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpSpeed
	PowerUpSize
	PowerUpMulti
	PowerUpFreeze
	powerUpKindCount
)

type powerUpInfo struct {
	name  string
	glyph rune
	color core.Color
}

var powerUpTable = [...]powerUpInfo{
	PowerUpNone:   {name: "none", glyph: ' ', color: BallColor},
	PowerUpSpeed:  {name: "speed", glyph: '»', color: core.ColorBrightRed},
	PowerUpSize:   {name: "size", glyph: 'O', color: core.ColorCyan},
	PowerUpMulti:  {name: "multi", glyph: '¤', color: core.ColorBrightYellow},
	PowerUpFreeze: {name: "freeze", glyph: '*', color: core.ColorBrightGreen},
}

// Every kind needs exactly one descriptor.
var (
	_ [len(powerUpTable) - int(powerUpKindCount)]struct{}
	_ [int(powerUpKindCount) - len(powerUpTable)]struct{}
)

func (k PowerUpKind) info() powerUpInfo {
	if k < 0 || k >= powerUpKindCount {
		return powerUpTable[PowerUpNone]
	}
	return powerUpTable[k]
}

// String returns the kind name.
func (k PowerUpKind) String() string { return k.info().name }

// Glyph returns the rune drawn for an uncollected power-up.
func (k PowerUpKind) Glyph() rune { return k.info().glyph }

// Color returns the kind color, also used as the ball glow while active.
func (k PowerUpKind) Color() core.Color { return k.info().color }

// PowerUpKinds lists every collectible kind.
func PowerUpKinds() []PowerUpKind {
	return []PowerUpKind{PowerUpSpeed, PowerUpSize, PowerUpMulti, PowerUpFreeze}
}

// PowerUp is a collectible lying on the table.
type PowerUp struct {
	ID        int
	Kind      PowerUpKind
	Pos       core.Vec
	Radius    float64
	Life      int // Ticks until it disappears uncollected
	Angle     float64
	Collected bool
}

// Touches reports whether the ball overlaps the power-up.
func (p *PowerUp) Touches(b *Ball) bool {
	return p.Pos.Sub(b.Pos).Len() < p.Radius+b.Radius
}

// PowerUpField owns the power-ups alive on the table.
type PowerUpField struct {
	cfg    config.PowerUpsConfig
	live   []*PowerUp
	nextID int
}

// NewPowerUpField creates an empty field.
func NewPowerUpField(cfg config.PowerUpsConfig) *PowerUpField {
	return &PowerUpField{cfg: cfg}
}

// Reset removes every power-up.
func (f *PowerUpField) Reset() {
	f.live = f.live[:0]
}

// Len returns the number of uncollected power-ups.
func (f *PowerUpField) Len() int {
	return len(f.live)
}

// All returns a copy of the live power-ups.
func (f *PowerUpField) All() []PowerUp {
	out := make([]PowerUp, len(f.live))
	for i, p := range f.live {
		out[i] = *p
	}
	return out
}

// TrySpawn rolls for a new power-up somewhere on the table.
// It returns nil when the field is full or the roll fails.
func (f *PowerUpField) TrySpawn(rng Rand, table core.Box) *PowerUp {
	if len(f.live) >= f.cfg.MaxAlive {
		return nil
	}
	if rng.Float64() >= f.cfg.SpawnChance {
		return nil
	}

	kinds := PowerUpKinds()
	idx := min(int(rng.Float64()*float64(len(kinds))), len(kinds)-1)
	p := &PowerUp{
		ID:     f.nextID,
		Kind:   kinds[idx],
		Pos:    core.Vec{X: table.X + rng.Float64()*table.W, Y: table.Y + rng.Float64()*table.H},
		Radius: f.cfg.Radius,
		Life:   f.cfg.Lifetime,
	}
	f.nextID++
	f.live = append(f.live, p)
	return p
}

// Age advances rotation and lifetime, dropping expired power-ups.
func (f *PowerUpField) Age() {
	kept := f.live[:0]
	for _, p := range f.live {
		p.Life--
		p.Angle = math.Mod(p.Angle+0.1, 2*math.Pi)
		if p.Life > 0 && !p.Collected {
			kept = append(kept, p)
		}
	}
	clear(f.live[len(kept):])
	f.live = kept
}

// Collect marks and removes every power-up the ball touches.
// An instance is returned at most once.
func (f *PowerUpField) Collect(b *Ball) []PowerUp {
	var got []PowerUp
	kept := f.live[:0]
	for _, p := range f.live {
		if p.Collected {
			continue
		}
		if p.Touches(b) {
			p.Collected = true
			got = append(got, *p)
			continue
		}
		kept = append(kept, p)
	}
	clear(f.live[len(kept):])
	f.live = kept
	return got
}

// activatePowerUp applies kind to the ball and the game. An effect that is
// already running is reverted first so modifiers never stack.
func (g *Game) activatePowerUp(kind PowerUpKind, by Side) {
	g.deactivatePowerUp()

	cfg := g.cfg.PowerUps
	g.ball.PowerUp = kind
	g.ball.PowerUpFrames = cfg.Duration
	g.ball.Glow = kind.Color()

	switch by {
	case SideAI:
		g.ai.PowerUp = kind
	default:
		g.player.PowerUp = kind
	}

	switch kind {
	case PowerUpSpeed:
		g.ball.Vel = g.ball.Vel.Scale(cfg.SpeedBoost)
	case PowerUpSize:
		g.ball.Radius = g.ball.BaseRadius * cfg.SizeScale
	case PowerUpFreeze:
		g.ai.Speed = g.ai.BaseSpeed * cfg.FreezeScale
	case PowerUpMulti:
		// Cosmetic: glow only
	}
}

// deactivatePowerUp reverts whatever the active power-up changed.
func (g *Game) deactivatePowerUp() {
	g.ball.Radius = g.ball.BaseRadius
	g.ai.Speed = g.ai.BaseSpeed
	g.ball.PowerUp = PowerUpNone
	g.ball.PowerUpFrames = 0
	g.ball.Glow = BallColor
	g.player.PowerUp = PowerUpNone
	g.ai.PowerUp = PowerUpNone
}

// tickPowerUpTimer counts down the active power-up, returning the kind that
// expired on this tick or PowerUpNone.
func (g *Game) tickPowerUpTimer() PowerUpKind {
	if g.ball.PowerUp == PowerUpNone {
		return PowerUpNone
	}
	g.ball.PowerUpFrames--
	if g.ball.PowerUpFrames > 0 {
		return PowerUpNone
	}
	kind := g.ball.PowerUp
	g.deactivatePowerUp()
	return kind
}
