package tabletennis

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '█'
	BallChar     = '●'
	BigBallChar  = 'O'
	NetChar      = '┃'
	CenterChar   = '┄'
	TrailChar    = '·'
	EnergyFull   = '█'
	EnergyEmpty  = '░'
	energyBarLen = 10
)

// Minimum screen size the field is drawn at.
const (
	MinScreenW = 24
	MinScreenH = 10
)

// hudTop and hudBottom are the rows reserved for the score line and the
// status lines.
const (
	hudTop    = 1
	hudBottom = 2
)

// Viewport maps simulation units onto screen cells. The field fills the
// screen between the HUD rows.
type Viewport struct {
	arena core.Box
	cols  int
	rows  int
}

// NewViewport creates a mapping of arena onto a width x height screen.
func NewViewport(arena core.Box, width, height int) Viewport {
	return Viewport{
		arena: arena,
		cols:  max(width, 1),
		rows:  max(height-hudTop-hudBottom, 1),
	}
}

// ToCell returns the cell containing p.
func (v Viewport) ToCell(p core.Vec) (int, int) {
	x := int(math.Floor((p.X - v.arena.X) / v.arena.W * float64(v.cols)))
	y := int(math.Floor((p.Y - v.arena.Y) / v.arena.H * float64(v.rows)))
	return x, y + hudTop
}

// ToArena returns the simulation point at the center of cell (x, y).
func (v Viewport) ToArena(x, y int) core.Vec {
	return core.Vec{
		X: v.arena.X + (float64(x)+0.5)/float64(v.cols)*v.arena.W,
		Y: v.arena.Y + (float64(y-hudTop)+0.5)/float64(v.rows)*v.arena.H,
	}
}

// UnitsPerCol returns how many simulation units one column spans.
func (v Viewport) UnitsPerCol() float64 {
	return v.arena.W / float64(v.cols)
}

// CellRect returns the cells covered by b, at least one cell in each
// direction.
func (v Viewport) CellRect(b core.Box) core.Rect {
	x0, y0 := v.ToCell(core.Vec{X: b.X, Y: b.Y})
	x1, y1 := v.ToCell(core.Vec{X: b.Right(), Y: b.Bottom()})
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot())
}

// Render draws a snapshot into dst.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "terminal too small", core.ColorBrightRed)
		return
	}
	vp := NewViewport(s.Arena, w, h)

	drawTable(dst, vp, s)
	for _, p := range s.PowerUps {
		x, y := vp.ToCell(p.Pos)
		dst.SetColor(x, y, p.Kind.Glyph(), p.Kind.Color())
	}
	drawTrail(dst, vp, s.Ball)
	for _, p := range s.Particles {
		x, y := vp.ToCell(p.Pos)
		glyph := p.Shape.Glyph()
		if p.Life < 0.3 {
			glyph = '.'
		}
		dst.SetColor(x, y, glyph, p.Color)
	}
	drawPaddle(dst, vp, s.AI)
	drawPaddle(dst, vp, s.Player)

	bx, by := vp.ToCell(s.Ball.Pos)
	ball := BallChar
	if s.Ball.Radius > s.Ball.BaseRadius {
		ball = BigBallChar
	}
	dst.SetColor(bx, by, ball, s.Ball.Glow)

	drawHUD(dst, s)

	switch s.Phase {
	case PhasePaused:
		drawCenteredMessage(dst, "SYSTEM PAUSED", "Press P to resume", core.ColorBrightYellow)
	case PhaseEnded:
		title := "PLAYER WINS!"
		if s.Winner == SideAI {
			title = "CYBER AI WINS!"
		}
		drawCenteredMessage(dst, title,
			fmt.Sprintf("Final Score: %d - %d  |  Press N for a new match", s.PlayerScore, s.AIScore),
			s.Winner.Color())
	}
}

func drawTable(dst *core.Screen, vp Viewport, s Snapshot) {
	border := core.ColorCyan
	if s.TableGlow > 0 {
		border = core.ColorBrightWhite
	}
	r := vp.CellRect(s.Table)
	dst.DrawBox(r, border)

	_, midY := vp.ToCell(s.Table.Center())
	dst.DrawHLine(r.X+1, midY, r.W-2, CenterChar, core.ColorDarkGray)

	netX, netTop := vp.ToCell(core.Vec{X: s.Table.Center().X, Y: s.Table.Y - s.NetHeight})
	_, netBottom := vp.ToCell(core.Vec{X: s.Table.Center().X, Y: s.Table.Bottom() + s.NetHeight})
	dst.DrawVLine(netX, netTop, netBottom-netTop+1, NetChar, NetColor)
}

func drawTrail(dst *core.Screen, vp Viewport, b BallState) {
	n := len(b.Trail)
	for i, p := range b.Trail {
		c := b.Glow
		if i < n/2 {
			c = core.ColorDarkGray
		}
		x, y := vp.ToCell(p)
		dst.SetColor(x, y, TrailChar, c)
	}
}

func drawPaddle(dst *core.Screen, vp Viewport, p PaddleState) {
	r := vp.CellRect(core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height})
	color := p.Color
	if p.PowerUp != PowerUpNone {
		color = p.PowerUp.Color()
	}
	dst.DrawRect(r, PaddleChar, color)
}

func drawHUD(dst *core.Screen, s Snapshot) {
	w, h := dst.Width(), dst.Height()

	left := fmt.Sprintf("PLAYER %d", s.PlayerScore)
	right := fmt.Sprintf("%d CYBER AI", s.AIScore)
	dst.DrawText(1, 0, left, PlayerColor)
	dst.DrawText(w-len(right)-1, 0, right, AIColor)
	dst.DrawTextCentered(0, fmt.Sprintf("FIRST TO %d", s.TargetScore), core.ColorGray)

	status := fmt.Sprintf("VEL %.1f  LVL %.1f", s.Ball.Vel.Len(), s.Level)
	dst.DrawText(1, h-2, status, core.ColorGray)

	ai := "AI " + energyBar(s.AI)
	dst.DrawText(w-len([]rune(ai))-1, h-2, ai, AIColor)
	dst.DrawText(1, h-1, "P  "+energyBar(s.Player), PlayerColor)

	if s.Ball.PowerUp != PowerUpNone {
		secs := int(math.Ceil(float64(s.Ball.PowerUpFrames) / 60))
		active := fmt.Sprintf("%s %ds", strings.ToUpper(s.Ball.PowerUp.String()), secs)
		dst.DrawTextCentered(h-1, active, s.Ball.PowerUp.Color())
	}
}

func energyBar(p PaddleState) string {
	filled := 0
	if p.MaxEnergy > 0 {
		filled = int(math.Round(p.Energy / p.MaxEnergy * energyBarLen))
	}
	filled = core.Clamp(filled, 0, energyBarLen)
	return strings.Repeat(string(EnergyFull), filled) + strings.Repeat(string(EnergyEmpty), energyBarLen-filled)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawText(max(boxX+(boxW-len(subtitle))/2, boxX+1), boxY+3, subtitle, core.ColorWhite)
}
