package tabletennis

// Phase is the match lifecycle state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// WinnerOf returns the side that has reached target with at least margin
// points of lead, or SideNone.
func WinnerOf(player, ai, target, margin int) Side {
	switch {
	case player >= target && player-ai >= margin:
		return SidePlayer
	case ai >= target && ai-player >= margin:
		return SideAI
	default:
		return SideNone
	}
}

// Match holds score, level and phase. The winner is set exactly when the
// phase is PhaseEnded.
type Match struct {
	PlayerScore int
	AIScore     int
	Level       float64
	TargetScore int
	WinMargin   int

	phase  Phase
	winner Side
}

// NewMatch creates a match in play with zero scores.
func NewMatch(target, margin int, level float64) Match {
	return Match{TargetScore: target, WinMargin: margin, Level: level}
}

// Phase returns the current phase.
func (m *Match) Phase() Phase { return m.phase }

// Winner returns the winning side, SideNone unless ended.
func (m *Match) Winner() Side { return m.winner }

// Playing reports whether the ball is live.
func (m *Match) Playing() bool { return m.phase == PhasePlaying }

// Paused reports whether the match is paused.
func (m *Match) Paused() bool { return m.phase == PhasePaused }

// Ended reports whether a side has won.
func (m *Match) Ended() bool { return m.phase == PhaseEnded }

// TogglePause switches between playing and paused. It is ignored once the
// match has ended and reports whether the phase changed.
func (m *Match) TogglePause() bool {
	switch m.phase {
	case PhasePlaying:
		m.phase = PhasePaused
	case PhasePaused:
		m.phase = PhasePlaying
	default:
		return false
	}
	return true
}

// Award adds a point to side.
func (m *Match) Award(side Side) {
	switch side {
	case SidePlayer:
		m.PlayerScore++
	case SideAI:
		m.AIScore++
	}
}

// CheckWin ends the match when a side has won and returns that side.
func (m *Match) CheckWin() Side {
	if m.phase == PhaseEnded {
		return m.winner
	}
	w := WinnerOf(m.PlayerScore, m.AIScore, m.TargetScore, m.WinMargin)
	if w != SideNone {
		m.phase = PhaseEnded
		m.winner = w
	}
	return w
}

// Restart puts the match back in play, keeping score and level.
func (m *Match) Restart() {
	m.phase = PhasePlaying
	m.winner = SideNone
}

// ResetScore zeroes both scores, sets the level and restarts.
func (m *Match) ResetScore(level float64) {
	m.PlayerScore = 0
	m.AIScore = 0
	m.Level = level
	m.Restart()
}
