package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/storage"
	"github.com/vovakirdan/neon-pong/internal/tabletennis"
)

// Options configures a game session.
type Options struct {
	Player     string         // Name stored with finished matches
	Difficulty string         // Preset name stored with finished matches
	Store      *storage.Store // Optional match history
	Logger     *log.Logger    // Optional match event log
}

// shake is the cosmetic screen offset. Each shake gets a new generation so
// an older revert never cancels a newer shake.
type shake struct {
	offset int
	gen    int
}

// Model is the Bubble Tea model for one table tennis session.
type Model struct {
	game       *tabletennis.Game
	screen     *core.Screen
	keys       *KeyMapper
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	pointer    core.Vec
	hasPointer bool
	shake      shake
	gameState  tabletennis.GameState
	matchStart uint64 // Tick the current match started at
	quitting   bool
	matchSaved bool // Whether the current finished match has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *tabletennis.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:      NewKeyMapper(),
		opts:      opts,
		logger:    logger,
		config:    cfg,
		pointer:   game.Arena().Center(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	gc := m.game.Config()
	m.logger.Info("session started",
		"seed", m.config.Seed,
		"fps", m.config.TickRate,
		"target", gc.Match.TargetScore,
		"skill", gc.AI.Skill)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if p, ok := MapMouse(msg, m.viewport()); ok {
			m.pointer = p
			m.hasPointer = true
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ShakeEndMsg:
		if msg.Gen == m.shake.gen {
			m.shake.offset = 0
		}
		return m, nil
	}

	return m, nil
}

func (m Model) viewport() tabletennis.Viewport {
	return tabletennis.NewViewport(m.game.Arena(), m.screen.Width(), m.screen.Height())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("session ended", "player", m.gameState.PlayerScore, "ai", m.gameState.AIScore)
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft:
		m.nudge(-NudgeUnits)
	case core.ActionRight:
		m.nudge(NudgeUnits)
	case core.ActionNone:
	default:
		if m.game.Apply(action) {
			m.logger.Debug("action", "action", action, "phase", m.game.State().Phase)
		}
		if action == core.ActionNewGame || action == core.ActionResetScore {
			m.matchSaved = false
			m.matchStart = m.game.State().Tick
		}
		m.gameState = m.game.State()
	}

	return m, nil
}

// nudge moves the pointer horizontally, keeping it inside the arena.
func (m *Model) nudge(dx float64) {
	arena := m.game.Arena()
	m.pointer.X = core.ClampF(m.pointer.X+dx, arena.X, arena.Right())
	m.hasPointer = true
}

// handleResize processes window resize events. The simulation runs in its
// own units, so only the screen changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := core.InputFrame{Pointer: m.pointer, HasPointer: m.hasPointer}
	result := m.game.Step(in)
	m.gameState = result.State

	m.logStep(result)
	if result.Winner != tabletennis.SideNone {
		m.saveMatch()
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if shakes(result.Effects) {
		m.shake.gen++
		// Alternate direction so consecutive shakes visibly jolt
		m.shake.offset = 1
		if m.shake.gen%2 == 0 {
			m.shake.offset = -1
		}
		cmds = append(cmds, shakeEndCmd(m.shake.gen))
	}

	return m, tea.Batch(cmds...)
}

func shakes(effects []tabletennis.Effect) bool {
	for _, e := range effects {
		if e.Shakes() {
			return true
		}
	}
	return false
}

// logStep writes the tick's match events to the session log.
func (m *Model) logStep(r tabletennis.StepResult) {
	for _, kind := range r.Collected {
		m.logger.Debug("power-up collected", "kind", kind)
	}
	if r.Expired != tabletennis.PowerUpNone {
		m.logger.Debug("power-up expired", "kind", r.Expired)
	}
	if r.Scored != tabletennis.SideNone {
		m.logger.Info("point",
			"side", r.Scored,
			"player", r.State.PlayerScore,
			"ai", r.State.AIScore,
			"level", r.State.Level)
	}
	if r.Winner != tabletennis.SideNone {
		m.logger.Info("match over",
			"winner", r.Winner,
			"player", r.State.PlayerScore,
			"ai", r.State.AIScore)
	}
}

// saveMatch records the finished match once.
func (m *Model) saveMatch() {
	if m.matchSaved || m.opts.Store == nil {
		return
	}
	m.matchSaved = true

	st := m.gameState
	rec, err := m.opts.Store.SaveMatch(storage.MatchRecord{
		Player:        m.opts.Player,
		PlayerScore:   st.PlayerScore,
		AIScore:       st.AIScore,
		Winner:        st.Winner.String(),
		Level:         st.Level,
		Difficulty:    m.opts.Difficulty,
		DurationTicks: int(st.Tick - m.matchStart), //nolint:gosec // ticks fit in int
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("cannot record match", "err", err)
		return
	}
	m.logger.Info("match recorded", "id", rec.MatchID)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderShaken(m.screen, m.shake.offset)
}

// Plain returns the current frame without colors, for snapshots and tests.
func (m Model) Plain() string {
	m.game.Render(m.screen)
	return m.screen.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(game *tabletennis.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer follows the mouse without a button held
	)

	_, err := p.Run()
	return err
}
