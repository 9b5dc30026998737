package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-pong/internal/storage"
)

// History layout constants
const (
	minWidthForStats = 80 // Minimum width to show the stats sidebar
	statsWidth       = 24 // Width of the stats sidebar
)

// HistoryFilter selects which matches the history table lists.
type HistoryFilter int

const (
	FilterAll HistoryFilter = iota
	FilterWins
	FilterLosses
	filterCount
)

// String returns the tab label.
func (f HistoryFilter) String() string {
	switch f {
	case FilterWins:
		return "Wins"
	case FilterLosses:
		return "Losses"
	default:
		return "All"
	}
}

// keep reports whether rec passes the filter.
func (f HistoryFilter) keep(rec storage.MatchRecord) bool {
	switch f {
	case FilterWins:
		return rec.Winner == "player"
	case FilterLosses:
		return rec.Winner == "ai"
	default:
		return true
	}
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFilter, k.PrevFilter, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded matches.
type HistoryModel struct {
	records   []storage.MatchRecord
	stats     *storage.Stats
	filter    HistoryFilter
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	showStats bool
}

// NewHistoryModel creates a history browser over already loaded records.
func NewHistoryModel(records []storage.MatchRecord, stats *storage.Stats, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		records:   records,
		stats:     stats,
		keys:      DefaultHistoryKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Score", Width: 8},
		{Title: "Winner", Width: 9},
		{Title: "Level", Width: 6},
		{Title: "Difficulty", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// visible returns the records passing the current filter.
func (m HistoryModel) visible() []storage.MatchRecord {
	out := make([]storage.MatchRecord, 0, len(m.records))
	for _, r := range m.records {
		if m.filter.keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// updateTableRows refills the table from the filtered records.
func (m *HistoryModel) updateTableRows() {
	recs := m.visible()
	rows := make([]table.Row, len(recs))
	for i, r := range recs {
		winner := "PLAYER"
		if r.Winner == "ai" {
			winner = "CYBER AI"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d-%d", r.PlayerScore, r.AIScore),
			winner,
			fmt.Sprintf("%.1f", r.Level),
			r.Difficulty,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % filterCount
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + filterCount - 1) % filterCount
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("MATCH HISTORY", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showStats {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderStats(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the filter tabs with the active one highlighted.
func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, filterCount)
	for f := FilterAll; f < filterCount; f++ {
		if f == m.filter {
			tabs[f] = activeTabStyle.Render(f.String())
		} else {
			tabs[f] = tabStyle.Render(" " + f.String() + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderStats renders the aggregate sidebar.
func (m HistoryModel) renderStats() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(statsWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", statsWidth-4))
	sb.WriteString("\n")

	if m.stats == nil || m.stats.Played == 0 {
		sb.WriteString("No matches yet")
		return style.Render(sb.String())
	}

	s := m.stats
	fmt.Fprintf(&sb, "Played     %d\n", s.Played)
	fmt.Fprintf(&sb, "Won        %d\n", s.PlayerWins)
	fmt.Fprintf(&sb, "Lost       %d\n", s.AIWins)
	fmt.Fprintf(&sb, "Win rate   %.0f%%\n", float64(s.PlayerWins)/float64(s.Played)*100)
	fmt.Fprintf(&sb, "Avg level  %.1f\n", s.AvgLevel)
	fmt.Fprintf(&sb, "Best level %.1f\n", s.BestLevel)
	if !s.LastPlayed.IsZero() {
		fmt.Fprintf(&sb, "Last       %s", s.LastPlayed.Format("Jan 02 15:04"))
	}
	return style.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.visible()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No matches recorded yet.\nFinish a match to see it here!")
	}

	return m.table.View()
}

// FormatHistory renders records as plain text lines, one match per line.
func FormatHistory(records []storage.MatchRecord) string {
	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "%s  %2d-%-2d  %-6s  level %.1f  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.PlayerScore, r.AIScore,
			r.Winner, r.Level, r.Difficulty)
	}
	return sb.String()
}

// RunHistory runs the history browser.
func RunHistory(store *storage.Store, limit, width, height int) error {
	records, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}
	stats, err := store.GetStats()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(records, stats, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
