package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-pong/internal/storage"
)

func testRecords() []storage.MatchRecord {
	at := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	return []storage.MatchRecord{
		{MatchID: "a", PlayerScore: 11, AIScore: 4, Winner: "player", Level: 2.5, Difficulty: "hard", CreatedAt: at},
		{MatchID: "b", PlayerScore: 9, AIScore: 11, Winner: "ai", Level: 1.5, Difficulty: "normal", CreatedAt: at},
		{MatchID: "c", PlayerScore: 12, AIScore: 10, Winner: "player", Level: 3, Difficulty: "normal", CreatedAt: at},
	}
}

func TestHistoryFilters(t *testing.T) {
	m := NewHistoryModel(testRecords(), nil, 100, 30)
	next := tea.KeyMsg{Type: tea.KeyTab}
	prev := tea.KeyMsg{Type: tea.KeyShiftTab}

	tests := []struct {
		msg    tea.KeyMsg
		filter HistoryFilter
		rows   int
	}{
		{next, FilterWins, 2},
		{next, FilterLosses, 1},
		{next, FilterAll, 3},
		{prev, FilterLosses, 1},
	}

	for _, tc := range tests {
		updated, _ := m.Update(tc.msg)
		m = updated.(HistoryModel)
		if m.filter != tc.filter {
			t.Fatalf("filter = %v, expected %v", m.filter, tc.filter)
		}
		if got := len(m.table.Rows()); got != tc.rows {
			t.Errorf("%v: %d rows, expected %d", tc.filter, got, tc.rows)
		}
	}
}

func TestHistoryView(t *testing.T) {
	stats := &storage.Stats{Played: 3, PlayerWins: 2, AIWins: 1, AvgLevel: 2.3, BestLevel: 3}
	m := NewHistoryModel(testRecords(), stats, 100, 30)

	view := m.View()
	for _, want := range []string{"MATCH HISTORY", "All", "Wins", "Losses", "Played     3", "Win rate   67%", "11-4", "CYBER AI"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	narrow := NewHistoryModel(testRecords(), stats, 60, 30)
	if strings.Contains(narrow.View(), "Played") {
		t.Error("narrow view should hide the stats sidebar")
	}
}

func TestHistoryEmpty(t *testing.T) {
	m := NewHistoryModel(nil, &storage.Stats{}, 100, 30)

	view := m.View()
	if !strings.Contains(view, "No matches recorded yet") {
		t.Error("empty history should show the empty message")
	}
	if !strings.Contains(view, "No matches yet") {
		t.Error("empty stats should say so")
	}
}

func TestHistoryQuit(t *testing.T) {
	m := NewHistoryModel(testRecords(), nil, 100, 30)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if v := updated.View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestFormatHistory(t *testing.T) {
	out := FormatHistory(testRecords())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("FormatHistory() produced %d lines, expected 3", len(lines))
	}
	if want := "2026-03-14 15:09  11-4   player  level 2.5  hard"; lines[0] != want {
		t.Errorf("line 0 = %q, expected %q", lines[0], want)
	}
	if FormatHistory(nil) != "" {
		t.Error("no records should format to an empty string")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText() should not trim, got %q", got)
	}
}
