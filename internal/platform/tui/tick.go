// Package tui provides the Bubble Tea host for the table tennis game.
// It handles the terminal UI loop, input mapping, screen shake, match
// history and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ShakeDuration is how long a screen shake lasts.
const ShakeDuration = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ShakeEndMsg reverts the screen shake started with the same generation.
type ShakeEndMsg struct {
	Gen int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// shakeEndCmd schedules the end of the shake numbered gen.
func shakeEndCmd(gen int) tea.Cmd {
	return tea.Tick(ShakeDuration, func(time.Time) tea.Msg {
		return ShakeEndMsg{Gen: gen}
	})
}
