// Package tui hosts the arcade in a terminal with Bubble Tea: keys feed a
// Keyboard controller, a tea.Tick clock drives the scheduler and frames are
// drawn with lipgloss. The same model serves local play and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one scheduler tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
