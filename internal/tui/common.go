package tui

import (
	"fmt"

	"github.com/sadopc/dayblock/internal/calendar"
)

// viewState represents the currently active tab.
type viewState int

const (
	viewCalendar viewState = iota
	viewStats
	viewSettings
)

var viewNames = []string{"Calendar", "Stats", "Settings"}

// --- Messages ---

type blockCreatedMsg struct {
	block calendar.TimeBlock
}

type blockDeletedMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatMinutes(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dh%02dm", mins/60, mins%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
