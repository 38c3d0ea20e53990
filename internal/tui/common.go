package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/workday/internal/workcalc"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTracker viewState = iota
	viewBreakdown
	viewSettings
)

var viewNames = []string{"Tracker", "Breakdown", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

// prefsAppliedMsg follows an in-memory preference change.
type prefsAppliedMsg struct{}

type prefsSavedMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatClock(t time.Time) string {
	return t.Format("03:04:05 PM")
}

func formatDate(t time.Time) string {
	return t.Format("Monday, 02 January 2006")
}

func formatKitchen(t time.Time) string {
	return t.Format("03:04 PM")
}

// targetLabel renders the daily target, e.g. "8hr".
func targetLabel() string {
	return fmt.Sprintf("%ghr", workcalc.TargetHours)
}
