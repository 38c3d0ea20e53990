package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	iconClock = "⏱"
	iconDone  = "✔"
	iconError = "✗"
)

var (
	cPrimary = lipgloss.Color("63")
	cGood    = lipgloss.Color("42")
	cWarn    = lipgloss.Color("214")
	cBad     = lipgloss.Color("196")
	cMuted   = lipgloss.Color("244")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary).Width(18)
	goodStyle  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	warnStyle  = lipgloss.NewStyle().Foreground(cWarn)
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	mutedStyle = lipgloss.NewStyle().Foreground(cMuted)
)

func heading(title string) string {
	return titleStyle.Render(iconClock + " " + title)
}

func labelValue(label string, value any) string {
	return keyStyle.Render(label) + " " + fmt.Sprint(value)
}
