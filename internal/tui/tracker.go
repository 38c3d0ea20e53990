package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// trackerModel is the live view. It is the only view that handles ticks.
type trackerModel struct {
	session *session
	width   int
	height  int
}

func newTrackerModel(s *session) trackerModel {
	return trackerModel{session: s}
}

func (t *trackerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t trackerModel) update(msg tea.Msg) (trackerModel, tea.Cmd) {
	if msg, ok := msg.(tickMsg); ok {
		t.session.tick(time.Time(msg))
	}
	return t, nil
}

func (t trackerModel) view() string {
	if t.width < 20 {
		return "Terminal too small"
	}

	contentWidth := t.width - 4
	header := t.renderHeader(contentWidth)

	// Side by side when there is room, stacked otherwise.
	if contentWidth >= 80 {
		gaugeW := contentWidth * 3 / 5
		statusW := contentWidth - gaugeW
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Width(gaugeW).Render(renderGauge(t.session.live.NetHours, gaugeW-8)),
			t.renderStatus(statusW),
		)
		return lipgloss.JoinVertical(lipgloss.Left, header, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panelStyle.Width(contentWidth).Render(renderGauge(t.session.live.NetHours, contentWidth-8)),
		t.renderStatus(contentWidth),
	)
}

func (t trackerModel) renderHeader(w int) string {
	now := t.session.live.Now

	left := titleStyle.Render("Live Status Monitor")
	right := lipgloss.JoinVertical(lipgloss.Right,
		mutedStyle.Render("Current Time"),
		figureStyle.Render(formatClock(now)),
		mutedStyle.Render(formatDate(now)),
	)

	gap := w - lipgloss.Width(left) - lipgloss.Width(right) - 6
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return panelStyle.Width(w).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right))
}

func (t trackerModel) renderStatus(w int) string {
	live := t.session.live
	balance := live.Balance().String()

	var rows []string
	rows = append(rows, titleStyle.Render("Status"), "")

	if live.Overtime() {
		rows = append(rows,
			successStyle.Render("Overtime: "+balance),
			figureStyle.Render("0hr 0min / "+targetLabel()),
			mutedStyle.Render("Target Reached!"),
		)
	} else {
		rows = append(rows,
			errorStyle.Render("Remaining: "+balance),
			figureStyle.Render(balance+" / "+targetLabel()),
			mutedStyle.Render("Time remaining / Total"),
		)
	}

	rows = append(rows,
		"",
		titleStyle.Render("You should leave at:"),
		highlightStyle.Render(formatKitchen(live.TargetExit)),
	)

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
