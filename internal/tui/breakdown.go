package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/workday/internal/workcalc"
)

// breakdownModel shows the planned-exit projection. It ignores ticks and is
// rebuilt only when preferences or the window size change.
type breakdownModel struct {
	session *session
	width   int
	height  int

	chart barchart.Model
}

func newBreakdownModel(s *session) breakdownModel {
	return breakdownModel{
		session: s,
		chart:   barchart.New(40, 10),
	}
}

func (b *breakdownModel) setSize(w, h int) {
	b.width = w
	b.height = h
	b.buildChart()
}

func (b *breakdownModel) buildChart() {
	chartWidth := b.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if b.height > 30 {
		chartHeight = 14
	}

	b.chart = barchart.New(chartWidth, chartHeight)

	proj := b.session.proj
	bars := []struct {
		label string
		hours float64
		color lipgloss.Color
	}{
		{"Gross", float64(proj.GrossMinutes) / 60, colorHighlight},
		{"Breaks", float64(proj.TotalBreakMinutes) / 60, colorWarning},
		{"Net", math.Max(0, proj.NetHours), bandColor(workcalc.GaugeBand(proj.NetHours))},
		{"Target", workcalc.TargetHours, colorThreshold},
	}

	var data []barchart.BarData
	for _, bar := range bars {
		data = append(data, barchart.BarData{
			Label: bar.label,
			Values: []barchart.BarValue{{
				Name:  bar.label,
				Value: bar.hours,
				Style: lipgloss.NewStyle().Foreground(bar.color),
			}},
		})
	}

	b.chart.PushAll(data)
	b.chart.Draw()
}

func (b breakdownModel) view() string {
	w := b.width - 4
	p, proj := b.session.prefs, b.session.proj

	var rows []string
	rows = append(rows,
		titleStyle.Render("Detailed Breakdown & Projection"),
		"",
		fmt.Sprintf("Office In:     %s", highlightStyle.Render(p.ClockIn.Kitchen())),
		fmt.Sprintf("Total Breaks:  %s", highlightStyle.Render(workcalc.SplitMinutes(float64(proj.TotalBreakMinutes)).String())),
		mutedStyle.Render(strings.Repeat("─", max(10, min(w-6, 40)))),
	)

	heading := fmt.Sprintf("Projection if leaving at %s", p.PlannedExit.Kitchen())
	if proj.Wrapped {
		heading += " (next day)"
	}
	rows = append(rows, titleStyle.Render(heading+":"))

	if proj.Overtime() {
		rows = append(rows, successStyle.Render("You will have overtime: "+proj.Balance().String()))
	} else {
		rows = append(rows, errorStyle.Render("You will be short by: "+proj.Balance().String()))
	}
	rows = append(rows,
		mutedStyle.Render(fmt.Sprintf("Projected net %s of %s", workcalc.SplitHours(proj.NetHours), targetLabel())),
		"",
		b.chart.View(),
		"",
		mutedStyle.Render("  hours: gross, breaks, net, target"),
	)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
