package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/workday/internal/workcalc"
)

const minGaugeWidth = 24

func bandColor(b workcalc.Band) lipgloss.Color {
	switch b {
	case workcalc.BandDone:
		return colorDone
	case workcalc.BandApproaching:
		return colorApproaching
	default:
		return colorBehind
	}
}

// gaugePos maps an hour value onto a column of a width-wide gauge.
func gaugePos(hours float64, width int) int {
	return int(math.Round(hours / workcalc.GaugeScaleHours * float64(width-1)))
}

// renderGauge draws net hours on the 0-12h scale with a marker at the target.
func renderGauge(netHours float64, width int) string {
	if width < minGaugeWidth {
		width = minGaugeWidth
	}

	bar := progress.New(
		progress.WithSolidFill(string(bandColor(workcalc.GaugeBand(netHours)))),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)

	title := titleStyle.Render("Live Net Hours")
	value := figureStyle.Render(fmt.Sprintf("%.2f hr", netHours))

	delta := netHours - workcalc.TargetHours
	deltaStr := errorStyle.Render(fmt.Sprintf("▼ %.2f hr", delta))
	if delta >= 0 {
		deltaStr = successStyle.Render(fmt.Sprintf("▲ +%.2f hr", delta))
	}

	marker := strings.Repeat(" ", gaugePos(workcalc.TargetHours, width)) + thresholdStyle.Render("▲")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		value+"  "+deltaStr,
		"",
		bar.ViewAs(workcalc.GaugeFraction(netHours)),
		marker,
		gaugeScale(width),
	)
}

func gaugeScale(width int) string {
	line := []rune(strings.Repeat(" ", width))
	for _, h := range []float64{0, 6, workcalc.TargetHours, workcalc.GaugeScaleHours} {
		label := []rune(strconv.FormatFloat(h, 'f', -1, 64) + "h")
		pos := gaugePos(h, width)
		if pos+len(label) > width {
			pos = width - len(label)
		}
		copy(line[pos:], label)
	}
	return mutedStyle.Render(string(line))
}
