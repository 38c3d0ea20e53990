package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ToCSV writes the snapshot as Field,Value rows.
func ToCSV(snap Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	p, live, proj := snap.Preferences, snap.Live, snap.Projection
	rows := [][]string{
		{"Field", "Value"},
		{"Generated", live.Now.Format(time.RFC3339)},
		{"Office in", p.ClockIn.String()},
		{"Tea break (min)", strconv.Itoa(p.TeaBreak)},
		{"Lunch break (min)", strconv.Itoa(p.LunchBreak)},
		{"Planned exit", p.PlannedExit.String()},
		{"Gross (min)", formatFloat(live.GrossMinutes)},
		{"Net (min)", formatFloat(live.NetMinutes)},
		{"Net (h)", formatFloat(live.NetHours)},
		{"Remaining (h)", formatFloat(live.RemainingHours)},
		{"Status", liveState(live)},
		{"Balance", live.Balance().String()},
		{"Leave at", live.TargetExit.Format("15:04")},
		{"Projected gross (min)", strconv.Itoa(proj.GrossMinutes)},
		{"Projected net (h)", formatFloat(proj.NetHours)},
		{"Projected shortfall (h)", formatFloat(proj.ShortfallHours)},
		{"Projection", projectionState(proj)},
		{"Projection balance", proj.Balance().String()},
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
