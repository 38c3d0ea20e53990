package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonExport struct {
	ExportedAt  string          `json:"exported_at"`
	Preferences jsonPreferences `json:"preferences"`
	Live        jsonLive        `json:"live"`
	Projection  jsonProjection  `json:"projection"`
}

type jsonPreferences struct {
	InTime      string `json:"in_time"`
	TeaBreak    int    `json:"tea_break"`
	LunchBreak  int    `json:"lunch_break"`
	PlannedExit string `json:"planned_exit"`
}

type jsonLive struct {
	Now               string  `json:"now"`
	GrossMinutes      float64 `json:"gross_minutes"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
	NetMinutes        float64 `json:"net_minutes"`
	NetHours          float64 `json:"net_hours"`
	RemainingHours    float64 `json:"remaining_hours"`
	Status            string  `json:"status"`
	Balance           string  `json:"balance"`
	TargetExit        string  `json:"target_exit"`
}

type jsonProjection struct {
	PlannedExit    string  `json:"planned_exit"`
	NextDay        bool    `json:"next_day"`
	GrossMinutes   int     `json:"gross_minutes"`
	NetHours       float64 `json:"net_hours"`
	ShortfallHours float64 `json:"shortfall_hours"`
	Status         string  `json:"status"`
	Balance        string  `json:"balance"`
}

func ToJSON(snap Snapshot, path string) error {
	p, live, proj := snap.Preferences, snap.Live, snap.Projection
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Preferences: jsonPreferences{
			InTime:      p.ClockIn.String(),
			TeaBreak:    p.TeaBreak,
			LunchBreak:  p.LunchBreak,
			PlannedExit: p.PlannedExit.String(),
		},
		Live: jsonLive{
			Now:               live.Now.Format(time.RFC3339),
			GrossMinutes:      live.GrossMinutes,
			TotalBreakMinutes: live.TotalBreakMinutes,
			NetMinutes:        live.NetMinutes,
			NetHours:          live.NetHours,
			RemainingHours:    live.RemainingHours,
			Status:            liveState(live),
			Balance:           live.Balance().String(),
			TargetExit:        live.TargetExit.Format(time.RFC3339),
		},
		Projection: jsonProjection{
			PlannedExit:    proj.PlannedExit.String(),
			NextDay:        proj.Wrapped,
			GrossMinutes:   proj.GrossMinutes,
			NetHours:       proj.NetHours,
			ShortfallHours: proj.ShortfallHours,
			Status:         projectionState(proj),
			Balance:        proj.Balance().String(),
		},
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
