// Package export writes a point-in-time breakdown of the work day to disk.
package export

import (
	"time"

	"github.com/sadopc/workday/internal/workcalc"
)

// Snapshot is everything the breakdown view shows at one instant.
type Snapshot struct {
	Preferences workcalc.Preferences
	Live        workcalc.LiveStatus
	Projection  workcalc.Projection
}

// Take computes a snapshot at now.
func Take(now time.Time, p workcalc.Preferences) Snapshot {
	return Snapshot{
		Preferences: p,
		Live:        workcalc.ComputeLiveStatus(now, p),
		Projection:  workcalc.ProjectPreferences(p),
	}
}

func liveState(s workcalc.LiveStatus) string {
	if s.Overtime() {
		return "overtime"
	}
	return "remaining"
}

func projectionState(p workcalc.Projection) string {
	if p.Overtime() {
		return "overtime"
	}
	return "short"
}
