package workcalc

// Projection is the outcome of leaving at a planned exit time.
type Projection struct {
	ClockIn           Clock
	PlannedExit       Clock
	Wrapped           bool // planned exit falls on the next calendar day
	GrossMinutes      int
	TotalBreakMinutes int
	NetHours          float64 // not clamped; breaks longer than the day go negative
	ShortfallHours    float64 // positive = short of target, <= 0 = overtime
}

// ComputeProjection projects the day for a planned exit. A planned exit at or
// before clock-in is taken to be on the following day, so equal times give a
// full 24h day rather than zero.
func ComputeProjection(clockIn, plannedExit Clock, totalBreakMinutes int, targetHours float64) Projection {
	in, out := clockIn.Minutes(), plannedExit.Minutes()
	wrapped := out <= in
	if wrapped {
		out += minutesPerDay
	}
	gross := out - in
	net := float64(gross-totalBreakMinutes) / 60

	return Projection{
		ClockIn:           clockIn,
		PlannedExit:       plannedExit,
		Wrapped:           wrapped,
		GrossMinutes:      gross,
		TotalBreakMinutes: totalBreakMinutes,
		NetHours:          net,
		ShortfallHours:    targetHours - net,
	}
}

// ProjectPreferences projects p's planned exit against TargetHours.
func ProjectPreferences(p Preferences) Projection {
	return ComputeProjection(p.ClockIn, p.PlannedExit, p.TotalBreakMinutes(), TargetHours)
}

func (p Projection) Overtime() bool {
	return p.ShortfallHours <= 0
}

// Balance is the unsigned shortfall, or the overtime achieved.
func (p Projection) Balance() Span {
	return SplitHours(p.ShortfallHours).Abs()
}
