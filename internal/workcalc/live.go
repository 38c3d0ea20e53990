package workcalc

import (
	"math"
	"time"
)

// LiveStatus is the per-tick view of today's work progress.
type LiveStatus struct {
	Now               time.Time
	ClockIn           time.Time
	GrossMinutes      float64
	TotalBreakMinutes int
	NetMinutes        float64
	NetHours          float64
	RemainingHours    float64 // negative once in overtime
	TargetExit        time.Time
}

// ComputeLiveStatus derives today's figures at now.
//
// Clock-in is taken on now's calendar day. There is no overnight handling:
// before clock-in elapsed time is zero, and a session that crosses midnight
// starts counting from the new day's clock-in. ComputeProjection does wrap.
func ComputeLiveStatus(now time.Time, p Preferences) LiveStatus {
	in := p.ClockIn.On(now)
	breaks := p.TotalBreakMinutes()

	gross := 0.0
	if !now.Before(in) {
		gross = now.Sub(in).Minutes()
	}
	net := math.Max(0, gross-float64(breaks))
	netHours := net / 60

	return LiveStatus{
		Now:               now,
		ClockIn:           in,
		GrossMinutes:      gross,
		TotalBreakMinutes: breaks,
		NetMinutes:        net,
		NetHours:          netHours,
		RemainingHours:    TargetHours - netHours,
		TargetExit:        TargetExit(in, breaks, TargetHours),
	}
}

// TargetExit is the time at which targetHours of net work are reached when
// the day starts at in and includes breakMinutes of breaks.
func TargetExit(in time.Time, breakMinutes int, targetHours float64) time.Time {
	target := time.Duration(targetHours * float64(time.Hour))
	return in.Add(time.Duration(breakMinutes)*time.Minute + target)
}

// Overtime reports whether the target has been reached.
func (s LiveStatus) Overtime() bool {
	return s.RemainingHours <= 0
}

// Balance is the unsigned time still owed, or the overtime accrued.
func (s LiveStatus) Balance() Span {
	return SplitHours(s.RemainingHours).Abs()
}

// Remaining is the signed remaining time, e.g. "-0hr 43min" in overtime.
func (s LiveStatus) Remaining() Span {
	return SplitHours(s.RemainingHours)
}
