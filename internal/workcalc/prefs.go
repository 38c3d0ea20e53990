package workcalc

import "fmt"

// TargetHours is the daily net work goal.
const TargetHours = 8.0

// MaxBreakMinutes bounds each individual break.
const MaxBreakMinutes = 90

// Preferences is the persisted per-user tracker configuration.
type Preferences struct {
	ClockIn     Clock
	TeaBreak    int // minutes
	LunchBreak  int // minutes
	PlannedExit Clock
}

func DefaultPreferences() Preferences {
	return Preferences{
		ClockIn:     Clock{Hour: 10},
		TeaBreak:    0,
		LunchBreak:  17,
		PlannedExit: Clock{Hour: 19},
	}
}

func (p Preferences) TotalBreakMinutes() int {
	return p.TeaBreak + p.LunchBreak
}

// Validate reports the first out-of-range break.
func (p Preferences) Validate() error {
	if err := ValidateBreak(p.TeaBreak); err != nil {
		return fmt.Errorf("tea break: %w", err)
	}
	if err := ValidateBreak(p.LunchBreak); err != nil {
		return fmt.Errorf("lunch break: %w", err)
	}
	return nil
}

func ValidateBreak(minutes int) error {
	if minutes < 0 || minutes > MaxBreakMinutes {
		return fmt.Errorf("%d min is outside 0-%d", minutes, MaxBreakMinutes)
	}
	return nil
}
