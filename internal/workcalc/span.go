package workcalc

import (
	"fmt"
	"math"
)

// Span is an hour quantity split into display components. The sign is kept
// apart from the magnitude so a negative span renders as "-3hr 15min".
type Span struct {
	Negative bool
	Hours    int
	Minutes  int
	Seconds  int
}

// SplitHours converts a possibly negative hour float into a Span. The
// magnitude is rounded to the nearest second before being truncated into
// whole hours and minutes, so 0.7166...h splits into 0hr 43min rather than
// 0hr 42min 59s.
func SplitHours(h float64) Span {
	neg := h < 0
	secs := int64(math.Round(math.Abs(h) * 3600))
	return Span{
		Negative: neg && secs > 0,
		Hours:    int(secs / 3600),
		Minutes:  int(secs % 3600 / 60),
		Seconds:  int(secs % 60),
	}
}

// SplitMinutes is SplitHours for a minute count.
func SplitMinutes(m float64) Span {
	return SplitHours(m / 60)
}

// Float reconstructs the signed hour value.
func (s Span) Float() float64 {
	v := float64(s.Hours) + float64(s.Minutes)/60 + float64(s.Seconds)/3600
	if s.Negative {
		return -v
	}
	return v
}

// Abs drops the sign.
func (s Span) Abs() Span {
	s.Negative = false
	return s
}

func (s Span) sign() string {
	if s.Negative {
		return "-"
	}
	return ""
}

// String renders "3hr 15min", with a leading "-" when negative.
func (s Span) String() string {
	return fmt.Sprintf("%s%dhr %dmin", s.sign(), s.Hours, s.Minutes)
}

// Precise renders "3hr 15min 20s".
func (s Span) Precise() string {
	return fmt.Sprintf("%s%dhr %dmin %ds", s.sign(), s.Hours, s.Minutes, s.Seconds)
}
