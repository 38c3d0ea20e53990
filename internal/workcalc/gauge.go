package workcalc

// GaugeScaleHours is the upper end of the net-hours gauge.
const GaugeScaleHours = 12.0

// Band classifies net hours on the gauge.
type Band int

const (
	BandBehind      Band = iota // 0-6h
	BandApproaching             // 6-8h
	BandDone                    // 8h and beyond
)

func (b Band) String() string {
	switch b {
	case BandApproaching:
		return "approaching"
	case BandDone:
		return "done"
	default:
		return "behind"
	}
}

func GaugeBand(netHours float64) Band {
	switch {
	case netHours >= TargetHours:
		return BandDone
	case netHours >= 6:
		return BandApproaching
	default:
		return BandBehind
	}
}

// GaugeFraction is netHours as a fraction of the gauge scale, clamped to [0,1].
func GaugeFraction(netHours float64) float64 {
	f := netHours / GaugeScaleHours
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
