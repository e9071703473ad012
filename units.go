package timelinedb

import "math"

var sampleRateUnits = [...]string{"Hz", "kHz", "MHz", "GHz", "THz", "PHz"}

// SampleRateOf converts buf's TimeStep/TimeExponent into a human-scaled
// frequency: f = 1 / (TimeStep * 10^TimeExponent), divided by 1000 and
// stepped through Hz/kHz/.../PHz until the value falls below 1000, or the
// PHz ceiling is reached.
func SampleRateOf(buf *ValueBuffer) (value float64, unit string) {
	f := 1.0 / (float64(buf.TimeStep) * math.Pow(10, float64(buf.TimeExponent)))
	idx := 0
	for f >= 1000.0 && idx < len(sampleRateUnits)-1 {
		f /= 1000.0
		idx++
	}
	return f, sampleRateUnits[idx]
}

// TimeIntervalOf returns buf's TimeStep unchanged, paired with the symbolic
// time unit for TimeExponent. Exponents outside {0,-3,-6,-9,-12,-15} yield
// the literal unit "?s".
func TimeIntervalOf(buf *ValueBuffer) (value float64, unit string) {
	switch buf.TimeExponent {
	case 0:
		unit = "s"
	case -3:
		unit = "ms"
	case -6:
		unit = "us"
	case -9:
		unit = "ns"
	case -12:
		unit = "ps"
	case -15:
		unit = "fs"
	default:
		unit = "?s"
	}
	return float64(buf.TimeStep), unit
}
