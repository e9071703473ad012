// Package genutil provides generators and formatters used by the demo
// commands and by property tests as ground truth: synthetic sine-wave
// buffers and a human-readable dump, mirroring the developer-test helpers
// of the original C implementation.
package genutil

import (
	"math"

	"github.com/mynd-ideal/timelinedb"
)

// GenerateSine allocates buf as numChannels channels (always 8 for
// SIMDSint16x8) of numSamples samples at sampleRateHz, and fills it with a sine wave of the given period (in
// samples) and amplitude, quantized to the buffer's ValueType. Channel ch's
// phase is offset by ch/numChannels (AnalogSint8) or ch/8 (SIMDSint16x8) of
// a sample, so adjacent channels are visibly out of phase in a dump.
//
// Only AnalogSint8 and SIMDSint16x8 are supported; any other ValueType on
// buf returns ErrUnsupported without allocating.
func GenerateSine(buf *timelinedb.ValueBuffer, numSamples uint32, numChannels uint8, period, amplitude float32, sampleRateHz uint32) error {
	exp, step := ScaledTimeStep(sampleRateHz)

	switch buf.ValueType {
	case timelinedb.SIMDSint16x8:
		buf.TimeExponent = exp
		buf.TimeStep = step
		buf.Allocate(numSamples, 8, 16, 16, timelinedb.SIMDSint16x8)
		for i := uint32(0); i < numSamples; i++ {
			for ch := uint8(0); ch < 8; ch++ {
				t := (float32(i) + float32(ch)/8.0) / period
				v := amplitude * float32(math.Sin(2*math.Pi*float64(t)))
				_ = buf.SetSampleSIMDSint16x8(i, ch, clampInt16(v))
			}
		}
		return nil

	case timelinedb.AnalogSint8:
		buf.TimeExponent = exp
		buf.TimeStep = step
		buf.Allocate(numSamples, numChannels, 8, 1, timelinedb.AnalogSint8)
		for i := uint32(0); i < numSamples; i++ {
			for ch := uint8(0); ch < numChannels; ch++ {
				t := (float32(i) + float32(ch)/float32(numChannels)) / period
				v := amplitude * float32(math.Sin(2*math.Pi*float64(t)))
				_ = buf.SetSampleInt8(i, ch, clampInt8(v))
			}
		}
		return nil

	default:
		return timelinedb.ErrUnsupported
	}
}

// ScaledTimeStep expresses the sample period 1/sampleRateHz as
// step * 10^exponent seconds: it scans exponent = 0, -3, ..., -15 and picks
// the first one for which the period is at least one unit, rounding step to
// the nearest integer (1 MHz gives 1 * 10^-6, 1.5 MHz gives 667 * 10^-9).
// A rate of 0 yields (0, 0).
func ScaledTimeStep(sampleRateHz uint32) (exponent int8, step uint32) {
	if sampleRateHz == 0 {
		return 0, 0
	}
	period := 1.0 / float64(sampleRateHz)
	exp := 0
	for exp > -15 && period/math.Pow(10, float64(exp)) < 1 {
		exp -= 3
	}
	return int8(exp), uint32(period/math.Pow(10, float64(exp)) + 0.5)
}

func pow10u(exp uint32) uint32 {
	v := uint32(1)
	for i := uint32(0); i < exp; i++ {
		v *= 10
	}
	return v
}

func clampInt8(v float32) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}

func clampInt16(v float32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
