package timelinedb

import "math"

// convertSampleRateS16x8Vector is the "SIMD Backend" kernel for resampling
// the wide SIMDSint16x8 layout. It consumes the same dst.PreparedInterp
// table as convertSampleRateS16x8Scalar, but shapes the inner loop around
// one fixed-size 8-element "lane" array per output sample — the natural
// unrolling for a layout whose channel count already matches a typical
// SIMD register width. Both kernels must agree bit-for-bit.
func convertSampleRateS16x8Vector(src, dst *ValueBuffer) error {
	if src.NrOfChannels != 8 {
		return ErrUnsupported
	}
	table := dst.PreparedInterp
	var lane0, lane1 [8]int16
	for i := uint32(0); i < dst.NrOfSamples; i++ {
		entry := table[i]
		for ch := uint8(0); ch < 8; ch++ {
			v0, err := src.SampleSIMDSint16x8(entry.Idx0, ch)
			if err != nil {
				return err
			}
			lane0[ch] = v0
			v1, err := src.SampleSIMDSint16x8(entry.Idx1, ch)
			if err != nil {
				return err
			}
			lane1[ch] = v1
		}
		var out [8]int16
		for ch := 0; ch < 8; ch++ {
			out[ch] = blendQ16(lane0[ch], lane1[ch], entry.InvFrac, entry.Frac)
		}
		for ch := uint8(0); ch < 8; ch++ {
			dst.setSampleInt16(i, ch, out[ch])
		}
	}
	return nil
}

// aggregateMinMaxS8Vector is the "SIMD Backend" kernel for min/max
// aggregation over an AnalogSint8 buffer. It processes all channels of a
// sample together in a single pass over [start, end) rather than looping
// channel-major, the shape a lane-parallel reduction would take.
func aggregateMinMaxS8Vector(src, outMin, outMax *ValueBuffer, i, start, end uint32) {
	nrCh := src.NrOfChannels
	mins := make([]int8, nrCh)
	maxs := make([]int8, nrCh)
	for ch := range mins {
		mins[ch] = math.MaxInt8
		maxs[ch] = math.MinInt8
	}
	for j := start; j < end; j++ {
		for ch := uint8(0); ch < nrCh; ch++ {
			v, err := src.SampleInt8(j, ch)
			if err != nil {
				continue
			}
			if v < mins[ch] {
				mins[ch] = v
			}
			if v > maxs[ch] {
				maxs[ch] = v
			}
		}
	}
	for ch := uint8(0); ch < nrCh; ch++ {
		outMin.setSampleInt8(i, ch, mins[ch])
		outMax.setSampleInt8(i, ch, maxs[ch])
	}
}

// aggregateMinMaxS16x8Vector is the "SIMD Backend" kernel for min/max
// aggregation over a SIMDSint16x8 buffer, processing all 8 channels of
// each sample together.
func aggregateMinMaxS16x8Vector(src, outMin, outMax *ValueBuffer, i, start, end uint32) {
	var mins, maxs [8]int16
	for ch := range mins {
		mins[ch] = math.MaxInt16
		maxs[ch] = math.MinInt16
	}
	for j := start; j < end; j++ {
		for ch := uint8(0); ch < 8; ch++ {
			v, err := src.SampleSIMDSint16x8(j, ch)
			if err != nil {
				continue
			}
			if v < mins[ch] {
				mins[ch] = v
			}
			if v > maxs[ch] {
				maxs[ch] = v
			}
		}
	}
	for ch := uint8(0); ch < 8; ch++ {
		outMin.setSampleInt16(i, ch, mins[ch])
		outMax.setSampleInt16(i, ch, maxs[ch])
	}
}
