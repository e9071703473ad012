package timelinedb

import "math"

// convertSampleRateS16x8Scalar is the "C Backend" kernel for resampling the
// wide SIMDSint16x8 layout: the normative, prepared-table shape. For each
// output sample it loads the two source samples named by
// dst.PreparedInterp[i], widens to 32 bits, blends by the Q0.16 weights,
// and rounds back down to 16 bits — channel by channel.
func convertSampleRateS16x8Scalar(src, dst *ValueBuffer) error {
	if src.NrOfChannels != 8 {
		return ErrUnsupported
	}
	table := dst.PreparedInterp
	for i := uint32(0); i < dst.NrOfSamples; i++ {
		entry := table[i]
		for ch := uint8(0); ch < 8; ch++ {
			v0, err := src.SampleSIMDSint16x8(entry.Idx0, ch)
			if err != nil {
				return err
			}
			v1, err := src.SampleSIMDSint16x8(entry.Idx1, ch)
			if err != nil {
				return err
			}
			dst.setSampleInt16(i, ch, blendQ16(v0, v1, entry.InvFrac, entry.Frac))
		}
	}
	return nil
}

// blendQ16 computes round((v0*invFrac + v1*frac) / 65536) in Q0.16 fixed
// point, the shared arithmetic of every convert_sample_rate_s16x8 kernel
// (scalar and vector): both must agree bit-for-bit given the same inputs.
func blendQ16(v0, v1 int16, invFrac, frac uint16) int16 {
	interp := int64(v0)*int64(invFrac) + int64(v1)*int64(frac)
	// Round-to-nearest right shift by 16, matching the NEON vrshrq_n_s32
	// rounding shift used by the source's reference kernels.
	rounded := (interp + (1 << 15)) >> 16
	return int16(rounded)
}

// aggregateMinMaxS8Scalar is the "C Backend" kernel for min/max aggregation
// over an AnalogSint8 buffer.
func aggregateMinMaxS8Scalar(src, outMin, outMax *ValueBuffer, i, start, end uint32) {
	for ch := uint8(0); ch < src.NrOfChannels; ch++ {
		minVal := int8(math.MaxInt8)
		maxVal := int8(math.MinInt8)
		for j := start; j < end; j++ {
			v, err := src.SampleInt8(j, ch)
			if err != nil {
				continue
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		outMin.setSampleInt8(i, ch, minVal)
		outMax.setSampleInt8(i, ch, maxVal)
	}
}

// aggregateMinMaxS16x8Scalar is the "C Backend" kernel for min/max
// aggregation over a SIMDSint16x8 buffer.
func aggregateMinMaxS16x8Scalar(src, outMin, outMax *ValueBuffer, i, start, end uint32) {
	for ch := uint8(0); ch < src.NrOfChannels; ch++ {
		minVal := int16(math.MaxInt16)
		maxVal := int16(math.MinInt16)
		for j := start; j < end; j++ {
			v, err := src.SampleSIMDSint16x8(j, ch)
			if err != nil {
				continue
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		outMin.setSampleInt16(i, ch, minVal)
		outMax.setSampleInt16(i, ch, maxVal)
	}
}
