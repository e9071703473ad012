package timelinedb

import "math"

// PrepareRateConversion allocates dst as the destination of a linear-
// interpolation resampling of src to newRateHz.
//
//  1. old_rate = 1 / (src.TimeStep * 10^src.TimeExponent);
//     RateRatio = newRateHz / old_rate.
//  2. dst.NrOfSamples = floor(src.NrOfSamples * RateRatio).
//  3. A representable (TimeStep, TimeExponent) pair is found by scanning
//     exponents 15, 12, ..., -15: the first exponent e for which
//     (1/newRateHz)/10^e falls in [1, 2^32-1] is chosen, and
//     TimeStep = round(candidate).
//  4. dst is allocated with the same NrOfChannels, Bitwidth, stride and
//     ValueType as src.
//  5. dst.SampleRateInfo is allocated and populated with RateRatio.
//  6. For SIMDSint16x8, dst.PreparedInterp is also built: one record per
//     output sample, derived from
//     original_index = i * src.NrOfSamples / dst.NrOfSamples, clamped so
//     that Idx0 <= src.NrOfSamples-2.
func PrepareRateConversion(src *ValueBuffer, newRateHz uint32, dst *ValueBuffer) error {
	oldRate := 1.0 / (float64(src.TimeStep) * math.Pow(10, float64(src.TimeExponent)))
	rateRatio := float64(newRateHz) / oldRate
	newNrSamples := uint32(float64(src.NrOfSamples) * rateRatio)

	exp, step, ok := representableTimeStep(newRateHz)
	if !ok {
		return ErrUnsupported
	}
	dst.TimeExponent = exp
	dst.TimeStep = step

	if err := dst.tryAllocate(newNrSamples, src.NrOfChannels, src.Bitwidth, src.alignment, src.ValueType); err != nil {
		return err
	}
	dst.SampleRateInfo = &SampleRateInfo{RateRatio: rateRatio}

	if dst.ValueType == SIMDSint16x8 {
		dst.PreparedInterp = buildInterpTable(src.NrOfSamples, dst.NrOfSamples)
	}
	return nil
}

// representableTimeStep searches e = 15, 12, ..., -15 for the first
// exponent whose candidate step (1/newRateHz)/10^e lands in [1, 2^32-1],
// returning the rounded step for that exponent.
func representableTimeStep(newRateHz uint32) (exp int8, step uint32, ok bool) {
	idealTime := 1.0 / float64(newRateHz)
	for e := 15; e >= -15; e -= 3 {
		candidate := idealTime / math.Pow(10, float64(e))
		if candidate >= 1.0 && candidate <= math.MaxUint32 {
			return int8(e), uint32(candidate + 0.5), true
		}
	}
	return 0, 0, false
}

// buildInterpTable computes the prepared interpolation table for resampling
// inSamples source samples into outSamples output samples. A source of
// fewer than two samples has nothing to interpolate between; every entry
// then degenerates to a flat read of sample 0.
//
// idx0 is clamped to inSamples-2 so idx1 = idx0+1 always names a valid
// sample; when that clamp fires, the fractional weight relative to the
// clamped idx0 can reach or exceed 1.0 (the true original_index points at
// or past the last sample), so frac/fracFixed are clamped into [0,1] /
// [0,0xFFFF] before being packed into the Q0.16 fields. Without this,
// fracFixed can equal 65536, which does not fit the uint16 Frac field.
// InvFrac is the one's complement 0xFFFF - fracFixed, so it stays in
// [0, 0xFFFF] as well; a frac of 0 gives InvFrac 0xFFFF, not 0.
func buildInterpTable(inSamples, outSamples uint32) []SampleInterpInfo {
	table := make([]SampleInterpInfo, outSamples)
	if inSamples < 2 {
		return table
	}
	for i := uint32(0); i < outSamples; i++ {
		originalIndex := float64(i) / (float64(outSamples) / float64(inSamples))
		idx0 := uint32(originalIndex)
		if idx0 > inSamples-2 {
			idx0 = inSamples - 2
		}
		idx1 := idx0 + 1

		frac := originalIndex - float64(idx0)
		if frac < 0 {
			frac = 0
		} else if frac > 1 {
			frac = 1
		}
		fracFixed := uint32(frac * 65536.0)
		if fracFixed > 0xFFFF {
			fracFixed = 0xFFFF
		}
		table[i] = SampleInterpInfo{
			Idx0:    idx0,
			Idx1:    idx1,
			Frac:    uint16(fracFixed),
			InvFrac: uint16(0xFFFF - fracFixed),
		}
	}
	return table
}

// ConvertSampleRate resamples src into dst, a buffer previously produced by
// PrepareRateConversion. It dispatches on src.ValueType: AnalogSint8 is
// handled by the portable scalar reference kernel below; SIMDSint16x8 is
// handled by the active backend's kernel (scalar for "C Backend",
// lane-shaped for "SIMD Backend"). Neither kernel
// reads past src.Buffer.
func ConvertSampleRate(src, dst *ValueBuffer) error {
	switch src.ValueType {
	case AnalogSint8:
		return convertSampleRateAnalogSint8(src, dst)
	case SIMDSint16x8:
		return activeBackend().ConvertSampleRateS16x8(src, dst)
	default:
		return ErrUnsupported
	}
}

// convertSampleRateAnalogSint8 is the scalar reference kernel for the
// narrow 8-bit-per-channel layout: for every output index i it computes
// original_index = i / rate_ratio, takes idx0 = floor(original_index),
// idx1 = min(idx0+1, NrOfSamples-1), frac = original_index - idx0, and
// writes round((1-frac)*src[idx0,ch] + frac*src[idx1,ch]) to int8.
func convertSampleRateAnalogSint8(src, dst *ValueBuffer) error {
	rateRatio := dst.SampleRateInfo.RateRatio
	for i := uint32(0); i < dst.NrOfSamples; i++ {
		originalIndex := float64(i) / rateRatio
		idx0 := uint32(math.Floor(originalIndex))
		idx1 := idx0
		if idx0+1 < src.NrOfSamples {
			idx1 = idx0 + 1
		}
		frac := originalIndex - float64(idx0)

		for ch := uint8(0); ch < src.NrOfChannels; ch++ {
			v0, err := src.SampleInt8(idx0, ch)
			if err != nil {
				return err
			}
			v1, err := src.SampleInt8(idx1, ch)
			if err != nil {
				return err
			}
			interp := (1.0-frac)*float64(v0) + frac*float64(v1)
			dst.setSampleInt8(i, ch, int8(math.Round(interp)))
		}
	}
	return nil
}
