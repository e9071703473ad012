package timelinedb

// PrepareMinMax allocates outMin and outMax with the same ValueType,
// NrOfChannels, Bitwidth and per-sample byte stride as src, and
// NrOfSamples = outSamples. TimeStep and TimeExponent are copied from src;
// callers are free to overwrite them afterwards to reflect the downsampled
// time grid.
//
// Passing the same buffer for outMin and outMax is not supported: the
// second Allocate call simply overwrites the first's storage, exactly as it
// would with the equivalent two sequential allocations in the C source.
// Callers must supply two distinct buffers.
func PrepareMinMax(src, outMin, outMax *ValueBuffer, outSamples uint32) error {
	if src.ValueType != AnalogSint8 && src.ValueType != SIMDSint16x8 {
		return ErrUnsupported
	}
	for _, dst := range [2]*ValueBuffer{outMin, outMax} {
		dst.TimeStep = src.TimeStep
		dst.TimeExponent = src.TimeExponent
		if err := dst.tryAllocate(outSamples, src.NrOfChannels, src.Bitwidth, src.alignment, src.ValueType); err != nil {
			return err
		}
	}
	return nil
}

// AggregateMinMax downsamples src into outMin/outMax, whose NrOfSamples
// gives the bucket count. inSamples == 0 means "entire source"; otherwise
// exactly inSamples samples starting at inOffset are consumed. Bucket i
// covers source indices
// [inOffset + floor(i*stride), inOffset + floor((i+1)*stride)), widened to
// at least one sample and clamped to inOffset+inSamples, where
// stride = inSamples / outSamples. It may be called repeatedly over
// arbitrary sub-ranges of the same source without re-preparing.
func AggregateMinMax(src, outMin, outMax *ValueBuffer, inSamples, inOffset uint32) error {
	if src.ValueType != AnalogSint8 && src.ValueType != SIMDSint16x8 {
		return ErrUnsupported
	}
	var kernel aggregateMinMaxFunc
	switch src.ValueType {
	case AnalogSint8:
		kernel = activeBackend().AggregateMinMaxS8
	case SIMDSint16x8:
		kernel = activeBackend().AggregateMinMaxS16x8
	}

	if inSamples == 0 {
		inSamples = src.NrOfSamples
	}
	outSamples := outMin.NrOfSamples
	if outSamples == 0 {
		return nil
	}
	stride := float32(inSamples) / float32(outSamples)

	for i := uint32(0); i < outSamples; i++ {
		start := inOffset + uint32(float32(i)*stride)
		end := inOffset + uint32(float32(i+1)*stride)
		if end <= start {
			end = start + 1
		}
		if end > inOffset+inSamples {
			end = inOffset + inSamples
		}
		kernel(src, outMin, outMax, i, start, end)
	}
	return nil
}
