package timelinedb

// PrepareWide allocates dst as an 8-channel SIMDSint16x8 buffer shaped to
// receive src's samples, one narrow channel at a time, via ConvertToWide.
// src must be AnalogSint8 with Bitwidth 8.
func PrepareWide(src, dst *ValueBuffer) error {
	if src.ValueType != AnalogSint8 || src.Bitwidth != 8 {
		return ErrUnsupported
	}
	dst.TimeStep = src.TimeStep
	dst.TimeExponent = src.TimeExponent
	return dst.tryAllocate(src.NrOfSamples, 8, 16, 16, SIMDSint16x8)
}

// ConvertToWide copies one channel of a narrow AnalogSint8 buffer into one
// channel of a wide SIMDSint16x8 buffer, widening each 8-bit sample to
// 16 bits (the low 8 bits carry the signed sample, matching the source
// layout's convert_to_NeonAlignedBuffer). It is intended to be called once
// per logical channel to populate a wide buffer.
func ConvertToWide(src, dst *ValueBuffer, srcChannel, dstChannel uint8) error {
	if src.ValueType != AnalogSint8 || src.Bitwidth != 8 {
		return ErrUnsupported
	}
	if dst.ValueType != SIMDSint16x8 || dst.Bitwidth != 16 {
		return ErrUnsupported
	}
	if dst.NrOfSamples != src.NrOfSamples || dst.NrOfChannels > 8 {
		return ErrInvalidArgument
	}
	for i := uint32(0); i < src.NrOfSamples; i++ {
		v, err := src.SampleInt8(i, srcChannel)
		if err != nil {
			return err
		}
		dst.setSampleInt16(i, dstChannel, int16(v))
	}
	return nil
}

// ConvertFromWide is the inverse of ConvertToWide, but only writes
// destination channel 0: the source's convert_from_NeonAlignedBuffer has
// the same asymmetry, and the intended semantics for a multi-channel
// inverse conversion are left unspecified by the original design (see
// Open Questions in SPEC_FULL.md). This implementation preserves that
// asymmetry rather than guessing at a richer contract.
func ConvertFromWide(src, dst *ValueBuffer) error {
	if src.ValueType != SIMDSint16x8 || src.Bitwidth != 16 {
		return ErrUnsupported
	}
	if dst.ValueType != AnalogSint8 || dst.Bitwidth != 8 {
		return ErrUnsupported
	}
	for i := uint32(0); i < src.NrOfSamples; i++ {
		v, err := src.SampleSIMDSint16x8(i, 0)
		if err != nil {
			return err
		}
		dst.setSampleInt8(i, 0, int8(v))
	}
	dst.NrOfSamples = src.NrOfSamples
	return nil
}
