package genutil

import (
	"fmt"
	"strings"

	"github.com/mynd-ideal/timelinedb"
)

// Dump renders buf as a multi-line, human-readable text block: a header
// line with its shape and engineering-scaled sample rate/time interval,
// followed by one line per channel listing every sample value. Value types
// without a typed accessor here print a "??" placeholder per sample.
//
// Dump is read-only ground truth for property tests and the devtest
// command's output; it never allocates into buf.
func Dump(buf *timelinedb.ValueBuffer) string {
	var b strings.Builder

	freqVal, freqUnit := timelinedb.SampleRateOf(buf)
	timeVal, timeUnit := timelinedb.TimeIntervalOf(buf)

	fmt.Fprintf(&b, "Dumping timeline buffer: %d samples, buf_size=%d, bitwidth=%d, bytes_per_sample=%d, "+
		"timestep=%d * 10^%d (~%.0f %s), sample rate: ~%.3f %s:\n",
		buf.NrOfSamples, buf.BufferSize, buf.Bitwidth, buf.BytesPerSample,
		buf.TimeStep, buf.TimeExponent, timeVal, timeUnit,
		freqVal, freqUnit)

	for ch := uint8(0); ch < buf.NrOfChannels; ch++ {
		fmt.Fprintf(&b, "Ch[%d]: ", ch)
		for i := uint32(0); i < buf.NrOfSamples; i++ {
			switch buf.ValueType {
			case timelinedb.AnalogSint8, timelinedb.Digital8:
				v, err := buf.SampleInt8(i, ch)
				if err != nil {
					b.WriteString("?? ")
					continue
				}
				fmt.Fprintf(&b, "%4d ", v)
			case timelinedb.SIMDSint16x8:
				v, err := buf.SampleSIMDSint16x8(i, ch)
				if err != nil {
					b.WriteString("?? ")
					continue
				}
				fmt.Fprintf(&b, "%6d ", v)
			case timelinedb.AnalogFloat32:
				v, err := buf.SampleFloat32(i, ch)
				if err != nil {
					b.WriteString("?? ")
					continue
				}
				fmt.Fprintf(&b, "%8.3f ", v)
			default:
				b.WriteString("?? ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
