// Package timelinedb stores, resamples and downsamples dense multi-channel
// time-series at interactive rates. The central artifact is the ValueBuffer,
// an interleaved sample region with precise time metadata; the Backend
// Registry dispatches its resampling and min/max aggregation kernels to a
// scalar or vector-shaped implementation chosen at runtime.
package timelinedb

import (
	"fmt"
	"math"
)

// ValueType identifies the bit layout of the samples held by a ValueBuffer.
// The compute kernels (resampling, aggregation) only support AnalogSint8 and
// SIMDSint16x8; every other variant is accepted by the data model and by the
// formatting/accessor helpers, but is rejected with ErrUnsupported by compute
// operations.
type ValueType uint8

const (
	Undefined ValueType = iota
	Digital1
	Digital4
	Digital8
	AnalogSint8
	AnalogFloat32
	AnalogFloat64
	SIMDSint16x8
	SIMDSint24x8
)

func (vt ValueType) String() string {
	switch vt {
	case Undefined:
		return "Undefined"
	case Digital1:
		return "Digital1"
	case Digital4:
		return "Digital4"
	case Digital8:
		return "Digital8"
	case AnalogSint8:
		return "AnalogSint8"
	case AnalogFloat32:
		return "AnalogFloat32"
	case AnalogFloat64:
		return "AnalogFloat64"
	case SIMDSint16x8:
		return "SIMDSint16x8"
	case SIMDSint24x8:
		return "SIMDSint24x8"
	default:
		return fmt.Sprintf("ValueType(%d)", uint8(vt))
	}
}

// SampleRateInfo carries the ratio between a resampling destination's rate
// and its source's rate. It is allocated only on buffers produced by
// PrepareRateConversion and released together with the buffer.
type SampleRateInfo struct {
	RateRatio float64
}

// SampleInterpInfo is one entry of the per-output-sample interpolation table
// consumed by the SIMDSint16x8 rate-conversion kernel: the two source sample
// indices to blend, and their Q0.16 fixed-point blend weights.
type SampleInterpInfo struct {
	Idx0     uint32
	Idx1     uint32
	Frac     uint16 // Q0.16 weight of Idx1
	InvFrac  uint16 // Q0.16 weight of Idx0 (0xFFFF - Frac, the one's complement of Frac)
}

// ValueBuffer is the central entity of the library: an aligned byte region
// plus the metadata needed to interpret it as a multi-channel time-series.
// A ValueBuffer exclusively owns Buffer, SampleRateInfo and PreparedInterp;
// there is no sharing between buffers.
type ValueBuffer struct {
	ValueType      ValueType
	NrOfSamples    uint32
	NrOfChannels   uint8
	Bitwidth       uint8
	BytesPerSample uint32
	BufferSize     uint32
	Buffer         []byte

	TimeStep     uint32
	TimeExponent int8
	TotalTimeSec float64

	SampleRateInfo *SampleRateInfo
	PreparedInterp []SampleInterpInfo

	// alignment is the byte alignment requested at Allocate time. It is
	// kept so the prepare-functions can allocate their destination buffers
	// with the same alignment as the source.
	alignment uint8
}

// Init resets buf to its zero state: no backing storage, no auxiliary
// records, zero shape. It is always safe to call, including on an
// already-initialized or already-freed buffer.
func (buf *ValueBuffer) Init() {
	*buf = ValueBuffer{}
}

// Allocate gives buf backing storage sized for nrOfSamples samples of
// nrOfChannels channels at bitwidth bits each, aligned to alignment bytes
// (16 is required for the SIMD* variants). BytesPerSample is computed as
// ceil(nrOfChannels*bitwidth/8); BufferSize is
// nrOfSamples*nrOfChannels*BytesPerSample, rounded up to a multiple of
// alignment when alignment > 1.
//
// Allocate panics if the allocator cannot satisfy the request. This mirrors
// the C source's strict memory requirement (spec §7: AllocationFailed is
// fatal for Allocate itself, the one documented path where the library
// itself logs before giving up, mirroring the source's fprintf-then-exit);
// callers that need a recoverable failure path should look to the
// prepare-functions, which call tryAllocate for their own auxiliary
// destination buffers and return ErrAllocationFailed to the caller instead
// of panicking.
func (buf *ValueBuffer) Allocate(nrOfSamples uint32, nrOfChannels, bitwidth, alignment uint8, valueType ValueType) {
	if err := buf.tryAllocate(nrOfSamples, nrOfChannels, bitwidth, alignment, valueType); err != nil {
		logger.Error("allocation failed", "nrOfSamples", nrOfSamples, "nrOfChannels", nrOfChannels, "bitwidth", bitwidth, "err", err)
		panic(fmt.Sprintf("timelinedb: allocation failed for %d samples of %d channels at %d bits: %v",
			nrOfSamples, nrOfChannels, bitwidth, err))
	}
}

// tryAllocate is the recoverable counterpart to Allocate: same sizing and
// aligned-allocation work, but it reports failure by returning
// ErrAllocationFailed instead of panicking. Like every other fallible
// operation in this package, it never logs — it leaves diagnosis of the
// returned error to its caller. Allocate is the one path that turns this
// error into the documented fatal panic (spec §7).
func (buf *ValueBuffer) tryAllocate(nrOfSamples uint32, nrOfChannels, bitwidth, alignment uint8, valueType ValueType) error {
	buf.NrOfSamples = nrOfSamples
	buf.NrOfChannels = nrOfChannels
	buf.Bitwidth = bitwidth
	buf.ValueType = valueType
	buf.alignment = alignment

	buf.BytesPerSample = (uint32(nrOfChannels)*uint32(bitwidth) + 7) / 8

	size, overflowed := mulUint32Checked(nrOfSamples, uint32(nrOfChannels)*buf.BytesPerSample)
	if overflowed {
		return ErrAllocationFailed
	}
	buf.BufferSize = alignedSize(size, alignment)

	region, err := allocAligned(buf.BufferSize, alignment)
	if err != nil {
		return ErrAllocationFailed
	}
	buf.Buffer = region
	return nil
}

// mulUint32Checked multiplies a and b, reporting whether the exact product
// overflows uint32 rather than silently wrapping.
func mulUint32Checked(a, b uint32) (product uint32, overflowed bool) {
	wide := uint64(a) * uint64(b)
	if wide > math.MaxUint32 {
		return 0, true
	}
	return uint32(wide), false
}

// Free releases Buffer, SampleRateInfo and PreparedInterp, and resets
// NrOfSamples to zero. Free on an already-freed (or never-allocated) buffer
// is a no-op.
func (buf *ValueBuffer) Free() {
	buf.Buffer = nil
	buf.SampleRateInfo = nil
	buf.PreparedInterp = nil
	buf.NrOfSamples = 0
}

// alignedSize rounds size up to a multiple of alignment. alignment <= 1
// leaves size unchanged.
func alignedSize(size uint32, alignment uint8) uint32 {
	if alignment <= 1 {
		return size
	}
	a := uint32(alignment)
	return (size + a - 1) &^ (a - 1)
}

// allocAligned allocates size bytes whose first byte sits on an alignment
// boundary. Go's allocator gives no portable alignment guarantee beyond the
// platform word size, so for alignment greater than that we over-allocate
// and return a sub-slice starting at the next aligned address — the same
// technique used by Go's own SIMD-oriented libraries in the absence of a
// posix_memalign/aligned_alloc equivalent.
func allocAligned(size uint32, alignment uint8) ([]byte, error) {
	if alignment <= 1 {
		return make([]byte, size), nil
	}
	a := uintptr(alignment)
	raw := make([]byte, uintptr(size)+a-1)
	if len(raw) == 0 {
		return raw, nil
	}
	start := alignUp(sliceAddr(raw), a) - sliceAddr(raw)
	return raw[start : start+uintptr(size) : start+uintptr(size)], nil
}

// SampleByteOffset returns the byte offset of channel ch of sample i within
// Buffer. It fails with ErrOutOfRange when i or ch is beyond the buffer's
// extents.
func (buf *ValueBuffer) SampleByteOffset(i uint32, ch uint8) (uint32, error) {
	if i >= buf.NrOfSamples || ch >= buf.NrOfChannels {
		return 0, ErrOutOfRange
	}
	return i*buf.BytesPerSample + uint32(ch)*uint32(buf.Bitwidth)/8, nil
}

// SampleInt8 reads one 8-bit channel sample. It fails if Bitwidth != 8 or the
// index is out of range, and returns 0 with the error on failure.
func (buf *ValueBuffer) SampleInt8(i uint32, ch uint8) (int8, error) {
	if buf.Bitwidth != 8 {
		return 0, ErrInvalidArgument
	}
	off, err := buf.SampleByteOffset(i, ch)
	if err != nil {
		return 0, err
	}
	return int8(buf.Buffer[off]), nil
}

// SampleFloat32 reads one 32-bit float channel sample. It fails if
// Bitwidth != 32 or the index is out of range.
func (buf *ValueBuffer) SampleFloat32(i uint32, ch uint8) (float32, error) {
	if buf.Bitwidth != 32 {
		return 0, ErrInvalidArgument
	}
	off, err := buf.SampleByteOffset(i, ch)
	if err != nil {
		return 0, err
	}
	return bytesToFloat32(buf.Buffer[off : off+4]), nil
}

// SampleSIMDSint16x8 reads one 16-bit channel sample from a wide SIMD
// buffer. It fails if Bitwidth != 16 or the index is out of range.
func (buf *ValueBuffer) SampleSIMDSint16x8(i uint32, ch uint8) (int16, error) {
	if buf.Bitwidth != 16 {
		return 0, ErrInvalidArgument
	}
	off, err := buf.SampleByteOffset(i, ch)
	if err != nil {
		return 0, err
	}
	return bytesToInt16(buf.Buffer[off : off+2]), nil
}

// setSampleInt8 writes one 8-bit channel sample. Used internally by the
// compute and layout kernels; it does no range checking of its own, so an
// index beyond Buffer panics.
func (buf *ValueBuffer) setSampleInt8(i uint32, ch uint8, v int8) {
	off := i*buf.BytesPerSample + uint32(ch)*uint32(buf.Bitwidth)/8
	buf.Buffer[off] = byte(v)
}

// setSampleInt16 writes one 16-bit channel sample in a wide SIMD buffer.
func (buf *ValueBuffer) setSampleInt16(i uint32, ch uint8, v int16) {
	off := i*buf.BytesPerSample + uint32(ch)*uint32(buf.Bitwidth)/8
	putInt16(buf.Buffer[off:off+2], v)
}

// SetSampleInt8 writes one 8-bit channel sample. It fails if Bitwidth != 8
// or the index is out of range.
func (buf *ValueBuffer) SetSampleInt8(i uint32, ch uint8, v int8) error {
	if buf.Bitwidth != 8 {
		return ErrInvalidArgument
	}
	off, err := buf.SampleByteOffset(i, ch)
	if err != nil {
		return err
	}
	buf.Buffer[off] = byte(v)
	return nil
}

// SetSampleFloat32 writes one 32-bit float channel sample. It fails if
// Bitwidth != 32 or the index is out of range.
func (buf *ValueBuffer) SetSampleFloat32(i uint32, ch uint8, v float32) error {
	if buf.Bitwidth != 32 {
		return ErrInvalidArgument
	}
	off, err := buf.SampleByteOffset(i, ch)
	if err != nil {
		return err
	}
	putFloat32(buf.Buffer[off:off+4], v)
	return nil
}

// SetSampleSIMDSint16x8 writes one 16-bit channel sample into a wide SIMD
// buffer. It fails if Bitwidth != 16 or the index is out of range.
func (buf *ValueBuffer) SetSampleSIMDSint16x8(i uint32, ch uint8, v int16) error {
	if buf.Bitwidth != 16 {
		return ErrInvalidArgument
	}
	off, err := buf.SampleByteOffset(i, ch)
	if err != nil {
		return err
	}
	putInt16(buf.Buffer[off:off+2], v)
	return nil
}
