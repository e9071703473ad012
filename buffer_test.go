package timelinedb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestValueBuffer_AllocateAndSampleRoundTrip(t *testing.T) {
	var buf ValueBuffer
	buf.Init()
	buf.Allocate(10, 2, 8, 1, AnalogSint8)

	require.Equal(t, uint32(10), buf.NrOfSamples)
	require.Equal(t, uint8(2), buf.NrOfChannels)
	require.Equal(t, uint32(2), buf.BytesPerSample)
	require.Equal(t, uint32(40), buf.BufferSize)

	require.NoError(t, buf.SetSampleInt8(3, 1, -42))
	v, err := buf.SampleInt8(3, 1)
	require.NoError(t, err)
	assert.Equal(t, int8(-42), v)

	_, err = buf.SampleInt8(10, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = buf.SampleInt8(0, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestValueBuffer_SampleWrongBitwidth(t *testing.T) {
	var buf ValueBuffer
	buf.Init()
	buf.Allocate(4, 1, 8, 1, AnalogSint8)

	_, err := buf.SampleSIMDSint16x8(0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = buf.SampleFloat32(0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValueBuffer_AlignedAllocation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nrOfSamples := rapid.Uint32Range(1, 64).Draw(t, "nrOfSamples")
		align := rapid.SampledFrom([]uint8{1, 2, 4, 8, 16, 32}).Draw(t, "align")

		var buf ValueBuffer
		buf.Init()
		buf.Allocate(nrOfSamples, 8, 16, align, SIMDSint16x8)

		assert.Equal(t, 0, int(sliceAddr(buf.Buffer))%int(align), "buffer base address must be a multiple of the requested alignment")
		assert.GreaterOrEqual(t, len(buf.Buffer), int(buf.BufferSize))
	})
}

func TestValueBuffer_Free(t *testing.T) {
	var buf ValueBuffer
	buf.Init()
	buf.Allocate(4, 1, 8, 1, AnalogSint8)
	buf.SampleRateInfo = &SampleRateInfo{RateRatio: 2}
	buf.PreparedInterp = []SampleInterpInfo{{}}

	buf.Free()

	assert.Nil(t, buf.Buffer)
	assert.Nil(t, buf.SampleRateInfo)
	assert.Nil(t, buf.PreparedInterp)
	assert.Equal(t, uint32(0), buf.NrOfSamples)
}

func TestValueBuffer_TryAllocate_OverflowFails(t *testing.T) {
	var buf ValueBuffer
	buf.Init()
	err := buf.tryAllocate(math.MaxUint32, 2, 16, 1, AnalogSint8)
	assert.ErrorIs(t, err, ErrAllocationFailed)
}

func TestValueBuffer_Allocate_PanicsOnOverflow(t *testing.T) {
	var buf ValueBuffer
	buf.Init()
	assert.Panics(t, func() {
		buf.Allocate(math.MaxUint32, 2, 16, 1, AnalogSint8)
	})
}

func TestValueType_String(t *testing.T) {
	assert.Equal(t, "AnalogSint8", AnalogSint8.String())
	assert.Equal(t, "SIMDSint16x8", SIMDSint16x8.String())
	assert.Contains(t, ValueType(200).String(), "ValueType")
}
