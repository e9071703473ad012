package timelinedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareWideAndConvertToWide(t *testing.T) {
	var src ValueBuffer
	src.Init()
	src.Allocate(5, 1, 8, 1, AnalogSint8)
	for i := uint32(0); i < 5; i++ {
		require.NoError(t, src.SetSampleInt8(i, 0, int8(i*10)))
	}

	var wide ValueBuffer
	wide.Init()
	require.NoError(t, PrepareWide(&src, &wide))
	assert.Equal(t, SIMDSint16x8, wide.ValueType)
	assert.Equal(t, uint8(8), wide.NrOfChannels)
	assert.Equal(t, uint32(5), wide.NrOfSamples)

	require.NoError(t, ConvertToWide(&src, &wide, 0, 3))
	for i := uint32(0); i < 5; i++ {
		v, err := wide.SampleSIMDSint16x8(i, 3)
		require.NoError(t, err)
		assert.Equal(t, int16(i*10), v)
	}
}

func TestConvertFromWide_ChannelZeroOnly(t *testing.T) {
	var wide ValueBuffer
	wide.Init()
	wide.Allocate(3, 8, 16, 16, SIMDSint16x8)
	for i := uint32(0); i < 3; i++ {
		for ch := uint8(0); ch < 8; ch++ {
			require.NoError(t, wide.SetSampleSIMDSint16x8(i, ch, int16(i+uint32(ch)*100)))
		}
	}

	var narrow ValueBuffer
	narrow.Init()
	narrow.Allocate(3, 1, 8, 1, AnalogSint8)

	require.NoError(t, ConvertFromWide(&wide, &narrow))
	for i := uint32(0); i < 3; i++ {
		v, err := narrow.SampleInt8(i, 0)
		require.NoError(t, err)
		assert.Equal(t, int8(i), v, "only channel 0 is expected to carry over")
	}
}

func TestPrepareWide_RejectsWrongSourceType(t *testing.T) {
	var src ValueBuffer
	src.Init()
	src.Allocate(3, 1, 16, 16, SIMDSint16x8)

	var wide ValueBuffer
	wide.Init()
	assert.ErrorIs(t, PrepareWide(&src, &wide), ErrUnsupported)
}
