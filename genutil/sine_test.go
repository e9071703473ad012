package genutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mynd-ideal/timelinedb"
)

func TestGenerateSine_AnalogSint8(t *testing.T) {
	var buf timelinedb.ValueBuffer
	buf.Init()
	buf.ValueType = timelinedb.AnalogSint8
	require.NoError(t, GenerateSine(&buf, 25, 1, 25.0, 100.0, 1_000_000))

	assert.Equal(t, uint32(25), buf.NrOfSamples)
	assert.Equal(t, timelinedb.AnalogSint8, buf.ValueType)

	var peak int8
	for i := uint32(0); i < 25; i++ {
		v, err := buf.SampleInt8(i, 0)
		require.NoError(t, err)
		if abs8(v) > abs8(peak) {
			peak = v
		}
	}
	assert.InDeltaf(t, 100, math.Abs(float64(peak)), 3, "peak amplitude should trace close to the requested 100")
}

func TestGenerateSine_SIMDSint16x8(t *testing.T) {
	var buf timelinedb.ValueBuffer
	buf.Init()
	buf.ValueType = timelinedb.SIMDSint16x8
	require.NoError(t, GenerateSine(&buf, 100, 8, 25.0, 1000.0, 1_500_000))

	assert.Equal(t, uint8(8), buf.NrOfChannels)
	assert.Equal(t, timelinedb.SIMDSint16x8, buf.ValueType)

	v0, err := buf.SampleSIMDSint16x8(0, 0)
	require.NoError(t, err)
	v1, err := buf.SampleSIMDSint16x8(0, 1)
	require.NoError(t, err)
	assert.NotEqual(t, v0, v1, "adjacent channels should be phase-shifted")
}

func TestGenerateSine_UnsupportedType(t *testing.T) {
	var buf timelinedb.ValueBuffer
	buf.Init()
	buf.ValueType = timelinedb.AnalogFloat32
	err := GenerateSine(&buf, 10, 1, 10, 1, 1000)
	assert.ErrorIs(t, err, timelinedb.ErrUnsupported)
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}
