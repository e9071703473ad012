package timelinedb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAggregateMinMax_AnalogSint8(t *testing.T) {
	var src ValueBuffer
	src.Init()
	src.Allocate(10, 1, 8, 1, AnalogSint8)
	values := []int8{1, -5, 3, 10, -10, 0, 7, -2, 9, -9}
	for i, v := range values {
		require.NoError(t, src.SetSampleInt8(uint32(i), 0, v))
	}

	var outMin, outMax ValueBuffer
	outMin.Init()
	outMax.Init()
	require.NoError(t, PrepareMinMax(&src, &outMin, &outMax, 2))
	require.NoError(t, AggregateMinMax(&src, &outMin, &outMax, 0, 0))

	min0, err := outMin.SampleInt8(0, 0)
	require.NoError(t, err)
	max0, err := outMax.SampleInt8(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(-10), min0)
	assert.Equal(t, int8(10), max0)

	min1, err := outMin.SampleInt8(1, 0)
	require.NoError(t, err)
	max1, err := outMax.SampleInt8(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(-9), min1)
	assert.Equal(t, int8(9), max1)
}

// TestAggregateMinMax_AdvancingOffsetMatchesSingleShot checks property S6:
// advancing in_offset by one bucket's worth of samples and re-aggregating
// each window on its own yields the same per-bucket (min,max) as a single
// aggregation call covering both buckets at once.
func TestAggregateMinMax_AdvancingOffsetMatchesSingleShot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bucketWidth := rapid.Uint32Range(1, 16).Draw(t, "bucketWidth")
		nrSamples := bucketWidth * 2

		var src ValueBuffer
		src.Init()
		src.Allocate(nrSamples, 1, 8, 1, AnalogSint8)
		for i := uint32(0); i < nrSamples; i++ {
			v := rapid.Int8().Draw(t, "sample")
			require.NoError(t, src.SetSampleInt8(i, 0, v))
		}

		var wholeMin, wholeMax ValueBuffer
		wholeMin.Init()
		wholeMax.Init()
		require.NoError(t, PrepareMinMax(&src, &wholeMin, &wholeMax, 2))
		require.NoError(t, AggregateMinMax(&src, &wholeMin, &wholeMax, nrSamples, 0))

		for bucket := uint32(0); bucket < 2; bucket++ {
			var windowMin, windowMax ValueBuffer
			windowMin.Init()
			windowMax.Init()
			require.NoError(t, PrepareMinMax(&src, &windowMin, &windowMax, 1))
			require.NoError(t, AggregateMinMax(&src, &windowMin, &windowMax, bucketWidth, bucket*bucketWidth))

			wantMin, err := wholeMin.SampleInt8(bucket, 0)
			require.NoError(t, err)
			wantMax, err := wholeMax.SampleInt8(bucket, 0)
			require.NoError(t, err)

			gotMin, err := windowMin.SampleInt8(0, 0)
			require.NoError(t, err)
			gotMax, err := windowMax.SampleInt8(0, 0)
			require.NoError(t, err)

			assert.Equal(t, wantMin, gotMin)
			assert.Equal(t, wantMax, gotMax)
		}
	})
}

// TestAggregateMinMax_OutSamplesEqualsSrc checks property 7: with
// out_samples == src.nr_of_samples, out_min == out_max == src element-wise
// for supported types.
func TestAggregateMinMax_OutSamplesEqualsSrc(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nrSamples := rapid.Uint32Range(1, 32).Draw(t, "nrSamples")

		var src ValueBuffer
		src.Init()
		src.Allocate(nrSamples, 1, 8, 1, AnalogSint8)
		for i := uint32(0); i < nrSamples; i++ {
			v := rapid.Int8().Draw(t, "sample")
			require.NoError(t, src.SetSampleInt8(i, 0, v))
		}

		var outMin, outMax ValueBuffer
		outMin.Init()
		outMax.Init()
		require.NoError(t, PrepareMinMax(&src, &outMin, &outMax, nrSamples))
		require.NoError(t, AggregateMinMax(&src, &outMin, &outMax, 0, 0))

		for i := uint32(0); i < nrSamples; i++ {
			want, err := src.SampleInt8(i, 0)
			require.NoError(t, err)
			gotMin, err := outMin.SampleInt8(i, 0)
			require.NoError(t, err)
			gotMax, err := outMax.SampleInt8(i, 0)
			require.NoError(t, err)
			assert.Equal(t, want, gotMin)
			assert.Equal(t, want, gotMax)
		}
	})
}

// TestAggregateMinMax_SingleBucketIsGlobalMinMax checks property 8: with
// out_samples == 1 and in_samples == src.nr_of_samples, the single output
// equals the global per-channel min and max.
func TestAggregateMinMax_SingleBucketIsGlobalMinMax(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nrSamples := rapid.Uint32Range(1, 32).Draw(t, "nrSamples")
		nrChannels := rapid.Uint8Range(1, 4).Draw(t, "nrChannels")

		var src ValueBuffer
		src.Init()
		src.Allocate(nrSamples, nrChannels, 8, 1, AnalogSint8)
		wantMin := make([]int8, nrChannels)
		wantMax := make([]int8, nrChannels)
		for ch := uint8(0); ch < nrChannels; ch++ {
			wantMin[ch] = math.MaxInt8
			wantMax[ch] = math.MinInt8
		}
		for i := uint32(0); i < nrSamples; i++ {
			for ch := uint8(0); ch < nrChannels; ch++ {
				v := rapid.Int8().Draw(t, "sample")
				require.NoError(t, src.SetSampleInt8(i, ch, v))
				if v < wantMin[ch] {
					wantMin[ch] = v
				}
				if v > wantMax[ch] {
					wantMax[ch] = v
				}
			}
		}

		var outMin, outMax ValueBuffer
		outMin.Init()
		outMax.Init()
		require.NoError(t, PrepareMinMax(&src, &outMin, &outMax, 1))
		require.NoError(t, AggregateMinMax(&src, &outMin, &outMax, nrSamples, 0))

		for ch := uint8(0); ch < nrChannels; ch++ {
			gotMin, err := outMin.SampleInt8(0, ch)
			require.NoError(t, err)
			gotMax, err := outMax.SampleInt8(0, ch)
			require.NoError(t, err)
			assert.Equal(t, wantMin[ch], gotMin)
			assert.Equal(t, wantMax[ch], gotMax)
		}
	})
}

// TestPrepareMinMax_AllocationFailure checks that an allocation whose byte
// size overflows uint32 surfaces ErrAllocationFailed rather than panicking.
func TestPrepareMinMax_AllocationFailure(t *testing.T) {
	var src ValueBuffer
	src.Init()
	src.NrOfChannels = 2
	src.Bitwidth = 16
	src.ValueType = AnalogSint8
	src.TimeStep = 1

	var outMin, outMax ValueBuffer
	outMin.Init()
	outMax.Init()
	err := PrepareMinMax(&src, &outMin, &outMax, math.MaxUint32)
	assert.ErrorIs(t, err, ErrAllocationFailed)
}

func TestAggregateMinMax_UnsupportedType(t *testing.T) {
	var src ValueBuffer
	src.Init()
	src.Allocate(4, 1, 32, 1, AnalogFloat32)

	var outMin, outMax ValueBuffer
	outMin.Init()
	outMax.Init()
	err := AggregateMinMax(&src, &outMin, &outMax, 0, 0)
	assert.ErrorIs(t, err, ErrUnsupported)
}
