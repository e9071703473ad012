package timelinedb

import "golang.org/x/sys/cpu"

// convertSampleRateFunc resamples an 8-channel SIMDSint16x8 source into a
// previously prepared destination.
type convertSampleRateFunc func(src, dst *ValueBuffer) error

// aggregateMinMaxFunc computes the per-channel min/max of src over source
// indices [start, end) and writes them at bucket index i of outMin/outMax.
type aggregateMinMaxFunc func(src, outMin, outMax *ValueBuffer, i, start, end uint32)

// Backend is a table of per-value-type compute kernels, the Go realization
// of the C source's function-pointer table keyed by operation. Exactly two
// backends are built in: the scalar "C Backend" and the lane-parallel-
// shaped "SIMD Backend". Both are read-only after package initialization.
type Backend struct {
	Name                 string
	ConvertSampleRateS16x8 convertSampleRateFunc
	AggregateMinMaxS8      aggregateMinMaxFunc
	AggregateMinMaxS16x8   aggregateMinMaxFunc
}

var scalarBackend = Backend{
	Name:                   "C Backend",
	ConvertSampleRateS16x8: convertSampleRateS16x8Scalar,
	AggregateMinMaxS8:      aggregateMinMaxS8Scalar,
	AggregateMinMaxS16x8:   aggregateMinMaxS16x8Scalar,
}

var vectorBackend = Backend{
	Name:                   "SIMD Backend",
	ConvertSampleRateS16x8: convertSampleRateS16x8Vector,
	AggregateMinMaxS8:      aggregateMinMaxS8Vector,
	AggregateMinMaxS16x8:   aggregateMinMaxS16x8Vector,
}

// active is the process-wide selected backend. It is configuration, not
// runtime state: spec §5 requires callers to treat SetBackend as startup
// configuration and never call it concurrently with a compute operation.
var active = &scalarBackend

func init() {
	// Choose the default the same way the C source's compile-time
	// NEON_ENABLED/AVX_ENABLED gates would: prefer the vector backend
	// when the running CPU actually has the matching SIMD ISA. Go has no
	// portable compile-time CPU dispatch, so this runtime check (via
	// golang.org/x/sys/cpu) is the idiomatic equivalent. SetBackend can
	// still override this default at any time.
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		active = &vectorBackend
	}
}

func activeBackend() *Backend {
	return active
}

// BackendsCount returns the number of built-in backends: always 2.
func BackendsCount() uint8 {
	return 2
}

// BackendName reports the name of backend index: 0 is always "C Backend",
// 1 is always "SIMD Backend"; any other index reports the name of the
// currently active backend.
func BackendName(index int) string {
	switch index {
	case 0:
		return scalarBackend.Name
	case 1:
		return vectorBackend.Name
	default:
		return active.Name
	}
}

// SetBackend selects the active backend: 0 for scalar, 1 for vector.
// Any other index returns ErrInvalidArgument. Must not be called
// concurrently with a compute operation (spec §5).
func SetBackend(index int) error {
	switch index {
	case 0:
		active = &scalarBackend
	case 1:
		active = &vectorBackend
	default:
		return ErrInvalidArgument
	}
	return nil
}
