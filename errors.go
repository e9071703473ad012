package timelinedb

import "errors"

// Sentinel errors returned by fallible operations. Callers should compare
// with errors.Is rather than equality, since operations may wrap these with
// additional context.
var (
	// ErrInvalidArgument is returned for a bad backend index, a sample or
	// channel count mismatch in layout conversion, or a typed accessor
	// used on a buffer of a different Bitwidth.
	ErrInvalidArgument = errors.New("timelinedb: invalid argument")

	// ErrOutOfRange is returned when a sample or channel index falls
	// outside the extents of a buffer.
	ErrOutOfRange = errors.New("timelinedb: index out of range")

	// ErrUnsupported is returned when a value type is not implemented by
	// the requested operation.
	ErrUnsupported = errors.New("timelinedb: unsupported value type")

	// ErrAllocationFailed is returned by prepare-functions when the
	// backing allocator cannot satisfy a request for auxiliary state.
	// Allocate itself does not return this error: it panics, mirroring
	// the C source's fatal exit(1) on out-of-memory.
	ErrAllocationFailed = errors.New("timelinedb: allocation failed")
)
