package abb

import "errors"

var (
	// ErrInvalidRange indicates a freelist, segregator, or bucketizer size
	// range with min > max, or zero width where non-zero is required.
	ErrInvalidRange = errors.New("abb: invalid size range")

	// ErrFreelistMaxTooSmall indicates a freelist's max size is smaller than
	// a pointer — too small to host the intrusive next-node link.
	ErrFreelistMaxTooSmall = errors.New("abb: freelist max size must be at least pointer-sized")

	// ErrBatchExceedsCapacity indicates a freelist's batch size is larger
	// than its max node count.
	ErrBatchExceedsCapacity = errors.New("abb: freelist batch size exceeds max node count")

	// ErrPointlessAffix indicates an Affix allocator configured with no
	// prefix and no suffix.
	ErrPointlessAffix = errors.New("abb: affix allocator with no prefix and no suffix")

	// ErrNonDivisibleStep indicates a linear bucketizer range raider whose
	// step size does not evenly divide [lo, hi].
	ErrNonDivisibleStep = errors.New("abb: bucketizer step size must divide the range")

	// ErrNotPow2Range indicates a power-of-two bucketizer range raider whose
	// bounds are not themselves powers of two.
	ErrNotPow2Range = errors.New("abb: bucketizer bounds must be powers of two")

	// ErrZeroBufferSize indicates a buffer provider constructed with a
	// non-positive size.
	ErrZeroBufferSize = errors.New("abb: buffer size must be positive")
)
