package abb

// Default stamp patterns, matching the original's _AllocationPattern /
// _DeallocationPattern defaults (0xAA / 0xFF).
const (
	DefaultAllocationPattern   byte = 0xAA
	DefaultDeallocationPattern byte = 0xFF
)

// Stamp wraps inner and fills every block with a sentinel byte on allocate
// and another on deallocate, so use-after-free and use-of-uninitialized
// bugs in client code produce a recognizable byte pattern instead of
// whatever garbage happened to be there. A debug-build aid, not a security
// control — the stamping happens before the caller gets the block (on
// allocate) or after they've released it (on deallocate), so it never hides
// real data from a buggy caller that's still holding a stale block.
//
// Go's lack of const-generic parameters (unlike the original's
// _AllocationPattern/_DeallocationPattern template values) means the
// patterns are constructor arguments here rather than compile-time
// constants.
type Stamp[A Allocator] struct {
	inner      A
	allocPat   byte
	deallocPat byte
}

// NewStamp wraps inner with DefaultAllocationPattern/DefaultDeallocationPattern.
func NewStamp[A Allocator](inner A) *Stamp[A] {
	return NewStampWithPatterns[A](inner, DefaultAllocationPattern, DefaultDeallocationPattern)
}

// NewStampWithPatterns wraps inner with explicit fill patterns.
func NewStampWithPatterns[A Allocator](inner A, allocPat, deallocPat byte) *Stamp[A] {
	return &Stamp[A]{inner: inner, allocPat: allocPat, deallocPat: deallocPat}
}

func (s *Stamp[A]) Alignment() uintptr { return s.inner.Alignment() }

func (s *Stamp[A]) SupportsTruncatedDeallocation() bool {
	return s.inner.SupportsTruncatedDeallocation()
}

func (s *Stamp[A]) Allocate(size uintptr) Block {
	b := s.inner.Allocate(size)
	if !b.IsNull() {
		fill(b, s.allocPat)
	}
	return b
}

func (s *Stamp[A]) Deallocate(b *Block) {
	if !b.IsNull() {
		fill(*b, s.deallocPat)
	}
	s.inner.Deallocate(b)
}

// Reallocate passes straight through to inner, same as the original (which
// never overrides reallocate). Only blocks going through Allocate and
// Deallocate are stamped: bytes added or released by a resize are not.
func (s *Stamp[A]) Reallocate(b *Block, newSize uintptr) bool {
	return s.inner.Reallocate(b, newSize)
}

func (s *Stamp[A]) Owns(b Block) bool {
	owning, ok := asOwning(s.inner)
	return ok && owning.Owns(b)
}

func (s *Stamp[A]) DeallocateAll() {
	resetIfSupported(s.inner)
}

func fill(b Block, pattern byte) {
	for i := range b.Data {
		b.Data[i] = pattern
	}
}
