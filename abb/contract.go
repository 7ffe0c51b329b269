package abb

// Allocator is the contract every primitive and combinator satisfies.
type Allocator interface {
	// Allocate returns a block of at least size bytes, aligned to
	// Alignment(). Returns the null block on exhaustion.
	Allocate(size uintptr) Block

	// Deallocate releases a block previously returned by Allocate or
	// Reallocate on this same allocator. A no-op on the null block, and
	// silent (never panics) if the block is not recognized — except
	// NullAllocator, which panics on any non-null block.
	Deallocate(b *Block)

	// Reallocate attempts to resize b to newSize. On success it updates *b
	// in place (possibly with a new backing Data) and returns true. On
	// failure it leaves *b untouched and returns false. newSize == 0 must
	// be handled as deallocation.
	Reallocate(b *Block, newSize uintptr) bool

	// Alignment is the allocator's alignment guarantee in bytes.
	Alignment() uintptr

	// SupportsTruncatedDeallocation reports whether allocating N*k bytes and
	// later using them as k distinct blocks of N bytes is safe — true only
	// for allocators that perform no per-allocation bookkeeping (bump
	// allocators).
	SupportsTruncatedDeallocation() bool
}

// OwningAllocator is the optional capability of answering whether a block
// was handed out by this allocator. Combinators that route a deallocate or
// reallocate call across multiple inner allocators require their routed-to
// inner allocators to implement this.
type OwningAllocator interface {
	Allocator
	Owns(b Block) bool
}

// Resettable is the optional capability of releasing every outstanding
// block at once and returning to an empty state.
type Resettable interface {
	DeallocateAll()
}

// asOwning type-asserts a to OwningAllocator, for combinators generic over
// a plain Allocator that still need to test ownership defensively.
func asOwning(a Allocator) (OwningAllocator, bool) {
	o, ok := a.(OwningAllocator)
	return o, ok
}

// resetIfSupported calls DeallocateAll on a if it implements Resettable,
// and is a silent no-op otherwise — deallocateAll is optional per the
// contract.
func resetIfSupported(a Allocator) {
	if r, ok := a.(Resettable); ok {
		r.DeallocateAll()
	}
}

// ownsIfSupported reports a.Owns(b) if a implements OwningAllocator, and
// false otherwise — used by combinators generic over a plain Allocator
// that still want to try routing by ownership where possible.
func ownsIfSupported(a Allocator, b Block) bool {
	o, ok := asOwning(a)
	return ok && o.Owns(b)
}
