package abb

// Linear is a stack-discipline bump allocator: allocations advance a cursor
// through a buffer, and only the most recently allocated block can be
// deallocated (rewinding the cursor). It performs no per-allocation
// bookkeeping, so it supports truncated deallocation — the load-bearing
// property the Freelist combinator exploits to batch-carve many same-sized
// blocks out of one big allocation.
//
//	Buffer: |XXXXXXXXXXXXXXX|YYYYYY|                               |
//	                               ^
//	                             cursor
//
// Deallocating Y (the topmost block) rewinds the cursor by len(Y);
// deallocating X while Y is still outstanding is a no-op, since X is not
// topmost until Y has been released.
type Linear struct {
	provider  bufferProvider
	alignment uintptr
	cursor    uintptr // offset into provider.bytes()
}

var _ OwningAllocator = (*Linear)(nil)
var _ Resettable = (*Linear)(nil)

// NewStackLinear creates a Linear allocator over a fixed-size buffer
// allocated eagerly at construction (the original's stack_linear_allocator).
func NewStackLinear(size, alignment uintptr) *Linear {
	return &Linear{provider: newStackBuffer(size), alignment: alignment}
}

// NewHeapLinear creates a Linear allocator over a buffer carved from inner,
// either eagerly (lazy=false) or on first Allocate (lazy=true).
func NewHeapLinear(inner Allocator, size, alignment uintptr, lazy bool) *Linear {
	return &Linear{provider: newHeapBuffer(inner, size, lazy), alignment: alignment}
}

// NewMmapLinear creates a Linear allocator over an anonymous mmap mapping,
// eagerly or lazily.
func NewMmapLinear(size, alignment uintptr, lazy bool) *Linear {
	return &Linear{provider: newMmapBuffer(size, lazy), alignment: alignment}
}

func (l *Linear) Alignment() uintptr { return l.alignment }

// SupportsTruncatedDeallocation is always true for Linear: it tracks no
// per-allocation metadata, so a caller may carve a large allocation into
// several logical blocks without informing the allocator.
func (l *Linear) SupportsTruncatedDeallocation() bool { return true }

func (l *Linear) align(size uintptr) uintptr {
	return RoundToAlignment(size, l.alignment)
}

func (l *Linear) Allocate(size uintptr) Block {
	aligned := l.align(size)
	buf := l.provider.bytes()
	if l.cursor+aligned > uintptr(len(buf)) {
		return NullBlock
	}
	start := l.cursor
	l.cursor += aligned
	return Block{Data: buf[start:l.cursor:l.cursor]}
}

// isTopmost reports whether b is the most recently allocated block still
// outstanding — the only block Deallocate/in-place Reallocate can act on.
func (l *Linear) isTopmost(b Block) bool {
	buf := l.provider.bytes()
	if len(buf) == 0 {
		return false
	}
	base := uintptr(Block{Data: buf}.rawPtr())
	return b.addr()+b.Size() == base+l.cursor
}

func (l *Linear) Deallocate(b *Block) {
	if b.IsNull() {
		return
	}
	if l.isTopmost(*b) {
		l.cursor -= b.Size()
		*b = NullBlock
	}
	// Not topmost: LIFO-only discipline, silently ignored.
}

func (l *Linear) Reallocate(b *Block, newSize uintptr) bool {
	if handleCommonReallocation(l, b, newSize) {
		return true
	}

	alignedNew := l.align(newSize)

	if l.isTopmost(*b) {
		buf := l.provider.bytes()
		base := uintptr(Block{Data: buf}.rawPtr())
		newCursorOff := (b.addr() - base) + alignedNew
		if newCursorOff > uintptr(len(buf)) {
			return false
		}
		start := b.addr() - base
		l.cursor = newCursorOff
		*b = Block{Data: buf[start:l.cursor:l.cursor]}
		return true
	}

	// Pure shrink of a non-topmost block: report success but do not touch
	// b.Data. The stored size must stay the original allocation size so the
	// block is still recognized as topmost if everything above it is later
	// freed.
	if b.Size() >= alignedNew {
		return true
	}

	return reallocateAndCopy(l, l, b, newSize)
}

// Owns reports whether b starts inside the handed-out part of this
// allocator's buffer (below the cursor), so a block rewound by Deallocate,
// and every block after DeallocateAll, is no longer owned.
func (l *Linear) Owns(b Block) bool {
	buf := l.provider.bytes()
	if len(buf) == 0 || b.IsNull() {
		return false
	}
	base := uintptr(Block{Data: buf}.rawPtr())
	return b.addr() >= base && b.addr() < base+l.cursor
}

// DeallocateAll rewinds the cursor to the start of the buffer, invalidating
// every outstanding block at once.
func (l *Linear) DeallocateAll() {
	l.cursor = 0
}
