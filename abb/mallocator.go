package abb

// SystemHeap wraps the Go runtime heap as a leaf allocator. Deallocate
// releases nothing: in a garbage-collected runtime there is no explicit
// release to perform, the same choice wilhasse-innodb-go/mem.GoAllocator
// makes for its own Free. Reallocate always copies, since make([]byte, n)
// has no in-place resize.
type SystemHeap struct{}

var _ Allocator = SystemHeap{}

// Alignment is 8 bytes, matching the original mallocator's default.
func (SystemHeap) Alignment() uintptr { return 8 }

// SupportsTruncatedDeallocation is false: the Go heap allocator has no
// bookkeeping to exploit, but it also has nothing that would make slicing a
// big allocation into pieces and "deallocating" only some of them safe —
// each make([]byte, n) is a distinct GC-tracked object.
func (SystemHeap) SupportsTruncatedDeallocation() bool { return false }

// Allocate returns a freshly made, zeroed slice of size bytes.
func (h SystemHeap) Allocate(size uintptr) Block {
	if size == 0 {
		return NullBlock
	}
	return Block{Data: make([]byte, RoundToAlignment(size, h.Alignment()))}
}

// Deallocate releases no memory (see the type doc comment); it only nulls
// the caller's handle.
func (SystemHeap) Deallocate(b *Block) {
	*b = NullBlock
}

// Reallocate always move-and-copies: the Go heap has no realloc.
func (h SystemHeap) Reallocate(b *Block, newSize uintptr) bool {
	if handleCommonReallocation(h, b, newSize) {
		return true
	}
	return reallocateAndCopy(h, h, b, newSize)
}

// AlignedSystemHeap is SystemHeap parameterized with an explicit alignment
// requirement larger than the default 8 bytes (the original's
// aligned_mallocator).
type AlignedSystemHeap struct {
	alignment uintptr
}

var _ Allocator = AlignedSystemHeap{}

// NewAlignedSystemHeap returns a system-heap allocator guaranteeing the
// given alignment, which must be a power of two.
func NewAlignedSystemHeap(alignment uintptr) AlignedSystemHeap {
	if !IsPow2(alignment) {
		panic("abb: alignment must be a power of two")
	}
	return AlignedSystemHeap{alignment: alignment}
}

func (a AlignedSystemHeap) Alignment() uintptr { return a.alignment }

func (AlignedSystemHeap) SupportsTruncatedDeallocation() bool { return false }

// Allocate over-allocates by a.alignment bytes and returns the sub-slice
// that starts at the first address that is a multiple of a.alignment.
func (a AlignedSystemHeap) Allocate(size uintptr) Block {
	if size == 0 {
		return NullBlock
	}
	rounded := RoundToAlignment(size, a.alignment)
	padded := make([]byte, rounded+a.alignment)
	addr := uintptr(Block{Data: padded}.rawPtr())
	shift := RoundToAlignment(addr, a.alignment) - addr
	return Block{Data: padded[shift : shift+rounded : shift+rounded]}
}

func (AlignedSystemHeap) Deallocate(b *Block) {
	*b = NullBlock
}

func (a AlignedSystemHeap) Reallocate(b *Block, newSize uintptr) bool {
	if handleCommonReallocation(a, b, newSize) {
		return true
	}
	return reallocateAndCopy(a, a, b, newSize)
}
