package abb

import "unsafe"

// pointerSize is the minimum block size a Freelist can manage: the intrusive
// next-pointer is written directly into freed memory, so a freed block must
// have room for one.
const pointerSize = unsafe.Sizeof(uintptr(0))

// Freelist caches deallocated blocks whose size falls in [minSize, maxSize]
// instead of returning them to inner, so a subsequent same-sized Allocate is
// a pop off an intrusive singly-linked list instead of a round trip through
// inner. The list is written directly into the freed blocks themselves —
// no side bookkeeping array — the same trick the original's freelist<>
// plays by writing a node{ next } into memory the caller no longer owns.
//
// When inner.SupportsTruncatedDeallocation() is true (e.g. a Linear
// allocator), an empty Freelist populates itself by allocating one big
// batchAllocations*maxSize block from inner and slicing it into
// individually-pushed nodes, never informing inner of the split — exactly
// the optimization truncated deallocation exists to enable.
type Freelist[A Allocator] struct {
	inner            A
	minSize          uintptr
	maxSize          uintptr
	maxNodeCount     uintptr
	batchAllocations uintptr

	head  uintptr // address of the first free node, 0 if empty
	count uintptr
}

// NewFreelist wraps inner, caching blocks whose size lands in the inclusive
// range [minSize, maxSize], holding up to maxNodeCount of them, and
// populating an empty list batchAllocations nodes at a time.
//
// Panics (constructor-time misuse, never a runtime condition) if minSize >
// maxSize, if a non-zero maxSize can't hold the intrusive next-pointer, if
// maxNodeCount is zero, or if batchAllocations exceeds maxNodeCount. A 0, 0
// range is accepted as "set later": SetMinMax then supplies the real range
// and applies the pointer-size check.
func NewFreelist[A Allocator](inner A, minSize, maxSize, maxNodeCount, batchAllocations uintptr) *Freelist[A] {
	if minSize > maxSize {
		panic(ErrInvalidRange)
	}
	if maxSize != 0 && maxSize < pointerSize {
		panic(ErrFreelistMaxTooSmall)
	}
	if maxNodeCount == 0 {
		panic(ErrInvalidRange)
	}
	if batchAllocations > maxNodeCount {
		panic(ErrBatchExceedsCapacity)
	}
	return &Freelist[A]{
		inner:            inner,
		minSize:          minSize,
		maxSize:          maxSize,
		maxNodeCount:     maxNodeCount,
		batchAllocations: batchAllocations,
	}
}

// SetMinMax adjusts the cached size range after construction. Does not
// retroactively validate or flush already-cached nodes against the new
// range — callers that shrink the range while the list is non-empty are
// responsible for draining it first via DeallocateAll.
func (f *Freelist[A]) SetMinMax(minSize, maxSize uintptr) {
	if maxSize < pointerSize {
		panic(ErrFreelistMaxTooSmall)
	}
	if minSize > maxSize {
		panic(ErrInvalidRange)
	}
	f.minSize, f.maxSize = minSize, maxSize
}

func (f *Freelist[A]) Alignment() uintptr { return f.inner.Alignment() }

func (f *Freelist[A]) SupportsTruncatedDeallocation() bool {
	return f.inner.SupportsTruncatedDeallocation()
}

func (f *Freelist[A]) isGoodSize(size uintptr) bool {
	return f.minSize <= size && size <= f.maxSize
}

func (f *Freelist[A]) isFull() bool {
	return f.count == f.maxNodeCount
}

func (f *Freelist[A]) pushNode(addr uintptr) {
	*(*uintptr)(unsafe.Pointer(addr)) = f.head
	f.head = addr
	f.count++
}

func (f *Freelist[A]) popNode() uintptr {
	if f.head == 0 {
		return 0
	}
	addr := f.head
	f.head = *(*uintptr)(unsafe.Pointer(addr))
	f.count--
	return addr
}

func (f *Freelist[A]) tryPopulateFreeList() {
	numBlocks := f.batchAllocations
	if room := f.maxNodeCount - f.count; numBlocks > room {
		numBlocks = room
	}
	if numBlocks == 0 {
		return
	}

	if f.inner.SupportsTruncatedDeallocation() {
		batch := f.inner.Allocate(numBlocks * f.maxSize)
		if !batch.IsNull() {
			base := batch.addr()
			for i := uintptr(0); i < numBlocks; i++ {
				f.pushNode(base + i*f.maxSize)
			}
			return
		}
		// Batch allocation failed: fall through to discrete allocation.
	}

	for i := uintptr(0); i < numBlocks; i++ {
		b := f.inner.Allocate(f.maxSize)
		if b.IsNull() {
			break
		}
		f.pushNode(b.addr())
	}
}

func (f *Freelist[A]) Allocate(size uintptr) Block {
	alignedSize := RoundToAlignment(size, f.Alignment())

	if f.isGoodSize(alignedSize) {
		if f.head == 0 {
			f.tryPopulateFreeList()
		}
		if addr := f.popNode(); addr != 0 {
			return Block{Data: unsafe.Slice((*byte)(unsafe.Pointer(addr)), f.maxSize)}
		}
	}

	return f.inner.Allocate(alignedSize)
}

func (f *Freelist[A]) Deallocate(b *Block) {
	if b.IsNull() {
		return
	}
	if !f.isFull() && b.Size() == f.maxSize {
		f.pushNode(b.addr())
	} else {
		f.inner.Deallocate(b)
	}
	*b = NullBlock
}

func (f *Freelist[A]) Reallocate(b *Block, newSize uintptr) bool {
	if handleCommonReallocation(f, b, newSize) {
		return true
	}

	alignedNewSize := RoundToAlignment(newSize, f.Alignment())
	if f.isGoodSize(alignedNewSize) {
		// Still fits the same maxSize-sized physical block; nothing to do.
		return true
	}

	return reallocateAndCopy(f, f, b, newSize)
}

// Owns delegates to inner when inner supports it. A block currently parked
// in the freelist is indistinguishable from one inner handed out directly,
// since both came from inner.Allocate.
func (f *Freelist[A]) Owns(b Block) bool {
	owning, ok := asOwning(f.inner)
	return ok && owning.Owns(b)
}

// DeallocateAll drains the freelist back to inner one node at a time (each
// cached node is a real outstanding inner allocation, unlike Linear's bulk
// cursor reset) and resets inner too, if it supports it.
func (f *Freelist[A]) DeallocateAll() {
	for f.head != 0 {
		addr := f.popNode()
		b := Block{Data: unsafe.Slice((*byte)(unsafe.Pointer(addr)), f.maxSize)}
		f.inner.Deallocate(&b)
	}
	resetIfSupported(f.inner)
}
