package abb

import "sync/atomic"

// ConcurrentLinear is the lock-free variant of Linear: many goroutines may
// call Allocate/Deallocate/Reallocate concurrently. The cursor is a byte
// offset (not a raw pointer) into the buffer, advanced with a CAS retry
// loop — an offset is address-independent, so there is no need for
// unsafe.Pointer CAS or a guarantee that the buffer never moves beyond what
// bufferProvider already provides.
//
// Buffer initialization is forced eager: a lazy (first-touch) buffer would
// need its own synchronization to avoid two goroutines racing to allocate
// it, defeating the point of a lock-free allocator.
type ConcurrentLinear struct {
	provider  bufferProvider
	alignment uintptr
	cursor    atomic.Int64
}

var _ OwningAllocator = (*ConcurrentLinear)(nil)
var _ Resettable = (*ConcurrentLinear)(nil)

// NewConcurrentHeapLinear creates a ConcurrentLinear over a buffer carved
// eagerly from inner.
func NewConcurrentHeapLinear(inner Allocator, size, alignment uintptr) *ConcurrentLinear {
	return &ConcurrentLinear{provider: newHeapBuffer(inner, size, false), alignment: alignment}
}

// NewConcurrentMmapLinear creates a ConcurrentLinear over an eagerly mapped
// anonymous mmap buffer.
func NewConcurrentMmapLinear(size, alignment uintptr) *ConcurrentLinear {
	return &ConcurrentLinear{provider: newMmapBuffer(size, false), alignment: alignment}
}

func (l *ConcurrentLinear) Alignment() uintptr { return l.alignment }

func (l *ConcurrentLinear) SupportsTruncatedDeallocation() bool { return true }

func (l *ConcurrentLinear) align(size uintptr) uintptr {
	return RoundToAlignment(size, l.alignment)
}

func (l *ConcurrentLinear) bufLen() uintptr {
	return uintptr(len(l.provider.bytes()))
}

func (l *ConcurrentLinear) base() uintptr {
	return uintptr(Block{Data: l.provider.bytes()}.rawPtr())
}

func (l *ConcurrentLinear) Allocate(size uintptr) Block {
	aligned := l.align(size)
	bufLen := int64(l.bufLen())

	for {
		cur := l.cursor.Load()
		if cur+int64(aligned) > bufLen {
			return NullBlock
		}
		if l.cursor.CompareAndSwap(cur, cur+int64(aligned)) {
			buf := l.provider.bytes()
			return Block{Data: buf[cur : cur+int64(aligned) : cur+int64(aligned)]}
		}
		// Lost the race: reload and retry.
	}
}

// isTopmost reports whether b's end offset equals cur, given an already
// loaded cursor snapshot.
func (l *ConcurrentLinear) isTopmost(b Block, cur int64) bool {
	return int64(b.addr()-l.base())+int64(b.Size()) == cur
}

func (l *ConcurrentLinear) Deallocate(b *Block) {
	if b.IsNull() {
		return
	}
	for {
		cur := l.cursor.Load()
		if !l.isTopmost(*b, cur) {
			// Another goroutine has already allocated on top, or b was
			// never topmost: give up silently.
			return
		}
		newCur := int64(b.addr() - l.base())
		if l.cursor.CompareAndSwap(cur, newCur) {
			*b = NullBlock
			return
		}
		// Lost the race: reload and re-check topmost-ness.
	}
}

func (l *ConcurrentLinear) Reallocate(b *Block, newSize uintptr) bool {
	if handleCommonReallocation(l, b, newSize) {
		return true
	}

	alignedNew := l.align(newSize)
	bufLen := int64(l.bufLen())

	for {
		cur := l.cursor.Load()
		if !l.isTopmost(*b, cur) {
			break
		}
		newCur := int64(b.addr()-l.base()) + int64(alignedNew)
		if newCur > bufLen {
			return false
		}
		if l.cursor.CompareAndSwap(cur, newCur) {
			buf := l.provider.bytes()
			start := int64(b.addr() - l.base())
			*b = Block{Data: buf[start:newCur:newCur]}
			return true
		}
		// Lost the race: reload and retry.
	}

	// Shrinking a non-topmost block: preserve the stored size so the block
	// keeps its identity for later topmost checks, same rule as Linear.
	if b.Size() >= alignedNew {
		return true
	}

	return reallocateAndCopy(l, l, b, newSize)
}

// Owns reports whether b starts inside the handed-out part of the buffer
// (below the current cursor), so blocks are no longer owned after
// DeallocateAll, same rule as Linear.
func (l *ConcurrentLinear) Owns(b Block) bool {
	if b.IsNull() {
		return false
	}
	base := l.base()
	return b.addr() >= base && b.addr() < base+uintptr(l.cursor.Load())
}

// DeallocateAll resets the cursor to zero. Not itself synchronized against
// concurrent Allocate calls — callers must quiesce the allocator first, the
// same precondition the non-concurrent Linear's DeallocateAll carries
// implicitly from being single-threaded.
func (l *ConcurrentLinear) DeallocateAll() {
	l.cursor.Store(0)
}
