package abb

import "golang.org/x/sys/unix"

// mmapBuffer is a heap buffer backed directly by an anonymous mmap mapping
// instead of the Go heap. Memory obtained this way is never touched by the
// garbage collector and never moves, so the address-based Owns and
// topmost-block checks Linear and ConcurrentLinear rely on stay valid for
// the whole lifetime of the mapping — a property a make([]byte, n) slice
// also happens to have in the current Go runtime, but mmap makes it a
// guarantee of the memory source itself rather than an implementation
// detail of the collector.
//
// release() calls unix.Munmap directly rather than going through any
// Allocator, since the mapping was never carved from one in the first
// place — it comes straight from the kernel and goes straight back.
type mmapBuffer struct {
	buf  []byte
	n    uintptr
	lazy bool
}

func newMmapBuffer(size uintptr, lazy bool) *mmapBuffer {
	if size == 0 {
		panic(ErrZeroBufferSize)
	}
	m := &mmapBuffer{n: size, lazy: lazy}
	if !lazy {
		m.buf = mustMmap(size)
	}
	return m
}

func (m *mmapBuffer) bytes() []byte {
	if m.lazy && m.buf == nil {
		m.buf = mustMmap(m.n)
	}
	return m.buf
}

func (m *mmapBuffer) size() uintptr { return m.n }

// release unmaps the buffer. Safe to call on an unmapped (lazy, untouched)
// buffer.
func (m *mmapBuffer) release() {
	if m.buf != nil {
		_ = unix.Munmap(m.buf)
		m.buf = nil
	}
}

func mustMmap(size uintptr) []byte {
	buf, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		// Mirrors Go's own behavior on make([]byte, n) running out of
		// memory: out-of-memory is fatal, not a recoverable Allocate
		// failure. The null-block exhaustion path in the contract is for
		// "this buffer is full", not "the OS has no more memory".
		panic(err)
	}
	return buf
}
