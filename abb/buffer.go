package abb

// bufferProvider supplies the contiguous byte buffer a Linear allocator
// bumps a cursor through. It is a thin collaborator, not one of the
// composable combinators, so a small internal interface is used here
// instead of generic parameterization, unlike the allocator combinators
// proper.
type bufferProvider interface {
	// bytes returns the backing buffer, initializing it first if this
	// provider is lazy and it hasn't been touched yet.
	bytes() []byte
	// size is the buffer's length, known even before lazy init.
	size() uintptr
}

// stackBuffer is a fixed-size buffer allocated eagerly at construction, in
// the spirit of the original's stack_buffer_provider (a real stack array in
// C++). Go has no const-generic array length, so this is a plain heap slice
// sized once at construction and never resized.
type stackBuffer struct {
	buf []byte
}

func newStackBuffer(size uintptr) *stackBuffer {
	if size == 0 {
		panic(ErrZeroBufferSize)
	}
	return &stackBuffer{buf: make([]byte, size)}
}

func (s *stackBuffer) bytes() []byte { return s.buf }
func (s *stackBuffer) size() uintptr { return uintptr(len(s.buf)) }

// heapBuffer is a buffer carved from an inner Allocator, either eagerly at
// construction or lazily on first use.
type heapBuffer struct {
	inner Allocator
	block Block
	n     uintptr
	lazy  bool
}

func newHeapBuffer(inner Allocator, size uintptr, lazy bool) *heapBuffer {
	if size == 0 {
		panic(ErrZeroBufferSize)
	}
	h := &heapBuffer{inner: inner, n: size, lazy: lazy}
	if !lazy {
		h.block = inner.Allocate(size)
	}
	return h
}

func (h *heapBuffer) bytes() []byte {
	if h.lazy && h.block.IsNull() {
		h.block = h.inner.Allocate(h.n)
	}
	return h.block.Data
}

func (h *heapBuffer) size() uintptr { return h.n }
