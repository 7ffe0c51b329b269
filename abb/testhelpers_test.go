package abb

// countingAllocator wraps any Allocator and counts Allocate calls, for
// tests that need to observe how many times an inner allocator was
// actually touched (lazy initialization, freelist batching).
type countingAllocator struct {
	Allocator
	allocCalls int
}

func (c *countingAllocator) Allocate(size uintptr) Block {
	c.allocCalls++
	return c.Allocator.Allocate(size)
}

func (c *countingAllocator) Owns(b Block) bool {
	return ownsIfSupported(c.Allocator, b)
}
