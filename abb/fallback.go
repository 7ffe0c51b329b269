package abb

// Fallback tries Primary first and only calls Secondary on exhaustion.
// Deallocate/reallocate route by asking Primary whether it owns the block,
// which is why Primary must be an OwningAllocator — Secondary doesn't need
// to be, mirroring the original's asymmetric template (only
// _PrimaryAllocator::owns is called to decide routing).
type Fallback[Primary OwningAllocator, Secondary Allocator] struct {
	primary   Primary
	secondary Secondary
}

// NewFallback wraps primary (tried first) and secondary (tried on
// exhaustion).
func NewFallback[Primary OwningAllocator, Secondary Allocator](primary Primary, secondary Secondary) *Fallback[Primary, Secondary] {
	return &Fallback[Primary, Secondary]{primary: primary, secondary: secondary}
}

func (f *Fallback[Primary, Secondary]) Alignment() uintptr {
	return maxUintptr(f.primary.Alignment(), f.secondary.Alignment())
}

// SupportsTruncatedDeallocation is always false: which allocator served a
// batch request depends on Primary's momentary capacity, not the block's
// size, so a caller can't know in advance which one to address the split
// sub-blocks to.
func (f *Fallback[Primary, Secondary]) SupportsTruncatedDeallocation() bool { return false }

func (f *Fallback[Primary, Secondary]) Allocate(size uintptr) Block {
	b := f.primary.Allocate(size)
	if b.IsNull() {
		b = f.secondary.Allocate(size)
	}
	return b
}

func (f *Fallback[Primary, Secondary]) Deallocate(b *Block) {
	if b.IsNull() {
		return
	}
	if f.primary.Owns(*b) {
		f.primary.Deallocate(b)
	} else {
		f.secondary.Deallocate(b)
	}
}

func (f *Fallback[Primary, Secondary]) Reallocate(b *Block, newSize uintptr) bool {
	if handleCommonReallocation(f, b, newSize) {
		return true
	}

	if f.primary.Owns(*b) {
		if f.primary.Reallocate(b, newSize) {
			return true
		}
		return reallocateAndCopy(f.primary, f, b, newSize)
	}

	return f.secondary.Reallocate(b, newSize)
}

func (f *Fallback[Primary, Secondary]) Owns(b Block) bool {
	return f.primary.Owns(b) || ownsIfSupported(f.secondary, b)
}

// DeallocateAll resets whichever of Primary/Secondary support it. Fallback
// always implements Resettable itself, silently skipping whichever side
// doesn't, rather than requiring both statically.
func (f *Fallback[Primary, Secondary]) DeallocateAll() {
	resetIfSupported(f.primary)
	resetIfSupported(f.secondary)
}
