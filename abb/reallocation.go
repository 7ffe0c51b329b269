package abb

// handleCommonReallocation implements the universal reallocation pre-check
// every Reallocate implementation runs first:
//
//  1. reallocating to the current (aligned) size is a no-op
//  2. reallocating to zero is a deallocation
//  3. reallocating the null block is an allocation
//
// It reports whether it fully handled the request; if so the caller must
// return true immediately (the bool return value is always true when ok is
// true — Reallocate never fails via this path).
func handleCommonReallocation(a Allocator, b *Block, newSize uintptr) (handled bool) {
	if b.Size() == RoundToAlignment(newSize, a.Alignment()) {
		return true
	}
	if newSize == 0 {
		a.Deallocate(b)
		return true
	}
	if b.IsNull() {
		*b = a.Allocate(newSize)
		return true
	}
	return false
}

// reallocateAndCopy is the generic fallback: allocate newSize from to,
// copy min(old, new) bytes, deallocate the original from "from", and
// update *b. Used by every combinator that cannot resize in place.
func reallocateAndCopy(from, to Allocator, b *Block, newSize uintptr) bool {
	newBlock := to.Allocate(newSize)
	if newBlock.IsNull() {
		return false
	}
	copyBlock(newBlock, *b)
	from.Deallocate(b)
	*b = newBlock
	return true
}
