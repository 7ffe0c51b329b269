package abb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFreelist_CachedBlocksAreRecycledWithoutTouchingInner tests a [32,32]
// freelist over the system heap, batch 4, max 4 — four allocate/free round
// trips followed by a fifth allocate must reuse one of the freed pointers
// without a new call to the inner allocator.
func TestFreelist_CachedBlocksAreRecycledWithoutTouchingInner(t *testing.T) {
	inner := &countingAllocator{Allocator: SystemHeap{}}
	fl := NewFreelist[*countingAllocator](inner, 32, 32, 4, 4)

	blocks := make([]Block, 4)
	for i := range blocks {
		blocks[i] = fl.Allocate(32)
		require.False(t, blocks[i].IsNull())
	}
	callsAfterFirstBatch := inner.allocCalls

	freedAddrs := map[uintptr]bool{}
	for i := range blocks {
		freedAddrs[blocks[i].addr()] = true
		fl.Deallocate(&blocks[i])
		assert.True(t, blocks[i].IsNull())
	}

	c := fl.Allocate(32)
	require.False(t, c.IsNull())
	assert.True(t, freedAddrs[c.addr()], "fifth allocate must reuse a freed pointer")
	assert.Equal(t, callsAfterFirstBatch, inner.allocCalls, "recycled allocation must not call inner again")
}

// TestFreelist_CachingIsAPermutationOfFreedPointers tests universal law 9:
// allocating and freeing B blocks in range, then allocating B more, yields
// exactly the set of previously freed pointers.
func TestFreelist_CachingIsAPermutationOfFreedPointers(t *testing.T) {
	inner := &countingAllocator{Allocator: SystemHeap{}}
	fl := NewFreelist[*countingAllocator](inner, 16, 16, 8, 8)

	const n = 6
	blocks := make([]Block, n)
	for i := range blocks {
		blocks[i] = fl.Allocate(16)
		require.False(t, blocks[i].IsNull())
	}

	freed := map[uintptr]bool{}
	for i := range blocks {
		freed[blocks[i].addr()] = true
		fl.Deallocate(&blocks[i])
	}
	callsBeforeReuse := inner.allocCalls

	reused := map[uintptr]bool{}
	for i := 0; i < n; i++ {
		b := fl.Allocate(16)
		require.False(t, b.IsNull())
		reused[b.addr()] = true
	}

	assert.Equal(t, freed, reused)
	assert.Equal(t, callsBeforeReuse, inner.allocCalls, "reuse must not call inner")
}

// TestFreelist_BatchPopulationIsOneCallOverTruncatingInner tests the
// optimization SupportsTruncatedDeallocation exists for: when inner is a
// bump allocator, populating a batch of same-sized nodes takes exactly one
// inner.Allocate call instead of one per node.
func TestFreelist_BatchPopulationIsOneCallOverTruncatingInner(t *testing.T) {
	inner := &countingAllocator{Allocator: NewStackLinear(4096, 8)}
	fl := NewFreelist[*countingAllocator](inner, 32, 32, 4, 4)

	require.True(t, inner.Allocator.SupportsTruncatedDeallocation())

	b := fl.Allocate(32)
	require.False(t, b.IsNull())
	assert.Equal(t, 1, inner.allocCalls, "one batch allocation should populate all 4 nodes")

	for i := 0; i < 3; i++ {
		next := fl.Allocate(32)
		require.False(t, next.IsNull())
	}
	assert.Equal(t, 1, inner.allocCalls, "the rest of the batch came from the cache, not inner")
}

// TestFreelist_OutsideRangeFallsThroughToInner tests that sizes outside
// [min,max] bypass the cache entirely.
func TestFreelist_OutsideRangeFallsThroughToInner(t *testing.T) {
	inner := &countingAllocator{Allocator: SystemHeap{}}
	fl := NewFreelist[*countingAllocator](inner, 32, 32, 4, 4)

	b := fl.Allocate(256)
	require.False(t, b.IsNull())
	assert.Equal(t, 1, inner.allocCalls)

	fl.Deallocate(&b)
	assert.True(t, b.IsNull())
}

// TestFreelist_FullListFallsBackToInnerDeallocate tests that once the
// cache is at capacity, further deallocates go straight to inner instead of
// growing the list past maxNodeCount.
func TestFreelist_FullListFallsBackToInnerDeallocate(t *testing.T) {
	inner := &countingAllocator{Allocator: SystemHeap{}}
	fl := NewFreelist[*countingAllocator](inner, 16, 16, 2, 2)

	a := fl.Allocate(16)
	b := fl.Allocate(16)
	c := fl.Allocate(16)
	require.False(t, a.IsNull())
	require.False(t, b.IsNull())
	require.False(t, c.IsNull())

	fl.Deallocate(&a)
	fl.Deallocate(&b)
	assert.Equal(t, uintptr(2), fl.count)

	// The list is now full (maxNodeCount=2); freeing c must go to inner
	// rather than growing the list.
	fl.Deallocate(&c)
	assert.Equal(t, uintptr(2), fl.count)
}

// TestNewFreelist_RejectsTooSmallMax tests the constructor's static-misuse
// guard: max must be at least pointer-sized to host the intrusive node.
func TestNewFreelist_RejectsTooSmallMax(t *testing.T) {
	assert.Panics(t, func() {
		NewFreelist[SystemHeap](SystemHeap{}, 1, 4, 4, 4)
	})
}

// TestNewFreelist_RejectsBatchLargerThanCapacity tests the constructor's
// static-misuse guard on batchAllocations.
func TestNewFreelist_RejectsBatchLargerThanCapacity(t *testing.T) {
	assert.Panics(t, func() {
		NewFreelist[SystemHeap](SystemHeap{}, 16, 16, 4, 8)
	})
}
