package abb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSegregator_ReallocateAcrossThresholdMoves tests that a segregator
// with threshold 64 routes a small allocation to the small allocator, then
// growing it past the threshold moves it into the large allocator's region
// and releases the old region back to the small side.
func TestSegregator_ReallocateAcrossThresholdMoves(t *testing.T) {
	small := NewStackLinear(4096, 8)
	large := NewStackLinear(4096, 8)
	s := NewSegregator[*Linear, *Linear](64, small, large)

	smallBlock := s.Allocate(32)
	require.False(t, smallBlock.IsNull())
	assert.True(t, small.Owns(smallBlock))

	ok := s.Reallocate(&smallBlock, 200)
	require.True(t, ok)

	assert.True(t, large.Owns(smallBlock), "block now lives in the large allocator")
	assert.False(t, small.Owns(smallBlock))
}

// TestSegregator_RoutesBySize tests that Allocate picks Small at and below
// the threshold and Large strictly above it.
func TestSegregator_RoutesBySize(t *testing.T) {
	small := NewStackLinear(4096, 8)
	large := NewStackLinear(4096, 8)
	s := NewSegregator[*Linear, *Linear](64, small, large)

	atThreshold := s.Allocate(64)
	require.False(t, atThreshold.IsNull())
	assert.True(t, small.Owns(atThreshold))

	aboveThreshold := s.Allocate(65)
	require.False(t, aboveThreshold.IsNull())
	assert.True(t, large.Owns(aboveThreshold))
}

// TestSegregator_DeallocateRoutesBySize tests that Deallocate routes by the
// block's own recorded size, not the caller's original request.
func TestSegregator_DeallocateRoutesBySize(t *testing.T) {
	small := NewStackLinear(4096, 8)
	large := NewStackLinear(4096, 8)
	s := NewSegregator[*Linear, *Linear](64, small, large)

	b := s.Allocate(200)
	require.False(t, b.IsNull())
	require.True(t, large.Owns(b))

	s.Deallocate(&b)
	assert.True(t, b.IsNull())
}

// TestSegregator_Alignment tests that the reported alignment is the max of
// the two inner allocators' alignments.
func TestSegregator_Alignment(t *testing.T) {
	small := NewStackLinear(4096, 8)
	large := NewStackLinear(4096, 32)
	s := NewSegregator[*Linear, *Linear](64, small, large)
	assert.Equal(t, uintptr(32), s.Alignment())
}
