package abb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinearRangeRaider_StepsAndSizes tests that a [16,64] range split into
// steps of 16 reports the expected step count and per-step size.
func TestLinearRangeRaider_StepsAndSizes(t *testing.T) {
	r := NewLinearRangeRaider(16, 64, 16)

	assert.Equal(t, uintptr(16), r.Min())
	assert.Equal(t, uintptr(64), r.Max())
	assert.Equal(t, uintptr(3), r.NumSteps())
	assert.Equal(t, uintptr(16), r.StepSize(0))
	assert.Equal(t, uintptr(16), r.StepSize(2))
}

// TestLinearRangeRaider_StepIndex tests the raw (size-min)/step formula,
// including that it returns NumSteps() (one past the last valid bucket) at
// size == Max, and InvalidIndex outside [Min,Max]. Bucketizer routes
// already-allocated blocks back to a bucket by its own recorded [lo,hi]
// bounds instead, since a cached block's reported size doesn't always line
// up with this formula; this test documents StepIndex's own contract in
// isolation.
func TestLinearRangeRaider_StepIndex(t *testing.T) {
	r := NewLinearRangeRaider(16, 64, 16)

	assert.Equal(t, uintptr(0), r.StepIndex(16))
	assert.Equal(t, uintptr(0), r.StepIndex(20))
	assert.Equal(t, uintptr(1), r.StepIndex(40))
	assert.Equal(t, uintptr(3), r.StepIndex(64), "size==Max resolves one past the last bucket index")
	assert.Equal(t, InvalidIndex, r.StepIndex(8))
	assert.Equal(t, InvalidIndex, r.StepIndex(65))
}

// TestNewLinearRangeRaider_PanicsOnInvalidRange tests that a non-positive
// range or a step that doesn't evenly divide it both panic rather than
// silently building a malformed raider.
func TestNewLinearRangeRaider_PanicsOnInvalidRange(t *testing.T) {
	assert.PanicsWithValue(t, ErrInvalidRange, func() {
		NewLinearRangeRaider(64, 64, 16)
	})
	assert.PanicsWithValue(t, ErrNonDivisibleStep, func() {
		NewLinearRangeRaider(16, 70, 16)
	})
}

// TestPowerOfTwoRangeRaider_StepsAndSizes tests a [16,128] power-of-two
// range: steps double in size, 16/32/64.
func TestPowerOfTwoRangeRaider_StepsAndSizes(t *testing.T) {
	r := NewPowerOfTwoRangeRaider(16, 128)

	require.Equal(t, uintptr(16), r.Min())
	require.Equal(t, uintptr(128), r.Max())
	assert.Equal(t, uintptr(3), r.NumSteps())
	assert.Equal(t, uintptr(16), r.StepSize(0))
	assert.Equal(t, uintptr(32), r.StepSize(1))
	assert.Equal(t, uintptr(64), r.StepSize(2))
}

// TestPowerOfTwoRangeRaider_StepIndex tests that StepIndex resolves a size
// to the step whose cumulative [lo,hi] (as NewBucketizer would build it)
// covers it: step 0 is [16,32], step 1 is [33,64], step 2 is [65,128].
func TestPowerOfTwoRangeRaider_StepIndex(t *testing.T) {
	r := NewPowerOfTwoRangeRaider(16, 128)

	assert.Equal(t, uintptr(0), r.StepIndex(16))
	assert.Equal(t, uintptr(0), r.StepIndex(32))
	assert.Equal(t, uintptr(1), r.StepIndex(33))
	assert.Equal(t, uintptr(1), r.StepIndex(64))
	assert.Equal(t, uintptr(2), r.StepIndex(65))
	assert.Equal(t, uintptr(2), r.StepIndex(128))
	assert.Equal(t, InvalidIndex, r.StepIndex(8))
	assert.Equal(t, InvalidIndex, r.StepIndex(129))
}

// TestNewPowerOfTwoRangeRaider_PanicsOnNonPow2 tests that a non-power-of-two
// Min or Max panics rather than building a raider with undefined steps.
func TestNewPowerOfTwoRangeRaider_PanicsOnNonPow2(t *testing.T) {
	assert.PanicsWithValue(t, ErrNotPow2Range, func() {
		NewPowerOfTwoRangeRaider(15, 128)
	})
	assert.PanicsWithValue(t, ErrNotPow2Range, func() {
		NewPowerOfTwoRangeRaider(16, 100)
	})
}
