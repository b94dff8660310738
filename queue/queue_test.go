package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopFIFO(t *testing.T) {
	q := NewBoundedQueue[int](4)
	for i := 0; i < 4; i++ {
		q.PushBack(i)
	}
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, 4, q.Capacity())

	for i := 0; i < 4; i++ {
		v, ok := q.PopFront()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.True(t, q.IsEmpty())
}

func TestPushBackOverflowPanics(t *testing.T) {
	q := NewBoundedQueue[int](1)
	q.PushBack(1)
	assert.Panics(t, func() { q.PushBack(2) })
}

func TestPopFrontEmptyReturnsFalse(t *testing.T) {
	q := NewBoundedQueue[int](2)
	_, ok := q.PopFront()
	assert.False(t, ok)
}

func TestAppendEmptiesSource(t *testing.T) {
	dst := NewBoundedQueue[int](4)
	dst.PushBack(1)
	src := NewBoundedQueue[int](4)
	src.PushBack(2)
	src.PushBack(3)

	dst.Append(src)

	assert.Equal(t, []int{1, 2, 3}, dst.Peek(3))
	assert.True(t, src.IsEmpty())
}

func TestAppendOverflowPanics(t *testing.T) {
	dst := NewBoundedQueue[int](2)
	dst.PushBack(1)
	src := NewBoundedQueue[int](2)
	src.PushBack(2)
	src.PushBack(3)
	assert.Panics(t, func() { dst.Append(src) })
}

func TestPeekIdempotentAndNonConsuming(t *testing.T) {
	q := NewBoundedQueue[int](4)
	q.PushBack(10)
	q.PushBack(20)
	q.PushBack(30)

	a := q.Peek(2)
	b := q.Peek(2)
	assert.Equal(t, a, b)
	assert.Equal(t, 3, q.Len())
}

func TestPeekOverLenPanics(t *testing.T) {
	q := NewBoundedQueue[int](4)
	q.PushBack(1)
	assert.Panics(t, func() { q.Peek(2) })
}

func TestDrainRemovesInOrder(t *testing.T) {
	q := NewBoundedQueue[int](5)
	for i := 0; i < 5; i++ {
		q.PushBack(i)
	}
	first := q.Drain(3)
	assert.Equal(t, []int{0, 1, 2}, first)
	assert.Equal(t, 2, q.Len())
	rest := q.Drain(2)
	assert.Equal(t, []int{3, 4}, rest)
}

func TestDrainOverLenPanics(t *testing.T) {
	q := NewBoundedQueue[int](4)
	assert.Panics(t, func() { q.Drain(1) })
}

func TestMakeContiguousAfterRotation(t *testing.T) {
	q := NewBoundedQueue[int](3)
	q.PushBack(1)
	q.PushBack(2)
	q.PushBack(3)
	q.PopFront()     // head moves forward
	q.PushBack(4)    // wraps around the ring

	contig := q.MakeContiguous()
	assert.Equal(t, []int{2, 3, 4}, contig)
}

func TestFromSliceSizesCapacityToData(t *testing.T) {
	q := FromSlice([]int{1, 2, 3})
	assert.Equal(t, 3, q.Capacity())
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{1, 2, 3}, q.Peek(3))
}

func TestCapacityBoundHoldsUnderMixedOps(t *testing.T) {
	q := NewBoundedQueue[int](3)
	q.PushBack(1)
	q.PushBack(2)
	q.Drain(1)
	q.PushBack(3)
	q.PushBack(4)
	assert.LessOrEqual(t, q.Len(), q.Capacity())
	assert.Equal(t, []int{2, 3, 4}, q.Peek(3))
}
