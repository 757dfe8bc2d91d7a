package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingDropsOldest(t *testing.T) {
	r := NewRing[int](3)

	r.Push(1)
	r.Push(2)
	assert.False(t, r.Full())
	assert.Equal(t, []int{1, 2}, r.Items())

	r.Push(3)
	r.Push(4)
	assert.True(t, r.Full())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []int{2, 3, 4}, r.Items())
}

func TestRingItemsIsACopy(t *testing.T) {
	r := NewRing[int](3)
	r.Push(1)

	items := r.Items()
	items[0] = 99
	assert.Equal(t, []int{1}, r.Items())
}

func TestRingReset(t *testing.T) {
	r := NewRing[int](3)
	r.Push(1)
	r.Push(2)
	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Items())
}
