package htable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theflywheel/htable"
)

func TestStats(t *testing.T) {
	ht := htable.New[int, int]()

	s := ht.Stats()
	assert.Equal(t, htable.Stats{Capacity: 16, EmptyBuckets: 16}, s)

	for i := 0; i < 23; i++ {
		ht.Insert(i, i)
	}

	s = ht.Stats()
	assert.Equal(t, 23, s.Len)
	assert.Equal(t, 32, s.Capacity)
	assert.Equal(t, 1, s.Resizes)
	assert.InDelta(t, 23.0/32.0, s.LoadFactor, 1e-9)
	assert.GreaterOrEqual(t, s.LongestChain, 1)
	assert.GreaterOrEqual(t, s.EmptyBuckets, 32-23)
}
