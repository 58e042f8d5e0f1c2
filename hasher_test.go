package htable_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/htable"
)

func TestComparableHasherIsDeterministic(t *testing.T) {
	h := htable.NewComparableHasher[string]()
	assert.Equal(t, h.Hash("hello"), h.Hash("hello"))
	assert.NotEqual(t, h.Hash("hello"), h.Hash("world"))

	// String digests do not depend on the seed.
	other := htable.NewComparableHasher[string]()
	assert.Equal(t, h.Hash("hello"), other.Hash("hello"))
}

type userID string

func TestComparableHasherNamedStrings(t *testing.T) {
	named := htable.NewComparableHasher[userID]()
	plain := htable.NewComparableHasher[string]()
	assert.Equal(t, plain.Hash("alice"), named.Hash(userID("alice")))

	// Digests do not depend on the seed, so two tables agree.
	assert.Equal(t, named.Hash("bob"), htable.NewComparableHasher[userID]().Hash("bob"))

	ht := htable.New[userID, int]()
	ht.Insert("alice", 1)
	ht.Insert("bob", 2)
	assert.Equal(t, 1, ht.MustGet("alice"))
	assert.Equal(t, 2, ht.MustGet("bob"))
}

func TestComparableHasherIntegers(t *testing.T) {
	h := htable.NewComparableHasher[int64]()
	seen := make(map[uint64]int64)
	for i := int64(-500); i < 500; i++ {
		d := h.Hash(i)
		prev, dup := seen[d]
		require.False(t, dup, "digest collision between %d and %d", prev, i)
		seen[d] = i
	}
}

func TestComparableHasherSignedZero(t *testing.T) {
	h := htable.NewComparableHasher[float64]()
	assert.Equal(t, h.Hash(0.0), h.Hash(math.Copysign(0, -1)))

	ht := htable.New[float64, string]()
	ht.Insert(0.0, "zero")
	v, ok := ht.Get(math.Copysign(0, -1))
	require.True(t, ok)
	assert.Equal(t, "zero", v)
}

func TestComparableHasherFallback(t *testing.T) {
	h := htable.NewComparableHasher[uuid.UUID]()
	id := uuid.New()
	assert.Equal(t, h.Hash(id), h.Hash(id))
	assert.True(t, h.Equal(id, id))
	assert.False(t, h.Equal(id, uuid.New()))
}

func TestUUIDKeys(t *testing.T) {
	ht := htable.New[uuid.UUID, int]()
	ids := make([]uuid.UUID, 1000)
	for i := range ids {
		ids[i] = uuid.New()
		ht.Insert(ids[i], i)
	}

	require.Equal(t, len(ids), ht.Len())
	for i, id := range ids {
		assert.Equal(t, i, ht.MustGet(id))
	}
}

func TestDistribution(t *testing.T) {
	ht := htable.New[int, int]()
	for i := 0; i < 10_000; i++ {
		ht.Insert(i, i)
	}

	stats := ht.Stats()
	assert.Equal(t, 10_000, stats.Len)
	assert.Less(t, stats.LongestChain, 16, "sequential integer keys cluster: %+v", stats)
}
