package htable

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher digests keys and decides key equality for a Table.
// Equal keys must always produce equal digests.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// Hashable is implemented by key types that carry their own digest and equality
type Hashable[K any] interface {
	Hash() uint64
	Equal(other K) bool
}

// HashableHasher adapts a Hashable key type to Hasher
type HashableHasher[K Hashable[K]] struct{}

func (HashableHasher[K]) Hash(key K) uint64 { return key.Hash() }
func (HashableHasher[K]) Equal(a, b K) bool { return a.Equal(b) }

// ComparableHasher is the default Hasher for comparable keys.
// Strings, named string types and fixed-width numbers are digested with xxhash;
// any other comparable type goes through hash/maphash under a per-hasher seed.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher returns a ComparableHasher with a fresh seed
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

func (h ComparableHasher[K]) Hash(key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return hashWord(uint64(k))
	case int8:
		return hashWord(uint64(k))
	case int16:
		return hashWord(uint64(k))
	case int32:
		return hashWord(uint64(k))
	case int64:
		return hashWord(uint64(k))
	case uint:
		return hashWord(uint64(k))
	case uint8:
		return hashWord(uint64(k))
	case uint16:
		return hashWord(uint64(k))
	case uint32:
		return hashWord(uint64(k))
	case uint64:
		return hashWord(k)
	case uintptr:
		return hashWord(uint64(k))
	case float32:
		return hashFloat(float64(k))
	case float64:
		return hashFloat(k)
	case bool:
		if k {
			return hashWord(1)
		}
		return hashWord(0)
	}
	if v := reflect.ValueOf(key); v.Kind() == reflect.String {
		return xxhash.Sum64String(v.String())
	}
	return maphash.Comparable(h.seed, key)
}

func (ComparableHasher[K]) Equal(a, b K) bool { return a == b }

// hashWord computes the xxhash digest of v encoded as 8 little-endian bytes
func hashWord(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

func hashFloat(f float64) uint64 {
	// -0 and +0 compare equal
	if f == 0 {
		f = 0
	}
	return hashWord(math.Float64bits(f))
}

// bucketIndex reduces the digest of key to a bucket position for the given capacity
func (t *Table[K, V]) bucketIndex(key K, capacity int) int {
	return int(t.hasher.Hash(key) % uint64(capacity))
}
