package htable

import (
	"fmt"
	"iter"
	"slices"

	"github.com/rs/zerolog"
)

// InitialCapacity is the bucket count of a newly created table
const InitialCapacity = 16

type record[K, V any] struct {
	key   K
	value V
}

// Table is a hash table resolving collisions by chaining records in per-bucket slices.
// It is not safe for concurrent use; callers sharing a Table must guard it themselves.
type Table[K, V any] struct {
	hasher  Hasher[K]
	buckets [][]record[K, V]
	size    int
	resizes int
	log     zerolog.Logger
}

// New creates an empty table for comparable keys using the default hasher
func New[K comparable, V any](opts ...Option) *Table[K, V] {
	return NewWithHasher[K, V](NewComparableHasher[K](), opts...)
}

// NewHashable creates an empty table for keys that hash and compare themselves
func NewHashable[K Hashable[K], V any](opts ...Option) *Table[K, V] {
	return NewWithHasher[K, V](HashableHasher[K]{}, opts...)
}

// NewWithHasher creates an empty table that digests and compares keys with h
func NewWithHasher[K, V any](h Hasher[K], opts ...Option) *Table[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[K, V]{
		hasher:  h,
		buckets: make([][]record[K, V], InitialCapacity),
		log:     o.logger,
	}
}

// Len returns the number of live records
func (t *Table[K, V]) Len() int {
	return t.size
}

// Capacity returns the current bucket count
func (t *Table[K, V]) Capacity() int {
	return len(t.buckets)
}

// IsEmpty reports whether the table holds no records
func (t *Table[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Clear removes every record; the bucket count is left unchanged
func (t *Table[K, V]) Clear() {
	for i, b := range t.buckets {
		clear(b)
		t.buckets[i] = b[:0]
	}
	t.size = 0
}

// Get retrieves the value stored under key
func (t *Table[K, V]) Get(key K) (V, bool) {
	b := t.buckets[t.bucketIndex(key, len(t.buckets))]
	if i := t.lookup(key, b); i >= 0 {
		return b[i].value, true
	}

	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored under key so it can be updated in place.
// The pointer must not be used after the next Insert, Remove or Clear.
func (t *Table[K, V]) GetMut(key K) (*V, bool) {
	b := t.buckets[t.bucketIndex(key, len(t.buckets))]
	if i := t.lookup(key, b); i >= 0 {
		return &b[i].value, true
	}
	return nil, false
}

// ContainsKey reports whether a record with key exists
func (t *Table[K, V]) ContainsKey(key K) bool {
	b := t.buckets[t.bucketIndex(key, len(t.buckets))]
	return t.lookup(key, b) >= 0
}

// Insert adds or updates a key-value pair in the table
func (t *Table[K, V]) Insert(key K, value V) {
	// Growth is decided on the size before this insertion.
	if t.needsGrow() {
		t.grow()
	}

	idx := t.bucketIndex(key, len(t.buckets))
	b := t.buckets[idx]
	if i := t.lookup(key, b); i >= 0 {
		b[i].value = value
		return
	}

	t.buckets[idx] = append(b, record[K, V]{key: key, value: value})
	t.size++
}

// Remove deletes the record stored under key and returns its value.
// Remaining records of the bucket keep their relative order.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	idx := t.bucketIndex(key, len(t.buckets))
	b := t.buckets[idx]
	i := t.lookup(key, b)
	if i < 0 {
		var zero V
		return zero, false
	}

	value := b[i].value
	t.buckets[idx] = slices.Delete(b, i, i+1)
	t.size--
	return value, true
}

// MustGet returns the value stored under key.
// It panics with an error wrapping ErrKeyNotFound when the key is absent;
// use Get when presence is uncertain.
func (t *Table[K, V]) MustGet(key K) V {
	v, ok := t.Get(key)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, key))
	}
	return v
}

// MustSet overwrites the value stored under an existing key.
// It panics with an error wrapping ErrKeyNotFound when the key is absent;
// use Insert to add new keys.
func (t *Table[K, V]) MustSet(key K, value V) {
	p, ok := t.GetMut(key)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, key))
	}
	*p = value
}

// All returns an iterator over every key-value pair.
// Pairs come in bucket order and then in insertion order within a bucket;
// callers must not depend on that order. The table must not be mutated while iterating.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range t.buckets {
			for _, r := range b {
				if !yield(r.key, r.value) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over every key
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over every value
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (t *Table[K, V]) String() string {
	return fmt.Sprintf("htable.Table{len=%d cap=%d}", t.size, len(t.buckets))
}

// lookup returns the position of key within b, or -1
func (t *Table[K, V]) lookup(key K, b []record[K, V]) int {
	for i := range b {
		if t.hasher.Equal(b[i].key, key) {
			return i
		}
	}
	return -1
}
