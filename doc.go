/*
Package htable provides a generic in-memory hash table with separate chaining.

Table maps keys to values without relying on Go's built-in map. Records live in
a slice of buckets; the bucket of a key is its 64-bit digest modulo the bucket
count, and collisions are resolved by scanning the bucket linearly.

Basic usage:

	import "github.com/theflywheel/htable"

	users := htable.New[int, string]()
	users.Insert(1, "Alice")
	users.Insert(2, "Bob")

	if name, ok := users.Get(1); ok {
		fmt.Println("Name:", name)
	}

	// In-place update
	if p, ok := users.GetMut(2); ok {
		*p = "Robert"
	}

	for id, name := range users.All() {
		fmt.Println(id, name)
	}

Features:

  - Generic keys: comparable types via New, self-hashing types via NewHashable,
    or any type with a custom Hasher via NewWithHasher
  - xxHash digests for strings and fixed-width numbers
  - Automatic doubling when the record count exceeds 4/3 of the bucket count
  - Comma-ok lookups; MustGet and MustSet panic on a missing key
  - Range-over-func iteration through All, Keys and Values

Implementation Details:

A table starts with 16 buckets. Before every Insert the table checks
3*Len() > 4*Capacity() using the size prior to that insertion; when it holds,
the bucket count doubles and every record is rehashed into the new buckets.
Tables never shrink. Iteration order follows bucket index and then insertion
order within a bucket, and changes across resizes.

A Table performs no locking. Concurrent use requires external synchronization,
and pointers returned by GetMut are invalidated by the next mutating call.
*/
package htable
