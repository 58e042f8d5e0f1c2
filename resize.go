package htable

// needsGrow reports whether the table must double before the next insertion.
// The check uses the current size, so right after a triggering insert the
// ratio may sit one record past the threshold.
func (t *Table[K, V]) needsGrow() bool {
	return 3*t.size > 4*len(t.buckets)
}

// grow doubles the bucket count and moves every record to the bucket
// computed from the new capacity
func (t *Table[K, V]) grow() {
	oldCap := len(t.buckets)
	newCap := oldCap * 2

	t.log.Debug().
		Int("old_capacity", oldCap).
		Int("new_capacity", newCap).
		Int("len", t.size).
		Msg("resizing hash table")

	buckets := make([][]record[K, V], newCap)
	for _, b := range t.buckets {
		for _, r := range b {
			idx := t.bucketIndex(r.key, newCap)
			buckets[idx] = append(buckets[idx], r)
		}
	}

	t.buckets = buckets
	t.resizes++

	t.log.Debug().
		Int("capacity", newCap).
		Int("resizes", t.resizes).
		Msg("resize complete")
}
