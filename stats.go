package htable

// Stats is a point-in-time view of a table's occupancy
type Stats struct {
	Len          int
	Capacity     int
	LoadFactor   float64
	LongestChain int
	EmptyBuckets int
	Resizes      int
}

// Stats walks every bucket and reports chain lengths and load
func (t *Table[K, V]) Stats() Stats {
	s := Stats{
		Len:        t.size,
		Capacity:   len(t.buckets),
		LoadFactor: float64(t.size) / float64(len(t.buckets)),
		Resizes:    t.resizes,
	}
	for _, b := range t.buckets {
		if len(b) == 0 {
			s.EmptyBuckets++
		}
		if len(b) > s.LongestChain {
			s.LongestChain = len(b)
		}
	}
	return s
}
