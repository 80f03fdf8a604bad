package cache

// evictOver shrinks the index until it fits maxBytes, removing the
// highest-numbered entry each round. Insertion order plays no part; only
// the numeric identity decides what survives. The final entry is never
// evicted, even when it alone exceeds the budget, so the cache cannot be
// drained to empty by one oversized frame. The drop callback runs for
// each evicted entry so the store can release the payload.
//
// Both stores call this at the tail of Add, while holding their lock.
func evictOver(idx *frameIndex, maxBytes int64, drop func(number, size int64)) int {
	if maxBytes <= 0 {
		return 0
	}
	evicted := 0
	for idx.total > maxBytes && idx.len() > 1 {
		entry, ok := idx.removeMax()
		if !ok {
			break
		}
		drop(entry.number, entry.size)
		evicted++
	}
	return evicted
}
