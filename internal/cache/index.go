package cache

import "sort"

// indexEntry pairs a frame number with its measured byte size.
type indexEntry struct {
	number int64
	size   int64
}

// frameIndex is the ordered index both stores hang their bookkeeping on:
// entries sorted ascending by frame number with a running byte total.
// Invariant: total always equals the sum of entry sizes.
type frameIndex struct {
	entries []indexEntry
	total   int64
}

// search returns the position of number, or the insertion point and false.
func (x *frameIndex) search(number int64) (int, bool) {
	i := sort.Search(len(x.entries), func(i int) bool {
		return x.entries[i].number >= number
	})
	return i, i < len(x.entries) && x.entries[i].number == number
}

// insert adds or replaces the entry for number and reports whether an
// existing entry was replaced.
func (x *frameIndex) insert(number, size int64) bool {
	i, found := x.search(number)
	if found {
		x.total += size - x.entries[i].size
		x.entries[i].size = size
		return true
	}
	x.entries = append(x.entries, indexEntry{})
	copy(x.entries[i+1:], x.entries[i:])
	x.entries[i] = indexEntry{number: number, size: size}
	x.total += size
	return false
}

func (x *frameIndex) contains(number int64) bool {
	_, found := x.search(number)
	return found
}

// min returns the smallest resident frame number.
func (x *frameIndex) min() (int64, bool) {
	if len(x.entries) == 0 {
		return 0, false
	}
	return x.entries[0].number, true
}

// remove deletes the entry for number, returning its size.
func (x *frameIndex) remove(number int64) (int64, bool) {
	i, found := x.search(number)
	if !found {
		return 0, false
	}
	size := x.entries[i].size
	x.entries = append(x.entries[:i], x.entries[i+1:]...)
	x.total -= size
	return size, true
}

// removeMax deletes the highest-numbered entry.
func (x *frameIndex) removeMax() (indexEntry, bool) {
	if len(x.entries) == 0 {
		return indexEntry{}, false
	}
	entry := x.entries[len(x.entries)-1]
	x.entries = x.entries[:len(x.entries)-1]
	x.total -= entry.size
	return entry, true
}

// removeRange deletes every entry in [start, end] inclusive and returns
// the removed frame numbers in ascending order.
func (x *frameIndex) removeRange(start, end int64) []int64 {
	if end < start || len(x.entries) == 0 {
		return nil
	}
	lo, _ := x.search(start)
	hi := sort.Search(len(x.entries), func(i int) bool {
		return x.entries[i].number > end
	})
	if lo >= hi {
		return nil
	}
	removed := make([]int64, 0, hi-lo)
	for _, entry := range x.entries[lo:hi] {
		removed = append(removed, entry.number)
		x.total -= entry.size
	}
	x.entries = append(x.entries[:lo], x.entries[hi:]...)
	return removed
}

func (x *frameIndex) clear() {
	x.entries = nil
	x.total = 0
}

func (x *frameIndex) len() int {
	return len(x.entries)
}

// numbers returns the resident frame numbers in ascending order.
func (x *frameIndex) numbers() []int64 {
	out := make([]int64, len(x.entries))
	for i, entry := range x.entries {
		out[i] = entry.number
	}
	return out
}
