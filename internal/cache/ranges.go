package cache

import "strconv"

// Range is one maximal run of consecutive resident frame numbers.
type Range struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Status is the compact summary polled by progress and UI components in
// place of scanning the cache: the resident frame numbers as ascending,
// disjoint, maximal ranges, and the change counter rendered as a decimal
// string.
type Status struct {
	Version string  `json:"version"`
	Ranges  []Range `json:"ranges"`
}

// BuildRanges merges an ascending key set into maximal contiguous
// ranges, starting a new range whenever the next number is not exactly
// one greater than the previous.
func BuildRanges(numbers []int64) []Range {
	if len(numbers) == 0 {
		return []Range{}
	}
	ranges := []Range{{Start: numbers[0], End: numbers[0]}}
	for _, n := range numbers[1:] {
		last := &ranges[len(ranges)-1]
		if n == last.End+1 {
			last.End = n
			continue
		}
		ranges = append(ranges, Range{Start: n, End: n})
	}
	return ranges
}

func buildStatus(version uint64, numbers []int64) Status {
	return Status{
		Version: strconv.FormatUint(version, 10),
		Ranges:  BuildRanges(numbers),
	}
}
