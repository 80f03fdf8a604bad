package main

import (
	"fmt"
	"os"
	"sort"

	"framecache/internal/cache"
	"framecache/internal/fileutil"
)

// dirSummary is the offline view of a disk cache directory, derived from
// the frame-numbered file names. A running store's in-memory index is
// the real source of truth; this summary reflects whatever files are on
// disk right now.
type dirSummary struct {
	Dir          string        `json:"dir"`
	Entries      int           `json:"entries"`
	TotalBytes   int64         `json:"total_bytes"`
	Ranges       []cache.Range `json:"ranges"`
	FreeBytes    uint64        `json:"free_bytes"`
	TotalFSBytes uint64        `json:"total_fs_bytes"`

	sizes map[int64]int64
}

// scanCacheDir lists a cache directory and folds the frame files into a
// summary. Files the store did not produce are ignored.
func scanCacheDir(dir string) (dirSummary, error) {
	summary := dirSummary{Dir: dir, Ranges: []cache.Range{}, sizes: make(map[int64]int64)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return summary, fmt.Errorf("list cache directory: %w", err)
	}

	numbers := make([]int64, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		number, _, ok := cache.ParseFrameFileName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		numbers = append(numbers, number)
		summary.sizes[number] = info.Size()
		summary.TotalBytes += info.Size()
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	summary.Entries = len(numbers)
	summary.Ranges = cache.BuildRanges(numbers)

	total, free, err := fileutil.DiskUsage(dir)
	if err != nil {
		return summary, err
	}
	summary.TotalFSBytes = total
	summary.FreeBytes = free
	return summary, nil
}

// rangeBytes sums the file sizes of one contiguous range.
func (s dirSummary) rangeBytes(r cache.Range) int64 {
	var sum int64
	for n := r.Start; n <= r.End; n++ {
		sum += s.sizes[n]
	}
	return sum
}
