// Package cache memoizes rendered frames so playback and export can
// scrub a timeline without recomputing them. Two stores implement one
// contract: Memory keeps frames resident in process memory, Disk
// rasterizes images into a directory at a configured scale while keeping
// audio exact.
//
// Both stores enforce a byte budget by evicting the highest-numbered
// frame first. Video is consumed forward from a playback cursor, so the
// low-numbered working set is the part worth keeping; this is
// deliberately not an LRU. A single entry larger than the whole budget
// is never evicted, so callers always find at least the last frame added.
//
// Downstream components poll Status() instead of scanning the cache: it
// reports the resident frame numbers as maximal contiguous ranges plus a
// monotonic version counter for cheap change detection.
package cache
