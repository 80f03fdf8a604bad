package cache

import "framecache/internal/frame"

// Cache is the contract shared by the memory and disk stores.
//
// Misses are normal outcomes: GetFrame and GetSmallestFrame return a nil
// frame with a nil error when nothing matches. The error slot carries
// real failures only (disk I/O in the disk store). Frames returned from
// Get operations share the cache's buffers; callers must not mutate them.
type Cache interface {
	// Add inserts or replaces the entry keyed by f.Number, updates the
	// byte accounting, bumps the version, and runs the eviction pass.
	// Replacing an existing number is defined behavior, not an error.
	Add(f *frame.Frame) error

	// GetFrame returns the frame with the given number, or nil if absent.
	GetFrame(number int64) (*frame.Frame, error)

	// GetSmallestFrame returns the lowest-numbered resident frame, or nil
	// if the cache is empty. It has no side effects; repeated calls
	// without an intervening mutation return the same frame.
	GetSmallestFrame() (*frame.Frame, error)

	// Remove deletes the entry with the exact number; no-op if absent.
	Remove(number int64)

	// RemoveRange deletes every resident entry in [start, end] inclusive.
	RemoveRange(start, end int64)

	// Clear deletes all entries. The disk store also deletes its files.
	Clear() error

	// Count returns the number of resident entries.
	Count() int

	// TotalBytes returns the tracked resident payload size.
	TotalBytes() int64

	// MaxBytes returns the byte budget; 0 means unlimited.
	MaxBytes() int64

	// SetMaxBytes changes the budget. It does not evict by itself; the
	// next Add applies the new budget.
	SetMaxBytes(n int64)

	// Status reports the contiguous cached ranges and version counter.
	Status() Status
}
