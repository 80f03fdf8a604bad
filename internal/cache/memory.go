package cache

import (
	"log/slog"
	"sync"

	"framecache/internal/frame"
	"framecache/internal/logging"
)

// Memory keeps frames resident in process memory, ordered by frame
// number. It is the reference implementation of the eviction and status
// behavior the disk store shares.
type Memory struct {
	mu       sync.Mutex
	idx      frameIndex
	frames   map[int64]*frame.Frame
	maxBytes int64
	version  uint64
	logger   *slog.Logger
}

var _ Cache = (*Memory)(nil)

// NewMemory creates a memory store with the given byte budget
// (0 = unlimited). A nil logger is replaced with a no-op logger.
func NewMemory(maxBytes int64, logger *slog.Logger) *Memory {
	return &Memory{
		frames:   make(map[int64]*frame.Frame),
		maxBytes: maxBytes,
		logger:   logging.NewComponentLogger(logger, "memcache"),
	}
}

// Add inserts or replaces the frame keyed by f.Number and runs the
// eviction pass. Never fails; the error satisfies the Cache contract.
func (c *Memory) Add(f *frame.Frame) error {
	if f == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.idx.insert(f.Number, f.Bytes())
	c.frames[f.Number] = f
	c.version++

	evicted := evictOver(&c.idx, c.maxBytes, func(number, size int64) {
		delete(c.frames, number)
	})
	if evicted > 0 {
		c.logger.Debug("evicted frames over budget",
			logging.Int("evicted", evicted),
			logging.Int64(logging.FieldBytes, c.idx.total),
			logging.Int64("max_bytes", c.maxBytes))
	}
	return nil
}

// GetFrame returns the frame with the given number, or nil if absent.
func (c *Memory) GetFrame(number int64) (*frame.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.frames[number], nil
}

// GetSmallestFrame returns the lowest-numbered resident frame, or nil.
func (c *Memory) GetSmallestFrame() (*frame.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	number, ok := c.idx.min()
	if !ok {
		return nil, nil
	}
	return c.frames[number], nil
}

// Remove deletes the entry with the exact number if present.
func (c *Memory) Remove(number int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.idx.remove(number); ok {
		delete(c.frames, number)
		c.version++
	}
}

// RemoveRange deletes every resident entry in [start, end] inclusive.
func (c *Memory) RemoveRange(start, end int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.idx.removeRange(start, end)
	for _, number := range removed {
		delete(c.frames, number)
	}
	if len(removed) > 0 {
		c.version++
	}
}

// Clear deletes all entries and resets the byte accounting.
func (c *Memory) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.idx.len() > 0 {
		c.version++
	}
	c.idx.clear()
	c.frames = make(map[int64]*frame.Frame)
	return nil
}

// Count returns the number of resident entries.
func (c *Memory) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.idx.len()
}

// TotalBytes returns the tracked resident payload size.
func (c *Memory) TotalBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.idx.total
}

// MaxBytes returns the byte budget; 0 means unlimited.
func (c *Memory) MaxBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.maxBytes
}

// SetMaxBytes changes the budget; the next Add applies it.
func (c *Memory) SetMaxBytes(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maxBytes = n
}

// Status reports the contiguous cached ranges and version counter.
func (c *Memory) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return buildStatus(c.version, c.idx.numbers())
}
