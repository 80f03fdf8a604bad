package cache

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	xdraw "golang.org/x/image/draw"

	"framecache/internal/fileutil"
	"framecache/internal/frame"
	"framecache/internal/logging"
)

// LockFileName is the advisory lock file a disk store holds inside its
// directory for as long as it is open.
const LockFileName = ".lock"

// ErrDirInUse is returned when another process holds the cache directory.
var ErrDirInUse = errors.New("cache directory is in use by another process")

// DiskOptions configures how the disk store persists images. Audio is
// always kept exact; only image fidelity is traded for space.
type DiskOptions struct {
	Format   Format  // zero value defaults to png
	Scale    float64 // (0,1]; stored image resolution factor, default 1.0
	Quality  float64 // (0,1]; jpeg encode quality, default 0.75
	MaxBytes int64   // byte budget, 0 = unlimited
}

// diskEntry is the in-memory index record for one persisted frame: the
// backing file plus everything needed to rebuild the frame without
// re-decoding the whole directory. Audio rides in the index so it
// round-trips losslessly regardless of the image scale.
type diskEntry struct {
	path       string
	size       int64
	audio      [][]float32
	sampleRate int
	layout     frame.ChannelLayout
}

// Disk keeps frame images as files in a directory and audio in the
// in-memory index. Images are persisted at Scale times their original
// resolution permanently: GetFrame returns the reduced resolution, which
// is the deliberate space/fidelity trade-off of this store.
type Disk struct {
	mu       sync.Mutex
	dir      string
	format   Format
	scale    float64
	quality  float64
	lock     *flock.Flock
	idx      frameIndex
	entries  map[int64]diskEntry
	maxBytes int64
	version  uint64
	logger   *slog.Logger
}

var _ Cache = (*Disk)(nil)

// DiskUsageStats describes current disk store usage.
type DiskUsageStats struct {
	Entries      int    `json:"entries"`
	TotalBytes   int64  `json:"total_bytes"`
	MaxBytes     int64  `json:"max_bytes"`
	FreeBytes    uint64 `json:"free_bytes"`
	TotalFSBytes uint64 `json:"total_fs_bytes"`
}

// NewDisk creates a disk store rooted at dir, creating the directory and
// taking an advisory lock on it. An unusable directory is a construction
// error; the store is never half-initialized. Callers must Close the
// store to release the lock.
func NewDisk(dir string, opts DiskOptions, logger *slog.Logger) (*Disk, error) {
	if dir == "" {
		return nil, errors.New("diskcache: directory must not be empty")
	}
	format := opts.Format
	if format == "" {
		format = FormatPNG
	}
	switch format {
	case FormatPNG, FormatJPEG, FormatBMP:
	default:
		return nil, fmt.Errorf("diskcache: unsupported image format %q", string(format))
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1.0
	}
	if scale <= 0 || scale > 1 {
		return nil, fmt.Errorf("diskcache: scale must be in (0,1], got %g", scale)
	}
	quality := opts.Quality
	if quality == 0 {
		quality = 0.75
	}
	if quality <= 0 || quality > 1 {
		return nil, fmt.Errorf("diskcache: quality must be in (0,1], got %g", quality)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("diskcache: create directory: %w", err)
	}

	// Taking the lock doubles as the writability probe: flock creates
	// the lock file inside dir.
	lock := flock.New(filepath.Join(dir, LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("diskcache: lock directory %s: %w", dir, err)
	}
	if !locked {
		return nil, fmt.Errorf("diskcache: %s: %w", dir, ErrDirInUse)
	}

	return &Disk{
		dir:      dir,
		format:   format,
		scale:    scale,
		quality:  quality,
		lock:     lock,
		entries:  make(map[int64]diskEntry),
		maxBytes: opts.MaxBytes,
		logger:   logging.NewComponentLogger(logger, "diskcache"),
	}, nil
}

// Close releases the directory lock. Cached files stay on disk.
func (c *Disk) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lock == nil {
		return nil
	}
	err := c.lock.Unlock()
	c.lock = nil
	return err
}

// Dir returns the cache directory.
func (c *Disk) Dir() string {
	return c.dir
}

// Add rasterizes the frame's image to a file at the configured scale and
// format and indexes the entry. The index is only updated after the file
// write succeeds, so a failed Add leaves no trace. Audio samples and
// metadata are retained exactly in the index.
func (c *Disk) Add(f *frame.Frame) error {
	if f == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry := diskEntry{
		audio:      f.Audio(),
		sampleRate: f.SampleRate(),
		layout:     f.Layout(),
	}
	for _, ch := range f.Audio() {
		entry.size += int64(len(ch)) * 4
	}

	if img := f.Image(); img != nil {
		path := filepath.Join(c.dir, FrameFileName(f.Number, c.format))
		written, err := c.writeImage(path, img)
		if err != nil {
			return fmt.Errorf("diskcache: store frame %d: %w", f.Number, err)
		}
		entry.path = path
		entry.size += written
	} else if prev, ok := c.entries[f.Number]; ok && prev.path != "" {
		// Replacing an image-bearing entry with an image-less one
		// orphans the old file; drop it.
		c.removeFile(prev.path)
	}

	c.idx.insert(f.Number, entry.size)
	c.entries[f.Number] = entry
	c.version++

	evicted := evictOver(&c.idx, c.maxBytes, func(number, size int64) {
		if old, ok := c.entries[number]; ok {
			c.removeFile(old.path)
			delete(c.entries, number)
		}
	})
	if evicted > 0 {
		c.logger.Debug("evicted frames over budget",
			logging.Int("evicted", evicted),
			logging.Int64(logging.FieldBytes, c.idx.total),
			logging.Int64("max_bytes", c.maxBytes))
	}
	return nil
}

// writeImage scales and encodes img to path atomically, returning the
// encoded byte count.
func (c *Disk) writeImage(path string, img image.Image) (int64, error) {
	scaled := c.scaleImage(img)
	var written int64
	err := fileutil.WriteFileAtomic(path, func(w io.Writer) error {
		cw := &countingWriter{w: w}
		if err := c.format.encode(cw, scaled, c.quality); err != nil {
			return fmt.Errorf("encode %s image: %w", string(c.format), err)
		}
		written = cw.n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// scaleImage resamples img by the configured factor. A factor of 1 keeps
// the source untouched.
func (c *Disk) scaleImage(img image.Image) image.Image {
	if c.scale == 1.0 {
		return img
	}
	bounds := img.Bounds()
	width := int(float64(bounds.Dx())*c.scale + 0.5)
	height := int(float64(bounds.Dy())*c.scale + 0.5)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// GetFrame reconstructs the frame with the given number from its backing
// file and indexed audio, or returns nil if absent. The image comes back
// at the stored (scaled) resolution.
func (c *Disk) GetFrame(number int64) (*frame.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.getFrameLocked(number)
}

func (c *Disk) getFrameLocked(number int64) (*frame.Frame, error) {
	entry, ok := c.entries[number]
	if !ok {
		return nil, nil
	}

	f := frame.New(number)
	if entry.path != "" {
		img, err := decodeImageFile(entry.path)
		if err != nil {
			return nil, fmt.Errorf("diskcache: read frame %d: %w", number, err)
		}
		f.SetImage(img)
	}
	f.SetAudio(entry.audio, entry.sampleRate, entry.layout)
	return f, nil
}

// GetSmallestFrame reconstructs the lowest-numbered resident frame, or
// returns nil if the cache is empty.
func (c *Disk) GetSmallestFrame() (*frame.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	number, ok := c.idx.min()
	if !ok {
		return nil, nil
	}
	return c.getFrameLocked(number)
}

// Remove deletes the entry and its backing file if present.
func (c *Disk) Remove(number int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.idx.remove(number); ok {
		if entry, ok := c.entries[number]; ok {
			c.removeFile(entry.path)
			delete(c.entries, number)
		}
		c.version++
	}
}

// RemoveRange deletes every resident entry in [start, end] inclusive,
// along with the backing files.
func (c *Disk) RemoveRange(start, end int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.idx.removeRange(start, end)
	for _, number := range removed {
		if entry, ok := c.entries[number]; ok {
			c.removeFile(entry.path)
			delete(c.entries, number)
		}
	}
	if len(removed) > 0 {
		c.version++
	}
}

// Clear deletes all entries and their backing files. The directory and
// lock file remain.
func (c *Disk) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for _, entry := range c.entries {
		if entry.path == "" {
			continue
		}
		if err := os.Remove(entry.path); err != nil && !errors.Is(err, os.ErrNotExist) && firstErr == nil {
			firstErr = fmt.Errorf("diskcache: clear: %w", err)
		}
	}
	if c.idx.len() > 0 {
		c.version++
	}
	c.idx.clear()
	c.entries = make(map[int64]diskEntry)
	return firstErr
}

// Count returns the number of resident entries.
func (c *Disk) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.idx.len()
}

// TotalBytes returns the tracked resident payload size: encoded image
// bytes on disk plus audio bytes held in the index.
func (c *Disk) TotalBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.idx.total
}

// MaxBytes returns the byte budget; 0 means unlimited.
func (c *Disk) MaxBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.maxBytes
}

// SetMaxBytes changes the budget; the next Add applies it.
func (c *Disk) SetMaxBytes(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maxBytes = n
}

// Status reports the contiguous cached ranges and version counter.
func (c *Disk) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return buildStatus(c.version, c.idx.numbers())
}

// Usage reports store usage plus free space of the backing filesystem.
func (c *Disk) Usage() (DiskUsageStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	total, free, err := fileutil.DiskUsage(c.dir)
	if err != nil {
		return DiskUsageStats{}, fmt.Errorf("diskcache: %w", err)
	}
	return DiskUsageStats{
		Entries:      c.idx.len(),
		TotalBytes:   c.idx.total,
		MaxBytes:     c.maxBytes,
		FreeBytes:    free,
		TotalFSBytes: total,
	}, nil
}

func (c *Disk) removeFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.logger.Warn("failed to remove cached frame file",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
