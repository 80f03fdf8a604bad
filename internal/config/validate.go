package config

import "fmt"

var knownFormats = map[string]struct{}{
	"png":  {},
	"jpeg": {},
	"bmp":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Cache.MaxBytes < 0 {
		return fmt.Errorf("cache.max_bytes must be >= 0, got %d", c.Cache.MaxBytes)
	}
	if c.Disk.Dir == "" {
		return fmt.Errorf("disk.dir must not be empty")
	}
	if _, ok := knownFormats[c.Disk.Format]; !ok {
		return fmt.Errorf("disk.format: unsupported value %q (png, jpeg, bmp)", c.Disk.Format)
	}
	if c.Disk.Scale <= 0 || c.Disk.Scale > 1 {
		return fmt.Errorf("disk.scale must be in (0,1], got %g", c.Disk.Scale)
	}
	if c.Disk.Quality <= 0 || c.Disk.Quality > 1 {
		return fmt.Errorf("disk.quality must be in (0,1], got %g", c.Disk.Quality)
	}
	return nil
}
