package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// CacheSettings configures the byte budget shared by both store kinds.
type CacheSettings struct {
	MaxBytes int64 `toml:"max_bytes"` // 0 = unlimited
}

// DiskSettings configures the disk-backed store.
type DiskSettings struct {
	Dir     string  `toml:"dir"`
	Format  string  `toml:"format"`  // png | jpeg | bmp
	Scale   float64 `toml:"scale"`   // (0,1], stored image resolution factor
	Quality float64 `toml:"quality"` // (0,1], jpeg only
}

// LogSettings configures logger construction.
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the top-level framecache configuration.
type Config struct {
	Cache CacheSettings `toml:"cache"`
	Disk  DiskSettings  `toml:"disk"`
	Log   LogSettings   `toml:"log"`
}

// Load reads a TOML config from path, applying defaults for absent keys
// and validating the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Disk.Dir = expandHome(strings.TrimSpace(c.Disk.Dir))
	c.Disk.Format = strings.ToLower(strings.TrimSpace(c.Disk.Format))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
