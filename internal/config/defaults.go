package config

const (
	defaultDiskDir   = "~/.cache/framecache"
	defaultFormat    = "png"
	defaultScale     = 1.0
	defaultQuality   = 0.75
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Cache: CacheSettings{MaxBytes: 0},
		Disk: DiskSettings{
			Dir:     expandHome(defaultDiskDir),
			Format:  defaultFormat,
			Scale:   defaultScale,
			Quality: defaultQuality,
		},
		Log: LogSettings{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
