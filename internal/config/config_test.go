package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Cache.MaxBytes != 0 {
		t.Errorf("default max_bytes should be 0, got %d", cfg.Cache.MaxBytes)
	}
	if cfg.Disk.Format != "png" {
		t.Errorf("default format should be png, got %q", cfg.Disk.Format)
	}
	if cfg.Disk.Scale != 1.0 {
		t.Errorf("default scale should be 1.0, got %g", cfg.Disk.Scale)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level should be info, got %q", cfg.Log.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[cache]
max_bytes = 1048576

[disk]
dir = "/tmp/fc"
format = "JPEG"
scale = 0.5
quality = 0.9

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cache.MaxBytes != 1048576 {
		t.Errorf("max_bytes: got %d", cfg.Cache.MaxBytes)
	}
	if cfg.Disk.Format != "jpeg" {
		t.Errorf("format should be lowercased, got %q", cfg.Disk.Format)
	}
	if cfg.Disk.Scale != 0.5 {
		t.Errorf("scale: got %g", cfg.Disk.Scale)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q", cfg.Log.Level)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad format":   "[disk]\nformat = \"tiff\"\n",
		"zero scale":   "[disk]\nscale = 0.0\n",
		"big scale":    "[disk]\nscale = 1.5\n",
		"bad quality":  "[disk]\nquality = -0.5\n",
		"neg maxbytes": "[cache]\nmax_bytes = -1\n",
	}
	for name, body := range cases {
		t.Run(strings.ReplaceAll(name, " ", "_"), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected validation error for %s", name)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got := expandHome("~/x")
	if got != filepath.Join(home, "x") {
		t.Errorf("expandHome: got %q", got)
	}
	if expandHome("/abs/path") != "/abs/path" {
		t.Error("absolute path should pass through")
	}
}
