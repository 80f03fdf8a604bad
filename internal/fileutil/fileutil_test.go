package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame_1.png")

	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "payload")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("content mismatch: got %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestWriteFileAtomicWriterError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame_1.png")
	wantErr := errors.New("encode failed")

	err := WriteFileAtomic(path, func(w io.Writer) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected writer error, got %v", err)
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("destination should not exist after failed write")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory should be empty after failure, has %d entries", len(entries))
	}
}

func TestDiskUsage(t *testing.T) {
	total, free, err := DiskUsage(t.TempDir())
	if err != nil {
		t.Fatalf("DiskUsage failed: %v", err)
	}
	if total == 0 {
		t.Error("total bytes should be non-zero")
	}
	if free > total {
		t.Errorf("free %d exceeds total %d", free, total)
	}
}
