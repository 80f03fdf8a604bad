package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"framecache/internal/cache"
	"framecache/internal/logging"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear [dir]",
		Short: "Delete cached frame files from a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dir := cfg.Disk.Dir
			if len(args) == 1 {
				dir = args[0]
			}

			// Refuse to pull files out from under a live store.
			lock := flock.New(filepath.Join(dir, cache.LockFileName))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("lock cache directory: %w", err)
			}
			if !locked {
				return fmt.Errorf("%s: %w", dir, cache.ErrDirInUse)
			}
			defer lock.Unlock()

			removed, err := clearCacheDir(dir)
			if err != nil {
				return err
			}
			ctx.logger.Debug("cleared cache directory",
				logging.String(logging.FieldPath, dir),
				logging.Int("removed", removed))
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached frame(s) from %s\n", removed, dir)
			return nil
		},
	}
}

// clearCacheDir deletes every frame file in dir, leaving everything else
// (including the lock file) alone.
func clearCacheDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("list cache directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, _, ok := cache.ParseFrameFileName(entry.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
		removed++
	}
	return removed, nil
}
