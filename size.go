package fsx

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// sizeConfig collects the options of [DirSize].
type sizeConfig struct {
	skipHidden bool
}

// SizeOption configures [DirSize].
type SizeOption func(*sizeConfig)

// SkipHidden excludes hidden files from the total and does not descend
// into hidden directories. Hiddenness follows [IsHidden]. The root
// directory itself is always sized, hidden or not.
func SkipHidden() SizeOption {
	return func(c *sizeConfig) {
		c.skipHidden = true
	}
}

// DirSize returns the total size in bytes of all regular files under dir,
// recursively. Symlinks are not followed.
//
// Files or directories that vanish while the walk is in progress count as
// zero length; a concurrent cleanup must not fail an ongoing measurement.
// All other failures (missing root, unreadable directory) fail with
// [ErrIO].
func DirSize(dir string, opts ...SizeOption) (int64, error) {
	if dir == "" {
		return 0, fmt.Errorf("%w: directory must not be empty", ErrInvalidArgument)
	}

	var cfg sizeConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	var total int64

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The root itself must exist; anything below it may
			// legitimately disappear mid-walk.
			if path != dir && errors.Is(err, fs.ErrNotExist) {
				return nil
			}

			return err
		}

		if cfg.skipHidden && path != dir {
			hidden, hiddenErr := isHidden(path)
			if hiddenErr != nil {
				// Vanished between listing and attribute check.
				if errors.Is(hiddenErr, fs.ErrNotExist) {
					return nil
				}

				return hiddenErr
			}

			if hidden {
				if d.IsDir() {
					return fs.SkipDir
				}

				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}

			return err
		}

		// Counts regular files only. Sockets, pipes and symlinks have
		// no meaningful on-disk length for aggregation.
		if !info.Mode().IsRegular() {
			return nil
		}

		total += info.Size()

		return nil
	})
	if walkErr != nil {
		return 0, fmt.Errorf("%w: sizing %s: %w", ErrIO, dir, walkErr)
	}

	return total, nil
}
