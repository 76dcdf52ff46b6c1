package fsx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Rename gives the file or directory at path the new base name newName,
// staying within its parent directory.
//
// newName is validated with [ValidFilename] before any filesystem access;
// a reserved or malformed name fails with [ErrInvalidArgument] and leaves
// the source untouched. A missing source, or a destination name that is
// already taken, fails with [ErrInvalidOperation]. Renaming a file to its
// current name is a no-op.
//
// Unlike [os.Rename], an existing destination is never replaced.
func Rename(path, newName string) error {
	if path == "" {
		return fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	if err := ValidFilename(newName); err != nil {
		return err
	}

	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s does not exist", ErrInvalidOperation, path)
		}

		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	dest := filepath.Join(filepath.Dir(path), newName)
	if dest == filepath.Clean(path) {
		return nil
	}

	// Check-then-rename has a window where a concurrent create slips
	// through, but os.Rename would silently replace the destination,
	// which is worse than the race.
	if _, err := os.Lstat(dest); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrInvalidOperation, dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	return nil
}
