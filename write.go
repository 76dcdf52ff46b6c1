package fsx

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// Exists reports whether a file or directory exists at path.
// Returns (true, nil) if it exists, (false, nil) if it does not, and
// (false, err) wrapping [ErrIO] for any other stat failure.
func Exists(path string) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %w", ErrIO, err)
}

// WriteFileAtomic writes data to path atomically, via a temp file in the
// same directory followed by a rename. Readers never observe a partially
// written file, and a crash mid-write leaves the old contents intact.
func WriteFileAtomic(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}
