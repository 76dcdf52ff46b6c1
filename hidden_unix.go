//go:build !windows

package fsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// isHidden implements [IsHidden] with the Unix dotfile convention.
// The stat keeps the contract uniform across platforms: asking about a
// path that does not exist is an error, not "not hidden".
func isHidden(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		return false, fmt.Errorf("%w: %w", ErrIO, err)
	}

	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return false, nil
	}

	return strings.HasPrefix(name, "."), nil
}
