package fsx

import "fmt"

// IsHidden reports whether the file or directory at path carries the
// platform's hidden marker: a leading dot in the base name on Unix, the
// hidden file attribute on Windows. The special entries "." and ".." are
// never hidden.
//
// An empty path fails with [ErrInvalidArgument]; a path that cannot be
// inspected (for example because it does not exist) fails with [ErrIO].
func IsHidden(path string) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	return isHidden(path)
}
