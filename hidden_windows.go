//go:build windows

package fsx

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// isHidden implements [IsHidden] via the FILE_ATTRIBUTE_HIDDEN bit.
func isHidden(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0, nil
}
