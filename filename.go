package fsx

import (
	"fmt"
	"strings"
)

// maxFilenameBytes is the conservative cross-filesystem name limit.
const maxFilenameBytes = 255

// reservedFilenameChars are rejected in filenames on every platform.
// The set is the Windows reserved set; names that pass [ValidFilename]
// are valid on all supported filesystems.
const reservedFilenameChars = `<>:"|?*` + "\x00"

// reservedDeviceNames are Windows device names that cannot be used as
// filenames, with or without an extension.
var reservedDeviceNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// ValidFilename reports whether name is usable as a single portable
// filename component. It returns nil if so, otherwise an error wrapping
// [ErrInvalidArgument] naming the violated rule.
//
// Validation is identical on every platform and enforces the strictest
// common denominator: no path separators, no NUL or control bytes, none
// of `<>:"|?*`, no Windows device names, no trailing dot or space, and at
// most 255 bytes. "." and ".." are rejected because they already name
// existing entries.
func ValidFilename(name string) error {
	if name == "" {
		return fmt.Errorf("%w: filename must not be empty", ErrInvalidArgument)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("%w: filename must not be %q", ErrInvalidArgument, name)
	}

	if len(name) > maxFilenameBytes {
		return fmt.Errorf("%w: filename exceeds %d bytes", ErrInvalidArgument, maxFilenameBytes)
	}

	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, '\\') {
		return fmt.Errorf("%w: filename %q must not contain a path separator", ErrInvalidArgument, name)
	}

	if strings.ContainsAny(name, reservedFilenameChars) {
		return fmt.Errorf("%w: filename %q contains a reserved character", ErrInvalidArgument, name)
	}

	for _, r := range name {
		if r < 0x20 {
			return fmt.Errorf("%w: filename %q contains a control character", ErrInvalidArgument, name)
		}
	}

	if strings.HasSuffix(name, " ") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("%w: filename %q must not end with a space or dot", ErrInvalidArgument, name)
	}

	stem, _, _ := strings.Cut(name, ".")
	if reservedDeviceNames[strings.ToUpper(stem)] {
		return fmt.Errorf("%w: filename %q is a reserved device name", ErrInvalidArgument, name)
	}

	return nil
}
