package fsx

import "errors"

// Sentinel errors returned by this package. All errors returned by fsx
// functions wrap exactly one of these, so callers can classify failures
// with [errors.Is] without string matching.
var (
	// ErrInvalidArgument indicates a missing or malformed argument
	// (empty path, nil encoding, invalid filename). It is always
	// returned eagerly, before any filesystem access happens.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO indicates an underlying open, read, stat or decode failure.
	// The original error remains in the chain and can be inspected with
	// [errors.Is] (for example against [io/fs.ErrPermission]).
	ErrIO = errors.New("i/o failure")

	// ErrInvalidOperation indicates an operation that cannot be
	// completed given the current state of the filesystem, such as
	// renaming a file that does not exist or onto a name that is
	// already taken.
	ErrInvalidOperation = errors.New("invalid operation")
)
