// Package fsx provides small filesystem conveniences on top of the [os]
// and [path/filepath] packages.
//
// The main pieces are:
//   - [LineReader]: a lazy, lock-tolerant, encoding-aware line reader
//   - [DirSize]: recursive directory sizing
//   - [IsHidden]: platform hidden-attribute check
//   - [Rename]: validated same-directory rename
//   - [WriteFileAtomic], [Exists]: write/stat helpers
//
// Every operation works on plain paths, takes no locks, and holds no
// process-wide state. Errors are classified by the sentinels in errors.go
// ([ErrInvalidArgument], [ErrIO], [ErrInvalidOperation]).
package fsx

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Line length limits for the scanner. Lines longer than maxLineBytes fail
// with [ErrIO] instead of being split silently.
const (
	initialLineBytes = 64 * 1024
	maxLineBytes     = 4 * 1024 * 1024
)

// linesConfig collects the options of [ReadLines].
type linesConfig struct {
	enc encoding.Encoding
}

// LinesOption configures [ReadLines].
type LinesOption func(*linesConfig) error

// WithEncoding decodes the file with the given x/text encoding instead of
// the UTF-8 default. A nil encoding fails with [ErrInvalidArgument].
func WithEncoding(enc encoding.Encoding) LinesOption {
	return func(c *linesConfig) error {
		if enc == nil {
			return fmt.Errorf("%w: encoding must not be nil", ErrInvalidArgument)
		}

		c.enc = enc

		return nil
	}
}

// WithEncodingName is [WithEncoding] with an IANA encoding name, resolved
// via [EncodingByName]. An unknown name fails with [ErrInvalidArgument].
func WithEncodingName(name string) LinesOption {
	return func(c *linesConfig) error {
		enc, err := EncodingByName(name)
		if err != nil {
			return err
		}

		c.enc = enc

		return nil
	}
}

// LineReader streams a text file line by line.
//
// The zero value is not usable; obtain one from [ReadLines]. Usage mirrors
// [bufio.Scanner]:
//
//	r, err := fsx.ReadLines("app.log")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for r.Scan() {
//	    fmt.Println(r.Text())
//	}
//	if err := r.Err(); err != nil {
//	    return err
//	}
//
// The file is opened on the first [LineReader.Scan] call, not in
// [ReadLines], and is opened for reading only without claiming any lock,
// so reading succeeds while another process holds the file open for
// writing. At most one line is held in memory at a time.
//
// The handle is released on every exit path: scanning to the end closes
// it automatically, abandoning early requires [LineReader.Close], and any
// open/read/decode failure closes it before [LineReader.Err] reports the
// error. Close is idempotent, so the deferred call above is always safe.
//
// A LineReader is single-pass and forward-only. It cannot be reused or
// rewound; call [ReadLines] again to re-read the file. It is not safe for
// concurrent use.
type LineReader struct {
	path string
	enc  encoding.Encoding // nil means UTF-8 with BOM override

	file    *os.File
	scanner *bufio.Scanner
	line    string
	err     error
	opened  bool
	done    bool
}

// ReadLines returns a [LineReader] over the file at path.
//
// Arguments are validated eagerly: an empty path, or an invalid option,
// fails here with [ErrInvalidArgument]. No filesystem access happens until
// the first [LineReader.Scan] call; a missing or unreadable file is
// therefore reported by Scan/Err, not by ReadLines.
func ReadLines(path string, opts ...LinesOption) (*LineReader, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	var cfg linesConfig

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &LineReader{path: path, enc: cfg.enc}, nil
}

// Scan advances to the next line, opening the file on the first call.
// It returns false at end of file, after [LineReader.Close], or on error;
// consult [LineReader.Err] to tell the error case apart. Once Scan has
// returned false the underlying handle is closed.
func (r *LineReader) Scan() bool {
	if r.done {
		return false
	}

	if !r.opened {
		if !r.open() {
			return false
		}
	}

	if r.scanner.Scan() {
		r.line = r.scanner.Text()

		return true
	}

	// EOF or read/decode failure. Either way the handle is released now.
	scanErr := r.scanner.Err()

	closeErr := r.closeFile()

	r.done = true

	if scanErr != nil {
		r.err = fmt.Errorf("%w: reading %s: %w", ErrIO, r.path, scanErr)
	} else if closeErr != nil {
		r.err = fmt.Errorf("%w: closing %s: %w", ErrIO, r.path, closeErr)
	}

	return false
}

// open opens the file and builds the decoding scanner.
// Reports whether the reader is ready to produce lines.
func (r *LineReader) open() bool {
	r.opened = true

	// os.Open requests read access only. On POSIX this takes no lock of
	// any kind; on Windows the runtime opens with FILE_SHARE_READ,
	// FILE_SHARE_WRITE and FILE_SHARE_DELETE. Concurrent writers with a
	// compatible sharing mode are therefore never blocked, and never
	// block us.
	file, err := os.Open(r.path)
	if err != nil {
		r.done = true
		r.err = fmt.Errorf("%w: %w", ErrIO, err)

		return false
	}

	r.file = file

	scanner := bufio.NewScanner(transform.NewReader(file, decodeTransformer(r.enc)))
	scanner.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)

	r.scanner = scanner

	return true
}

// Text returns the line read by the last successful [LineReader.Scan],
// with the trailing line terminator (LF or CRLF) stripped.
func (r *LineReader) Text() string {
	return r.line
}

// Err returns the first error encountered while opening, reading or
// decoding, wrapped in [ErrIO]. It returns nil after a clean end of file.
func (r *LineReader) Err() error {
	return r.err
}

// Close releases the underlying file handle. It must be called when
// consumption stops before [LineReader.Scan] has returned false;
// afterwards it is a no-op. Close never discards a prior read error.
func (r *LineReader) Close() error {
	if r.done {
		return nil
	}

	r.done = true

	if err := r.closeFile(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, r.path, err)
	}

	return nil
}

func (r *LineReader) closeFile() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil

	return err
}

// ReadAllLines reads the whole file into a slice of lines using a
// [LineReader]. Argument errors surface immediately; open/read failures
// are reported once reading starts, per the LineReader contract.
func ReadAllLines(path string, opts ...LinesOption) ([]string, error) {
	r, err := ReadLines(path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string

	for r.Scan() {
		lines = append(lines, r.Text())
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// CountLines returns the number of lines in the file without retaining
// their contents. A final line without a trailing terminator counts.
func CountLines(path string, opts ...LinesOption) (int, error) {
	r, err := ReadLines(path, opts...)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	count := 0

	for r.Scan() {
		count++
	}

	if err := r.Err(); err != nil {
		return 0, err
	}

	return count, nil
}
