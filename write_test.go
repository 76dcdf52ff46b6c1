package fsx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// -----------------------------------------------------------------------------
// Exists
// -----------------------------------------------------------------------------

// TestExists_ReturnsFalseForNonExistent verifies that Exists returns
// (false, nil) for missing paths, not an error.
func TestExists_ReturnsFalseForNonExistent(t *testing.T) {
	t.Parallel()

	exists, err := Exists(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err != nil {
		t.Fatalf("err=%v, want=nil", err)
	}

	if got, want := exists, false; got != want {
		t.Fatalf("exists=%v, want=%v", got, want)
	}
}

// TestExists_ReturnsTrueForFile verifies (true, nil) for existing files.
func TestExists_ReturnsTrueForFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "exists.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exists, err := Exists(path)
	if err != nil {
		t.Fatalf("err=%v, want=nil", err)
	}

	if got, want := exists, true; got != want {
		t.Fatalf("exists=%v, want=%v", got, want)
	}
}

// TestExists_ReturnsTrueForDirectory verifies Exists works for directories
// too, not just files.
func TestExists_ReturnsTrueForDirectory(t *testing.T) {
	t.Parallel()

	subdir := filepath.Join(t.TempDir(), "subdir")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exists, err := Exists(subdir)
	if err != nil {
		t.Fatalf("err=%v, want=nil", err)
	}

	if got, want := exists, true; got != want {
		t.Fatalf("exists=%v, want=%v", got, want)
	}
}

// -----------------------------------------------------------------------------
// WriteFileAtomic
// -----------------------------------------------------------------------------

// TestWriteFileAtomic_RoundTrip verifies a fresh write and an overwrite.
func TestWriteFileAtomic_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "atomic.txt")

	if err := WriteFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	if err := WriteFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("WriteFileAtomic overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if got, want := string(data), "second"; got != want {
		t.Fatalf("content=%q, want=%q", got, want)
	}
}

// TestWriteFileAtomic_EmptyPath verifies the eager argument check.
func TestWriteFileAtomic_EmptyPath(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic("", []byte("x"))
	if got, want := err, ErrInvalidArgument; !errors.Is(got, want) {
		t.Fatalf("err=%v, want=%v", got, want)
	}
}

// TestWriteFileAtomic_LeavesNoTempFiles verifies the directory holds only
// the target after a write.
func TestWriteFileAtomic_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := WriteFileAtomic(filepath.Join(dir, "only.txt"), []byte("x")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	if got, want := len(entries), 1; got != want {
		t.Fatalf("entries=%d, want=%d", got, want)
	}
}
