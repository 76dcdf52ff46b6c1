package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDuCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "ten.bin"), make([]byte, 10), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := os.WriteFile(filepath.Join(sub, "five.bin"), make([]byte, 5), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exit, stdout, stderr := runForTest(t, nil, []string{"fsx", "-C", dir, "du", "."}, nil)

	if got, want := exit, 0; got != want {
		t.Fatalf("exit=%d, want=%d, stderr:\n%s", got, want, stderr)
	}

	if got, want := stdout, "15\n"; got != want {
		t.Fatalf("stdout=%q, want=%q", got, want)
	}
}

func TestDuCommand_Human(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "big.bin"), make([]byte, 2048), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exit, stdout, _ := runForTest(t, nil, []string{"fsx", "-C", dir, "du", "--human", "."}, nil)

	if got, want := exit, 0; got != want {
		t.Fatalf("exit=%d, want=%d", got, want)
	}

	if got, want := stdout, "2.0 KiB\n"; got != want {
		t.Fatalf("stdout=%q, want=%q", got, want)
	}
}

func TestDuCommand_SkipHidden(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("dotfile convention")
	}

	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "seen.bin"), make([]byte, 10), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".unseen.bin"), make([]byte, 100), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exit, stdout, _ := runForTest(t, nil, []string{"fsx", "-C", dir, "du", "--skip-hidden", "."}, nil)

	if got, want := exit, 0; got != want {
		t.Fatalf("exit=%d, want=%d", got, want)
	}

	if got, want := stdout, "10\n"; got != want {
		t.Fatalf("stdout=%q, want=%q", got, want)
	}
}

func TestDuCommand_MissingDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	exit, _, stderr := runForTest(t, nil, []string{"fsx", "-C", dir, "du", "gone"}, nil)

	if got, want := exit, 1; got != want {
		t.Fatalf("exit=%d, want=%d", got, want)
	}

	if !strings.Contains(stderr, "i/o failure") {
		t.Fatalf("stderr missing i/o failure, got:\n%s", stderr)
	}
}

func TestHumanBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0 B"},
		{n: 512, want: "512 B"},
		{n: 1024, want: "1.0 KiB"},
		{n: 1536, want: "1.5 KiB"},
		{n: 1048576, want: "1.0 MiB"},
		{n: 5 << 30, want: "5.0 GiB"},
	}

	for _, tt := range tests {
		if got := humanBytes(tt.n); got != tt.want {
			t.Fatalf("humanBytes(%d)=%q, want=%q", tt.n, got, tt.want)
		}
	}
}
