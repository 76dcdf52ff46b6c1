package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMvCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		files      []string
		args       []string
		wantExit   int
		wantStdout []string
		wantStderr []string
		wantFiles  []string // files that must exist afterwards
		goneFiles  []string // files that must not exist afterwards
	}{
		{
			name:       "renames within directory",
			files:      []string{"old.txt"},
			args:       []string{"mv", "old.txt", "new.txt"},
			wantExit:   0,
			wantStdout: []string{"Renamed old.txt -> new.txt"},
			wantFiles:  []string{"new.txt"},
			goneFiles:  []string{"old.txt"},
		},
		{
			name:       "missing source",
			args:       []string{"mv", "gone.txt", "new.txt"},
			wantExit:   1,
			wantStderr: []string{"invalid operation"},
		},
		{
			name:       "reserved character in new name",
			files:      []string{"keep.txt"},
			args:       []string{"mv", "keep.txt", "bad?.txt"},
			wantExit:   1,
			wantStderr: []string{"invalid argument", "reserved character"},
			wantFiles:  []string{"keep.txt"},
		},
		{
			name:       "destination taken",
			files:      []string{"src.txt", "dst.txt"},
			args:       []string{"mv", "src.txt", "dst.txt"},
			wantExit:   1,
			wantStderr: []string{"invalid operation", "already exists"},
			wantFiles:  []string{"src.txt", "dst.txt"},
		},
		{
			name:       "wrong argument count",
			args:       []string{"mv", "only-one"},
			wantExit:   1,
			wantStderr: []string{"expected <file> and <new-name>"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()

			for _, name := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
					t.Fatalf("setup: %v", err)
				}
			}

			args := append([]string{"fsx", "-C", dir}, tt.args...)

			exit, stdout, stderr := runForTest(t, nil, args, nil)

			if got, want := exit, tt.wantExit; got != want {
				t.Fatalf("exit=%d, want=%d, stderr:\n%s", got, want, stderr)
			}

			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout, want) {
					t.Fatalf("stdout missing %q, got:\n%s", want, stdout)
				}
			}

			for _, want := range tt.wantStderr {
				if !strings.Contains(stderr, want) {
					t.Fatalf("stderr missing %q, got:\n%s", want, stderr)
				}
			}

			for _, name := range tt.wantFiles {
				if _, err := os.Lstat(filepath.Join(dir, name)); err != nil {
					t.Fatalf("expected %s to exist: %v", name, err)
				}
			}

			for _, name := range tt.goneFiles {
				if _, err := os.Lstat(filepath.Join(dir, name)); err == nil {
					t.Fatalf("expected %s to be gone", name)
				}
			}
		})
	}
}
