package fsx

import (
	"errors"
	"strings"
	"testing"
)

func TestValidFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		wantOK   bool
	}{
		{name: "plain", filename: "notes.txt", wantOK: true},
		{name: "dotfile", filename: ".gitignore", wantOK: true},
		{name: "unicode", filename: "résumé.md", wantOK: true},
		{name: "spaces inside", filename: "my notes.txt", wantOK: true},
		{name: "max length", filename: strings.Repeat("a", 255), wantOK: true},

		{name: "empty", filename: "", wantOK: false},
		{name: "dot", filename: ".", wantOK: false},
		{name: "dotdot", filename: "..", wantOK: false},
		{name: "too long", filename: strings.Repeat("a", 256), wantOK: false},
		{name: "forward slash", filename: "a/b.txt", wantOK: false},
		{name: "backslash", filename: `a\b.txt`, wantOK: false},
		{name: "colon", filename: "a:b.txt", wantOK: false},
		{name: "question mark", filename: "what?.txt", wantOK: false},
		{name: "asterisk", filename: "glob*.txt", wantOK: false},
		{name: "angle bracket", filename: "<tag>.txt", wantOK: false},
		{name: "pipe", filename: "a|b", wantOK: false},
		{name: "double quote", filename: `say"hi"`, wantOK: false},
		{name: "nul byte", filename: "a\x00b", wantOK: false},
		{name: "newline", filename: "a\nb", wantOK: false},
		{name: "tab", filename: "a\tb", wantOK: false},
		{name: "trailing space", filename: "notes ", wantOK: false},
		{name: "trailing dot", filename: "notes.", wantOK: false},
		{name: "device name", filename: "CON", wantOK: false},
		{name: "device name lowercase", filename: "nul", wantOK: false},
		{name: "device name with extension", filename: "com1.txt", wantOK: false},
		{name: "device name as prefix is fine", filename: "console.txt", wantOK: true},
		{name: "lpt9", filename: "LPT9", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidFilename(tt.filename)

			if tt.wantOK {
				if err != nil {
					t.Fatalf("ValidFilename(%q)=%v, want nil", tt.filename, err)
				}

				return
			}

			if got, want := err, ErrInvalidArgument; !errors.Is(got, want) {
				t.Fatalf("ValidFilename(%q)=%v, want=%v", tt.filename, got, want)
			}
		})
	}
}
