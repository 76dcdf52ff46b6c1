package cli

import (
	"bytes"
	"io"
	"testing"
)

// runForTest invokes [Run] with captured streams. The env always carries
// an XDG_CONFIG_HOME override so tests never read a developer's real
// global config.
func runForTest(t *testing.T, stdin io.Reader, args []string, env map[string]string) (int, string, string) {
	t.Helper()

	if env == nil {
		env = map[string]string{}
	}

	if _, ok := env["XDG_CONFIG_HOME"]; !ok {
		env["XDG_CONFIG_HOME"] = t.TempDir()
	}

	var out, errOut bytes.Buffer

	exit := Run(stdin, &out, &errOut, args, env)

	return exit, out.String(), errOut.String()
}
