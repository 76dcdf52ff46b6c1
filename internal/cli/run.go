// Package cli implements the fsx command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	minArgs      = 2
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
)

var errFlagRequiresArg = errors.New("flag requires an argument")

// Run is the main entry point. Returns exit code.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	if len(args) < minArgs {
		printUsage(o)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			o.ErrPrintln("error: cannot get working directory:", err)

			return 1
		}
	}

	cfg, sources, err := LoadConfig(workDir, flags.configPath, env)
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	if len(flags.remaining) == 0 {
		printUsage(o)

		return 0
	}

	name := flags.remaining[0]
	if name == "-h" || name == "--help" {
		printUsage(o)

		return 0
	}

	var cmd *Command

	switch name {
	case "lines":
		cmd = newLinesCmd(cfg, workDir)
	case "du":
		cmd = newDuCmd(cfg, workDir)
	case "hidden":
		cmd = newHiddenCmd(workDir)
	case "mv":
		cmd = newMvCmd(workDir)
	case "write":
		cmd = newWriteCmd(stdin, workDir)
	case "print-config":
		cmd = newPrintConfigCmd(cfg, sources)
	case "repl":
		cmd = newReplCmd(cfg, workDir)
	default:
		o.ErrPrintln("error: unknown command:", name)
		printUsage(o)

		return 1
	}

	return cmd.Run(o, flags.remaining[1:])
}

func printUsage(o *IO) {
	o.Println("Usage: fsx [global flags] <command> [args]")
	o.Println()
	o.Println("Commands:")

	for _, c := range []*Command{
		newLinesCmd(Config{}, ""),
		newDuCmd(Config{}, ""),
		newHiddenCmd(""),
		newMvCmd(""),
		newWriteCmd(nil, ""),
		newPrintConfigCmd(Config{}, ConfigSources{}),
		newReplCmd(Config{}, ""),
	} {
		o.Println(c.HelpLine())
	}

	o.Println()
	o.Println("Global flags:")
	o.Println("  -C, --cwd <dir>            Run as if started in <dir>")
	o.Println("  -c, --config <file>        Use an explicit config file")
	o.Println()
	o.Println("Run 'fsx <command> --help' for command details.")
}

type globalFlags struct {
	workDir    string
	configPath string
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if arg == "-C" || arg == "--cwd" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok && after != "" {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	return consumedNone, nil
}

// resolvePath joins a relative path with the working directory.
func resolvePath(workDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}
