package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fsx"
)

func newReplCmd(cfg Config, workDir string) *Command {
	flags := flag.NewFlagSet("repl", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "repl",
		Short: "Interactive shell over the fsx commands",
		Long: "Start an interactive loop with history and completion.\n" +
			"Type 'help' inside the shell for the available commands.",
		Exec: func(o *IO, _ []string) error {
			r := &repl{cfg: cfg, workDir: workDir, io: o}

			return r.run()
		},
	}
}

// replCommands are the names the completer offers.
var replCommands = []string{"lines", "count", "du", "hidden", "mv", "cd", "pwd", "help", "exit", "quit"}

// repl is the interactive command loop.
type repl struct {
	cfg     Config
	workDir string
	io      *IO
	liner   *liner.State
}

// historyFile returns the path to the history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".fsx_history")
}

// run starts the REPL loop.
func (r *repl) run() error {
	// Set up liner for readline-style input
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	// Load history
	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	r.io.Println("fsx interactive shell")
	r.io.Println("Type 'help' for available commands.")
	r.io.Println()

	for {
		line, err := r.liner.Prompt("fsx> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				r.io.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			r.io.Println("Bye!")

			r.saveHistory()

			return nil

		case "help", "?":
			r.printHelp()

		case "lines", "cat":
			r.cmdLines(args)

		case "count":
			r.cmdCount(args)

		case "du":
			r.cmdDu(args)

		case "hidden":
			r.cmdHidden(args)

		case "mv":
			r.cmdMv(args)

		case "cd":
			r.cmdCd(args)

		case "pwd":
			r.io.Println(r.workDir)

		default:
			r.io.Println("unknown command:", cmd, "(try 'help')")
		}
	}

	r.saveHistory()

	return nil
}

func (r *repl) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}

	if f, err := os.Create(path); err == nil {
		r.liner.WriteHistory(f)
		f.Close()
	}
}

// completer completes command names at the start of the line and paths
// relative to the shell's working directory afterwards.
func (r *repl) completer(line string) []string {
	if !strings.Contains(line, " ") {
		var out []string

		for _, cmd := range replCommands {
			if strings.HasPrefix(cmd, strings.ToLower(line)) {
				out = append(out, cmd)
			}
		}

		return out
	}

	head, partial := line[:strings.LastIndex(line, " ")+1], line[strings.LastIndex(line, " ")+1:]

	dir := filepath.Join(r.workDir, filepath.Dir(partial))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []string

	for _, e := range entries {
		candidate := filepath.Join(filepath.Dir(partial), e.Name())
		if strings.HasPrefix(candidate, partial) {
			out = append(out, head+candidate)
		}
	}

	return out
}

func (r *repl) printHelp() {
	r.io.Println("Commands:")
	r.io.Println("  lines <file>        print a file line by line")
	r.io.Println("  count <file>        number of lines in a file")
	r.io.Println("  du <dir>            total size of a directory tree")
	r.io.Println("  hidden <path>...    hidden status per path")
	r.io.Println("  mv <file> <name>    rename within the directory")
	r.io.Println("  cd <dir>            change the shell working directory")
	r.io.Println("  pwd                 print the shell working directory")
	r.io.Println("  exit                leave the shell")
}

func (r *repl) cmdLines(args []string) {
	if len(args) != 1 {
		r.io.Println("usage: lines <file>")

		return
	}

	reader, err := fsx.ReadLines(resolvePath(r.workDir, args[0]), r.lineOpts()...)
	if err != nil {
		r.io.Println("error:", err)

		return
	}
	defer reader.Close()

	for reader.Scan() {
		r.io.Println(reader.Text())
	}

	if err := reader.Err(); err != nil {
		r.io.Println("error:", err)
	}
}

func (r *repl) cmdCount(args []string) {
	if len(args) != 1 {
		r.io.Println("usage: count <file>")

		return
	}

	n, err := fsx.CountLines(resolvePath(r.workDir, args[0]), r.lineOpts()...)
	if err != nil {
		r.io.Println("error:", err)

		return
	}

	r.io.Println(n)
}

func (r *repl) lineOpts() []fsx.LinesOption {
	if r.cfg.Encoding == "" {
		return nil
	}

	return []fsx.LinesOption{fsx.WithEncodingName(r.cfg.Encoding)}
}

func (r *repl) cmdDu(args []string) {
	if len(args) != 1 {
		r.io.Println("usage: du <dir>")

		return
	}

	var opts []fsx.SizeOption
	if r.cfg.SkipHidden {
		opts = append(opts, fsx.SkipHidden())
	}

	size, err := fsx.DirSize(resolvePath(r.workDir, args[0]), opts...)
	if err != nil {
		r.io.Println("error:", err)

		return
	}

	r.io.Printf("%d (%s)\n", size, humanBytes(size))
}

func (r *repl) cmdHidden(args []string) {
	if len(args) == 0 {
		r.io.Println("usage: hidden <path>...")

		return
	}

	for _, arg := range args {
		hidden, err := fsx.IsHidden(resolvePath(r.workDir, arg))
		if err != nil {
			r.io.Println("error:", err)

			continue
		}

		status := "visible"
		if hidden {
			status = "hidden"
		}

		r.io.Printf("%-7s %s\n", status, arg)
	}
}

func (r *repl) cmdMv(args []string) {
	if len(args) != 2 {
		r.io.Println("usage: mv <file> <new-name>")

		return
	}

	if err := fsx.Rename(resolvePath(r.workDir, args[0]), args[1]); err != nil {
		r.io.Println("error:", err)

		return
	}

	r.io.Println("Renamed", args[0], "->", args[1])
}

func (r *repl) cmdCd(args []string) {
	if len(args) != 1 {
		r.io.Println("usage: cd <dir>")

		return
	}

	next := resolvePath(r.workDir, args[0])

	info, err := os.Stat(next)
	if err != nil {
		r.io.Println("error:", err)

		return
	}

	if !info.IsDir() {
		r.io.Println("error: not a directory:", args[0])

		return
	}

	r.workDir = filepath.Clean(next)
}
