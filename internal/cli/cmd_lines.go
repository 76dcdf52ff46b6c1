package cli

import (
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fsx"
)

var errOneFileArg = errors.New("expected exactly one file argument")

func newLinesCmd(cfg Config, workDir string) *Command {
	flags := flag.NewFlagSet("lines", flag.ContinueOnError)
	encName := flags.StringP("encoding", "e", cfg.Encoding, "IANA encoding name (default: UTF-8 with BOM detection)")
	countOnly := flags.BoolP("count", "c", false, "print only the number of lines")
	maxLines := flags.Int("max", 0, "stop after N lines (0 means no limit)")

	return &Command{
		Flags: flags,
		Usage: "lines <file> [flags]",
		Short: "Print a file line by line",
		Long: "Print a file line by line, decoding with the given encoding.\n" +
			"The file is opened without claiming a lock, so it works on files\n" +
			"that another program currently holds open for writing.",
		Exec: func(o *IO, args []string) error {
			if len(args) != 1 {
				return errOneFileArg
			}

			path := resolvePath(workDir, args[0])

			var opts []fsx.LinesOption
			if *encName != "" {
				opts = append(opts, fsx.WithEncodingName(*encName))
			}

			if *countOnly {
				n, err := fsx.CountLines(path, opts...)
				if err != nil {
					return err
				}

				o.Println(n)

				return nil
			}

			r, err := fsx.ReadLines(path, opts...)
			if err != nil {
				return err
			}
			defer r.Close()

			printed := 0

			for r.Scan() {
				o.Println(r.Text())

				printed++
				if *maxLines > 0 && printed >= *maxLines {
					break
				}
			}

			return r.Err()
		},
	}
}
