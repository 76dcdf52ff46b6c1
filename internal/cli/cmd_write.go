package cli

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fsx"
)

var errNoStdin = errors.New("no input stream available")

func newWriteCmd(stdin io.Reader, workDir string) *Command {
	flags := flag.NewFlagSet("write", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "write <file>",
		Short: "Atomically write stdin to a file",
		Long: "Read standard input to the end and write it to the file atomically\n" +
			"(temp file plus rename), so readers never observe a partial write.",
		Exec: func(o *IO, args []string) error {
			if len(args) != 1 {
				return errOneFileArg
			}

			if stdin == nil {
				return errNoStdin
			}

			data, err := io.ReadAll(stdin)
			if err != nil {
				return err
			}

			path := resolvePath(workDir, args[0])
			if err := fsx.WriteFileAtomic(path, data); err != nil {
				return err
			}

			o.Println("Wrote", len(data), "bytes to", args[0])

			return nil
		},
	}
}
