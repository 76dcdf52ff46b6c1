package cli

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fsx"
)

var errOneDirArg = errors.New("expected exactly one directory argument")

func newDuCmd(cfg Config, workDir string) *Command {
	flags := flag.NewFlagSet("du", flag.ContinueOnError)
	skipHidden := flags.Bool("skip-hidden", cfg.SkipHidden, "exclude hidden files and directories")
	human := flags.BoolP("human", "H", false, "print a humanized size instead of bytes")

	return &Command{
		Flags: flags,
		Usage: "du <dir> [flags]",
		Short: "Total size of a directory tree in bytes",
		Long: "Sum the sizes of all regular files under a directory, recursively.\n" +
			"Entries that vanish while the walk runs count as zero.",
		Exec: func(o *IO, args []string) error {
			if len(args) != 1 {
				return errOneDirArg
			}

			var opts []fsx.SizeOption
			if *skipHidden {
				opts = append(opts, fsx.SkipHidden())
			}

			size, err := fsx.DirSize(resolvePath(workDir, args[0]), opts...)
			if err != nil {
				return err
			}

			if *human {
				o.Println(humanBytes(size))
			} else {
				o.Println(size)
			}

			return nil
		},
	}
}

// humanBytes formats a byte count with a binary unit suffix.
func humanBytes(n int64) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
