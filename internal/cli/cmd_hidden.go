package cli

import (
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fsx"
)

var errPathArgRequired = errors.New("expected at least one path argument")

func newHiddenCmd(workDir string) *Command {
	flags := flag.NewFlagSet("hidden", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "hidden <path>...",
		Short: "Report whether paths are hidden",
		Long: "Report the platform hidden attribute for each path:\n" +
			"a leading dot on Unix, the hidden file attribute on Windows.",
		Exec: func(o *IO, args []string) error {
			if len(args) == 0 {
				return errPathArgRequired
			}

			for _, arg := range args {
				hidden, err := fsx.IsHidden(resolvePath(workDir, arg))
				if err != nil {
					return err
				}

				status := "visible"
				if hidden {
					status = "hidden"
				}

				o.Printf("%-7s %s\n", status, arg)
			}

			return nil
		},
	}
}
