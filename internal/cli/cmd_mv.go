package cli

import (
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fsx"
)

var errMvArgs = errors.New("expected <file> and <new-name> arguments")

func newMvCmd(workDir string) *Command {
	flags := flag.NewFlagSet("mv", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "mv <file> <new-name>",
		Short: "Rename a file within its directory",
		Long: "Give a file or directory a new name inside its parent directory.\n" +
			"The new name must be a valid portable filename, and an existing\n" +
			"file is never overwritten.",
		Exec: func(o *IO, args []string) error {
			if len(args) != 2 {
				return errMvArgs
			}

			path := resolvePath(workDir, args[0])
			newName := args[1]

			if err := fsx.Rename(path, newName); err != nil {
				return err
			}

			o.Println("Renamed", args[0], "->", newName)

			return nil
		},
	}
}
