package cli

import (
	flag "github.com/spf13/pflag"
)

func newPrintConfigCmd(cfg Config, sources ConfigSources) *Command {
	flags := flag.NewFlagSet("print-config", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "print-config",
		Short: "Show the effective configuration and its sources",
		Exec: func(o *IO, _ []string) error {
			encoding := cfg.Encoding
			if encoding == "" {
				encoding = "utf-8 (default, BOM detected)"
			}

			o.Println("encoding:   ", encoding)
			o.Println("skip_hidden:", cfg.SkipHidden)
			o.Println()

			if sources.Global != "" {
				o.Println("global config: ", sources.Global)
			} else {
				o.Println("global config:  (none)")
			}

			if sources.Project != "" {
				o.Println("project config:", sources.Project)
			} else {
				o.Println("project config: (none)")
			}

			return nil
		},
	}
}
