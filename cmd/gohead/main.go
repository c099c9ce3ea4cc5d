// Command gohead prints the first bytes of each file, reading every file
// through a single exclusively owned descriptor.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dl/gohead/internal/cli"
)

func main() {
	args := append(cli.LoadConfigArgs(), os.Args[1:]...)
	os.Exit(execute(args, os.Stderr, cli.Run))
}

// execute parses args and hands the resulting config to runFn.
// Flag and validation errors exit with 2.
func execute(args []string, stderr io.Writer, runFn func(cli.Config) int) int {
	var (
		cfg   cli.Config
		color string
		code  int
	)

	cmd := &cobra.Command{
		Use:   "gohead [flags] [file...]",
		Short: "Print the first bytes of each file",
		Long: "gohead prints up to --bytes bytes from the start of each file.\n" +
			"With no file, or when file is -, it reads standard input.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			mode, err := cli.ParseColorMode(color)
			if err != nil {
				return err
			}
			cfg.Color = mode
			cfg.Paths = paths
			if err := cfg.Validate(); err != nil {
				return err
			}
			code = runFn(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Bytes, "bytes", "c", cli.DefaultBytes, "print at most this many bytes of each file")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "never print headers giving file names")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "always print headers giving file names")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "print one JSON object per file")
	flags.StringVar(&color, "color", "auto", "colorize headers: auto, always or never")
	flags.IntVarP(&cfg.Workers, "workers", "j", 0, "number of files read in parallel (0 = number of CPUs)")
	flags.BoolVarP(&cfg.Text, "text", "a", false, "print binary data instead of a summary line")
	flags.StringVar(&cfg.ExcludeFile, "exclude-from", "", "skip paths matching gitignore-style patterns in this file")
	flags.StringArrayVarP(&cfg.Excludes, "exclude", "e", nil, "skip paths matching this gitignore-style pattern (repeatable)")
	flags.StringVar(&cfg.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")

	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "gohead:", err)
		return 2
	}
	return code
}
