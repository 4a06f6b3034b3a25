package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// platformCommands are subcommands that only build on some targets.
var platformCommands []func(*options) *cobra.Command

// options holds the persistent flags shared by every subcommand.
type options struct {
	logLevel  string
	logFormat string
	capacity  int

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "propctl",
		Short: "Drive scene properties from YAML scripts",
		Long: `propctl loads a YAML property-edit script, applies it to a fresh
in-memory scene through typed property handles and reports the result.

Examples:
  propctl run edit.yaml
  propctl watch edit.yaml --log-level debug
  propctl inspect edit.yaml --out frame.png
  propctl describe`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.log = l
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", "console", "log format: console or json")
	f.IntVar(&opts.capacity, "nodes", 16, "scene node capacity")

	cmd.AddCommand(
		newRunCmd(opts),
		newWatchCmd(opts),
		newInspectCmd(opts),
		newDescribeCmd(),
		newVersionCmd(),
	)
	for _, mk := range platformCommands {
		cmd.AddCommand(mk(opts))
	}
	return cmd
}

func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	switch format {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	default:
		return zerolog.Nop(), fmt.Errorf("log format %q: want console or json", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
