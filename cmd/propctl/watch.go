package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <script.yaml>",
		Short: "Re-apply a script to a fresh scene whenever the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchScript(ctx, opts, args[0], cmd.OutOrStdout())
		},
	}
}

// watchScript applies the script once and then again on every write or
// create of the file, until ctx is done. Each run's output is written to out
// in a single Write.
func watchScript(ctx context.Context, opts *options, path string, out io.Writer) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("absolute path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Editors often save by rename, so watch the directory.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	opts.log.Info().Str("path", abs).Msg("watching script")

	apply := func() {
		_, rep, err := runScript(opts, abs)
		text := ""
		if rep != nil {
			text = formatReport(rep)
		}
		if err != nil {
			opts.log.Error().Err(err).Msg("apply failed")
			text += fmt.Sprintf("error: %v\n", err)
		}
		io.WriteString(out, text)
	}
	apply()

	name := filepath.Base(abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				opts.log.Debug().Str("event", ev.Op.String()).Str("file", ev.Name).Msg("script changed")
				apply()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.log.Error().Err(err).Msg("watcher error")
		}
	}
}
