package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"quarkprop/internal/script"
	"quarkprop/scene"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Apply a script to a fresh scene and print every step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rep, err := runScript(opts, args[0])
			if rep != nil {
				io.WriteString(cmd.OutOrStdout(), formatReport(rep))
			}
			return err
		},
	}
}

// runScript loads path and applies it to a new scene. The report is non-nil
// whenever loading succeeded, even if a step failed.
func runScript(opts *options, path string) (*scene.Scene, *script.Report, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, nil, err
	}
	sc := scene.CreateScene(opts.capacity)
	rep, err := script.NewRunner(script.WithLogger(opts.log)).Apply(sc, s)
	return sc, rep, err
}

func formatReport(rep *script.Report) string {
	var b strings.Builder
	for _, name := range rep.Created {
		fmt.Fprintf(&b, "created %s\n", name)
	}
	for _, st := range rep.Steps {
		fmt.Fprintln(&b, st.String())
	}
	fmt.Fprintf(&b, "applied %d steps\n", len(rep.Steps))
	return b.String()
}
