package main

import (
	"io"

	"github.com/spf13/cobra"

	"quarkprop/internal/buildinfo"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			io.WriteString(cmd.OutOrStdout(), buildinfo.Long("propctl"))
		},
	}
}
