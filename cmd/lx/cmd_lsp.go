package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/lx/lsp"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	var verbose int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)
			server := lsp.NewServer(version)
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVarP(&verbose, "verbose", "v", 0, "log verbosity")

	return cmd
}
