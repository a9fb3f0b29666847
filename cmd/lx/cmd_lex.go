package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/lx/format"
	"github.com/dhamidi/lx/parser"
)

func newLexCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Tokenize a source file and print the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args)
			if err != nil {
				return err
			}
			tokens := parser.Lex(source)

			switch outputFormat {
			case "table":
				format.TokenTable(cmd.OutOrStdout(), tokens)
			case "json":
				if err := format.EncodeTokensJSON(cmd.OutOrStdout(), tokens); err != nil {
					return fmt.Errorf("encode tokens: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format (table, json)")

	return cmd
}
