package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/lx/format"
	"github.com/dhamidi/lx/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var tolerant bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a source file and dump its syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args)
			if err != nil {
				return err
			}
			result := parser.Parse(parser.Lex(source))

			var encoder format.Encoder
			switch outputFormat {
			case "text":
				encoder = format.NewTreeEncoder(cmd.OutOrStdout())
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(result.Syntax()); err != nil {
				return fmt.Errorf("encode tree: %w", err)
			}

			for _, msg := range result.Errors() {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", msg)
			}
			if len(result.Errors()) > 0 && !tolerant {
				return fmt.Errorf("%d syntax error(s)", len(result.Errors()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&tolerant, "tolerant", false, "exit successfully even when the input has syntax errors")

	return cmd
}
