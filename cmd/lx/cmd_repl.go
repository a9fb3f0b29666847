package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/dhamidi/lx/format"
	"github.com/dhamidi/lx/parser"
)

func newReplCmd() *cobra.Command {
	var showTokens bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read expressions interactively and print their syntax trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("initialize repl: %w", err)
			}
			defer func() { _ = rl.Close() }()

			out := cmd.OutOrStdout()
			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				if strings.TrimSpace(line) == "" {
					continue
				}

				tokens := parser.Lex(line)
				if showTokens {
					format.TokenTable(out, tokens)
				}
				result := parser.Parse(tokens)
				fmt.Fprint(out, result.Syntax().String())
				for _, msg := range result.Errors() {
					fmt.Fprintf(out, "error: %s\n", msg)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&showTokens, "tokens", false, "also print the token stream for each line")

	return cmd
}
