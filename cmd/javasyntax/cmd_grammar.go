package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dhamidi/javasyntax/java/grammar"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the accepted Java syntax",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(grammar.Source())
			return err
		},
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and verify an EBNF grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, "open grammar")
			}
			defer f.Close()

			g, err := grammar.Check(args[0], f, start)
			if err != nil {
				errs := grammar.Errors(err)
				for _, e := range errs {
					fmt.Fprintln(cmd.ErrOrStderr(), e)
				}
				return errors.Errorf("%s: %d problems", args[0], len(errs))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d productions\n", args[0], len(g))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start production to verify from (if empty, only checks syntax)")

	return cmd
}
