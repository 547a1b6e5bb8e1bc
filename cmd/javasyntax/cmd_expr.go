package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dhamidi/javasyntax/java/parser"
)

func newExprCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expr [expression]...",
		Short: "Parse a single Java expression",
		Long: `Parse the arguments, joined by spaces, as one Java expression and print
its syntax tree. With no arguments the expression is read from standard
input.`,
		Example: `  javasyntax expr 'a.b(c)[0] + 1'
  echo 'x -> x * 2' | javasyntax expr -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrapf(err, "read stdin")
				}
				src = data
			} else {
				src = []byte(strings.Join(args, " "))
			}

			expr, err := parser.ParseExpr(src)
			if err != nil {
				return err
			}
			enc, err := a.encoder(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return enc.Encode(expr)
		},
	}
}
