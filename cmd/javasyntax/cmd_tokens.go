package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javasyntax/java/parser"
	"github.com/dhamidi/javasyntax/java/token"
)

func newTokensCmd(a *app) *cobra.Command {
	var comments bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a Java file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readSource(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			return writeTokens(cmd.OutOrStdout(), src, path, comments)
		},
	}

	cmd.Flags().BoolVar(&comments, "comments", false, "include comments")

	return cmd
}

// writeTokens prints one token per line: span, category, kind and text.
// Comments, when requested, are merged in source order.
func writeTokens(w io.Writer, src []byte, file string, comments bool) error {
	opts := []parser.Option{parser.WithFile(file)}
	if comments {
		opts = append(opts, parser.WithComments())
	}
	p, err := parser.New(src, opts...)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	pending := p.Comments()
	for _, tok := range p.Tokens() {
		for len(pending) > 0 && pending[0].Pos.Before(tok.Pos) {
			c := pending[0]
			pending = pending[1:]
			fmt.Fprintf(tw, "%s-%s\tComment\t\t%q\n", c.Pos, c.End, c.Text)
		}
		if tok.Kind == token.EOF {
			fmt.Fprintf(tw, "%s\t%s\t\t\n", tok.Pos, tok.Category())
			continue
		}
		fmt.Fprintf(tw, "%s-%s\t%s\t%s\t%q\n", tok.Pos, tok.End, tok.Category(), tok.Kind, tok.Literal)
	}
	return tw.Flush()
}
