package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dhamidi/javasyntax/format"
	"github.com/dhamidi/javasyntax/java/parser"
	"github.com/dhamidi/javasyntax/java/scanner"
)

func (a *app) encoder(w io.Writer) (format.Encoder, error) {
	return format.New(a.cfg.Output.Format, w, a.cfg.Output.Positions)
}

func newParseCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "parse [file|dir|archive]...",
		Short: "Parse Java files and print their syntax trees",
		Long: `Parse one or more Java compilation units. Arguments may be .java files,
directories (searched recursively) or .zip/.jar source archives. With no
arguments the source is read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return a.parseStdin(cmd.InOrStdin(), out)
			}

			s := scanner.New(scanner.WithConcurrency(a.cfg.Scan.Concurrency))
			results, err := s.Scan(cmd.Context(), args...)
			if err != nil {
				return err
			}

			enc, err := a.encoder(out)
			if err != nil {
				return err
			}
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), r.Err)
					continue
				}
				if quiet {
					continue
				}
				if len(results) > 1 && a.cfg.Output.Format == "tree" {
					fmt.Fprintf(out, "# %s\n", r.Path)
				}
				if err := enc.Encode(r.Unit); err != nil {
					return errors.Wrapf(err, "encode %s", r.Path)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntP("concurrency", "j", 0, "files parsed in parallel (0: one per CPU)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report errors")
	if err := a.v.BindPFlag("scan.concurrency", cmd.Flags().Lookup("concurrency")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding concurrency flag: %v\n", err)
	}

	return cmd
}

func (a *app) parseStdin(in io.Reader, out io.Writer) error {
	data, err := readSource(in, "-")
	if err != nil {
		return err
	}
	unit, err := parser.ParseFile(data, parser.WithFile("<stdin>"))
	if err != nil {
		return err
	}
	enc, err := a.encoder(out)
	if err != nil {
		return err
	}
	return enc.Encode(unit)
}

// readSource reads path, or stdin when path is "-".
func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrapf(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "read %s", path)
}
