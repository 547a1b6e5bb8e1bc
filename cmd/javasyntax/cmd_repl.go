package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/dhamidi/javasyntax/format"
	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/parser"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

const replFile = "<repl>"

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse expressions, statements and declarations",
		Long: `Read Java source line by line and print its syntax tree. Input that
ends in the middle of a construct continues on the next line. Type
':format json|yaml|tree' to switch the output format and 'exit' or
Ctrl+D to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl()
		},
	}
}

func (a *app) repl() error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".javasyntax_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            colorGreen + "java> " + colorReset,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	var input strings.Builder
	for {
		if input.Len() > 0 {
			rl.SetPrompt(colorGray + "...   " + colorReset)
		} else {
			rl.SetPrompt(colorGreen + "java> " + colorReset)
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if input.Len() > 0 {
					input.Reset()
					continue
				}
				fmt.Fprintf(rl.Stdout(), "%s(use 'exit' or Ctrl+D to quit)%s\n", colorGray, colorReset)
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			return nil
		}

		if input.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "exit" {
				return nil
			}
			if name, ok := strings.CutPrefix(trimmed, ":format"); ok {
				a.setFormat(rl.Stderr(), strings.TrimSpace(name))
				continue
			}
		}

		input.WriteString(line)
		input.WriteString("\n")
		src := input.String()
		if strings.TrimSpace(src) == "" {
			input.Reset()
			continue
		}

		nodes, err := evaluate(src)
		if parser.IsIncomplete(err) {
			continue
		}
		input.Reset()
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "%s%s%s\n", colorRed, err, colorReset)
			continue
		}

		enc, err := a.encoder(rl.Stdout())
		if err != nil {
			return err
		}
		for _, n := range nodes {
			if err := enc.Encode(n); err != nil {
				fmt.Fprintf(rl.Stderr(), "%s%s%s\n", colorRed, err, colorReset)
			}
		}
	}
}

func (a *app) setFormat(w io.Writer, name string) {
	if _, err := format.New(name, io.Discard, false); err != nil {
		fmt.Fprintf(w, "%s%s%s\n", colorRed, err, colorReset)
		return
	}
	a.cfg.Output.Format = strings.ToLower(name)
}

// evaluate parses src as an expression, as a sequence of block statements
// or as a compilation unit, in that order. When all three fail the error
// that got furthest into the input is returned.
func evaluate(src string) ([]ast.Node, error) {
	data := []byte(src)

	expr, err := parser.ParseExpr(data, parser.WithFile(replFile))
	if err == nil {
		return []ast.Node{expr}, nil
	}
	best := err

	stmts, err := parseStatements(data)
	if err == nil {
		return stmts, nil
	}
	best = furthest(best, err)

	unit, err := parser.ParseFile(data, parser.WithFile(replFile))
	if err == nil {
		return []ast.Node{unit}, nil
	}
	return nil, furthest(best, err)
}

func parseStatements(src []byte) ([]ast.Node, error) {
	p, err := parser.New(src, parser.WithFile(replFile))
	if err != nil {
		return nil, err
	}
	var nodes []ast.Node
	for !p.Done() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, stmt)
	}
	return nodes, nil
}

// furthest returns whichever error is reported later in the source,
// preferring a on ties.
func furthest(a, b error) error {
	pa, okA := parser.ErrorPosition(a)
	pb, okB := parser.ErrorPosition(b)
	if !okA || (okB && pb.After(pa)) {
		return b
	}
	return a
}
