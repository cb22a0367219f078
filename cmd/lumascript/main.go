/*
File : lumascript/cmd/lumascript/main.go
Package main is the entry point for the lumascript front-end tool. It
provides three subcommands: tokens (dump the lexer's token stream),
parse (dump the parsed AST), and repl (interactive front-end session).

Subcommand dispatch via spf13/cobra replaces go-mix/main/main.go's
hand-rolled os.Args[1] switch (main/main.go): this module leans on the
CLI framework the rest of the example pack carries (conneroisu-gix's
go.mod lists cobra/pflag/mousetrap without ever wiring them up), rather
than reimplementing flag parsing and usage text by hand.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lumascript/lumascript/errs"
	"github.com/lumascript/lumascript/lexer"
	"github.com/lumascript/lumascript/parser"
	"github.com/lumascript/lumascript/repl"
)

const (
	version = "v0.1.0"
	banner  = "lumascript"
	line    = "----------------------------------------------------------------"
	prompt  = "lumascript >>> "
)

var redColor = color.New(color.FgRed)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lumascript",
		Short:         "Lex and parse lumascript source",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newTokensCommand())
	root.AddCommand(newParseCommand())
	root.AddCommand(newReplCommand())

	return root
}

func newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			return runTokens(cmd.OutOrStdout(), source)
		},
	}
}

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			return runParse(cmd.OutOrStdout(), source)
		},
	}
}

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive front-end session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.New(banner, version, line, prompt)
			return r.Start(cmd.OutOrStdout())
		},
	}
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func runTokens(out io.Writer, source string) error {
	var sink errs.Sink
	lex := lexer.New(source)

	for {
		tok, ok := lex.NextToken(&sink)
		if !ok {
			redColor.Fprintf(out, "%s\n", sink.Get().Error())
			return sink.Get()
		}
		fmt.Fprintf(out, "%-28s %q\n", tok.Category(), tok.Literal)
		if tok.Type == lexer.Eof {
			return nil
		}
	}
}

func runParse(out io.Writer, source string) error {
	var sink errs.Sink
	lex := lexer.New(source)
	program := parser.Parse(lex, &sink)

	if sink.HasError() {
		redColor.Fprintf(out, "%s\n", sink.Get().Error())
		return sink.Get()
	}

	fmt.Fprintln(out, repr.String(program, repr.Indent("  ")))
	return nil
}
