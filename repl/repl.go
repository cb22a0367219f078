/*
File : lumascript/repl/repl.go
Package repl implements an interactive front-end-only session: each
line the user enters is lexed and parsed, and the resulting AST (or
syntax error) is printed back.

Grounded on go-mix/repl/repl.go's Repl struct and its readline/color
wiring, but with the eval.Evaluator removed entirely: lumascript's REPL
never executes anything, it only ever shows what the front end saw for
a line, consistent with the front-end-only scope of this module.
*/
package repl

import (
	"io"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lumascript/lumascript/errs"
	"github.com/lumascript/lumascript/lexer"
	"github.com/lumascript/lumascript/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a read-parse-print loop instance.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl ready to Start.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "lumascript front-end REPL: lexes and parses each line you enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop, reading lines via readline and writing parse
// results to writer.
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string) {
	var sink errs.Sink
	lex := lexer.New(line)
	program := parser.Parse(lex, &sink)

	if sink.HasError() {
		redColor.Fprintf(writer, "%s\n", sink.Get().Error())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", repr.String(program, repr.Indent("  ")))
}
