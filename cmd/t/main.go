/*
File    : t/cmd/t/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the t stream editor. It provides
three modes of operation:
1. Pipeline mode (default): read stdin or files, run the program, print the result
2. Explain/parse-tree mode (-e/-p): describe a program without evaluating it
3. Interactive mode (-i): live-preview loop over a cached input Value

Usage: t [flags] <program> [file ...]. With no file, stdin is read.
*/
package main

import (
	"flag"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/t/internal/eval"
	"github.com/akashmaji946/t/internal/explain"
	"github.com/akashmaji946/t/internal/ingest"
	"github.com/akashmaji946/t/internal/parser"
	"github.com/akashmaji946/t/internal/render"
	"github.com/akashmaji946/t/internal/replsvc"
)

// Exit codes: 0 success, 1 evaluation error, 2 parse error, 64 usage
// error.
const (
	exitOK    = 0
	exitEval  = 1
	exitParse = 2
	exitUsage = 64
)

// VERSION is the current release of the t stream editor.
var VERSION = "v1.0.0"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the whole CLI and returns the process exit code,
// kept separate from main so tests can drive it without os.Exit.
func run(args []string) int {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	delim := fs.String("d", "", "override the default file-level split delimiter")
	outputDelim := fs.String("D", "\n", "output delimiter for top-level text rendering")
	csv := fs.Bool("c", false, "CSV mode: S, and J, respect double-quoted fields (s and j do not)")
	explainProg := fs.String("e", "", "print an explanation of the program and exit")
	parseTreeProg := fs.String("p", "", "print the parse tree of the program and exit")
	interactive := fs.Bool("i", false, "interactive mode (live preview)")
	jsonOut := fs.Bool("j", false, "render output as JSON")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *explainProg != "" {
		return runExplainOrParseTree(*explainProg, explain.Explain)
	}
	if *parseTreeProg != "" {
		return runExplainOrParseTree(*parseTreeProg, explain.ParseTree)
	}

	rest := fs.Args()
	if *interactive {
		return runInteractive(rest, *delim, *outputDelim, *csv)
	}

	if len(rest) < 1 {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] a program is required\n")
		return exitUsage
	}
	program := rest[0]
	files := rest[1:]

	return runPipeline(program, files, *delim, *outputDelim, *csv, *jsonOut)
}

func runExplainOrParseTree(program string, render func([]parser.Op) string) int {
	ops, err := parser.Parse(program)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		return exitParse
	}
	cyanColor.Fprint(os.Stdout, render(ops))
	return exitOK
}

func runInteractive(files []string, delim, outputDelim string, csv bool) int {
	input, err := ingest.Read(files, delim)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[INPUT ERROR] %v\n", err)
		return exitEval
	}
	shell := replsvc.New(input, outputDelim, csv)
	if err := shell.Start(os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", err)
		return exitEval
	}
	return exitOK
}

// runPipeline executes the non-interactive, one-shot path: ingest,
// parse, evaluate, render. It is wrapped in panic recovery so a
// defensive bug deep in the evaluator reports as a runtime error
// instead of a bare stack trace.
func runPipeline(program string, files []string, delim, outputDelim string, csv, jsonOut bool) (code int) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", r)
			code = exitEval
		}
	}()

	input, err := ingest.Read(files, delim)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[INPUT ERROR] %v\n", err)
		return exitEval
	}

	ops, err := parser.Parse(program)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		return exitParse
	}

	ev := eval.New(eval.Config{CSV: csv})
	result, err := ev.Run(ops, input)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[EVAL ERROR] %v\n", err)
		return exitEval
	}

	if jsonOut {
		out, err := render.JSON(result)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[RENDER ERROR] %v\n", err)
			return exitEval
		}
		yellowColor.Fprintf(os.Stdout, "%s\n", out)
		return exitOK
	}

	yellowColor.Fprintf(os.Stdout, "%s\n", render.Text(result, outputDelim))
	return exitOK
}
