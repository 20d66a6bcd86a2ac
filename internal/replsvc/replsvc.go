/*
File    : t/internal/replsvc/replsvc.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package replsvc implements the `-i` flag's interactive live-preview
shell. A t program is re-parsed and re-run from scratch against the
same cached input each time a line is entered: there is no statement-
by-statement state to carry, so the loop below re-evaluates the whole
program string per entered line and prints the result below it. It
does not re-evaluate on individual keystrokes and does not repaint a
previous result in place.
*/
package replsvc

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/t/internal/eval"
	"github.com/akashmaji946/t/internal/parser"
	"github.com/akashmaji946/t/internal/render"
	"github.com/akashmaji946/t/internal/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Shell is the live-preview REPL: it holds the input Value once (read
// at startup) and re-evaluates the evolving program string against it,
// rather than reading new input on each line.
type Shell struct {
	Input       value.Value
	OutputDelim string
	CSV         bool
	Prompt      string
	JSON        bool // toggled by typing ^J
}

// New builds a Shell over an already-ingested input Value.
func New(input value.Value, outputDelim string, csv bool) *Shell {
	return &Shell{Input: input, OutputDelim: outputDelim, CSV: csv, Prompt: "t> "}
}

// PrintBanner writes the startup banner: a blue rule, a green title, a
// rule, a cyan instruction block, a rule.
func (s *Shell) PrintBanner(writer io.Writer) {
	rule := strings.Repeat("-", 48)
	blueColor.Fprintf(writer, "%s\n", rule)
	greenColor.Fprintf(writer, "t — interactive stream editor\n")
	blueColor.Fprintf(writer, "%s\n", rule)
	cyanColor.Fprintf(writer, "%s\n", "Type a program and see its result update live.")
	cyanColor.Fprintf(writer, "%s\n", "Type ^J to toggle JSON output, '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", rule)
}

// Start runs the main loop: read a line holding the whole program
// typed so far, re-evaluate it against s.Input, and print the result
// or error. Unlike repl.Start, state does not accumulate across
// lines — each line fully replaces the previous program.
func (s *Shell) Start(writer io.Writer) error {
	s.PrintBanner(writer)

	rl, err := readline.New(s.Prompt)
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

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}
		if line == "^J" {
			s.JSON = !s.JSON
			cyanColor.Fprintf(writer, "json output: %v\n", s.JSON)
			continue
		}

		rl.SaveHistory(line)
		s.evalAndPrint(writer, line)
	}
}

// evalAndPrint parses and runs program against the cached input,
// printing the rendered result in yellow or the error in red. A panic
// from deep in the evaluator (there should be none, but the evaluator
// is free-form text-driven) is caught here so one bad keystroke never
// kills the shell.
func (s *Shell) evalAndPrint(writer io.Writer, program string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", r)
		}
	}()

	ops, err := parser.Parse(program)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}

	ev := eval.New(eval.Config{CSV: s.CSV})
	result, err := ev.Run(ops, s.Input)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}

	if s.JSON {
		out, err := render.JSON(result)
		if err != nil {
			redColor.Fprintf(writer, "%v\n", err)
			return
		}
		yellowColor.Fprintf(writer, "%s\n", out)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", render.Text(result, s.OutputDelim))
}
