/*
File    : t/internal/explain/explain.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package explain renders a parsed program as human-readable text for
// the `-e`/`-p` CLI flags. It is an indenting buffer-based printer:
// indent grows while descending a nesting level and shrinks on the way
// back out — here the "nesting" a program expresses is its `@`/`^`
// focus stack, so ParseTree and Explain both indent under `@` and
// dedent at `^`.
package explain

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/t/internal/parser"
)

// IndentSize is the number of spaces each focus-stack level indents by.
const IndentSize = 2

type printer struct {
	indent int
	buf    bytes.Buffer
}

func (p *printer) pad() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
}

// ParseTree renders ops as a compact, indented op-index listing, the
// `-p` flag's output.
func ParseTree(ops []parser.Op) string {
	p := &printer{}
	for i, op := range ops {
		if op.Kind == parser.KindFocusOut && p.indent >= IndentSize {
			p.indent -= IndentSize
		}
		p.pad()
		p.buf.WriteString(fmt.Sprintf("op %2d: %s\n", i, shortForm(op)))
		if op.Kind == parser.KindFocusIn {
			p.indent += IndentSize
		}
	}
	return p.buf.String()
}

// Explain renders ops as a numbered list of human-readable sentences,
// the `-e` flag's output.
func Explain(ops []parser.Op) string {
	p := &printer{}
	for i, op := range ops {
		if op.Kind == parser.KindFocusOut && p.indent >= IndentSize {
			p.indent -= IndentSize
		}
		p.pad()
		p.buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, describe(op)))
		if op.Kind == parser.KindFocusIn {
			p.indent += IndentSize
		}
	}
	return p.buf.String()
}
