/*
File    : t/internal/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package parser

import (
	"github.com/akashmaji946/t/internal/lexer"
	"github.com/akashmaji946/t/internal/rx"
	"github.com/akashmaji946/t/internal/selection"
)

// Parse turns a program string into a flat []Op list, dispatching on
// the leading character of each op. The first malformed op aborts
// parsing with a *Error carrying the offending rune offset; t programs
// are short enough that there is no value in collecting more than one
// error.
func Parse(src string) ([]Op, error) {
	sc := lexer.NewScanner(src)
	var ops []Op
	for !sc.AtEnd() {
		op, err := parseOne(sc)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOne(sc *lexer.Scanner) (Op, error) {
	r := sc.Peek()
	switch r {
	case ';':
		sc.Next()
		return Op{Kind: KindNoop}, nil
	case '@':
		sc.Next()
		return Op{Kind: KindFocusIn}, nil
	case '^':
		sc.Next()
		return Op{Kind: KindFocusOut}, nil
	case 's':
		sc.Next()
		return Op{Kind: KindSplit}, nil
	case 'j':
		sc.Next()
		return Op{Kind: KindJoin}, nil
	case 'f':
		sc.Next()
		return Op{Kind: KindFlatten}, nil
	case 'l':
		sc.Next()
		return Op{Kind: KindLower}, nil
	case 'u':
		sc.Next()
		return Op{Kind: KindUpper}, nil
	case 't':
		sc.Next()
		return Op{Kind: KindTrim}, nil
	case 'n':
		sc.Next()
		return Op{Kind: KindToNumber}, nil
	case 'x':
		sc.Next()
		return Op{Kind: KindCompact}, nil
	case 'o':
		sc.Next()
		return Op{Kind: KindSortDesc}, nil
	case 'O':
		sc.Next()
		return Op{Kind: KindSortAsc}, nil
	case 'd':
		sc.Next()
		return Op{Kind: KindDedupe}, nil
	case '#':
		sc.Next()
		return Op{Kind: KindCount}, nil
	case '+':
		sc.Next()
		return Op{Kind: KindSum}, nil
	case 'c':
		sc.Next()
		return Op{Kind: KindColumnate}, nil
	case 'S':
		sc.Next()
		delim, err := readDelimArg(sc)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: KindSplitDelim, Delim: delim}, nil
	case 'J':
		sc.Next()
		delim, err := readDelimArg(sc)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: KindJoinDelim, Delim: delim}, nil
	case 'L':
		return parseSelOp(sc, KindLowerSel)
	case 'U':
		return parseSelOp(sc, KindUpperSel)
	case 'N':
		return parseSelOp(sc, KindToNumberSel)
	case 'T':
		return parseSelOp(sc, KindTrimSel)
	case 'D':
		return parseSelOp(sc, KindDedupeSel)
	case 'g':
		return parseSelOp(sc, KindGroup)
	case 'p':
		return parseSelOp(sc, KindPartition)
	case 'r':
		return parseReplace(sc)
	case '/':
		return parseRegexFilter(sc, KindFilterMatch)
	case '!':
		sc.Next()
		if sc.Peek() != '/' {
			return Op{}, errf(sc.Pos(), "expected '/' after '!'")
		}
		return parseRegexFilter(sc, KindFilterNotMatch)
	case 'm':
		sc.Next()
		if sc.Peek() != '/' {
			return Op{}, errf(sc.Pos(), "expected '/' after 'm'")
		}
		return parseRegexFilter(sc, KindFilterExtract)
	default:
		if selection.StartsSelection(r) {
			sel, err := selection.Parse(sc)
			if err != nil {
				return Op{}, wrapErr(sc, err)
			}
			return Op{Kind: KindSelection, Sel: sel, HasSel: true}, nil
		}
		return Op{}, errf(sc.Pos(), "unexpected character %q", r)
	}
}

func parseSelOp(sc *lexer.Scanner, kind Kind) (Op, error) {
	sc.Next() // the letter
	if !selection.StartsSelection(sc.Peek()) {
		return Op{}, errf(sc.Pos(), "expected a selection")
	}
	sel, err := selection.Parse(sc)
	if err != nil {
		return Op{}, wrapErr(sc, err)
	}
	return Op{Kind: kind, Sel: sel, HasSel: true}, nil
}

func parseReplace(sc *lexer.Scanner) (Op, error) {
	sc.Next() // 'r'
	var sel selection.Selection
	hasSel := false
	if selection.StartsSelection(sc.Peek()) {
		s, err := selection.Parse(sc)
		if err != nil {
			return Op{}, wrapErr(sc, err)
		}
		sel, hasSel = s, true
	}
	if sc.Peek() != '/' {
		return Op{}, errf(sc.Pos(), "expected '/' to begin regex pattern")
	}
	sc.Next()
	patSrc, err := sc.ReadRegexBody()
	if err != nil {
		return Op{}, wrapErr(sc, err)
	}
	repl, err := sc.ReadReplacementBody()
	if err != nil {
		return Op{}, wrapErr(sc, err)
	}
	pat, err := rx.Compile(patSrc)
	if err != nil {
		return Op{}, errf(sc.Pos(), "invalid regex %q: %v", patSrc, err)
	}
	return Op{Kind: KindReplace, Sel: sel, HasSel: hasSel, Pattern: pat, PatternSrc: patSrc, Replacement: repl}, nil
}

func parseRegexFilter(sc *lexer.Scanner, kind Kind) (Op, error) {
	if sc.Peek() != '/' {
		return Op{}, errf(sc.Pos(), "expected '/' to begin regex pattern")
	}
	sc.Next()
	patSrc, err := sc.ReadRegexBody()
	if err != nil {
		return Op{}, wrapErr(sc, err)
	}
	pat, err := rx.Compile(patSrc)
	if err != nil {
		return Op{}, errf(sc.Pos(), "invalid regex %q: %v", patSrc, err)
	}
	return Op{Kind: kind, Pattern: pat, PatternSrc: patSrc}, nil
}

func readDelimArg(sc *lexer.Scanner) (string, error) {
	if sc.AtEnd() {
		return "", errf(sc.Pos(), "expected a delimiter")
	}
	if sc.Peek() == '"' {
		s, err := sc.ReadQuoted()
		if err != nil {
			return "", wrapErr(sc, err)
		}
		if s == "" {
			return "", errf(sc.Pos(), "empty delimiter")
		}
		return s, nil
	}
	return string(sc.Next()), nil
}

func wrapErr(sc *lexer.Scanner, err error) *Error {
	return errf(sc.Pos(), "%v", err)
}
