/*
File    : t/internal/textlevel/textlevel.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package textlevel implements the split/join delimiter table that
// drives `s`/`S`/`j`/`J`. The input reader consumes the file→line row
// once, at ingestion (see internal/ingest), so the table the evaluator
// consults starts one row later: focus depth 0 is the line→word row,
// depth 1 is the word→char row, and depth 2 and beyond have no row at
// all.
package textlevel

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNoLevel is returned when `s`/`j` are asked to act below the
// char level, where the level table has no further row.
var ErrNoLevel = errors.New("cannot split: already at char level")

// JoinDelim returns the literal delimiter used to split a string at
// focus depth k (producing depth k+1) and, symmetrically, to rejoin a
// depth k+1 array back into a depth-k string. It is an error to ask for
// a delimiter past the char level.
func JoinDelim(k int) (string, error) {
	switch k {
	case 0:
		return " ", nil
	case 1:
		return "", nil
	default:
		return "", ErrNoLevel
	}
}

// SplitLevel splits s according to the level rule active at focus
// depth k. k==0 is a line, split on runs of whitespace with empty
// pieces dropped; k==1 is a word, split into individual Unicode scalar
// values (never empty); k>=2 has no further split.
func SplitLevel(k int, s string) ([]string, error) {
	switch k {
	case 0:
		return strings.Fields(s), nil
	case 1:
		runes := []rune(s)
		out := make([]string, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out, nil
	default:
		return nil, ErrNoLevel
	}
}

// RenderJoinDelim returns the delimiter used by the text renderer to
// join the elements of an array sitting at render depth d, where d==0
// is the outermost (file-level) array the CLI prints — the one row
// `s`/`j` never see, since ingestion already consumed it. d==1 is the
// line→word row, d==2 the word→char row, same as JoinDelim shifted by
// one; outputDelim is the `-D`-overridable file-level join delimiter.
func RenderJoinDelim(d int, outputDelim string) string {
	if d == 0 {
		return outputDelim
	}
	delim, err := JoinDelim(d - 1)
	if err != nil {
		return ""
	}
	return delim
}

// IsSpace reports whether r is Unicode whitespace (unicode.IsSpace), the
// same set `t` (trim) strips.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }
