/*
File    : t/internal/rx/rx.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package rx wraps the standard library regexp package so every regex
// bracket form (/pat/, !/pat/, m/pat/, r/pat/repl/) shares one
// compile-once, fail-fast path. Go's RE2 engine is used directly:
// $1/${name} backreferences in replacement text are native to
// regexp.Regexp.Expand, so a third-party engine would add a
// dependency without adding capability.
package rx

import "regexp"

// Pattern is a compiled regular expression ready for matching or
// substitution.
type Pattern struct {
	re *regexp.Regexp
}

// Compile compiles pat once, at parse time, returning an error the
// parser turns into a ParseError.
func Compile(pat string) (*Pattern, error) {
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, err
	}
	return &Pattern{re: re}, nil
}

// MatchString reports whether the pattern matches anywhere in s.
func (p *Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// FindAllString returns every non-overlapping match of the pattern in s,
// or an empty (non-nil) slice if there are none.
func (p *Pattern) FindAllString(s string) []string {
	matches := p.re.FindAllString(s, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// ReplaceAll substitutes every match of the pattern in s with repl,
// which may contain $1/${name} backreferences.
func (p *Pattern) ReplaceAll(s, repl string) string {
	return p.re.ReplaceAllString(s, repl)
}
