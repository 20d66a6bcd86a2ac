/*
File    : t/internal/selection/selection.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package selection implements the indexer/slice grammar that every
// bare-selection op and L/U/N/T/D/g/p's trailing selection share:
//
//	selection := item ("," item)*
//	item      := index | slice
//	index     := "-"? DIGIT+
//	slice     := index? ":" index? (":" index?)?
//
// Whether a selection is scalar (a single bare index, yielding one
// element) or an array selection (anything else: a slice, or more than
// one comma-separated item) is fixed the moment parsing finishes — it
// never depends on the length of the value it is later applied to.
package selection

import (
	"fmt"

	"github.com/akashmaji946/t/internal/lexer"
)

// Item is one comma-separated piece of a Selection: either a bare index
// or a slice with optional start/end/step.
type Item struct {
	IsSlice bool

	Index int // valid when !IsSlice

	HasStart bool
	Start    int
	HasEnd   bool
	End      int
	HasStep  bool
	Step     int
}

// Selection is the fully parsed selection grammar: an ordered list of
// items plus whether the whole thing is a scalar (single bare index).
type Selection struct {
	Items  []Item
	Scalar bool
}

// Parse reads a Selection starting at the scanner's current position.
// It stops as soon as the grammar no longer continues (i.e. the next
// rune is not a ',' following a completed item), leaving the cursor
// there for the caller (the parser) to keep dispatching.
func Parse(sc *lexer.Scanner) (Selection, error) {
	var items []Item
	for {
		it, err := parseItem(sc)
		if err != nil {
			return Selection{}, err
		}
		items = append(items, it)
		if sc.Peek() == ',' {
			sc.Next()
			continue
		}
		break
	}
	scalar := len(items) == 1 && !items[0].IsSlice
	return Selection{Items: items, Scalar: scalar}, nil
}

// StartsSelection reports whether r can begin a selection item, used by
// the parser to decide whether an optional selection (e.g. after `r`) is
// present.
func StartsSelection(r rune) bool {
	return r == '-' || r == ':' || (r >= '0' && r <= '9')
}

func parseItem(sc *lexer.Scanner) (Item, error) {
	start, hasStart, err := tryParseIndex(sc)
	if err != nil {
		return Item{}, err
	}
	if sc.Peek() == ':' {
		sc.Next()
		end, hasEnd, err := tryParseIndex(sc)
		if err != nil {
			return Item{}, err
		}
		step := 1
		hasStep := false
		if sc.Peek() == ':' {
			sc.Next()
			step, hasStep, err = tryParseIndex(sc)
			if err != nil {
				return Item{}, err
			}
			if hasStep && step == 0 {
				return Item{}, fmt.Errorf("slice step cannot be zero")
			}
			if !hasStep {
				step = 1
			}
		}
		return Item{
			IsSlice: true,
			HasStart: hasStart, Start: start,
			HasEnd: hasEnd, End: end,
			HasStep: hasStep, Step: step,
		}, nil
	}
	if !hasStart {
		return Item{}, fmt.Errorf("expected an index or slice at position %d", sc.Pos())
	}
	return Item{IsSlice: false, Index: start}, nil
}

// tryParseIndex attempts to read "-"? DIGIT+ at the cursor. If no digits
// are found the cursor is rewound and ok is false; this lets callers
// treat a bare ':' (no leading index) as valid.
func tryParseIndex(sc *lexer.Scanner) (value int, ok bool, err error) {
	mark := sc.Mark()
	neg := false
	if sc.Peek() == '-' {
		neg = true
		sc.Next()
	}
	digits := 0
	n := 0
	for sc.Peek() >= '0' && sc.Peek() <= '9' {
		n = n*10 + int(sc.Next()-'0')
		digits++
	}
	if digits == 0 {
		sc.Reset(mark)
		return 0, false, nil
	}
	if neg {
		n = -n
	}
	return n, true, nil
}
