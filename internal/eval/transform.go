/*
File    : t/internal/eval/transform.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package eval

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/akashmaji946/t/internal/parser"
	"github.com/akashmaji946/t/internal/selection"
	"github.com/akashmaji946/t/internal/value"
)

// doLowerUpper implements `l`/`u`: Unicode-aware case folding on every
// string leaf beneath the focus point.
func doLowerUpper(sub value.Value, upper bool) (value.Value, error) {
	return mapStringLeaves(sub, func(s string) (value.Value, error) {
		if upper {
			return &value.Str{S: strings.ToUpper(s)}, nil
		}
		return &value.Str{S: strings.ToLower(s)}, nil
	})
}

// doTrim implements `t`: trims leading/trailing Unicode whitespace from
// every string leaf beneath the focus point.
func doTrim(sub value.Value) (value.Value, error) {
	return mapStringLeaves(sub, func(s string) (value.Value, error) {
		return &value.Str{S: strings.TrimFunc(s, unicode.IsSpace)}, nil
	})
}

// doToNumber implements `n`: converts every string leaf to a Number,
// erroring on any leaf that is not numeric.
func doToNumber(sub value.Value) (value.Value, error) {
	return mapStringLeaves(sub, func(s string) (value.Value, error) {
		n, err := value.ParseNumber(s)
		if err != nil {
			return nil, err
		}
		return n, nil
	})
}

// selLower, selUpper, selTrim, selToNumber are the per-element
// transforms behind L<sel>/U<sel>/T<sel>/N<sel>: unlike their lowercase
// leaf-recursive counterparts, they touch only the string directly at a
// selected index, never recursing into a selected array element.
func selLower(s string) (value.Value, error) { return &value.Str{S: strings.ToLower(s)}, nil }
func selUpper(s string) (value.Value, error) { return &value.Str{S: strings.ToUpper(s)}, nil }
func selTrim(s string) (value.Value, error) {
	return &value.Str{S: strings.TrimFunc(s, unicode.IsSpace)}, nil
}
func selToNumber(s string) (value.Value, error) { return value.ParseNumber(s) }

// doSelTransform implements L<sel>/U<sel>/N<sel>/T<sel>: the transform
// is applied only to the focused array's elements at sel's indices, and
// only when that element is itself a string; array or number elements
// at a selected index are left untouched, since the selection reaches
// exactly one level, not deeper leaves.
func doSelTransform(sub value.Value, sel selection.Selection, transform func(string) (value.Value, error)) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot apply selected transform: %s is not an array", sub.Kind())
	}
	idxs, err := sel.Indices(len(arr.Elems))
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(arr.Elems))
	copy(out, arr.Elems)
	for _, idx := range idxs {
		s, ok := out[idx].(*value.Str)
		if !ok {
			continue
		}
		nv, err := transform(s.S)
		if err != nil {
			return nil, err
		}
		out[idx] = nv
	}
	return value.NewArr(out), nil
}

// doReplace implements `r[sel]/pat/repl/`: without a selection it is
// leaf-recursive like l/u/t/n; with a selection, the substitution is
// restricted to the selected children of the focused array (each
// selected child is still walked leaf-recursively, since a selected
// child may itself be a nested array of strings).
func doReplace(sub value.Value, op parser.Op) (value.Value, error) {
	substitute := func(s string) (value.Value, error) {
		return &value.Str{S: op.Pattern.ReplaceAll(s, op.Replacement)}, nil
	}
	if !op.HasSel {
		return mapStringLeaves(sub, substitute)
	}
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot apply selected replace: %s is not an array", sub.Kind())
	}
	idxs, err := op.Sel.Indices(len(arr.Elems))
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(arr.Elems))
	copy(out, arr.Elems)
	for _, idx := range idxs {
		nv, err := mapStringLeaves(out[idx], substitute)
		if err != nil {
			return nil, err
		}
		out[idx] = nv
	}
	return value.NewArr(out), nil
}
