/*
File    : t/internal/eval/filter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package eval

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/t/internal/rx"
	"github.com/akashmaji946/t/internal/textlevel"
	"github.com/akashmaji946/t/internal/value"
)

// stringify produces the stringified form the regex filters match
// against: a string stands for itself; a number renders as text; an array joins
// its elements' own stringified forms with the delimiter its level
// would use to join (the same row the level table would use at depth
// k, where k is the depth of the array whose children are being
// stringified — i.e. one level deeper for every further level of
// nesting).
func stringify(v value.Value, k int) string {
	switch t := v.(type) {
	case *value.Str:
		return t.S
	case *value.Number:
		return t.Text()
	case *value.Arr:
		delim, err := textlevel.JoinDelim(k)
		if err != nil {
			delim = ""
		}
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = stringify(e, k+1)
		}
		return strings.Join(parts, delim)
	default:
		return ""
	}
}

// doFilter implements `/pat/` and `!/pat/`: children of the focused
// array are kept when their stringified form matches pat (keepOnMatch)
// or does not (!keepOnMatch).
func doFilter(sub value.Value, k int, pat *rx.Pattern, keepOnMatch bool) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot filter: %s is not an array", sub.Kind())
	}
	out := make([]value.Value, 0, len(arr.Elems))
	for _, e := range arr.Elems {
		matched := pat.MatchString(stringify(e, k))
		if matched == keepOnMatch {
			out = append(out, e)
		}
	}
	return value.NewArr(out), nil
}

// doExtract implements `m/pat/`: every child is replaced by the array
// of all non-overlapping matches of pat against its stringified form;
// zero matches yields an empty array, not removal of the child.
func doExtract(sub value.Value, k int, pat *rx.Pattern) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot extract: %s is not an array", sub.Kind())
	}
	out := make([]value.Value, len(arr.Elems))
	for i, e := range arr.Elems {
		out[i] = value.Strs(pat.FindAllString(stringify(e, k)))
	}
	return value.NewArr(out), nil
}

// doCompact implements `x`: removes children that are empty strings or
// empty arrays.
func doCompact(sub value.Value) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot compact: %s is not an array", sub.Kind())
	}
	out := make([]value.Value, 0, len(arr.Elems))
	for _, e := range arr.Elems {
		switch t := e.(type) {
		case *value.Str:
			if t.S == "" {
				continue
			}
		case *value.Arr:
			if len(t.Elems) == 0 {
				continue
			}
		}
		out = append(out, e)
	}
	return value.NewArr(out), nil
}
