/*
File    : t/internal/eval/structural.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package eval

import (
	"fmt"

	"github.com/akashmaji946/t/internal/textlevel"
	"github.com/akashmaji946/t/internal/value"
)

// doSplit implements `s`: every direct string child of the focused
// array is replaced by the array produced by splitting it per the
// level rule active at focus depth k; non-string children pass through.
func doSplit(sub value.Value, k int) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot split: %s is not an array", sub.Kind())
	}
	out := make([]value.Value, len(arr.Elems))
	for i, e := range arr.Elems {
		s, ok := e.(*value.Str)
		if !ok {
			out[i] = e
			continue
		}
		pieces, err := textlevel.SplitLevel(k, s.S)
		if err != nil {
			return nil, err
		}
		out[i] = value.Strs(pieces)
	}
	return value.NewArr(out), nil
}

// doSplitDelim implements `S<delim>`: like doSplit, but splits on the
// literal delimiter supplied by the op rather than inferring one from
// level, honoring CSV quoting when cfg.CSV and delim is a comma.
func doSplitDelim(sub value.Value, delim string, cfg Config) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot split: %s is not an array", sub.Kind())
	}
	out := make([]value.Value, len(arr.Elems))
	for i, e := range arr.Elems {
		s, ok := e.(*value.Str)
		if !ok {
			out[i] = e
			continue
		}
		pieces := textlevel.SplitDelim(s.S, delim, cfg.CSV)
		out[i] = value.Strs(pieces)
	}
	return value.NewArr(out), nil
}

// doJoin implements `j`: every array child of the focused array is
// concatenated into a string using the delimiter appropriate to that
// child's own level (one level deeper than focus, i.e. the same
// delimiter the level table used to split it); non-array children
// pass through unchanged.
func doJoin(sub value.Value, k int, cfg Config) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot join: %s is not an array", sub.Kind())
	}
	delim, err := textlevel.JoinDelim(k)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(arr.Elems))
	for i, e := range arr.Elems {
		child, ok := e.(*value.Arr)
		if !ok {
			out[i] = e
			continue
		}
		fields := make([]string, len(child.Elems))
		for ci, ce := range child.Elems {
			cs, ok := ce.(*value.Str)
			if !ok {
				return nil, fmt.Errorf("cannot join: array child contains a non-string element")
			}
			fields[ci] = cs.S
		}
		out[i] = &value.Str{S: textlevel.JoinFields(fields, delim, cfg.CSV)}
	}
	return value.NewArr(out), nil
}

// doJoinDelim implements `J<delim>`: the focused array itself (not its
// children) is joined into a single string with the literal delimiter.
func doJoinDelim(sub value.Value, delim string, cfg Config) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot join: %s is not an array", sub.Kind())
	}
	fields := make([]string, len(arr.Elems))
	for i, e := range arr.Elems {
		s, ok := e.(*value.Str)
		if !ok {
			return nil, fmt.Errorf("cannot join: array contains a non-string element")
		}
		fields[i] = s.S
	}
	return &value.Str{S: textlevel.JoinFields(fields, delim, cfg.CSV)}, nil
}

// doFlatten implements `f`: the focused array is flattened by exactly
// one level; array children splice their elements in, other children
// are kept as-is.
func doFlatten(sub value.Value) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot flatten: %s is not an array", sub.Kind())
	}
	out := make([]value.Value, 0, len(arr.Elems))
	for _, e := range arr.Elems {
		if child, ok := e.(*value.Arr); ok {
			out = append(out, child.Elems...)
		} else {
			out = append(out, e)
		}
	}
	return value.NewArr(out), nil
}
